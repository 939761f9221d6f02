package lotto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElement_LuckyNumbers(t *testing.T) {
	tests := []struct {
		element Element
		want    []int
	}{
		{Wood, []int{3, 8}},
		{Fire, []int{2, 7}},
		{Earth, []int{5, 10}},
		{Metal, []int{4, 9}},
		{Water, []int{1, 6}},
	}

	for _, tt := range tests {
		t.Run(string(tt.element), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.element.LuckyNumbers())
			assert.True(t, tt.element.Valid())
		})
	}

	assert.Nil(t, Element("void").LuckyNumbers())
	assert.False(t, Element("void").Valid())
}

func TestElement_LuckyNumbersReturnsCopy(t *testing.T) {
	numbers := Fire.LuckyNumbers()
	numbers[0] = 99
	assert.Equal(t, []int{2, 7}, Fire.LuckyNumbers())
}

func TestElement_Generates(t *testing.T) {
	assert.Equal(t, Fire, Wood.Generates())
	assert.Equal(t, Earth, Fire.Generates())
	assert.Equal(t, Metal, Earth.Generates())
	assert.Equal(t, Water, Metal.Generates())
	assert.Equal(t, Wood, Water.Generates())
}

func TestStemAndBranchElements(t *testing.T) {
	for i, stem := range stems {
		e, ok := StemElement(stem)
		assert.True(t, ok)
		assert.Equal(t, Elements[i/2], e, "stem %c", stem)
	}

	branchWant := map[rune]Element{
		'子': Water, '丑': Earth, '寅': Wood, '卯': Wood, '辰': Earth, '巳': Fire,
		'午': Fire, '未': Earth, '申': Metal, '酉': Metal, '戌': Earth, '亥': Water,
	}
	for _, branch := range branches {
		e, ok := BranchElement(branch)
		assert.True(t, ok)
		assert.Equal(t, branchWant[branch], e, "branch %c", branch)
	}

	_, ok := StemElement('X')
	assert.False(t, ok)
	_, ok = BranchElement('甲')
	assert.False(t, ok)
}

func TestElementTally_AddPillars(t *testing.T) {
	tally := NewElementTally()
	tally.AddPillars([]*Pillar{mustPillar("己巳"), nil, mustPillar("丙寅")}, 1)

	assert.Equal(t, ElementTally{Wood: 1, Fire: 2, Earth: 1, Metal: 0, Water: 0}, tally)

	// unknown symbols contribute nothing
	tally = NewElementTally()
	tally.AddPillars([]*Pillar{{Stem: 'X', Branch: 'Y'}}, 1)
	assert.Equal(t, NewElementTally(), tally)
}

func TestElementTally_Dominant(t *testing.T) {
	tests := []struct {
		name  string
		tally ElementTally
		want  Element
	}{
		{"clear_winner", ElementTally{Fire: 3, Water: 1}, Fire},
		{"tie_goes_to_earlier", ElementTally{Earth: 2, Water: 2}, Earth},
		{"tie_wood_first", ElementTally{Wood: 2, Earth: 2, Fire: 1}, Wood},
		{"all_zero", NewElementTally(), Earth},
		{"empty", ElementTally{}, Earth},
		{"fractional", ElementTally{Wood: 0.8, Fire: 2.8, Earth: 1.4}, Fire},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tally.Dominant())
		})
	}
}

func TestElementTally_ApplyCycleBonus(t *testing.T) {
	t.Run("present_elements_feed_next", func(t *testing.T) {
		tally := ElementTally{Wood: 1, Fire: 0, Earth: 0, Metal: 0, Water: 0}
		tally.ApplyCycleBonus(0.1)

		// wood feeds fire, which is then positive and feeds earth, and so on
		// until water feeds wood
		assert.InDelta(t, 1.1, tally[Wood], 1e-9)
		assert.InDelta(t, 0.1, tally[Fire], 1e-9)
		assert.InDelta(t, 0.1, tally[Earth], 1e-9)
		assert.InDelta(t, 0.1, tally[Metal], 1e-9)
		assert.InDelta(t, 0.1, tally[Water], 1e-9)
	})

	t.Run("water_wraps_to_wood", func(t *testing.T) {
		tally := ElementTally{Wood: 0, Fire: 0, Earth: 0, Metal: 0, Water: 1}
		tally.ApplyCycleBonus(0.1)

		// wood is checked before water adds to it
		assert.InDelta(t, 0.1, tally[Wood], 1e-9)
		assert.InDelta(t, 0.0, tally[Fire], 1e-9)
	})

	t.Run("all_zero_stays_zero", func(t *testing.T) {
		tally := NewElementTally()
		tally.ApplyCycleBonus(0.1)
		assert.Equal(t, NewElementTally(), tally)
	})
}
