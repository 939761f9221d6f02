package lotto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSexagenaryConverter_ToLunar(t *testing.T) {
	converter := NewSexagenaryConverter()

	tests := []struct {
		date             [3]int
		year, month, day string
	}{
		{[3]int{1900, 1, 1}, "己亥", "丙子", "甲戌"},
		{[3]int{1990, 1, 1}, "己巳", "丙子", "丙寅"},
		{[3]int{2000, 1, 1}, "己卯", "丙子", "戊午"},
		{[3]int{1984, 2, 3}, "癸亥", "乙丑", "丁卯"},
		{[3]int{1984, 2, 4}, "甲子", "丙寅", "戊辰"},
		{[3]int{1985, 5, 15}, "乙丑", "辛巳", "甲寅"},
		{[3]int{2024, 1, 1}, "癸卯", "甲子", "甲子"},
		{[3]int{2024, 2, 10}, "甲辰", "丙寅", "甲辰"},
		{[3]int{2026, 10, 14}, "丙午", "戊戌", "辛酉"},
		{[3]int{1891, 1, 1}, "庚寅", "戊子", "丁亥"},
		{[3]int{2049, 12, 31}, "己巳", "丙子", "庚辰"},
	}

	for _, tt := range tests {
		t.Run(tt.year+tt.month+tt.day, func(t *testing.T) {
			got, err := converter.ToLunar(tt.date[0], tt.date[1], tt.date[2])
			require.NoError(t, err)
			require.NotNil(t, got.Year)
			require.NotNil(t, got.Month)
			require.NotNil(t, got.Day)

			assert.Equal(t, tt.year, got.Year.String())
			assert.Equal(t, tt.month, got.Month.String())
			assert.Equal(t, tt.day, got.Day.String())
			assert.False(t, got.LeapMonth)
		})
	}
}

func TestSexagenaryConverter_DayCycle(t *testing.T) {
	converter := NewSexagenaryConverter()

	a, err := converter.ToLunar(2000, 3, 1)
	require.NoError(t, err)
	b, err := converter.ToLunar(2000, 4, 30) // 60 days later
	require.NoError(t, err)

	assert.Equal(t, a.Day.String(), b.Day.String())
}

func TestSexagenaryConverter_Errors(t *testing.T) {
	converter := NewSexagenaryConverter()

	tests := []struct {
		name             string
		year, month, day int
	}{
		{"before_range", 1890, 12, 31},
		{"after_range", 2050, 1, 1},
		{"february_30", 2000, 2, 30},
		{"non_leap_february_29", 2023, 2, 29},
		{"month_13", 2000, 13, 1},
		{"day_zero", 2000, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := converter.ToLunar(tt.year, tt.month, tt.day)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrUnsupportedDate)
		})
	}

	_, err := converter.ToLunar(2024, 2, 29)
	assert.NoError(t, err, "leap day is valid")
}

func TestMonthOffset(t *testing.T) {
	assert.Equal(t, 10, monthOffset(1, 5))
	assert.Equal(t, 11, monthOffset(1, 6))
	assert.Equal(t, 11, monthOffset(2, 3))
	assert.Equal(t, 0, monthOffset(2, 4))
	assert.Equal(t, 0, monthOffset(3, 5))
	assert.Equal(t, 1, monthOffset(3, 6))
	assert.Equal(t, 9, monthOffset(12, 6))
	assert.Equal(t, 10, monthOffset(12, 7))
	assert.Equal(t, 10, monthOffset(12, 31))
}

func TestParsePillar(t *testing.T) {
	p, ok := ParsePillar("甲子")
	require.True(t, ok)
	assert.Equal(t, '甲', p.Stem)
	assert.Equal(t, '子', p.Branch)
	assert.Equal(t, "甲子", p.String())

	_, ok = ParsePillar("甲")
	assert.False(t, ok)
	_, ok = ParsePillar("甲子丑")
	assert.False(t, ok)
}

func TestGanjiTriple_Pillars(t *testing.T) {
	full := triple("甲子", "丙寅", "戊辰")
	assert.Len(t, full.Pillars(), 3)

	leap := triple("甲子", "", "戊辰")
	pillars := leap.Pillars()
	require.Len(t, pillars, 2)
	assert.Equal(t, "甲子", pillars[0].String())
	assert.Equal(t, "戊辰", pillars[1].String())
}

func TestSexagenaryPillar_Wraps(t *testing.T) {
	assert.Equal(t, "甲子", sexagenaryPillar(0).String())
	assert.Equal(t, "癸亥", sexagenaryPillar(59).String())
	assert.Equal(t, "甲子", sexagenaryPillar(60).String())
	assert.Equal(t, "癸亥", sexagenaryPillar(-1).String())
}
