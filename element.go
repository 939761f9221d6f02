package lotto

// Element is one of the five oh-haeng categories
type Element string

const (
	Wood  Element = "wood"
	Fire  Element = "fire"
	Earth Element = "earth"
	Metal Element = "metal"
	Water Element = "water"
)

// Elements lists the five elements in declaration order. Tally scans and
// the cycle bonus follow this order, so ties resolve to the earlier element.
var Elements = [5]Element{Wood, Fire, Earth, Metal, Water}

// DefaultElement is dominant when no element has a positive tally
const DefaultElement = Earth

var stemElements = map[rune]Element{
	'甲': Wood, '乙': Wood,
	'丙': Fire, '丁': Fire,
	'戊': Earth, '己': Earth,
	'庚': Metal, '辛': Metal,
	'壬': Water, '癸': Water,
}

var branchElements = map[rune]Element{
	'子': Water, '丑': Earth, '寅': Wood, '卯': Wood,
	'辰': Earth, '巳': Fire, '午': Fire, '未': Earth,
	'申': Metal, '酉': Metal, '戌': Earth, '亥': Water,
}

var luckyNumbers = map[Element][2]int{
	Wood:  {3, 8},
	Fire:  {2, 7},
	Earth: {5, 10},
	Metal: {4, 9},
	Water: {1, 6},
}

// productive cycle: wood feeds fire, fire feeds earth, ...
var generates = map[Element]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}

// StemElement returns the element of a heavenly stem
func StemElement(stem rune) (Element, bool) {
	e, ok := stemElements[stem]
	return e, ok
}

// BranchElement returns the element of an earthly branch
func BranchElement(branch rune) (Element, bool) {
	e, ok := branchElements[branch]
	return e, ok
}

// Generates returns the element fed by e in the productive cycle
func (e Element) Generates() Element { return generates[e] }

// LuckyNumbers returns the fixed lucky-number pair of the element
func (e Element) LuckyNumbers() []int {
	pair, ok := luckyNumbers[e]
	if !ok {
		return nil
	}
	return []int{pair[0], pair[1]}
}

// Valid reports whether e is one of the five elements
func (e Element) Valid() bool {
	_, ok := luckyNumbers[e]
	return ok
}

// ElementTally is a weighted count per element
type ElementTally map[Element]float64

// NewElementTally returns a tally with all five elements at zero
func NewElementTally() ElementTally {
	t := make(ElementTally, len(Elements))
	for _, e := range Elements {
		t[e] = 0
	}
	return t
}

// AddPillars adds weight for every stem, then every branch, of the given
// pillars. Nil pillars and unknown symbols contribute nothing.
func (t ElementTally) AddPillars(pillars []*Pillar, weight float64) {
	for _, p := range pillars {
		if p == nil {
			continue
		}
		if e, ok := StemElement(p.Stem); ok {
			t[e] += weight
		}
	}
	for _, p := range pillars {
		if p == nil {
			continue
		}
		if e, ok := BranchElement(p.Branch); ok {
			t[e] += weight
		}
	}
}

// ApplyCycleBonus walks the elements in declaration order and, for each one
// whose current tally is positive, adds bonus to the element it generates.
// Bonuses added earlier in the walk count when later elements are checked.
func (t ElementTally) ApplyCycleBonus(bonus float64) {
	for _, e := range Elements {
		if t[e] > 0 {
			t[e.Generates()] += bonus
		}
	}
}

// Dominant returns the element with the strictly highest tally, scanning in
// declaration order so the first element to reach the maximum wins. When no
// element is positive the result is DefaultElement.
func (t ElementTally) Dominant() Element {
	var (
		maxCount float64
		dominant Element
	)
	for _, e := range Elements {
		if t[e] > maxCount {
			maxCount = t[e]
			dominant = e
		}
	}
	if maxCount == 0 {
		return DefaultElement
	}
	return dominant
}
