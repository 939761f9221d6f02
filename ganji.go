package lotto

import (
	"time"
)

var (
	stems    = []rune("甲乙丙丁戊己庚辛壬癸")
	branches = []rune("子丑寅卯辰巳午未申酉戌亥")
)

// Pillar is a stem+branch pair labelling a year, month or day
type Pillar struct {
	Stem   rune `json:"stem"`
	Branch rune `json:"branch"`
}

// String returns the two-character token, e.g. "甲子"
func (p Pillar) String() string {
	return string([]rune{p.Stem, p.Branch})
}

// ParsePillar parses a two-character stem/branch token
func ParsePillar(token string) (*Pillar, bool) {
	r := []rune(token)
	if len(r) != 2 {
		return nil, false
	}
	return &Pillar{Stem: r[0], Branch: r[1]}, true
}

// sexagenaryPillar returns the pillar at position idx of the 60-term cycle
func sexagenaryPillar(idx int) *Pillar {
	idx = ((idx % 60) + 60) % 60
	return &Pillar{Stem: stems[idx%10], Branch: branches[idx%12]}
}

// GanjiTriple holds the year, month and day pillars of a date. Month is nil
// when the converter cannot assign one, as for a leap month.
type GanjiTriple struct {
	Year      *Pillar `json:"year"`
	Month     *Pillar `json:"month,omitempty"`
	Day       *Pillar `json:"day"`
	LeapMonth bool    `json:"leap_month"`
}

// Pillars returns the present pillars in year, month, day order
func (g *GanjiTriple) Pillars() []*Pillar {
	pillars := make([]*Pillar, 0, 3)
	for _, p := range []*Pillar{g.Year, g.Month, g.Day} {
		if p != nil {
			pillars = append(pillars, p)
		}
	}
	return pillars
}

// SexagenaryConverter is an arithmetic LunarConverter. It is not a lunisolar
// calendar: the year turns at the approximate start of spring (Feb 4), month
// pillars follow approximate solar-term boundaries and the day pillar counts
// days from 1900-01-01 (甲戌). It never reports a leap month.
type SexagenaryConverter struct {
	minYear int
	maxYear int
}

// NewSexagenaryConverter creates a converter supporting [MinSupportedYear, MaxSupportedYear]
func NewSexagenaryConverter() *SexagenaryConverter {
	return &SexagenaryConverter{minYear: MinSupportedYear, maxYear: MaxSupportedYear}
}

var (
	dayEpoch    = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	dayEpochIdx = 10 // 甲戌
)

// solar-term month starts, 寅 month first
var monthStarts = [11]struct{ month, day int }{
	{2, 4}, {3, 6}, {4, 5}, {5, 6}, {6, 6}, {7, 7},
	{8, 8}, {9, 8}, {10, 8}, {11, 7}, {12, 7},
}

// ToLunar implements LunarConverter
func (c *SexagenaryConverter) ToLunar(year, month, day int) (*GanjiTriple, error) {
	if year < c.minYear || year > c.maxYear {
		return nil, ErrUnsupportedDate.WithOperation("ToLunar")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return nil, ErrUnsupportedDate.WithOperation("ToLunar").WithDetails("invalid calendar date")
	}

	solarYear := year
	if before(month, day, 2, 4) {
		solarYear--
	}
	yearIdx := solarYear - 4 // 1984 is 甲子

	offset := monthOffset(month, day)
	yearStem := ((yearIdx % 10) + 10) % 10
	monthStem := ((yearStem%5)*2 + 2 + offset) % 10
	monthBranch := (2 + offset) % 12

	days := int(date.Sub(dayEpoch).Hours() / 24)

	return &GanjiTriple{
		Year:  sexagenaryPillar(yearIdx),
		Month: &Pillar{Stem: stems[monthStem], Branch: branches[monthBranch]},
		Day:   sexagenaryPillar(dayEpochIdx + days),
	}, nil
}

// monthOffset returns the month index counted from the 寅 month
func monthOffset(month, day int) int {
	switch {
	case before(month, day, 1, 6):
		return 10 // 子
	case before(month, day, 2, 4):
		return 11 // 丑
	}
	offset := 0
	for i, start := range monthStarts {
		if !before(month, day, start.month, start.day) {
			offset = i
		}
	}
	return offset
}

func before(month, day, refMonth, refDay int) bool {
	return month < refMonth || (month == refMonth && day < refDay)
}
