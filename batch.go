package lotto

import (
	"strings"
	"time"
)

// Mode selects how a recommendation constrains its sets
type Mode int

const (
	// ModeRandom draws every set without fixed numbers
	ModeRandom Mode = iota
	// ModeFortune fixes one lucky number from the fortune analysis per set
	ModeFortune
	// ModeManual fixes the numbers entered by the user in every set
	ModeManual
)

func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeFortune:
		return "fortune"
	case ModeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// ParseMode parses "random", "fortune" or "manual"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "basic", "":
		return ModeRandom, nil
	case "fortune", "saju":
		return ModeFortune, nil
	case "manual", "include":
		return ModeManual, nil
	default:
		return 0, ErrInvalidMode.WithDetails(s)
	}
}

// Request carries the user inputs of one recommendation
type Request struct {
	Mode          Mode   `json:"mode"`
	Name          string `json:"name,omitempty"`           // Fortune mode: user name
	BirthDate     string `json:"birth_date,omitempty"`     // Fortune mode: YYYYMMDD
	ReferenceDate string `json:"reference_date,omitempty"` // Fortune mode: YYYYMMDD, default today
	FixedInput    string `json:"fixed_input,omitempty"`    // Manual mode: comma separated numbers
}

// Batch is the result of one recommendation
type Batch struct {
	Mode        Mode           `json:"mode"`
	Sets        []LottoSet     `json:"sets"`
	Fixed       []int          `json:"fixed,omitempty"`   // Manual mode: numbers present in every set
	Fortune     *FortuneResult `json:"fortune,omitempty"` // Fortune mode: analysis outcome
	Message     string         `json:"message,omitempty"` // Fortune mode: analysis message
	GeneratedAt time.Time      `json:"generated_at"`
}

// Validate validates every set of the batch
func (b *Batch) Validate(size int) error {
	if len(b.Sets) == 0 {
		return ErrInvalidBatchSize
	}
	for _, set := range b.Sets {
		if err := set.Validate(size); err != nil {
			return err
		}
		if !set.ContainsAll(b.Fixed) {
			return ErrInvalidFixedNumbers.WithDetails("set " + set.String() + " misses a fixed number")
		}
	}
	return nil
}
