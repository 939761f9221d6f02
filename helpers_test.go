package lotto

import (
	"fmt"
	"sync"
	"time"
)

// MockLogger for testing
type MockLogger struct {
	mu            sync.Mutex
	InfoMessages  []string
	ErrorMessages []string
	DebugMessages []string
}

func (m *MockLogger) Info(msg string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InfoMessages = append(m.InfoMessages, fmt.Sprintf(msg, args...))
}

func (m *MockLogger) Error(msg string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorMessages = append(m.ErrorMessages, fmt.Sprintf(msg, args...))
}

func (m *MockLogger) Debug(msg string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DebugMessages = append(m.DebugMessages, fmt.Sprintf(msg, args...))
}

// funcGenerator adapts a function to RandomGenerator
type funcGenerator func(min, max int) (int, error)

func (f funcGenerator) GenerateInRange(min, max int) (int, error) { return f(min, max) }

// alwaysMin picks the lowest value of every range
var alwaysMin = funcGenerator(func(min, _ int) (int, error) { return min, nil })

// alwaysMax picks the highest value of every range
var alwaysMax = funcGenerator(func(_, max int) (int, error) { return max, nil })

// fakeConverter returns a fixed triple, an error or panics
type fakeConverter struct {
	mu         sync.Mutex
	triple     *GanjiTriple
	err        error
	panicValue any
	calls      int
}

func (f *fakeConverter) ToLunar(year, month, day int) (*GanjiTriple, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.panicValue != nil {
		panic(f.panicValue)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.triple, nil
}

func (f *fakeConverter) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func mustPillar(token string) *Pillar {
	p, ok := ParsePillar(token)
	if !ok {
		panic("invalid pillar " + token)
	}
	return p
}

func triple(year, month, day string) *GanjiTriple {
	g := &GanjiTriple{Year: mustPillar(year), Day: mustPillar(day)}
	if month != "" {
		g.Month = mustPillar(month)
	}
	return g
}

// fixedClock returns a clock stuck at the given date, noon UTC
func fixedClock(year int, month time.Month, day int) func() time.Time {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func newTestMapper(converter LunarConverter, variant FortuneVariant) *FortuneMapper {
	config := DefaultFortuneConfig()
	config.Variant = variant
	return NewFortuneMapper(converter, config, NewSilentLogger())
}
