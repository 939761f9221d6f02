package lotto

import (
	"slices"
	"strconv"
	"strings"
)

// LottoSet is one recommended combination: distinct pool numbers in ascending order
type LottoSet []int

// Validate validates the set against the expected size
func (s LottoSet) Validate(size int) error {
	if len(s) != size {
		return ErrInvalidSetSize.WithDetails("set has " + strconv.Itoa(len(s)) + " numbers, want " + strconv.Itoa(size))
	}
	for i, n := range s {
		if n < PoolMin || n > PoolMax {
			return ErrFixedNumberOutOfRange.WithDetails(strconv.Itoa(n))
		}
		if i > 0 && s[i-1] >= n {
			return ErrInvalidParameters.WithDetails("set must be strictly ascending")
		}
	}
	return nil
}

// Contains reports whether n is part of the set
func (s LottoSet) Contains(n int) bool {
	_, found := slices.BinarySearch(s, n)
	return found
}

// ContainsAll reports whether every number in fixed is part of the set
func (s LottoSet) ContainsAll(fixed []int) bool {
	for _, n := range fixed {
		if !s.Contains(n) {
			return false
		}
	}
	return true
}

// String formats the set as "1, 2, 3, 4, 5, 6"
func (s LottoSet) String() string {
	return joinNumbers(s)
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// GenerateSet draws one set of the given size from the pool, containing
// every number of fixed. The remaining slots are filled by a partial
// Fisher-Yates shuffle of the pool minus fixed, so no candidate is reused.
func GenerateSet(rng RandomGenerator, fixed []int, size int) (LottoSet, error) {
	if size < 1 || size > PoolMax {
		return nil, ErrInvalidSetSize
	}
	if err := ValidateFixedNumbers(fixed, size-1); err != nil {
		return nil, ErrInvalidFixedNumbers.WithDetails(err.Error()).WithCause(err)
	}
	if rng == nil {
		rng = NewSecureRandomGenerator()
	}

	candidates := make([]int, 0, PoolMax-len(fixed))
	for n := PoolMin; n <= PoolMax; n++ {
		if !slices.Contains(fixed, n) {
			candidates = append(candidates, n)
		}
	}

	need := size - len(fixed)
	for i := range need {
		j, err := rng.GenerateInRange(i, len(candidates)-1)
		if err != nil {
			return nil, err
		}
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	set := make(LottoSet, 0, size)
	set = append(set, fixed...)
	set = append(set, candidates[:need]...)
	slices.Sort(set)

	return set, nil
}
