package lotto

import (
	"strconv"
	"strings"
)

// ValidateFixedNumbers validates caller-supplied fixed numbers: at most
// maxCount values, pairwise distinct, each within the pool
func ValidateFixedNumbers(fixed []int, maxCount int) error {
	if len(fixed) > maxCount {
		return ErrInvalidFixedCount.WithDetails("got " + strconv.Itoa(len(fixed)) + " numbers, max " + strconv.Itoa(maxCount))
	}

	seen := make(map[int]struct{}, len(fixed))
	for _, n := range fixed {
		if _, dup := seen[n]; dup {
			return ErrDuplicateFixedNumber.WithDetails(strconv.Itoa(n))
		}
		seen[n] = struct{}{}
	}

	for _, n := range fixed {
		if n < PoolMin || n > PoolMax {
			return ErrFixedNumberOutOfRange.WithDetails(strconv.Itoa(n))
		}
	}
	return nil
}

// ParseFixedNumbers parses manual-mode input such as "7, 15, 23".
//
// Entries are split on commas, trimmed and empty entries dropped. The count
// must lie in [MinFixedManual, maxCount], then duplicates are rejected, then
// any entry that is not an integer in [1, 45].
func ParseFixedNumbers(input string, maxCount int) ([]int, error) {
	var tokens []string
	for _, part := range strings.Split(input, ",") {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}

	if len(tokens) < MinFixedManual || len(tokens) > maxCount {
		return nil, ErrInvalidFixedCount.WithDetails("got " + strconv.Itoa(len(tokens)) + " numbers")
	}

	numbers := make([]int, 0, len(tokens))
	invalid := ""
	seenTokens := make(map[string]struct{}, len(tokens))
	seenNumbers := make(map[int]struct{}, len(tokens))
	for _, token := range tokens {
		n, err := strconv.Atoi(token)
		if err != nil {
			if _, dup := seenTokens[token]; dup {
				return nil, ErrDuplicateFixedNumber.WithDetails(token)
			}
			seenTokens[token] = struct{}{}
			if invalid == "" {
				invalid = token
			}
			continue
		}
		if _, dup := seenNumbers[n]; dup {
			return nil, ErrDuplicateFixedNumber.WithDetails(token)
		}
		seenNumbers[n] = struct{}{}
		numbers = append(numbers, n)
	}

	if invalid != "" {
		return nil, ErrFixedNumberOutOfRange.WithDetails(invalid)
	}
	for _, n := range numbers {
		if n < PoolMin || n > PoolMax {
			return nil, ErrFixedNumberOutOfRange.WithDetails(strconv.Itoa(n))
		}
	}

	return numbers, nil
}

// isDigits reports whether s is exactly length ASCII digits
func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitDate splits a validated YYYYMMDD string into its components
func splitDate(s string) (year, month, day int) {
	year, _ = strconv.Atoi(s[0:4])
	month, _ = strconv.Atoi(s[4:6])
	day, _ = strconv.Atoi(s[6:8])
	return year, month, day
}
