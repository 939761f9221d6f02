package lotto

import "context"

// RandomGenerator defines the random source used by the set generator
type RandomGenerator interface {
	// GenerateInRange returns a uniformly distributed integer in [min, max] (inclusive)
	GenerateInRange(min, max int) (int, error)
}

// LunarConverter converts a Gregorian date into its year, month and day pillars.
//
// Implementations return ErrUnsupportedDate for dates outside the supported
// range or for impossible calendar dates.
type LunarConverter interface {
	ToLunar(year, month, day int) (*GanjiTriple, error)
}

// Recommender defines the interface for producing recommendation batches
type Recommender interface {
	// GenerateSet produces one set containing every fixed number
	GenerateSet(fixed []int) (LottoSet, error)

	// GenerateBatch produces BatchSize independent sets sharing the same fixed numbers
	GenerateBatch(ctx context.Context, fixed []int) ([]LottoSet, error)

	// Recommend validates the request and produces a batch for its mode
	Recommend(ctx context.Context, req *Request) (*Batch, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}
