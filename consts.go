package lotto

import "time"

const (
	// PoolMin is the smallest number in the 6/45 pool
	PoolMin = 1

	// PoolMax is the largest number in the 6/45 pool
	PoolMax = 45

	// DefaultSetSize is the number of values in one recommended set
	DefaultSetSize = 6

	// DefaultBatchSize is the number of sets produced per recommendation
	DefaultBatchSize = 5

	// MaxBatchSize is the largest batch a single recommendation may request
	MaxBatchSize = 20

	// DefaultMaxFixed is the maximum count of user-supplied fixed numbers
	DefaultMaxFixed = DefaultSetSize - 1

	// MinFixedManual is the minimum count of fixed numbers in manual mode
	MinFixedManual = 1
)

const (
	// MinSupportedYear is the first year the lunar converter supports
	MinSupportedYear = 1891

	// MaxSupportedYear is the last year the lunar converter supports
	MaxSupportedYear = 2049

	// DateLayout is the compact YYYYMMDD layout used for birth and reference dates
	DateLayout = "20060102"

	// DateLength is the exact length of a YYYYMMDD string
	DateLength = 8

	// DefaultBirthWeight is the tally weight of each birth pillar component
	DefaultBirthWeight = 0.7

	// DefaultReferenceWeight is the tally weight of each reference pillar component
	DefaultReferenceWeight = 0.3

	// DefaultCycleBonus is added to the element generated by each present element
	DefaultCycleBonus = 0.1

	// DefaultTimezone is used to resolve "today" when no reference date is given
	DefaultTimezone = "Asia/Seoul"

	// DefaultLanguage is the message language
	DefaultLanguage = "en"
)

// FortuneVariant selects how the fortune mapper tallies elements
type FortuneVariant string

const (
	// VariantBasic counts each pillar component of the birth date once
	VariantBasic FortuneVariant = "basic"

	// VariantDateAware blends birth and reference pillars and applies the cycle bonus
	VariantDateAware FortuneVariant = "date_aware"
)

const (
	// DefaultCircuitBreakerName is the default name for Circuit Breaker
	DefaultCircuitBreakerName = "lunar-converter"

	// DefaultCircuitBreakerMaxRequests is the default max requests
	DefaultCircuitBreakerMaxRequests = 3

	// DefaultCircuitBreakerInterval is the default interval
	DefaultCircuitBreakerInterval = 60 * time.Second

	// DefaultCircuitBreakerTimeout is the default timeout
	DefaultCircuitBreakerTimeout = 30 * time.Second

	// DefaultCircuitBreakerFailureRatio is the default failure ratio
	DefaultCircuitBreakerFailureRatio = 0.6

	// DefaultCircuitBreakerMinRequests is the default min requests
	DefaultCircuitBreakerMinRequests = 3

	// DefaultCircuitBreakerOnStateChange is the default on state change
	DefaultCircuitBreakerOnStateChange = true
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "plain"
)
