package lotto

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Elements
	message.SetString(lang, "element.wood", "wood")
	message.SetString(lang, "element.fire", "fire")
	message.SetString(lang, "element.earth", "earth")
	message.SetString(lang, "element.metal", "metal")
	message.SetString(lang, "element.water", "water")

	// Fortune analysis
	message.SetString(lang, "fortune.result", "Fortune analysis: your strongest element is [%s]. Your lucky numbers are [%s].")
	message.SetString(lang, "fortune.reference", " (reflecting the energy of %s)")
	message.SetString(lang, "fortune.leap_month", " (You were born in a leap month.)")
	message.SetString(lang, "fortune.reference_unavailable", "Unable to compute the pillars of the reference date.")
	message.SetString(lang, "fortune.unexpected", "An error occurred during fortune analysis: %s")
	message.SetString(lang, "date.layout", "2006-01-02")

	// Rendering
	message.SetString(lang, "set.label", "Set %d")

	// User-facing error messages, keyed by error code
	for _, err := range userFacingErrors {
		message.SetString(lang, string(err.Code), err.Message)
	}
}

// userFacingErrors are the errors whose message is shown to users verbatim
var userFacingErrors = []*LotteryError{
	ErrInvalidFixedCount,
	ErrDuplicateFixedNumber,
	ErrFixedNumberOutOfRange,
	ErrMissingProfile,
	ErrInvalidBirthDate,
	ErrInvalidMode,
	ErrInvalidDateFormat,
	ErrUnsupportedYear,
	ErrGanjiUnavailable,
	ErrUnsupportedDate,
	ErrFortuneAnalysisFailed,
	ErrCircuitBreakerOpen,
}
