package lotto

import (
	"errors"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewPrinter returns a message printer for the given language code. Unknown
// or empty codes fall back to English.
func NewPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil || lang == "" {
		tag = language.English
	}
	base, _ := tag.Base()
	if base.String() == "ko" {
		return message.NewPrinter(language.Korean)
	}
	return message.NewPrinter(language.English)
}

// ElementName returns the localized name of the element
func ElementName(p *message.Printer, e Element) string {
	return p.Sprintf("element." + string(e))
}

// FormatDate renders a calendar date with the localized layout. The layout
// is a time layout, so the printer never applies number grouping to the year.
func FormatDate(p *message.Printer, year, month, day int) string {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(p.Sprintf("date.layout"))
}

// UserMessage returns the text shown to the user for err. Errors carrying a
// registered code are translated; anything else is shown as-is.
func UserMessage(p *message.Printer, err error) string {
	if err == nil {
		return ""
	}

	var lotteryErr *LotteryError
	if !errors.As(err, &lotteryErr) {
		return err.Error()
	}
	for _, known := range userFacingErrors {
		if known.Code == lotteryErr.Code {
			return p.Sprintf(string(lotteryErr.Code))
		}
	}
	return lotteryErr.Error()
}
