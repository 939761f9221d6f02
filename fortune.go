package lotto

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/message"
)

// FailureReason classifies why a fortune analysis produced no lucky numbers
type FailureReason int

const (
	// ReasonNone marks a successful analysis
	ReasonNone FailureReason = iota
	// ReasonInvalidFormat: the date is not exactly 8 digits
	ReasonInvalidFormat
	// ReasonUnsupportedYear: the birth year is outside the supported range
	ReasonUnsupportedYear
	// ReasonComputation: the converter produced no year or day pillar
	ReasonComputation
	// ReasonCollaborator: the converter failed in any other way
	ReasonCollaborator
)

func (r FailureReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonInvalidFormat:
		return "invalid_format"
	case ReasonUnsupportedYear:
		return "unsupported_year"
	case ReasonComputation:
		return "computation"
	case ReasonCollaborator:
		return "collaborator"
	default:
		return "unknown"
	}
}

// Fortune is the outcome of a successful analysis
type Fortune struct {
	Element       Element        `json:"element"`
	LuckyNumbers  []int          `json:"lucky_numbers"`
	Message       string         `json:"message"`
	Variant       FortuneVariant `json:"variant"`
	Tally         ElementTally   `json:"tally"`
	Birth         *GanjiTriple   `json:"birth"`
	Reference     *GanjiTriple   `json:"reference,omitempty"`
	ReferenceDate string         `json:"reference_date,omitempty"`
}

// FortuneResult is the never-failing form of an analysis. On failure
// LuckyNumbers is empty, Reason is set and Message explains the reason.
type FortuneResult struct {
	Element       Element       `json:"element,omitempty"`
	LuckyNumbers  []int         `json:"lucky_numbers"`
	Message       string        `json:"message"`
	Reason        FailureReason `json:"reason"`
	ReferenceDate string        `json:"reference_date,omitempty"`
}

// OK reports whether the analysis produced lucky numbers
func (r FortuneResult) OK() bool {
	return r.Reason == ReasonNone && len(r.LuckyNumbers) > 0
}

// FortuneMapper converts a birth date into a dominant element and its lucky numbers
type FortuneMapper struct {
	converter LunarConverter
	config    *FortuneConfig
	logger    Logger
	printer   *message.Printer
	location  *time.Location
	now       func() time.Time
}

// NewFortuneMapper creates a fortune mapper. A nil converter uses the
// SexagenaryConverter, a nil config the defaults.
func NewFortuneMapper(converter LunarConverter, config *FortuneConfig, logger Logger) *FortuneMapper {
	if converter == nil {
		converter = NewSexagenaryConverter()
	}
	if config == nil {
		config = DefaultFortuneConfig()
	}
	if logger == nil {
		logger = NewSilentLogger()
	}

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		logger.Error("NewFortuneMapper: unknown timezone %q, using UTC: %v", config.Timezone, err)
		location = time.UTC
	}

	return &FortuneMapper{
		converter: converter,
		config:    config,
		logger:    logger,
		printer:   NewPrinter(config.Language),
		location:  location,
		now:       time.Now,
	}
}

// SetClock replaces the clock used to resolve "today"
func (m *FortuneMapper) SetClock(now func() time.Time) {
	if now != nil {
		m.now = now
	}
}

// Printer returns the message printer used for results
func (m *FortuneMapper) Printer() *message.Printer { return m.printer }

// LuckyNumbersFromBirth analyzes dob (YYYYMMDD) and optionally a reference
// date (YYYYMMDD, default today). It never returns an error or panics: every
// failure yields an empty LuckyNumbers list and a human-readable message.
func (m *FortuneMapper) LuckyNumbersFromBirth(dob string, referenceDate ...string) (result FortuneResult) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("LuckyNumbersFromBirth recovered from converter panic: %v", r)
			result = FortuneResult{
				LuckyNumbers: []int{},
				Message:      m.printer.Sprintf("fortune.unexpected", fmt.Sprint(r)),
				Reason:       ReasonCollaborator,
			}
		}
	}()

	fortune, err := m.Analyze(dob, referenceDate...)
	if err != nil {
		reason, msg := m.describeFailure(err)
		return FortuneResult{
			LuckyNumbers: []int{},
			Message:      msg,
			Reason:       reason,
		}
	}

	return FortuneResult{
		Element:       fortune.Element,
		LuckyNumbers:  fortune.LuckyNumbers,
		Message:       fortune.Message,
		Reason:        ReasonNone,
		ReferenceDate: fortune.ReferenceDate,
	}
}

// Analyze is the error-returning form of LuckyNumbersFromBirth
func (m *FortuneMapper) Analyze(dob string, referenceDate ...string) (*Fortune, error) {
	m.logger.Debug("Analyze called with variant=%s", m.config.Variant)

	if !isDigits(dob, DateLength) {
		m.logger.Error("Analyze failed: malformed birth date %q", dob)
		return nil, ErrInvalidDateFormat
	}

	year, month, day := splitDate(dob)
	if year < m.config.MinYear || year > m.config.MaxYear {
		m.logger.Error("Analyze failed: birth year %d outside [%d, %d]", year, m.config.MinYear, m.config.MaxYear)
		return nil, ErrUnsupportedYear.WithDetails(fmt.Sprintf("year %d", year))
	}

	birth, err := m.convert(year, month, day, "birth")
	if err != nil {
		return nil, err
	}

	fortune := &Fortune{
		Variant: m.config.Variant,
		Tally:   NewElementTally(),
		Birth:   birth,
	}

	switch m.config.Variant {
	case VariantBasic:
		fortune.Tally.AddPillars(birth.Pillars(), 1)
	default:
		ref, err := m.resolveReferenceDate(referenceDate)
		if err != nil {
			return nil, err
		}
		refYear, refMonth, refDay := splitDate(ref)
		reference, err := m.convert(refYear, refMonth, refDay, "reference")
		if err != nil {
			return nil, err
		}

		fortune.Reference = reference
		fortune.ReferenceDate = ref
		fortune.Tally.AddPillars(birth.Pillars(), m.config.BirthWeight)
		fortune.Tally.AddPillars(reference.Pillars(), m.config.ReferenceWeight)
		fortune.Tally.ApplyCycleBonus(m.config.CycleBonus)
	}

	fortune.Element = fortune.Tally.Dominant()
	fortune.LuckyNumbers = fortune.Element.LuckyNumbers()
	fortune.Message = m.compose(fortune)

	m.logger.Info("Analyze successful: element=%s, luckyNumbers=%v", fortune.Element, fortune.LuckyNumbers)
	return fortune, nil
}

// convert calls the collaborator and checks the mandatory pillars
func (m *FortuneMapper) convert(year, month, day int, which string) (*GanjiTriple, error) {
	triple, err := m.converter.ToLunar(year, month, day)
	if err != nil {
		m.logger.Error("Analyze failed: %s date conversion error: %v", which, err)
		return nil, err
	}
	if triple == nil || triple.Year == nil || triple.Day == nil {
		m.logger.Error("Analyze failed: %s date has no year or day pillar", which)
		return nil, ErrGanjiUnavailable.WithOperation(which)
	}
	return triple, nil
}

func (m *FortuneMapper) resolveReferenceDate(referenceDate []string) (string, error) {
	if len(referenceDate) > 0 && referenceDate[0] != "" {
		ref := referenceDate[0]
		if !isDigits(ref, DateLength) {
			m.logger.Error("Analyze failed: malformed reference date %q", ref)
			return "", ErrInvalidDateFormat.WithOperation("reference")
		}
		return ref, nil
	}
	return m.now().In(m.location).Format(DateLayout), nil
}

func (m *FortuneMapper) compose(f *Fortune) string {
	p := m.printer
	msg := p.Sprintf("fortune.result", ElementName(p, f.Element), joinNumbers(f.LuckyNumbers))
	if f.Variant == VariantBasic {
		return msg
	}

	year, month, day := splitDate(f.ReferenceDate)
	msg += p.Sprintf("fortune.reference", FormatDate(p, year, month, day))
	if f.Birth.LeapMonth {
		msg += p.Sprintf("fortune.leap_month")
	}
	return msg
}

// describeFailure maps an analysis error to its reason and user message
func (m *FortuneMapper) describeFailure(err error) (FailureReason, string) {
	p := m.printer

	var lotteryErr *LotteryError
	if !errors.As(err, &lotteryErr) {
		return ReasonCollaborator, p.Sprintf("fortune.unexpected", err.Error())
	}

	switch lotteryErr.Code {
	case ErrCodeInvalidDateFormat:
		return ReasonInvalidFormat, UserMessage(p, err)
	case ErrCodeUnsupportedYear:
		return ReasonUnsupportedYear, UserMessage(p, err)
	case ErrCodeGanjiUnavailable:
		if lotteryErr.Operation == "reference" {
			return ReasonComputation, p.Sprintf("fortune.reference_unavailable")
		}
		return ReasonComputation, UserMessage(p, err)
	case ErrCodeUnsupportedDate, ErrCodeCircuitBreakerOpen:
		return ReasonCollaborator, UserMessage(p, err)
	default:
		return ReasonCollaborator, p.Sprintf("fortune.unexpected", lotteryErr.Error())
	}
}
