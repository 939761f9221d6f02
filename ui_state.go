package lotto

import (
	"slices"

	"golang.org/x/text/message"
)

// UIState is the view state of the recommendation screen. It is a value:
// reducers return an updated copy and never modify the receiver.
type UIState struct {
	Mode       Mode
	Name       string
	BirthDate  string
	FixedInput string
	Sets       []LottoSet
	Error      string
	Info       string // fortune analysis message, shown only without an error
}

// NewUIState returns the initial state for the given mode
func NewUIState(mode Mode) UIState {
	return UIState{Mode: mode}
}

// SwitchMode selects another mode and clears inputs, results and messages
func (s UIState) SwitchMode(mode Mode) UIState {
	return UIState{Mode: mode}
}

// SetName updates the fortune-mode name input
func (s UIState) SetName(name string) UIState {
	s.Name = name
	return s
}

// SetBirthDate updates the fortune-mode date of birth input
func (s UIState) SetBirthDate(dob string) UIState {
	s.BirthDate = dob
	return s
}

// SetFixedInput updates the manual-mode numbers input
func (s UIState) SetFixedInput(input string) UIState {
	s.FixedInput = input
	return s
}

// Request builds the recommendation request for the current inputs
func (s UIState) Request() *Request {
	req := &Request{Mode: s.Mode}
	switch s.Mode {
	case ModeFortune:
		req.Name = s.Name
		req.BirthDate = s.BirthDate
	case ModeManual:
		req.FixedInput = s.FixedInput
	}
	return req
}

// ApplyResult stores the outcome of a recommendation. An error replaces the
// sets and the info message; a batch clears any previous error.
func (s UIState) ApplyResult(batch *Batch, err error, p *message.Printer) UIState {
	if err != nil || batch == nil {
		if err == nil {
			err = ErrSystemError
		}
		s.Sets = nil
		s.Info = ""
		s.Error = UserMessage(p, err)
		return s
	}

	s.Error = ""
	s.Info = batch.Message
	s.Sets = make([]LottoSet, len(batch.Sets))
	for i, set := range batch.Sets {
		s.Sets[i] = slices.Clone(set)
	}
	return s
}

// HasResult reports whether there are sets to show
func (s UIState) HasResult() bool { return len(s.Sets) > 0 }

// SetLabel returns the localized heading of the i-th set, counted from zero
func SetLabel(p *message.Printer, i int) string {
	return p.Sprintf("set.label", i+1)
}

// BallColor returns the display color of a number, one per band of ten
func BallColor(n int) string {
	switch {
	case n <= 10:
		return "#899f6a"
	case n <= 20:
		return "#7391c9"
	case n <= 30:
		return "#a793b9"
	case n <= 40:
		return "#a47764"
	default:
		return "#9a8b4e"
	}
}
