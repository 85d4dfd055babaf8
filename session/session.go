// Package session holds the state an interactive calculator keeps around its
// expression core: the displayed result, a bounded evaluation history, the
// memory register, and the angle mode.
//
// A Session is not safe for concurrent use. It is meant to be driven by a
// single input loop.
package session

import (
	"errors"
	"math"
	"strconv"
	"strings"

	calculator "github.com/digitalwithgovinda/advanced-calculator"
)

// ErrEmpty is returned by Calculate for input that is empty or only
// whitespace. The session is unchanged.
var ErrEmpty = errors.New("empty expression")

// ErrorText is what Display shows after a failed evaluation.
const ErrorText = "Error"

// Session is the state of one calculator.
type Session struct {
	// Mode is the angle mode used for evaluations.
	Mode calculator.AngleMode
	// History holds successful evaluations, most recent first.
	History History
	// Memory is the memory register.
	Memory Memory

	result float64
	err    error
}

// New creates a session displaying 0.
func New(mode calculator.AngleMode) *Session {
	return &Session{Mode: mode}
}

// Calculate parses and evaluates src in the session's angle mode. Leading and
// trailing whitespace are removed first, and if nothing remains, the result
// is ErrEmpty and the session is unchanged. Otherwise the display shows the
// result or ErrorText, and successes are added to the history.
func (s *Session) Calculate(src string) (float64, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return 0, ErrEmpty
	}
	e, err := calculator.Parse(strings.NewReader(src))
	if err != nil {
		s.Fail(err)
		return 0, err
	}
	return s.Apply(src, e)
}

// Apply evaluates an already parsed expression whose source text is src,
// with the same effects as Calculate.
func (s *Session) Apply(src string, e *calculator.Expr) (float64, error) {
	v, err := e.Eval(s.Mode)
	if err != nil {
		s.Fail(err)
		return 0, err
	}
	s.show(v)
	s.History.Add(Entry{Expression: src, Value: v})
	return v, nil
}

// Fail shows ErrorText for err.
func (s *Session) Fail(err error) {
	s.result, s.err = 0, err
}

// Err returns the error from the last evaluation if the display shows
// ErrorText.
func (s *Session) Err() error {
	return s.err
}

// Display returns the text of the displayed result.
func (s *Session) Display() string {
	if s.err != nil {
		return ErrorText
	}
	return Format(s.result)
}

// Current returns the displayed result, or 0 if the display shows
// ErrorText. Memory operations act on this value.
func (s *Session) Current() float64 {
	if s.err != nil {
		return 0
	}
	return s.result
}

// Clear resets the display to 0.
func (s *Session) Clear() {
	s.show(0)
}

// ToggleAngle switches between degrees and radians and returns the new mode.
func (s *Session) ToggleAngle() calculator.AngleMode {
	s.Mode = s.Mode.Toggle()
	return s.Mode
}

// Recall returns the history entry at index i, 0 being the most recent, and
// displays its value.
func (s *Session) Recall(i int) (Entry, bool) {
	e, ok := s.History.At(i)
	if ok {
		s.show(e.Value)
	}
	return e, ok
}

// MemoryStore stores the displayed result in the memory register.
func (s *Session) MemoryStore() {
	s.Memory.Store(s.Current())
}

// MemoryAdd adds the displayed result to the memory register.
func (s *Session) MemoryAdd() {
	s.Memory.Add(s.Current())
}

// MemorySub subtracts the displayed result from the memory register.
func (s *Session) MemorySub() {
	s.Memory.Sub(s.Current())
}

// MemoryRecall returns the memory register formatted for insertion into an
// expression.
func (s *Session) MemoryRecall() string {
	return Format(s.Memory.Recall())
}

func (s *Session) show(v float64) {
	s.result, s.err = v, nil
}

// Format formats a result the way the calculator displays it: the shortest
// decimal that round-trips, switching to exponent form at or above 1e21 and
// below 1e-6, without padding in the exponent.
func Format(v float64) string {
	if v == 0 {
		// Includes -0.
		return "0"
	}
	if a := math.Abs(v); a < 1e21 && a >= 1e-6 || math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
