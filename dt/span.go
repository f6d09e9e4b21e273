package dt

import (
	"strconv"
	"strings"

	"github.com/tychoish/chain/ers"
)

// Span describes a range of positions in a list, in the form
// start:stop:step. Each component is optional: start defaults to
// the beginning of the list, stop to its end, and step to 1.
//
// Negative starts and stops count from the end of the list. A start
// that remains negative after adjustment is clamped to zero; a stop
// that remains negative selects nothing. Spans with a step that is
// zero or negative are rejected with ErrInvalidStep.
type Span struct {
	Start Optional[int]
	Stop  Optional[int]
	Step  Optional[int]
}

// Full returns a span that covers the entire list.
func Full() Span { return Span{} }

// Range returns a span covering [start, stop).
func Range(start, stop int) Span { return Full().WithStart(start).WithStop(stop) }

// From returns a span from start to the end of the list.
func From(start int) Span { return Full().WithStart(start) }

// To returns a span from the beginning of the list to stop.
func To(stop int) Span { return Full().WithStop(stop) }

func (s Span) WithStart(v int) Span { s.Start = s.Start.Set(v); return s }
func (s Span) WithStop(v int) Span  { s.Stop = s.Stop.Set(v); return s }
func (s Span) WithStep(v int) Span  { s.Step = s.Step.Set(v); return s }

// ParseSpan reads a span in the start:stop:step form (e.g. "1:4",
// "::2", "-3:"). At least one colon is required so that a span is
// never confused with a single index.
func ParseSpan(in string) (Span, error) {
	var s Span
	if err := s.UnmarshalText([]byte(in)); err != nil {
		return Span{}, err
	}
	return s, nil
}

// String renders the span in brackets, as in "[1:4]".
func (s Span) String() string { return "[" + s.text() + "]" }

// MarshalText renders the span in the form accepted by ParseSpan.
func (s Span) MarshalText() ([]byte, error) { return []byte(s.text()), nil }

// UnmarshalText parses the start:stop:step form, replacing all
// components of the span.
func (s *Span) UnmarshalText(in []byte) error {
	parts := strings.Split(strings.TrimSpace(string(in)), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ers.Wrapf(ers.ErrInvalidInput, "span %q must have the form start:stop[:step]", in)
	}

	var out Span
	for idx, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		val, err := strconv.Atoi(part)
		if err != nil {
			return ers.Wrapf(ers.Join(ers.ErrInvalidInput, err), "span %q", in)
		}

		switch idx {
		case 0:
			out = out.WithStart(val)
		case 1:
			out = out.WithStop(val)
		case 2:
			out = out.WithStep(val)
		}
	}

	*s = out
	return nil
}

func (s Span) text() string {
	out := s.Start.String() + ":" + s.Stop.String()
	if s.Step.OK() {
		out += ":" + s.Step.String()
	}
	return out
}

// bounds normalizes the span against a list of length n, producing
// the half-open range [start, stop) and a positive step.
func (s Span) bounds(n int) (start, stop, step int, err error) {
	start = s.Start.Or(0)
	stop = s.Stop.Or(n)
	step = s.Step.Or(1)

	if start < 0 {
		start = max(start+n, 0)
	}

	if stop < 0 {
		stop += n
	}

	switch {
	case step == 0:
		return 0, 0, 0, ers.Wrapf(ErrInvalidStep, "span %s cannot have a step of zero", s)
	case step < 0:
		return 0, 0, 0, ers.Wrapf(ErrInvalidStep, "span %s has negative step %d", s, step)
	}

	return start, min(stop, n), step, nil
}

// selects reports whether the position idx is one of the positions a
// normalized span lands on. Callers stop before reaching stop.
func selects(idx, start, step int) bool { return idx >= start && (idx-start)%step == 0 }
