package datemath

import (
	"slices"
	"time"
)

// Range is a pair of shorthand boundaries, the shape a dashboard time picker
// produces. From is rounded down and To is rounded up, so
// Range{From: "now/d", To: "now/d"} spans the whole current day.
type Range struct {
	From string
	To   string
}

// Eval resolves both boundaries with the same options. [WithRoundUp] is
// forced on the To side.
func (r Range) Eval(opts ...Option) (from, to time.Time, err error) {
	from, err = Eval(r.From, opts...)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err = Eval(r.To, append(slices.Clone(opts), WithRoundUp())...)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
