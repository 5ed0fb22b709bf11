package datemath

import "time"

type evalOpts struct {
	loc       *time.Location
	now       time.Time
	hasNow    bool
	clock     Clock
	weekStart time.Weekday
	roundUp   bool
}

func buildOptions(opts []Option) evalOpts {
	o := evalOpts{clock: systemClock{}, weekStart: time.Monday}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option adjusts a single Eval call. Options never mutate the Expression.
type Option func(*evalOpts)

// WithLocation pins the timezone the result is expressed in. It takes
// precedence over an embedded 'IANA/Name' designator. Resolve names with
// [chronos.Zone].
func WithLocation(loc *time.Location) Option {
	return func(o *evalOpts) {
		o.loc = loc
	}
}

// WithNow pins the anchor instant instead of reading a clock, making the
// evaluation deterministic.
func WithNow(now time.Time) Option {
	return func(o *evalOpts) {
		o.now = now
		o.hasNow = true
	}
}

// WithClock supplies the clock the anchor is read from. Ignored when
// [WithNow] is also given.
func WithClock(c Clock) Option {
	return func(o *evalOpts) {
		o.clock = c
	}
}

// WithStartOfWeek changes the weekday that "/w" rounds back to. The default
// is Monday, per ISO-8601.
func WithStartOfWeek(d time.Weekday) Option {
	return func(o *evalOpts) {
		o.weekStart = d
	}
}

// WithRoundUp makes rounding segments truncate to the end of the period
// (the instant 1ns before the next period) instead of the start. Use for
// the closing edge of a time range, eg "now/d" as "end of today".
func WithRoundUp() Option {
	return func(o *evalOpts) {
		o.roundUp = true
	}
}
