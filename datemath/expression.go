package datemath

import (
	"fmt"
	"math"
	"time"

	"github.com/uberbrodt/fungo/fun"

	"github.com/uberbrodt/datemath-go/chronos"
)

// Expression is a parsed shorthand string. The zero value is not useful;
// obtain one from [Parse] or [MustParse]. Expressions are immutable and safe
// for concurrent use.
type Expression struct {
	raw  string
	segs []segment
	zone string // embedded 'IANA/Name' designator, "" if absent
}

// Zone returns the embedded timezone designator, or "" if the expression
// does not carry one.
func (x Expression) Zone() string { return x.zone }

// String reconstructs the canonical shorthand text, normalizing the week
// alias 'W' to 'w' and dropping any whitespace the input carried.
func (x Expression) String() string {
	s := anchor
	if len(x.segs) > 0 {
		s = fun.Reduce(x.segs, anchor, func(seg segment, acc string) string {
			if seg.kind == segRound {
				return fmt.Sprintf("%s/%c", acc, byte(seg.unit))
			}
			sign := byte('+')
			if seg.sign < 0 {
				sign = '-'
			}
			return fmt.Sprintf("%s%c%d%c", acc, sign, seg.n, byte(seg.unit))
		})
	}
	if x.zone != "" {
		s += "'" + x.zone + "'"
	}
	return s
}

// Eval resolves the expression to an absolute timestamp.
//
// The anchor is the option-supplied instant ([WithNow] or [WithClock]) or
// the system clock, expressed in the resolved zone before any arithmetic.
// Zone precedence: [WithLocation] beats an embedded designator beats UTC.
// Segments are then applied strictly in textual order.
func (x Expression) Eval(opts ...Option) (time.Time, error) {
	o := buildOptions(opts)

	loc := time.UTC
	if x.zone != "" {
		l, err := chronos.Zone(x.zone)
		if err != nil {
			return time.Time{}, newEvalError(x.raw, "%v", err)
		}
		loc = l
	}
	if o.loc != nil {
		loc = o.loc
	}

	var t time.Time
	if o.hasNow {
		t = o.now
	} else {
		t = o.clock.Now()
	}
	t = t.In(loc)

	for _, seg := range x.segs {
		switch seg.kind {
		case segOffset:
			out, err := x.apply(t, seg)
			if err != nil {
				return time.Time{}, err
			}
			t = out
		case segRound:
			if o.roundUp {
				t = roundUp(t, seg.unit, o.weekStart)
			} else {
				t = roundDown(t, seg.unit, o.weekStart)
			}
		}
	}
	return t, nil
}

// maxCalendarSteps bounds day/week/month/year magnitudes. Anything past it
// is far outside any sane schedule and risks wrapping int arithmetic inside
// the calendar math.
const maxCalendarSteps = math.MaxInt32

var unitDuration = map[Unit]time.Duration{
	Second: time.Second,
	Minute: time.Minute,
	Hour:   time.Hour,
}

func (x Expression) apply(t time.Time, seg segment) (time.Time, error) {
	n := seg.n
	if seg.sign < 0 {
		n = -n
	}

	var out time.Time
	switch seg.unit {
	case Second, Minute, Hour:
		d := unitDuration[seg.unit]
		if n > math.MaxInt64/int64(d) || n < math.MinInt64/int64(d) {
			return time.Time{}, x.overflow(seg)
		}
		out = t.Add(time.Duration(n) * d)
	case Day:
		if n > maxCalendarSteps || n < -maxCalendarSteps {
			return time.Time{}, x.overflow(seg)
		}
		out = t.AddDate(0, 0, int(n))
	case Week:
		if n > maxCalendarSteps/7 || n < -maxCalendarSteps/7 {
			return time.Time{}, x.overflow(seg)
		}
		out = t.AddDate(0, 0, int(n)*7)
	case Month:
		if n > maxCalendarSteps || n < -maxCalendarSteps {
			return time.Time{}, x.overflow(seg)
		}
		var err error
		out, err = addMonths(t, n)
		if err != nil {
			return time.Time{}, x.overflow(seg)
		}
	case Year:
		if n > maxCalendarSteps/12 || n < -maxCalendarSteps/12 {
			return time.Time{}, x.overflow(seg)
		}
		var err error
		out, err = addMonths(t, n*12)
		if err != nil {
			return time.Time{}, x.overflow(seg)
		}
	}

	// backstop: an offset must never move time the wrong way
	if (n > 0 && out.Before(t)) || (n < 0 && out.After(t)) {
		return time.Time{}, x.overflow(seg)
	}
	return out, nil
}

func (x Expression) overflow(seg segment) *EvaluationError {
	n := seg.n
	if seg.sign < 0 {
		n = -n
	}
	return newEvalError(x.raw, "offset of %d %ss overflows", n, seg.unit)
}

var errYearOutOfRange = fmt.Errorf("year out of range")

// addMonths shifts t by whole calendar months, clipping the day-of-month to
// the last valid day of the target month (Jan 31 + 1 month is the last day
// of February, never March 2).
func addMonths(t time.Time, months int64) (time.Time, error) {
	m := int64(t.Month()) - 1 + months
	y := int64(t.Year()) + floorDiv(m, 12)
	m = floorMod(m, 12)
	if y < math.MinInt32 || y > math.MaxInt32 {
		return time.Time{}, errYearOutOfRange
	}

	day := t.Day()
	if last := daysIn(int(y), time.Month(m+1)); day > last {
		day = last
	}
	return time.Date(int(y), time.Month(m+1), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), nil
}

// daysIn is the number of days in the given month. Day 0 of the next month
// normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// roundDown truncates t to the start of the named calendar period in t's
// zone. Weeks start on weekStart (Monday unless [WithStartOfWeek] says
// otherwise).
func roundDown(t time.Time, u Unit, weekStart time.Weekday) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch u {
	case Second:
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
	case Minute:
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
	case Hour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc)
	case Day:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case Week:
		back := (int(t.Weekday()) - int(weekStart) + 7) % 7
		return time.Date(y, m, d-back, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case Year:
		return time.Date(y, 1, 1, 0, 0, 0, 0, loc)
	}
	return t
}

// roundUp truncates t to the end of the named calendar period: the last
// representable instant before the next period starts.
func roundUp(t time.Time, u Unit, weekStart time.Weekday) time.Time {
	start := roundDown(t, u, weekStart)
	var next time.Time
	switch u {
	case Second:
		next = start.Add(time.Second)
	case Minute:
		next = start.Add(time.Minute)
	case Hour:
		next = start.Add(time.Hour)
	case Day:
		next = start.AddDate(0, 0, 1)
	case Week:
		next = start.AddDate(0, 0, 7)
	case Month:
		next = start.AddDate(0, 1, 0)
	case Year:
		next = start.AddDate(1, 0, 0)
	default:
		return t
	}
	return next.Add(-time.Nanosecond)
}
