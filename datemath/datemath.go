/*
Package datemath evaluates relative date-time shorthand strings like
"now-7d/d" into absolute, timezone-aware timestamps. The syntax is the date
math dialect popularized by search-engine query languages: an anchor, a chain
of signed calendar offsets, an optional rounding step, and an optional
timezone.

# Syntax

	shorthand      := "now" segment* timezoneSuffix?
	segment        := ("+" | "-") integer unit
	                | "/" unit
	timezoneSuffix := "'" ianaZoneName "'"

Units are single characters and case is significant:

	s  seconds    m  minutes    h  hours
	d  days       w  weeks ('W' accepted as an alias)
	M  months     y  years

Segments are applied to the anchor strictly left to right, so "now-1M+1w/d"
subtracts a month, adds a week and then truncates to the start of that day.
At most one "/" rounding segment may appear. Whitespace is ignored.

# Semantics

Month and year offsets are calendar-aware: the result lands on the same
day-of-month, clipped to the last valid day when the target month is shorter
(Jan 31 + 1 month is Feb 28, or Feb 29 in a leap year). Day and week offsets
move whole calendar days, and hours, minutes and seconds are fixed
durations.

Rounding truncates to the start of the period in the instant's timezone;
weeks start on Monday unless [WithStartOfWeek] says otherwise, and
[WithRoundUp] flips truncation to the end of the period for range upper
bounds.

The timezone is resolved before any arithmetic: an explicit [WithLocation]
wins over an embedded designator, which wins over the UTC default.

# Usage

	t, err := datemath.Eval("now-7d/d")

	x := datemath.MustParse("now-1M/M'America/Chicago'")
	t, err := x.Eval(datemath.WithNow(anchor))

Everything here is pure and stateless; expressions and all package functions
are safe for concurrent use.
*/
package datemath

import "time"

// Parse tokenizes a shorthand string without evaluating it. Use it to
// validate expressions once at config-load time and [Expression.Eval] them
// repeatedly.
func Parse(s string) (Expression, error) {
	return lex(stripSpace(s))
}

// MustParse is [Parse] but panics on a malformed expression. For
// package-level constants and tests.
func MustParse(s string) Expression {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// Eval parses and evaluates a shorthand string in one call.
func Eval(s string, opts ...Option) (time.Time, error) {
	x, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return x.Eval(opts...)
}
