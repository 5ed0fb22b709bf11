package chronos

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Zone resolves [tz] to a [time.Location].
//
// If [tz] is "" or "UTC", returns UTC. If [tz] is "LOCAL", returns the
// process-local zone.
//
// Otherwise, [tz] can be any valid IANA timezone db file name.
// eg: "America/Chicago". Unknown names are an error. The tzdata embed means
// lookups do not depend on a host timezone database.
func Zone(tz string) (*time.Location, error) {
	switch tz {
	case "", "UTC":
		return time.UTC, nil
	case "LOCAL":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Returns current time, if [tz] is "" or "UTC", then returns as UTC
// If [tz] is "LOCAL", returns [time.Time] in current local time
//
// Otherwise, [tz] can be any valid IANA timezone db file name.
// eg: "America/Chicago". Unknown names fall back to UTC; use [Zone] when the
// name has to be validated.
func Now(tz string) time.Time {
	loc, err := Zone(tz)
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}

func Dur(s string) time.Duration {
	t, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Converts [tz] to a timezone
func In(t time.Time, tz string) time.Time {
	loc, err := Zone(tz)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc)
}
