package datemath

import "time"

//go:generate mockgen -destination ./internal/mock/clock.go -package mock . Clock

// Clock supplies the anchor instant when the caller does not pin one with
// [WithNow].
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
