package datemath_test

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/uberbrodt/datemath-go/datemath"
)

func TestExpression_StringRoundTrips(t *testing.T) {
	for _, expr := range []string{
		"now",
		"now'Asia/Tokyo'",
		"now-7d",
		"now-7d/d",
		"now-1M+1w/d",
		"now+30s'America/Chicago'",
		"now/y'Asia/Tokyo'",
	} {
		x, err := datemath.Parse(expr)

		assert.NilError(t, err)
		assert.Equal(t, x.String(), expr)
	}
}

func TestExpression_Reuse(t *testing.T) {
	x := datemath.MustParse("now-1d/d")

	first, err := x.Eval(datemath.WithNow(anchor))
	assert.NilError(t, err)
	assert.DeepEqual(t, first, time.Date(2023, time.October, 24, 0, 0, 0, 0, time.UTC))

	second, err := x.Eval(datemath.WithNow(anchor.AddDate(0, 0, 1)))
	assert.NilError(t, err)
	assert.DeepEqual(t, second, time.Date(2023, time.October, 25, 0, 0, 0, 0, time.UTC))
}

func TestExpression_OrderMatters(t *testing.T) {
	roundFirst, err := datemath.Eval("now/d-1h", datemath.WithNow(anchor))
	assert.NilError(t, err)

	roundLast, err := datemath.Eval("now-1h/d", datemath.WithNow(anchor))
	assert.NilError(t, err)

	assert.DeepEqual(t, roundFirst, time.Date(2023, time.October, 24, 23, 0, 0, 0, time.UTC))
	assert.DeepEqual(t, roundLast, time.Date(2023, time.October, 25, 0, 0, 0, 0, time.UTC))
}
