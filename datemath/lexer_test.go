package datemath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestParse_OffsetSegments(t *testing.T) {
	x, err := Parse("now-7d+6h/d")

	assert.NilError(t, err)
	want := []segment{
		{kind: segOffset, sign: -1, n: 7, unit: Day},
		{kind: segOffset, sign: 1, n: 6, unit: Hour},
		{kind: segRound, unit: Day},
	}
	assert.DeepEqual(t, x.segs, want, cmp.AllowUnexported(segment{}))
}

func TestParse_BareNow(t *testing.T) {
	x, err := Parse("now")

	assert.NilError(t, err)
	assert.Equal(t, len(x.segs), 0)
	assert.Equal(t, x.Zone(), "")
}

func TestParse_WeekAlias(t *testing.T) {
	upper, err := Parse("now+3W")
	assert.NilError(t, err)

	lower, err := Parse("now+3w")
	assert.NilError(t, err)

	assert.DeepEqual(t, upper.segs, lower.segs, cmp.AllowUnexported(segment{}))
	assert.Equal(t, upper.String(), "now+3w")
}

func TestParse_ZoneDesignator(t *testing.T) {
	x, err := Parse("now-7d/d'America/Chicago'")

	assert.NilError(t, err)
	assert.Equal(t, x.Zone(), "America/Chicago")
	assert.Equal(t, x.String(), "now-7d/d'America/Chicago'")
}

func TestParse_WhitespaceStripped(t *testing.T) {
	x, err := Parse(" now - 7d / d ")

	assert.NilError(t, err)
	assert.Equal(t, x.String(), "now-7d/d")
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := Parse("now+1Q")

	var pe *ParseError
	assert.Assert(t, errors.As(err, &pe))
	assert.Equal(t, pe.Pos(), 5)
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"wrong anchor", "today-7d"},
		{"anchor with garbage", "nowx"},
		{"unknown unit", "now+1Q"},
		{"sign without integer", "now+d"},
		{"dangling sign", "now-"},
		{"integer without unit", "now+12"},
		{"integer out of range", "now+99999999999999999999999999d"},
		{"second rounding segment", "now/d/M"},
		{"rounding without unit", "now/"},
		{"empty zone", "now''"},
		{"unterminated zone", "now'America/Chicago"},
		{"unknown zone", "now'Invalid/Zone'"},
		{"trailing after zone", "now'America/Chicago'x"},
		{"segment after zone", "now'America/Chicago'-1d"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.in)

			assert.Assert(t, err != nil, "input %q parsed", tc.in)
			assert.Assert(t, IsParseError(err), "input %q: %v", tc.in, err)
		})
	}
}

func TestMustParse_PanicsOnBadInput(t *testing.T) {
	defer func() {
		r := recover()
		assert.Assert(t, r != nil)
	}()

	MustParse("nowx")
}
