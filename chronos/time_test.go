package chronos

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestZone_Defaults(t *testing.T) {
	loc, err := Zone("")
	assert.NilError(t, err)
	assert.Equal(t, loc, time.UTC)

	loc, err = Zone("UTC")
	assert.NilError(t, err)
	assert.Equal(t, loc, time.UTC)

	loc, err = Zone("LOCAL")
	assert.NilError(t, err)
	assert.Equal(t, loc, time.Local)
}

func TestZone_IANAName(t *testing.T) {
	loc, err := Zone("America/Chicago")

	assert.NilError(t, err)
	assert.Equal(t, loc.String(), "America/Chicago")
}

func TestZone_UnknownName(t *testing.T) {
	_, err := Zone("Invalid/Zone")

	assert.ErrorContains(t, err, "Invalid/Zone")
}

func TestNow_UnknownNameFallsBackToUTC(t *testing.T) {
	got := Now("Invalid/Zone")

	assert.Equal(t, got.Location(), time.UTC)
}

func TestIn(t *testing.T) {
	utc := time.Date(2023, time.October, 25, 12, 0, 0, 0, time.UTC)

	got := In(utc, "America/Chicago")

	assert.Equal(t, got.Location().String(), "America/Chicago")
	assert.Assert(t, got.Equal(utc))
}

func TestDur(t *testing.T) {
	assert.Equal(t, Dur("500ms"), 500*time.Millisecond)
}

func TestDur_PanicsOnBadInput(t *testing.T) {
	defer func() {
		r := recover()
		assert.Assert(t, r != nil)
	}()

	Dur("bogus")
}
