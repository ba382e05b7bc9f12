package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-30")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.March, Day: 30}, d)
	assert.Equal(t, "2025-03-30", d.String())

	_, err = ParseDate("30/03/2025")
	assert.ErrorIs(t, err, ErrInvalidCivilTime)

	_, err = ParseDate("2025-13-01")
	assert.ErrorIs(t, err, ErrInvalidCivilTime)
}

func TestParseTime(t *testing.T) {
	tod, err := ParseTime("09:05")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 5}, tod)
	assert.Equal(t, "09:05", tod.String())

	_, err = ParseTime("9am")
	assert.ErrorIs(t, err, ErrInvalidCivilTime)

	_, err = ParseTime("25:00")
	assert.ErrorIs(t, err, ErrInvalidCivilTime)
}

func TestLoadZone(t *testing.T) {
	loc, err := LoadZone("Europe/Rome")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Rome", loc.String())

	_, err = LoadZone("Mars/Olympus")
	assert.ErrorIs(t, err, ErrInvalidTimeZone)
}

func TestLocalInstantRoundTrip(t *testing.T) {
	loc, err := LoadZone("Europe/Rome")
	require.NoError(t, err)

	d := Date{Year: 2025, Month: time.July, Day: 15}
	tod := TimeOfDay{Hour: 9, Minute: 30}

	instant := d.In(tod, loc)
	assert.Equal(t, d, DateOf(instant, loc))
	assert.Equal(t, tod, TimeOf(instant, loc))
}

func TestInHandlesDSTOffset(t *testing.T) {
	loc, err := LoadZone("Europe/Rome")
	require.NoError(t, err)

	// CET (winter, +1) vs CEST (summer, +2): same wall-clock time maps to
	// different instants.
	winter := Date{Year: 2025, Month: time.January, Day: 15}.In(TimeOfDay{Hour: 9}, loc)
	summer := Date{Year: 2025, Month: time.July, Day: 15}.In(TimeOfDay{Hour: 9}, loc)

	assert.Equal(t, 8, winter.UTC().Hour())
	assert.Equal(t, 7, summer.UTC().Hour())
}

func TestDayOfWeek(t *testing.T) {
	loc, err := LoadZone("Europe/Rome")
	require.NoError(t, err)

	// 2025-03-30 is the CEST transition Sunday in Rome.
	assert.Equal(t, 0, Date{Year: 2025, Month: time.March, Day: 30}.DayOfWeek(loc))
	assert.Equal(t, 2, Date{Year: 2025, Month: time.April, Day: 1}.DayOfWeek(loc))
	assert.Equal(t, 6, Date{Year: 2025, Month: time.April, Day: 5}.DayOfWeek(loc))

	// Pacific/Kiritimati (+14) against a western zone date: midday keeps the
	// weekday stable regardless of offset.
	kir, err := LoadZone("Pacific/Kiritimati")
	require.NoError(t, err)
	assert.Equal(t, 2, Date{Year: 2025, Month: time.April, Day: 1}.DayOfWeek(kir))
}
