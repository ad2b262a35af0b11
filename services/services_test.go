package services

import (
	"testing"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	var zero Location
	assert.True(t, zero.IsZero())

	addr := LocationFromAddress("Lyon, France")
	assert.False(t, addr.IsZero())
	assert.Equal(t, "Lyon, France", addr.String())
	assert.Nil(t, addr.Coordinate())

	c := base.NewCoordinate(45.5, 4.25)
	coord := LocationFromCoordinate(c)
	assert.Same(t, c, coord.Coordinate())
	assert.Equal(t, "45.5,4.25", coord.String())

	assert.True(t, LocationFromCoordinate(nil).IsZero())
}

func TestLocale(t *testing.T) {
	var l Locale
	assert.False(t, l.HasRegion())
	assert.False(t, l.HasLanguage())

	require.NoError(t, l.SetRegion("fr"))
	assert.Equal(t, "fr", l.Region())
	assert.ErrorIs(t, l.SetRegion("fra"), gmerrors.ErrService)
	assert.Equal(t, "fr", l.Region())
	require.NoError(t, l.SetRegion(""))
	assert.False(t, l.HasRegion())

	for _, lang := range []string{"en", "pt-BR"} {
		require.NoError(t, l.SetLanguage(lang))
		assert.Equal(t, lang, l.Language())
	}
	for _, lang := range []string{"e", "eng", "en_GB_x"} {
		assert.ErrorIs(t, l.SetLanguage(lang), gmerrors.ErrValidation, lang)
	}
}

func TestRouteOptions(t *testing.T) {
	var o RouteOptions
	assert.False(t, o.HasAvoidHighways())
	assert.False(t, o.AvoidHighways())

	o.SetAvoidHighways(false)
	assert.True(t, o.HasAvoidHighways())
	assert.False(t, o.AvoidHighways())

	o.SetAvoidTolls(true)
	assert.True(t, o.AvoidTolls())

	require.NoError(t, o.SetTravelMode(TravelModeWalking))
	assert.Equal(t, TravelModeWalking, o.TravelMode())
	assert.ErrorIs(t, o.SetTravelMode("FLYING"), gmerrors.ErrService)

	require.NoError(t, o.SetUnitSystem(UnitSystemImperial))
	assert.ErrorIs(t, o.SetUnitSystem("NAUTICAL"), gmerrors.ErrService)
	assert.Equal(t, UnitSystemImperial, o.UnitSystem())

	o.SetSensor(true)
	assert.True(t, o.HasSensor())
}
