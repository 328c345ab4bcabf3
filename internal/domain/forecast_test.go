package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	d1 = time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
	d2 = time.Date(2024, 9, 11, 0, 0, 0, 0, time.UTC)
)

func TestBuildForecastDays_JoinsByPosition(t *testing.T) {
	temperature := []Sample{{Date: d1, Value: 70}, {Date: d2, Value: 75}}
	symbol := []Sample{{Date: d1, Value: 1}, {Date: d2, Value: 5}}

	days := BuildForecastDays(temperature, symbol)
	require.Len(t, days, 2)

	assert.Equal(t, d1, days[0].Date)
	assert.Equal(t, 70.0, days[0].Temperature)
	assert.Equal(t, "Clear sky", days[0].Symbol.Description)
	assert.Equal(t, "☀️", days[0].Symbol.Icon)

	assert.Equal(t, d2, days[1].Date)
	assert.Equal(t, 75.0, days[1].Temperature)
	assert.Equal(t, "Rain", days[1].Symbol.Description)
	assert.Equal(t, "🌧", days[1].Symbol.Icon)
}

func TestBuildForecastDays_TruncatesValueToCode(t *testing.T) {
	temperature := []Sample{{Date: d1, Value: 68}}
	symbol := []Sample{{Date: d1, Value: 5.9}}

	days := BuildForecastDays(temperature, symbol)
	require.Len(t, days, 1)
	assert.Equal(t, "Rain", days[0].Symbol.Description)
}

func TestBuildForecastDays_ClampsToShorterSeries(t *testing.T) {
	temperature := []Sample{{Date: d1, Value: 70}, {Date: d2, Value: 75}}
	symbol := []Sample{{Date: d1, Value: 1}}

	days := BuildForecastDays(temperature, symbol)
	require.Len(t, days, 1)
	assert.Equal(t, d1, days[0].Date)
}

func TestBuildForecastDays_Empty(t *testing.T) {
	assert.Empty(t, BuildForecastDays(nil, nil))
	assert.Empty(t, BuildForecastDays([]Sample{{Date: d1, Value: 70}}, nil))
}

func TestMeasurement_Display(t *testing.T) {
	ok := Measurement{Value: 72.5}
	assert.True(t, ok.OK())
	assert.Equal(t, "72.5", ok.Display(ParamTemperature))

	failed := Measurement{Err: errors.New("status 500")}
	assert.False(t, failed.OK())
	assert.Equal(t, "Error fetching temperature: status 500", failed.Display(ParamTemperature))
}

func TestMeasurement_MarshalJSON(t *testing.T) {
	ok, err := Measurement{Value: 72.5}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "72.5", string(ok))

	failed, err := Measurement{Err: errors.New("timeout")}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"timeout"`, string(failed))
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{Lat: 33.4473, Lon: -84.1469}
	assert.Equal(t, "33.4473,-84.1469", c.String())
}
