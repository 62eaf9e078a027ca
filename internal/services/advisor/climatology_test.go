package advisor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outdoor-advisor/internal/models"
)

func TestAdaptClimatology(t *testing.T) {
	reading := AdaptClimatology(loadClimatology(t), "20230611")

	require.NotNil(t, reading.TemperatureC)
	assert.Equal(t, 21.3, *reading.TemperatureC)
	require.NotNil(t, reading.WindSpeedMs)
	assert.Equal(t, 3.2, *reading.WindSpeedMs)
	require.NotNil(t, reading.PrecipitationMm)
	assert.Equal(t, 0.4, *reading.PrecipitationMm)

	// -999 is a fill value
	assert.Nil(t, reading.Sky.Clarity)
	assert.Empty(t, reading.Sky.Label)
}

func TestAdaptClimatology_MissingGroup(t *testing.T) {
	payload := loadClimatology(t)
	delete(payload.Properties.Parameter, models.ParamHumidity)

	detail := ClimatologyDetails(payload, "20230611")
	assert.Nil(t, detail.HumidityPct)

	require.NotNil(t, detail.AvgTempC)
	assert.Equal(t, 21.3, *detail.AvgTempC)
	require.NotNil(t, detail.MinTempC)
	assert.Equal(t, 14.9, *detail.MinTempC)
	require.NotNil(t, detail.MaxTempC)
	assert.Equal(t, 27.6, *detail.MaxTempC)
}

func TestAdaptClimatology_MissingDateKey(t *testing.T) {
	reading := AdaptClimatology(loadClimatology(t), "20230612")

	assert.Nil(t, reading.TemperatureC)
	assert.Nil(t, reading.WindSpeedMs)
	assert.Nil(t, reading.PrecipitationMm)
	assert.True(t, reading.Sky.IsZero())
}

func TestAdaptClimatology_InvalidPayload(t *testing.T) {
	var payload models.ClimatologyPayload
	require.NoError(t, json.Unmarshal([]byte(`{"messages": ["bad request"]}`), &payload))
	assert.False(t, payload.Valid())

	reading := AdaptClimatology(payload, "20230611")
	assert.Nil(t, reading.TemperatureC)
}

func TestClimatologyFields(t *testing.T) {
	fields := ClimatologyFields(ClimatologyDetails(loadClimatology(t), "20230611"))

	assert.Equal(t, []models.DisplayField{
		{Label: "Avg Temp", Value: "21.3 °C"},
		{Label: "Min Temp", Value: "14.9 °C"},
		{Label: "Max Temp", Value: "27.6 °C"},
		{Label: "Humidity", Value: "58.1%"},
		{Label: "Rainfall", Value: "0.4 mm of rain"},
		{Label: "Wind Speed", Value: "3.2 m/s"},
		{Label: "Sky Clarity", Value: "N/A"},
	}, fields)
}

func TestSkyIndicatorJSON(t *testing.T) {
	for _, tt := range []struct {
		sky  models.SkyIndicator
		want string
	}{
		{models.SkyLabel("clear"), `"clear"`},
		{models.SkyClarity(models.Float(0.62)), `0.62`},
		{models.SkyIndicator{}, `null`},
	} {
		b, err := json.Marshal(tt.sky)
		require.NoError(t, err)
		assert.JSONEq(t, tt.want, string(b))
	}
}
