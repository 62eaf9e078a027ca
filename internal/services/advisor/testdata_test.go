package advisor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"outdoor-advisor/internal/models"
)

const forecastJSON = `{
	"cod": "200",
	"message": 0,
	"cnt": 5,
	"list": [
		{"dt": 1718226000, "dt_txt": "2024-06-12 21:00:00", "main": {"temp": 17.1, "temp_min": 16.8, "temp_max": 17.1, "humidity": 71}, "weather": [{"main": "Clouds", "description": "broken clouds"}], "wind": {"speed": 2.4}},
		{"dt": 1718236800, "dt_txt": "2024-06-13 00:00:00", "main": {"temp": 20.4, "temp_min": 19.9, "temp_max": 20.4, "humidity": 60}, "weather": [{"main": "Clear", "description": "clear sky"}], "wind": {"speed": 2.0}},
		{"dt": 1718247600, "dt_txt": "2024-06-13 03:00:00", "main": {"temp": 18.2, "temp_min": 18.2, "temp_max": 18.2, "humidity": 66}, "weather": [{"main": "Rain", "description": "light rain"}], "wind": {"speed": 5.5}, "rain": {"3h": 1.2}},
		{"dt": 1718258400, "dt_txt": "2024-06-13 06:00:00", "main": {"temp": 19.0, "temp_min": 19.0, "temp_max": 19.0, "humidity": 64}, "weather": [{"main": "Clouds", "description": "few clouds"}], "wind": {"speed": 3.1}},
		{"dt": 1718269200, "dt_txt": "2024-06-14 09:00:00", "main": {"temp": 26.0, "temp_min": 26.0, "temp_max": 26.0, "humidity": 40}, "weather": [{"main": "Clear", "description": "clear sky"}], "wind": {"speed": 1.0}}
	]
}`

const climatologyJSON = `{
	"type": "Feature",
	"properties": {
		"parameter": {
			"T2M": {"20230611": 21.3},
			"T2M_MIN": {"20230611": 14.9},
			"T2M_MAX": {"20230611": 27.6},
			"PRECTOTCORR": {"20230611": 0.4},
			"WS10M": {"20230611": 3.2},
			"RH2M": {"20230611": 58.1},
			"ALLSKY_KT": {"20230611": -999}
		}
	}
}`

func loadForecast(t *testing.T) models.ForecastPayload {
	t.Helper()
	var p models.ForecastPayload
	require.NoError(t, json.Unmarshal([]byte(forecastJSON), &p))
	return p
}

func loadClimatology(t *testing.T) models.ClimatologyPayload {
	t.Helper()
	var p models.ClimatologyPayload
	require.NoError(t, json.Unmarshal([]byte(climatologyJSON), &p))
	return p
}
