package advisor

import (
	"outdoor-advisor/internal/models"
)

// AdaptClimatology builds a reading for dateKey from a POWER payload. A
// missing parameter group, a missing date key and a fill value all give a
// nil field; this never fails.
func AdaptClimatology(payload models.ClimatologyPayload, dateKey string) models.WeatherReading {
	return models.WeatherReading{
		TemperatureC:    CleanValue(payload.Value(models.ParamTemperature, dateKey)),
		WindSpeedMs:     CleanValue(payload.Value(models.ParamWindSpeed, dateKey)),
		PrecipitationMm: CleanValue(payload.Value(models.ParamPrecipitation, dateKey)),
		Sky:             models.SkyClarity(CleanValue(payload.Value(models.ParamSkyClarity, dateKey))),
	}
}

// ClimatologyDetails extracts every displayed field for dateKey.
func ClimatologyDetails(payload models.ClimatologyPayload, dateKey string) models.ClimatologyDetail {
	return models.ClimatologyDetail{
		AvgTempC:        CleanValue(payload.Value(models.ParamTemperature, dateKey)),
		MinTempC:        CleanValue(payload.Value(models.ParamTemperatureMin, dateKey)),
		MaxTempC:        CleanValue(payload.Value(models.ParamTemperatureMax, dateKey)),
		HumidityPct:     CleanValue(payload.Value(models.ParamHumidity, dateKey)),
		PrecipitationMm: CleanValue(payload.Value(models.ParamPrecipitation, dateKey)),
		WindSpeedMs:     CleanValue(payload.Value(models.ParamWindSpeed, dateKey)),
		SkyClarity:      CleanValue(payload.Value(models.ParamSkyClarity, dateKey)),
	}
}
