package advisor

import (
	"strings"

	"outdoor-advisor/internal/models"
)

// MatchingSlots returns every forecast slot whose dt_txt falls on the day
// identified by key (YYYY-MM-DD), in payload order.
func MatchingSlots(payload models.ForecastPayload, key string) []models.ForecastSlot {
	var slots []models.ForecastSlot
	for _, slot := range payload.List {
		if strings.HasPrefix(slot.DtTxt, key) {
			slots = append(slots, slot)
		}
	}
	return slots
}

// AdaptForecast builds a reading from the first slot of the requested day.
// It returns models.ErrForecastNotFound when the day has no slot at all,
// typically because its hours have already elapsed.
func AdaptForecast(payload models.ForecastPayload, key string) (models.WeatherReading, error) {
	slots := MatchingSlots(payload, key)
	if len(slots) == 0 {
		return models.WeatherReading{}, models.ErrForecastNotFound
	}

	slot := slots[0]
	main, _ := slot.Condition()

	return models.WeatherReading{
		TemperatureC:    models.Float(slot.Main.Temp),
		WindSpeedMs:     models.Float(slot.Wind.Speed),
		PrecipitationMm: models.Float(slot.PrecipitationMm()),
		Sky:             models.SkyLabel(strings.ToLower(main)),
	}, nil
}

// SlotDetails lists the full display record of every slot of the day.
func SlotDetails(payload models.ForecastPayload, key string) []models.SlotDetail {
	slots := MatchingSlots(payload, key)
	details := make([]models.SlotDetail, 0, len(slots))

	for _, slot := range slots {
		_, description := slot.Condition()
		detail := models.SlotDetail{
			Time:            slot.TimeLabel(),
			TempC:           slot.Main.Temp,
			TempMinC:        slot.Main.TempMin,
			TempMaxC:        slot.Main.TempMax,
			Humidity:        slot.Main.Humidity,
			WindSpeedMs:     slot.Wind.Speed,
			PrecipitationMm: slot.PrecipitationMm(),
			Description:     description,
		}
		detail.Fields = SlotFields(detail)
		details = append(details, detail)
	}

	return details
}
