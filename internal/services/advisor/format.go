package advisor

import (
	"fmt"
	"strconv"

	"outdoor-advisor/internal/models"
)

const (
	climatologyWarning = "This is a climatology/historical estimate, not a real forecast."
	noForecastNotice   = "No forecast available for this date (past hours may already be gone)."
)

// NoActivities is shown in place of an empty suggestion list.
var NoActivities = models.Activity{
	ID:          "none",
	Title:       "No suitable activities 😔",
	Description: "The weather doesn't favor outdoor plans today.",
}

// Pretty renders v with unit, or N/A when v is unavailable.
func Pretty(v *float64, unit string) string {
	if v == nil {
		return "N/A"
	}
	return formatNumber(*v) + unit
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ActivityCards is the presentation of a suggestion list: the suggestions
// themselves, or the single fallback card when there are none.
func ActivityCards(activities []models.Activity) []models.Activity {
	if len(activities) == 0 {
		return []models.Activity{NoActivities}
	}
	return activities
}

func ClimatologyFields(d models.ClimatologyDetail) []models.DisplayField {
	return []models.DisplayField{
		{Label: "Avg Temp", Value: Pretty(d.AvgTempC, " °C")},
		{Label: "Min Temp", Value: Pretty(d.MinTempC, " °C")},
		{Label: "Max Temp", Value: Pretty(d.MaxTempC, " °C")},
		{Label: "Humidity", Value: Pretty(d.HumidityPct, "%")},
		{Label: "Rainfall", Value: Pretty(d.PrecipitationMm, " mm of rain")},
		{Label: "Wind Speed", Value: Pretty(d.WindSpeedMs, " m/s")},
		{Label: "Sky Clarity", Value: Pretty(d.SkyClarity, "")},
	}
}

func SlotFields(s models.SlotDetail) []models.DisplayField {
	return []models.DisplayField{
		{Label: "Time", Value: s.Time},
		{Label: "Avg Temp", Value: formatNumber(s.TempC) + " °C"},
		{Label: "Min Temp", Value: formatNumber(s.TempMinC) + " °C"},
		{Label: "Max Temp", Value: formatNumber(s.TempMaxC) + " °C"},
		{Label: "Weather", Value: s.Description},
		{Label: "Humidity", Value: formatNumber(s.Humidity) + "%"},
		{Label: "Wind Speed", Value: formatNumber(s.WindSpeedMs) + " m/s"},
		{Label: "Precipitation", Value: fmt.Sprintf("%s mm of rain", formatNumber(s.PrecipitationMm))},
	}
}
