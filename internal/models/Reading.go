package models

import (
	"encoding/json"
)

// WeatherReading is the source-agnostic snapshot consumed by the activity
// rules and the display formatter. A nil field means "unavailable" and never
// zero.
type WeatherReading struct {
	TemperatureC    *float64     `json:"temperature_c"`
	WindSpeedMs     *float64     `json:"wind_speed_ms"`
	PrecipitationMm *float64     `json:"precipitation_mm"`
	Sky             SkyIndicator `json:"sky"`
}

// SkyIndicator is a condition label (near-term forecast) or a clearness
// index (climatology). At most one of the two is set.
type SkyIndicator struct {
	Label   string
	Clarity *float64
}

func SkyLabel(label string) SkyIndicator {
	return SkyIndicator{Label: label}
}

func SkyClarity(v *float64) SkyIndicator {
	return SkyIndicator{Clarity: v}
}

func (s SkyIndicator) IsZero() bool {
	return s.Label == "" && s.Clarity == nil
}

// MarshalJSON renders the indicator as a string, a number or null.
func (s SkyIndicator) MarshalJSON() ([]byte, error) {
	switch {
	case s.Label != "":
		return json.Marshal(s.Label)
	case s.Clarity != nil:
		return json.Marshal(*s.Clarity)
	default:
		return []byte("null"), nil
	}
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}
