package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ForecastPayload is the OpenWeatherMap 5 day / 3 hour forecast response.
type ForecastPayload struct {
	Cod     FlexString     `json:"cod"`
	Message FlexString     `json:"message"`
	List    []ForecastSlot `json:"list"`
}

func (p ForecastPayload) OK() bool {
	return p.Cod == "200"
}

type ForecastSlot struct {
	Dt    int64  `json:"dt"`
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp     float64 `json:"temp"`
		TempMin  float64 `json:"temp_min"`
		TempMax  float64 `json:"temp_max"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain *struct {
		ThreeHours *float64 `json:"3h"`
	} `json:"rain,omitempty"`
}

// TimeLabel returns the HH:MM part of dt_txt ("2025-07-25 15:00:00").
func (s ForecastSlot) TimeLabel() string {
	_, clock, ok := strings.Cut(s.DtTxt, " ")
	if !ok {
		return ""
	}
	if len(clock) > 5 {
		clock = clock[:5]
	}
	return clock
}

// PrecipitationMm is the 3h rain volume; an absent rain block means no rain.
func (s ForecastSlot) PrecipitationMm() float64 {
	if s.Rain == nil || s.Rain.ThreeHours == nil {
		return 0
	}
	return *s.Rain.ThreeHours
}

func (s ForecastSlot) Condition() (main, description string) {
	if len(s.Weather) == 0 {
		return "", ""
	}
	return s.Weather[0].Main, s.Weather[0].Description
}

// SlotDetail is the full display record for one forecast slot.
type SlotDetail struct {
	Time            string         `json:"time"`
	TempC           float64        `json:"temp_c"`
	TempMinC        float64        `json:"temp_min_c"`
	TempMaxC        float64        `json:"temp_max_c"`
	Humidity        float64        `json:"humidity"`
	WindSpeedMs     float64        `json:"wind_speed_ms"`
	PrecipitationMm float64        `json:"precipitation_mm"`
	Description     string         `json:"description"`
	Fields          []DisplayField `json:"fields"`
}

// FlexString accepts a JSON string or number. OpenWeatherMap sends cod as
// "200" on success but 401 on auth failures, and message as 0 or text.
type FlexString string

func (c *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = FlexString(n.String())
	return nil
}
