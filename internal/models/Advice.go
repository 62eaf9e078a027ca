package models

type Regime string

const (
	RegimeNearTerm   Regime = "near_term"
	RegimeHistorical Regime = "historical"
)

const (
	SourceOpenWeather = "OpenWeather"
	SourceNASAPower   = "NASA POWER"
)

type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type DisplayField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Advice is the coordinator's answer for one location and date.
type Advice struct {
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Date        string             `json:"date"`
	DisplayDate string             `json:"display_date"`
	Regime      Regime             `json:"regime"`
	LookupKey   string             `json:"lookup_key"`
	Source      string             `json:"source"`
	Available   bool               `json:"available"`
	Reading     *WeatherReading    `json:"reading,omitempty"`
	Slots       []SlotDetail       `json:"slots,omitempty"`
	Climatology *ClimatologyDetail `json:"climatology,omitempty"`
	Fields      []DisplayField     `json:"fields,omitempty"`
	Activities  []Activity         `json:"activities"`
	Notices     []string           `json:"notices,omitempty"`
}
