package models

// NASA POWER daily parameter names.
const (
	ParamTemperature    = "T2M"
	ParamTemperatureMin = "T2M_MIN"
	ParamTemperatureMax = "T2M_MAX"
	ParamPrecipitation  = "PRECTOTCORR"
	ParamWindSpeed      = "WS10M"
	ParamHumidity       = "RH2M"
	ParamSkyClarity     = "ALLSKY_KT"

	DefaultPowerParams = "T2M,T2M_MIN,T2M_MAX,PRECTOTCORR,WS10M,RH2M,ALLSKY_KT"
)

// ClimatologyPayload is the subset of a NASA POWER point response the
// advisor reads: parameter name -> YYYYMMDD -> raw value.
type ClimatologyPayload struct {
	Properties *struct {
		Parameter map[string]map[string]any `json:"parameter"`
	} `json:"properties"`
}

// Valid reports whether the parameter container is present.
func (p ClimatologyPayload) Valid() bool {
	return p.Properties != nil && p.Properties.Parameter != nil
}

// Value returns the raw value for a parameter and date key, nil when either
// is missing.
func (p ClimatologyPayload) Value(param, dateKey string) any {
	if !p.Valid() {
		return nil
	}
	group, ok := p.Properties.Parameter[param]
	if !ok {
		return nil
	}
	return group[dateKey]
}

// ClimatologyDetail holds every sanitized field shown for a historical estimate.
type ClimatologyDetail struct {
	AvgTempC        *float64 `json:"avg_temp_c"`
	MinTempC        *float64 `json:"min_temp_c"`
	MaxTempC        *float64 `json:"max_temp_c"`
	HumidityPct     *float64 `json:"humidity_pct"`
	PrecipitationMm *float64 `json:"precipitation_mm"`
	WindSpeedMs     *float64 `json:"wind_speed_ms"`
	SkyClarity      *float64 `json:"sky_clarity"`
}
