package models

import "strings"

// PowerQuery is one point/range request to NASA POWER. Coordinates and dates
// stay as the caller sent them so identical requests share a cache key.
type PowerQuery struct {
	Lat    string
	Lon    string
	Start  string
	End    string
	Params string
}

// Missing lists the required fields that are empty.
func (q PowerQuery) Missing() []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"lat", q.Lat},
		{"lon", q.Lon},
		{"start", q.Start},
		{"end", q.End},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// WithDefaults fills Params with DefaultPowerParams when empty.
func (q PowerQuery) WithDefaults() PowerQuery {
	if q.Params == "" {
		q.Params = DefaultPowerParams
	}
	return q
}

// CacheKey is the full request tuple.
func (q PowerQuery) CacheKey() string {
	return strings.Join([]string{q.Lat, q.Lon, q.Start, q.End, q.Params}, "|")
}
