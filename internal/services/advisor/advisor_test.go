package advisor_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outdoor-advisor/internal/models"
	"outdoor-advisor/internal/services/advisor"
	"outdoor-advisor/pkg/logger"
	"outdoor-advisor/pkg/observe"
)

// MockForecasts implements advisor.ForecastRepository for testing
type MockForecasts struct {
	payload   models.ForecastPayload
	err       error
	callCount int
}

func (m *MockForecasts) FetchForecast(_ context.Context, _, _ float64) (models.ForecastPayload, error) {
	m.callCount++
	return m.payload, m.err
}

// MockClimatology implements advisor.ClimatologyRepository for testing
type MockClimatology struct {
	payload    models.ClimatologyPayload
	err        error
	callCount  int
	start, end string
}

func (m *MockClimatology) FetchClimatology(_ context.Context, _, _ float64, start, end string) (models.ClimatologyPayload, error) {
	m.callCount++
	m.start, m.end = start, end
	return m.payload, m.err
}

func forecastPayload(t *testing.T, raw string) models.ForecastPayload {
	t.Helper()
	var p models.ForecastPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func climatologyPayload(t *testing.T, raw string) models.ClimatologyPayload {
	t.Helper()
	var p models.ClimatologyPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

const sunnyForecast = `{"cod": "200", "message": 0, "list": [
	{"dt_txt": "2024-06-03 09:00:00", "main": {"temp": 20, "temp_min": 19, "temp_max": 21, "humidity": 50}, "weather": [{"main": "Clear", "description": "clear sky"}], "wind": {"speed": 2}},
	{"dt_txt": "2024-06-03 12:00:00", "main": {"temp": 24, "temp_min": 23, "temp_max": 24, "humidity": 45}, "weather": [{"main": "Clear", "description": "clear sky"}], "wind": {"speed": 3}}
]}`

const powerJune = `{"properties": {"parameter": {
	"T2M": {"20230611": 26.5},
	"T2M_MIN": {"20230611": 18.0},
	"T2M_MAX": {"20230611": 31.2},
	"PRECTOTCORR": {"20230611": 0.0},
	"WS10M": {"20230611": 2.5},
	"RH2M": {"20230611": 40.0},
	"ALLSKY_KT": {"20230611": 0.71}
}}}`

type fixture struct {
	forecasts   *MockForecasts
	climatology *MockClimatology
	metrics     *observe.Metrics
	service     *advisor.Service
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		forecasts:   &MockForecasts{},
		climatology: &MockClimatology{},
		metrics:     observe.NewMetricsForTesting(),
	}
	f.service = advisor.NewService(f.forecasts, f.climatology, clockwork.NewFakeClockAt(now), time.UTC, f.metrics, logger.NewNop())
	return f
}

var june1 = time.Date(2024, time.June, 1, 15, 30, 0, 0, time.UTC)

func TestService_Today(t *testing.T) {
	f := newFixture(june1)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), f.service.Today())
}

func TestService_NearTerm(t *testing.T) {
	f := newFixture(june1)
	f.forecasts.payload = forecastPayload(t, sunnyForecast)

	advice, err := f.service.Advise(context.Background(), 47.4979, 19.0402, "2024-06-03")
	require.NoError(t, err)

	assert.Equal(t, 1, f.forecasts.callCount)
	assert.Equal(t, 0, f.climatology.callCount)

	assert.Equal(t, models.RegimeNearTerm, advice.Regime)
	assert.Equal(t, models.SourceOpenWeather, advice.Source)
	assert.Equal(t, "2024-06-03", advice.LookupKey)
	assert.Equal(t, "6/3/2024", advice.DisplayDate)
	assert.True(t, advice.Available)

	require.NotNil(t, advice.Reading)
	assert.Equal(t, 20.0, *advice.Reading.TemperatureC)
	assert.Equal(t, 0.0, *advice.Reading.PrecipitationMm)
	assert.Equal(t, "clear", advice.Reading.Sky.Label)

	require.Len(t, advice.Slots, 2)
	assert.Equal(t, "09:00", advice.Slots[0].Time)
	assert.Equal(t, "12:00", advice.Slots[1].Time)

	assert.Len(t, advice.Activities, advisor.MaxSuggestions)
	assert.Equal(t, "picnic", advice.Activities[0].ID)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Advice.WithLabelValues("near_term", "ok")))
}

func TestService_NearTermNoSlot(t *testing.T) {
	f := newFixture(june1)
	f.forecasts.payload = forecastPayload(t, sunnyForecast)

	advice, err := f.service.Advise(context.Background(), 1, 2, "2024-06-01")
	require.NoError(t, err, "a missing slot is a soft condition")

	assert.False(t, advice.Available)
	assert.Nil(t, advice.Reading)
	assert.Empty(t, advice.Activities)
	require.Len(t, advice.Notices, 1)
	assert.Contains(t, advice.Notices[0], "No forecast available for this date")

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Advice.WithLabelValues("near_term", "no_forecast")))
}

func TestService_NearTermUpstreamStatus(t *testing.T) {
	f := newFixture(june1)
	f.forecasts.payload = forecastPayload(t, `{"cod": 401, "message": "Invalid API key."}`)

	_, err := f.service.Advise(context.Background(), 1, 2, "2024-06-02")
	require.Error(t, err)

	var upstream *models.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 401, upstream.Status)
	assert.Equal(t, "Invalid API key.", upstream.Detail)
	assert.Contains(t, err.Error(), "Invalid API key.")

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Advice.WithLabelValues("near_term", "error")))
}

func TestService_NearTermFetchError(t *testing.T) {
	f := newFixture(june1)
	f.forecasts.err = &models.UpstreamError{Source: models.SourceOpenWeather, Status: 500, Detail: "boom"}

	_, err := f.service.Advise(context.Background(), 1, 2, "2024-06-02")

	var upstream *models.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 500, upstream.Status)
}

func TestService_HistoricalFuture(t *testing.T) {
	f := newFixture(june1)
	f.climatology.payload = climatologyPayload(t, powerJune)

	advice, err := f.service.Advise(context.Background(), 47.4979, 19.0402, "2024-06-11")
	require.NoError(t, err)

	assert.Equal(t, 0, f.forecasts.callCount)
	assert.Equal(t, 1, f.climatology.callCount)
	assert.Equal(t, "20230611", f.climatology.start)
	assert.Equal(t, "20230611", f.climatology.end)

	assert.Equal(t, models.RegimeHistorical, advice.Regime)
	assert.Equal(t, models.SourceNASAPower, advice.Source)
	assert.Equal(t, "2024-06-11", advice.Date)
	assert.True(t, advice.Available)

	require.NotNil(t, advice.Climatology)
	assert.Equal(t, 31.2, *advice.Climatology.MaxTempC)
	require.NotNil(t, advice.Reading)
	assert.Equal(t, 0.71, *advice.Reading.Sky.Clarity)
	assert.Len(t, advice.Fields, 7)
	assert.Contains(t, advice.Notices[0], "climatology")

	// 26.5 °C, dry, calm: beach volleyball is in, hiking is out
	got := make([]string, 0, len(advice.Activities))
	for _, a := range advice.Activities {
		got = append(got, a.ID)
	}
	assert.Contains(t, got, "beach-volleyball")
	assert.NotContains(t, got, "hiking")
}

func TestService_HistoricalPast(t *testing.T) {
	f := newFixture(june1)
	f.climatology.payload = climatologyPayload(t, `{"properties": {"parameter": {"T2M": {"20200101": -999}}}}`)

	advice, err := f.service.Advise(context.Background(), 1, 2, "01/01/2020")
	require.NoError(t, err)

	assert.Equal(t, "20200101", f.climatology.start)
	assert.Nil(t, advice.Reading.TemperatureC)
	assert.Empty(t, advice.Activities)
	assert.Contains(t, advice.Fields, models.DisplayField{Label: "Avg Temp", Value: "N/A"})
}

func TestService_HistoricalInvalidStructure(t *testing.T) {
	f := newFixture(june1)
	f.climatology.payload = climatologyPayload(t, `{"header": {}}`)

	_, err := f.service.Advise(context.Background(), 1, 2, "2024-05-01")

	var upstream *models.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, models.SourceNASAPower, upstream.Source)
}

func TestService_HistoricalFetchError(t *testing.T) {
	f := newFixture(june1)
	f.climatology.err = errors.New("connection refused")

	_, err := f.service.Advise(context.Background(), 1, 2, "2024-05-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestService_MissingDate(t *testing.T) {
	f := newFixture(june1)

	_, err := f.service.Advise(context.Background(), 1, 2, "")

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, f.forecasts.callCount)
	assert.Equal(t, 0, f.climatology.callCount)
}

func TestService_AdviseOnUsesGivenToday(t *testing.T) {
	f := newFixture(june1)
	f.climatology.payload = climatologyPayload(t, powerJune)

	// A week later the same date falls into the near-term window.
	today := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	f.forecasts.payload = forecastPayload(t, `{"cod": "200", "list": []}`)

	advice, err := f.service.AdviseOn(context.Background(), 1, 2, time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC), today)
	require.NoError(t, err)
	assert.Equal(t, models.RegimeNearTerm, advice.Regime)
	assert.Equal(t, 1, f.forecasts.callCount)
}
