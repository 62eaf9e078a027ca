package advisor

import (
	"context"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"outdoor-advisor/internal/models"
	"outdoor-advisor/pkg/logger"
	"outdoor-advisor/pkg/observe"
)

// ForecastRepository fetches the near-term 3-hourly forecast for a point.
type ForecastRepository interface {
	FetchForecast(ctx context.Context, lat, lon float64) (models.ForecastPayload, error)
}

// ClimatologyRepository fetches daily climatology for a point and an
// inclusive YYYYMMDD range.
type ClimatologyRepository interface {
	FetchClimatology(ctx context.Context, lat, lon float64, start, end string) (models.ClimatologyPayload, error)
}

// Service turns a location and a date into a weather reading and a list of
// activity suggestions.
type Service struct {
	forecasts   ForecastRepository
	climatology ClimatologyRepository
	clock       clockwork.Clock
	loc         *time.Location
	metrics     *observe.Metrics
	l           *logger.Logger
}

func NewService(
	forecasts ForecastRepository,
	climatology ClimatologyRepository,
	clock clockwork.Clock,
	loc *time.Location,
	metrics *observe.Metrics,
	l *logger.Logger,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		forecasts:   forecasts,
		climatology: climatology,
		clock:       clock,
		loc:         loc,
		metrics:     metrics,
		l:           l,
	}
}

// Today is the current calendar day in the service's location.
func (s *Service) Today() time.Time {
	return Midnight(s.clock.Now().In(s.loc))
}

// Advise parses dateInput and advises against today's date.
func (s *Service) Advise(ctx context.Context, lat, lon float64, dateInput string) (*models.Advice, error) {
	requested, err := ParseInputDate(dateInput, s.loc)
	if err != nil {
		return nil, err
	}
	return s.AdviseOn(ctx, lat, lon, requested, s.Today())
}

// AdviseOn runs one request end to end. today is computed once by the
// caller so that classification and display agree across midnight.
func (s *Service) AdviseOn(ctx context.Context, lat, lon float64, requested, today time.Time) (*models.Advice, error) {
	requested = Midnight(requested)
	c := Classify(today, requested)

	s.l.Info("advising", map[string]any{
		"lat":       lat,
		"lon":       lon,
		"date":      ForecastKey(requested),
		"regime":    c.Regime,
		"days":      c.DaysFromToday,
		"lookupKey": c.LookupKey,
	})

	advice := &models.Advice{
		Latitude:    lat,
		Longitude:   lon,
		Date:        ForecastKey(requested),
		DisplayDate: DisplayDate(requested),
		Regime:      c.Regime,
		LookupKey:   c.LookupKey,
	}

	var err error
	switch c.Regime {
	case models.RegimeNearTerm:
		err = s.adviseNearTerm(ctx, advice)
	default:
		err = s.adviseHistorical(ctx, advice)
	}

	if err != nil {
		s.record(c.Regime, "error", nil)
		s.l.Error(err, map[string]any{"lat": lat, "lon": lon, "regime": c.Regime})
		return nil, err
	}

	if advice.Reading != nil {
		advice.Activities = Suggest(*advice.Reading)
	} else {
		advice.Activities = []models.Activity{}
	}

	outcome := "ok"
	if !advice.Available {
		outcome = "no_forecast"
	}
	s.record(c.Regime, outcome, advice.Activities)

	return advice, nil
}

func (s *Service) adviseNearTerm(ctx context.Context, advice *models.Advice) error {
	advice.Source = models.SourceOpenWeather

	payload, err := s.forecasts.FetchForecast(ctx, advice.Latitude, advice.Longitude)
	if err != nil {
		return errors.Wrap(err, "fetch near-term forecast")
	}
	if !payload.OK() {
		detail := string(payload.Message)
		if detail == "" {
			detail = "Failed to fetch weather data"
		}
		return &models.UpstreamError{Source: models.SourceOpenWeather, Status: statusOf(payload.Cod), Detail: detail}
	}

	reading, err := AdaptForecast(payload, advice.LookupKey)
	if errors.Is(err, models.ErrForecastNotFound) {
		s.l.Warning("no forecast slot for date", map[string]any{"date": advice.LookupKey, "slots": len(payload.List)})
		advice.Notices = append(advice.Notices, noForecastNotice)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "adapt forecast")
	}

	advice.Available = true
	advice.Reading = &reading
	advice.Slots = SlotDetails(payload, advice.LookupKey)

	return nil
}

func (s *Service) adviseHistorical(ctx context.Context, advice *models.Advice) error {
	advice.Source = models.SourceNASAPower

	payload, err := s.climatology.FetchClimatology(ctx, advice.Latitude, advice.Longitude, advice.LookupKey, advice.LookupKey)
	if err != nil {
		return errors.Wrap(err, "fetch climatology")
	}
	if !payload.Valid() {
		return &models.UpstreamError{Source: models.SourceNASAPower, Detail: "Failed to fetch NASA POWER data"}
	}

	reading := AdaptClimatology(payload, advice.LookupKey)
	detail := ClimatologyDetails(payload, advice.LookupKey)

	advice.Available = true
	advice.Reading = &reading
	advice.Climatology = &detail
	advice.Fields = ClimatologyFields(detail)
	advice.Notices = append(advice.Notices, climatologyWarning)

	return nil
}

func (s *Service) record(regime models.Regime, outcome string, activities []models.Activity) {
	if s.metrics == nil {
		return
	}
	s.metrics.Advice.WithLabelValues(string(regime), outcome).Inc()
	if outcome != "error" {
		s.metrics.Suggestions.Observe(float64(len(activities)))
	}
}

func statusOf(code models.FlexString) int {
	n, err := strconv.Atoi(string(code))
	if err != nil {
		return 0
	}
	return n
}
