package http

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"outdoor-advisor/internal/models"
	"outdoor-advisor/internal/services/advisor"
	"outdoor-advisor/internal/services/session"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string `json:"error" example:"Missing required parameter: lat"`
	Field  string `json:"field,omitempty" example:"lat"`
	Status int    `json:"status,omitempty" example:"503"`
	Detail string `json:"detail,omitempty" example:"Service Unavailable"`
}

// ProxyInvalidResponse is returned when NASA POWER answers without properties.parameter.
type ProxyInvalidResponse struct {
	Error string          `json:"error" example:"NASA POWER returned invalid data structure"`
	Data  json.RawMessage `json:"data" swaggertype:"object"`
}

// AdviceResponse is the advice plus its display cards.
type AdviceResponse struct {
	*models.Advice
	// Cards holds the suggestions or the single fallback card.
	Cards []models.Activity `json:"cards"`
}

// GetNASAPower godoc
// @Summary NASA POWER climatology proxy
// @Description Fetches daily point data from NASA POWER, caching valid answers by the full query.
// @Tags Climatology
// @Produce json
// @Param lat query string true "Latitude" example(47.4979)
// @Param lon query string true "Longitude" example(19.0402)
// @Param start query string true "Start date YYYYMMDD" example(20241116)
// @Param end query string true "End date YYYYMMDD" example(20241116)
// @Param params query string false "Comma separated parameters" default(T2M,T2M_MIN,T2M_MAX,PRECTOTCORR,WS10M,RH2M,ALLSKY_KT)
// @Success 200 {object} object "Raw NASA POWER response"
// @Failure 400 {object} ErrorResponse "Missing parameters"
// @Failure 502 {object} ErrorResponse "NASA POWER returned an error"
// @Failure 500 {object} ProxyInvalidResponse "Invalid upstream structure or proxy error"
// @Router /nasa-power [get]
func (r *routes) handleNASAPower(c *fiber.Ctx) error {
	q := models.PowerQuery{
		Lat:    c.Query("lat"),
		Lon:    c.Query("lon"),
		Start:  c.Query("start"),
		End:    c.Query("end"),
		Params: c.Query("params"),
	}

	body, err := r.proxy.Fetch(c.UserContext(), q)

	var verr *models.ValidationError
	var upstream *models.UpstreamError
	switch {
	case err == nil:
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: verr.Message})
	case errors.As(err, &upstream):
		r.l.Warning("NASA POWER fetch error", map[string]any{"status": upstream.Status, "detail": upstream.Detail})
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:  "Failed to fetch NASA POWER",
			Status: upstream.Status,
			Detail: upstream.Detail,
		})
	case errors.Is(err, models.ErrInvalidStructure):
		return c.Status(fiber.StatusInternalServerError).JSON(ProxyInvalidResponse{
			Error: "NASA POWER returned invalid data structure",
			Data:  body,
		})
	default:
		r.l.Error(err, map[string]any{"query": q.CacheKey()})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:  "Proxy server error",
			Detail: err.Error(),
		})
	}
}

// GetAdvice godoc
// @Summary Weather and activity advice
// @Description Picks the near-term forecast (0 to 7 days out) or NASA POWER climatology, normalizes the reading and suggests activities.
// @Tags Advice
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(47.4979)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(19.0402)
// @Param date query string true "Date as YYYY-MM-DD or MM/DD/YYYY" example(2025-07-25)
// @Success 200 {object} AdviceResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 502 {object} ErrorResponse "Weather source error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /advice [get]
func (r *routes) handleAdvice(c *fiber.Ctx) error {
	lat, lon, err := parseCoordinates(c.Query("lat"), c.Query("lon"))
	if err != nil {
		return r.writeError(c, err)
	}

	advice, err := r.advisor.Advise(c.UserContext(), lat, lon, c.Query("date"))
	if err != nil {
		return r.writeError(c, err)
	}

	return c.JSON(AdviceResponse{Advice: advice, Cards: advisor.ActivityCards(advice.Activities)})
}

// SearchPlaces godoc
// @Summary Place search
// @Description Resolves free text to up to five places. Queries shorter than two characters return an empty list.
// @Tags Search
// @Produce json
// @Param q query string true "Search text" example(Budapest)
// @Success 200 {array} models.Place "Matching places"
// @Failure 400 {object} ErrorResponse "Missing query"
// @Failure 502 {object} ErrorResponse "Geocoder error"
// @Router /search [get]
func (r *routes) handleSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Missing required parameter: q", Field: "q"})
	}
	if len([]rune(query)) < session.MinQueryLength {
		return c.JSON([]models.Place{})
	}

	places, err := r.places.Search(c.UserContext(), query)
	if err != nil {
		return r.writeError(c, err)
	}

	return c.JSON(places)
}

// Plan godoc
// @Summary Plan an outing
// @Description Resolves q to its first search result (falling back to lat/lon) and returns advice for date.
// @Tags Advice
// @Produce json
// @Param q query string false "Place to search" example(Budapest)
// @Param lat query number false "Starting latitude" example(47.4979)
// @Param lon query number false "Starting longitude" example(19.0402)
// @Param date query string true "Date as YYYY-MM-DD or MM/DD/YYYY" example(2025-07-25)
// @Success 200 {object} AdviceResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Missing date or location"
// @Failure 502 {object} ErrorResponse "Upstream error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plan [get]
func (r *routes) handlePlan(c *fiber.Ctx) error {
	opts := session.Options{Clock: r.clock, Delay: r.debounce}

	if c.Query("lat") != "" || c.Query("lon") != "" {
		lat, lon, err := parseCoordinates(c.Query("lat"), c.Query("lon"))
		if err != nil {
			return r.writeError(c, err)
		}
		opts.Center = &models.Coordinates{Lat: lat, Lng: lon}
	}

	s := session.New(r.places, r.advisor, opts, r.l)

	advice, err := s.Go(c.UserContext(), c.Query("q"), c.Query("date"))
	if err != nil {
		return r.writeError(c, err)
	}

	return c.JSON(AdviceResponse{Advice: advice, Cards: advisor.ActivityCards(advice.Activities)})
}

func (r *routes) writeError(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	var upstream *models.UpstreamError

	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.As(err, &upstream):
		r.l.Warning("upstream error", map[string]any{"source": upstream.Source, "status": upstream.Status, "detail": upstream.Detail})
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:  "Failed to fetch weather data. " + upstream.Error(),
			Status: upstream.Status,
			Detail: upstream.Detail,
		})
	case errors.Is(err, models.ErrInvalidStructure):
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	default:
		r.l.Error(err, map[string]any{"path": c.Path()})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Failed to fetch weather data"})
	}
}

func parseCoordinates(lat, lon string) (float64, float64, error) {
	if lat == "" {
		return 0, 0, &models.ValidationError{Field: "lat", Message: "Missing required parameter: lat"}
	}
	if lon == "" {
		return 0, 0, &models.ValidationError{Field: "lon", Message: "Missing required parameter: lon"}
	}

	latFloat, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return 0, 0, &models.ValidationError{Field: "lat", Message: "Invalid latitude format"}
	}
	if latFloat < -90 || latFloat > 90 {
		return 0, 0, &models.ValidationError{Field: "lat", Message: "Latitude must be between -90 and 90"}
	}

	lonFloat, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return 0, 0, &models.ValidationError{Field: "lon", Message: "Invalid longitude format"}
	}
	if lonFloat < -180 || lonFloat > 180 {
		return 0, 0, &models.ValidationError{Field: "lon", Message: "Longitude must be between -180 and 180"}
	}

	return latFloat, lonFloat, nil
}
