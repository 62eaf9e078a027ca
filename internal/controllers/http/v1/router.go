package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"outdoor-advisor/internal/models"
	"outdoor-advisor/internal/services/session"
	"outdoor-advisor/pkg/logger"
)

// AdviceService is the coordinator behind /advice and /plan.
type AdviceService interface {
	Advise(ctx context.Context, lat, lon float64, dateInput string) (*models.Advice, error)
}

// PlaceSearcher backs /search and location resolution in /plan.
type PlaceSearcher interface {
	Search(ctx context.Context, query string) ([]models.Place, error)
}

// ClimatologyProxy backs /nasa-power.
type ClimatologyProxy interface {
	Fetch(ctx context.Context, q models.PowerQuery) ([]byte, error)
}

type routes struct {
	advisor  AdviceService
	places   PlaceSearcher
	proxy    ClimatologyProxy
	clock    clockwork.Clock
	debounce time.Duration
	l        *logger.Logger
}

type Deps struct {
	Advisor  AdviceService
	Places   PlaceSearcher
	Proxy    ClimatologyProxy
	Clock    clockwork.Clock
	Debounce time.Duration
}

func NewRouter(
	app *fiber.App,
	deps Deps,
	l *logger.Logger,
) {
	r := &routes{
		advisor:  deps.Advisor,
		places:   deps.Places,
		proxy:    deps.Proxy,
		clock:    deps.Clock,
		debounce: deps.Debounce,
		l:        l,
	}
	if r.debounce <= 0 {
		r.debounce = session.DefaultDelay
	}

	// Swagger documentation, registered by the docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes
	app.Get("/nasa-power", r.handleNASAPower)
	app.Options("/nasa-power", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/advice", r.handleAdvice)
	app.Get("/search", r.handleSearch)
	app.Get("/plan", r.handlePlan)
}
