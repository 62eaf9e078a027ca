package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"outdoor-advisor/internal/models"
	"outdoor-advisor/pkg/debounce"
	"outdoor-advisor/pkg/logger"
)

const (
	MinQueryLength = 2
	DefaultDelay   = 300 * time.Millisecond
)

// Searcher resolves free text to places.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Place, error)
}

// Advisor produces advice for a point and a date input.
type Advisor interface {
	Advise(ctx context.Context, lat, lon float64, dateInput string) (*models.Advice, error)
}

// Session owns the state of one planning session: the map center, the
// search box and its pending debounce. All methods are safe for concurrent use.
type Session struct {
	searcher  Searcher
	advisor   Advisor
	debouncer *debounce.Debouncer
	l         *logger.Logger

	mu          sync.Mutex
	center      models.Coordinates
	centered    bool
	lastQuery   string
	suggestions []models.Place
	onResults   func([]models.Place)
}

type Options struct {
	Clock  clockwork.Clock
	Delay  time.Duration
	// Center is the starting point; nil means none until a search resolves.
	Center *models.Coordinates
	// OnResults receives suggestions from debounced searches.
	OnResults func([]models.Place)
}

func New(searcher Searcher, advisor Advisor, opts Options, l *logger.Logger) *Session {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	s := &Session{
		searcher:  searcher,
		advisor:   advisor,
		debouncer: debounce.New(opts.Clock, opts.Delay),
		l:         l,
		onResults: opts.OnResults,
	}
	if opts.Center != nil {
		s.center = *opts.Center
		s.centered = true
	}
	return s
}

// Center is the point advice is asked for.
func (s *Session) Center() models.Coordinates {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.center
}

// MoveTo recenters the session.
func (s *Session) MoveTo(lat, lng float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.center = models.Coordinates{Lat: lat, Lng: lng}
	s.centered = true
}

// Suggestions are the results of the last completed search.
func (s *Session) Suggestions() []models.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Place(nil), s.suggestions...)
}

// Input handles a keystroke in the search box. Any pending search is
// cancelled; queries shorter than MinQueryLength clear the suggestions, and
// the query of the last completed search is not searched again.
func (s *Session) Input(ctx context.Context, raw string) {
	query := strings.TrimSpace(raw)

	s.debouncer.Cancel()

	s.mu.Lock()
	if len([]rune(query)) < MinQueryLength {
		s.suggestions = nil
		s.mu.Unlock()
		return
	}
	if query == s.lastQuery {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.debouncer.Trigger(func() {
		places, err := s.search(ctx, query)
		if err != nil {
			s.l.Warning("search failed", map[string]any{"query": query, "err": err.Error()})
			return
		}
		if s.onResults != nil {
			s.onResults(places)
		}
	})
}

// SearchPending reports whether a debounced search has not fired yet.
func (s *Session) SearchPending() bool {
	return s.debouncer.Pending()
}

// Submit is Enter in the search box: the highlighted suggestion wins,
// otherwise the text is searched now and the first result is used. ok is
// false when nothing was found.
func (s *Session) Submit(ctx context.Context, raw string, highlighted int) (place models.Place, ok bool, err error) {
	s.debouncer.Cancel()

	if p, found := s.suggestionAt(highlighted); found {
		s.MoveTo(p.Lat, p.Lng)
		return p, true, nil
	}

	query := strings.TrimSpace(raw)
	if query == "" {
		return models.Place{}, false, nil
	}

	places, err := s.search(ctx, query)
	if err != nil {
		return models.Place{}, false, err
	}
	if len(places) == 0 {
		return models.Place{}, false, nil
	}

	s.MoveTo(places[0].Lat, places[0].Lng)
	return places[0], true, nil
}

// Select moves to the i-th suggestion.
func (s *Session) Select(i int) (models.Place, error) {
	p, ok := s.suggestionAt(i)
	if !ok {
		return models.Place{}, &models.ValidationError{Field: "suggestion", Message: "no such suggestion"}
	}
	s.MoveTo(p.Lat, p.Lng)
	return p, nil
}

// Go runs one planning action: an optional location resolution followed by
// one advice request for the current center, strictly in that order.
func (s *Session) Go(ctx context.Context, query, dateInput string) (*models.Advice, error) {
	if strings.TrimSpace(dateInput) == "" {
		return nil, &models.ValidationError{Field: "date", Message: "Please select a date first"}
	}

	if strings.TrimSpace(query) != "" {
		if _, found, err := s.Submit(ctx, query, -1); err != nil {
			return nil, errors.Wrap(err, "resolve location")
		} else if !found {
			s.l.Info("location not found, keeping current center", map[string]any{"query": query})
		}
	}

	s.mu.Lock()
	c, centered := s.center, s.centered
	s.mu.Unlock()
	if !centered {
		return nil, &models.ValidationError{Field: "location", Message: "No location selected"}
	}

	advice, err := s.advisor.Advise(ctx, c.Lat, c.Lng, dateInput)
	if err != nil {
		return nil, errors.Wrap(err, "advise")
	}

	return advice, nil
}

func (s *Session) search(ctx context.Context, query string) ([]models.Place, error) {
	places, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastQuery = query
	s.suggestions = places
	s.mu.Unlock()

	return places, nil
}

func (s *Session) suggestionAt(i int) (models.Place, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.suggestions) {
		return models.Place{}, false
	}
	return s.suggestions[i], true
}
