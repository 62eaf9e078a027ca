package models

import (
	"errors"
	"fmt"
)

var (
	// ErrForecastNotFound means the forecast has no slot for the requested day.
	ErrForecastNotFound = errors.New("no forecast available for this date")
	// ErrInvalidStructure means an upstream answered 200 with an unexpected body.
	ErrInvalidStructure = errors.New("upstream returned invalid data structure")
)

// ValidationError reports missing or malformed caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UpstreamError reports a non-success answer from a weather source. Detail
// carries the upstream's own error text.
type UpstreamError struct {
	Source string
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Source, e.Detail)
	}
	return fmt.Sprintf("%s (status %d): %s", e.Source, e.Status, e.Detail)
}
