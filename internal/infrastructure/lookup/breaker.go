// Package lookup implements the BrasilAPI and ViaCEP registry clients
// behind circuit breakers. Both registries are public best-effort services;
// a broken registry must degrade the wizard, never take it down.
package lookup

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"

	applookup "github.com/LucasFelipeJesus/portal-chamados/internal/application/lookup"
)

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

// breakerErr maps gobreaker sentinel errors to the unavailable sentinel the
// application layer branches on.
func breakerErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return applookup.ErrUnavailable
	}
	return err
}
