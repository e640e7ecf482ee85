// Package throttle enforces a minimum wall-clock interval between outbound
// requests to the remote graph service.
package throttle

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/c360/sempath/errors"
)

// Throttle permits at most one request per 1/rate seconds. The underlying
// limiter guards its check-and-advance of the last permitted time with a
// mutex, so Wait is safe from concurrent goroutines; callers are admitted
// first-come-first-served with no further fairness guarantee.
type Throttle struct {
	limiter *rate.Limiter
}

// New creates a throttle permitting requestsPerSecond requests. Burst is
// fixed at 1: consecutive permits are always at least 1/rate apart.
func New(requestsPerSecond float64) (*Throttle, error) {
	if requestsPerSecond <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig,
			"Throttle", "New", "requests per second must be positive")
	}
	return &Throttle{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}, nil
}

// Wait blocks until the next request is permitted, then records the new
// permission. It cannot fail except by context cancellation, in which case
// the pending permission is returned to the limiter.
func (t *Throttle) Wait(ctx context.Context) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return errors.WrapTransient(err, "Throttle", "Wait", "acquire request slot")
	}
	return nil
}
