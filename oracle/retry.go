package oracle

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Retrying re-issues failed Generate calls with doubling delays. The search
// engine itself never retries, so any retry policy lives in this wrapper.
type Retrying struct {
	inner    Oracle
	attempts int
	delay    time.Duration
}

func NewRetrying(inner Oracle, attempts int, delay time.Duration) *Retrying {
	if attempts < 1 {
		attempts = 1
	}
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &Retrying{inner: inner, attempts: attempts, delay: delay}
}

func (r *Retrying) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	delay := r.delay
	for attempt := 1; attempt <= r.attempts; attempt++ {
		text, err := r.inner.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if attempt == r.attempts {
			break
		}
		log.Debug().Err(err).Int("attempt", attempt).Msg("oracle call failed, retrying")
		select {
		case <-ctx.Done():
			return "", &Error{Provider: "retry", Err: ctx.Err()}
		case <-time.After(delay):
		}
		delay *= 2
	}
	return "", lastErr
}
