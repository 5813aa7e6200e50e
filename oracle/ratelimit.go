package oracle

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimited throttles Generate calls with a token bucket. Useful when the
// search fans out child evaluations against a quota-limited provider.
type RateLimited struct {
	inner   Oracle
	limiter *rate.Limiter
}

func NewRateLimited(inner Oracle, callsPerSecond float64, burst int) *RateLimited {
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(callsPerSecond), burst),
	}
}

func (r *RateLimited) Generate(ctx context.Context, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", &Error{Provider: "ratelimit", Err: err}
	}
	return r.inner.Generate(ctx, prompt)
}
