// Package oracle defines the narrow language-model capability the search
// engine consumes, plus adapters for concrete providers. The engine never
// depends on anything beyond Generate.
package oracle

import (
	"context"
	"errors"
	"fmt"
)

// Oracle is implemented by language-model clients. Generate takes a complete
// prompt and returns the model's text, or an *Error on network, timeout or
// quota conditions.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Func adapts a plain function to the Oracle interface.
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Error tags a provider failure. The search engine treats any error from
// Generate as degradable; Error exists so callers can tell provider failures
// apart from their own plumbing.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("oracle %s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsOracleError reports whether err originated from an oracle provider.
func IsOracleError(err error) bool {
	var oe *Error
	return errors.As(err, &oe)
}
