package oracle

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFuncAdapter(t *testing.T) {
	o := Func(func(ctx context.Context, prompt string) (string, error) {
		return "echo: " + prompt, nil
	})

	got, err := o.Generate(context.Background(), "hello")

	require.NoError(t, err)
	require.Equal(t, "echo: hello", got)
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("searching: %w", &Error{Provider: "openai", Err: cause})

	require.True(t, IsOracleError(err), "Error should be detectable through wrapping")
	require.ErrorIs(t, err, cause, "Unwrap should expose the underlying cause")
	require.False(t, IsOracleError(errors.New("plain")), "Plain errors are not oracle errors")
}

func TestRetrying(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		inner := Func(func(ctx context.Context, prompt string) (string, error) {
			calls++
			if calls < 3 {
				return "", &Error{Provider: "test", Err: errors.New("transient")}
			}
			return "ok", nil
		})
		r := NewRetrying(inner, 3, time.Millisecond)

		got, err := r.Generate(context.Background(), "p")

		require.NoError(t, err)
		require.Equal(t, "ok", got)
		require.Equal(t, 3, calls)
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		calls := 0
		inner := Func(func(ctx context.Context, prompt string) (string, error) {
			calls++
			return "", &Error{Provider: "test", Err: errors.New("down")}
		})
		r := NewRetrying(inner, 2, time.Millisecond)

		_, err := r.Generate(context.Background(), "p")

		require.Error(t, err)
		require.True(t, IsOracleError(err), "The last provider error should come back")
		require.Equal(t, 2, calls)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		inner := Func(func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("down")
		})
		r := NewRetrying(inner, 5, time.Minute)

		start := time.Now()
		_, err := r.Generate(ctx, "p")

		require.Error(t, err)
		require.Less(t, time.Since(start), time.Second, "Cancellation should preempt the backoff sleep")
	})
}

func TestRateLimited(t *testing.T) {
	t.Run("passes calls through", func(t *testing.T) {
		inner := Func(func(ctx context.Context, prompt string) (string, error) {
			return "through", nil
		})
		r := NewRateLimited(inner, 1000, 10)

		got, err := r.Generate(context.Background(), "p")

		require.NoError(t, err)
		require.Equal(t, "through", got)
	})

	t.Run("cancelled wait becomes an oracle error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		inner := Func(func(ctx context.Context, prompt string) (string, error) {
			return "through", nil
		})
		r := NewRateLimited(inner, 0.001, 1)

		_, err := r.Generate(ctx, "p") // Drain the burst token
		require.NoError(t, err)
		cancel()
		_, err = r.Generate(ctx, "p")

		require.Error(t, err)
		require.True(t, IsOracleError(err))
	})
}
