package natureos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastRetry returns a retry configuration with negligible backoff for tests.
func fastRetry(maxRetries int) *RetryConfig {
	return &RetryConfig{
		MaxRetries:     maxRetries,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func TestRetry(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		clearEnv(t)

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL))
		defer client.Close()

		_, err := client.GetDevice(context.Background(), "dev-1")
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load(), "no retries without configuration")
	})

	t.Run("retries server errors until success", func(t *testing.T) {
		clearEnv(t)

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			json.NewEncoder(w).Encode(Device{DeviceID: "dev-1"})
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL), WithRetry(fastRetry(3)))
		defer client.Close()

		device, err := client.GetDevice(context.Background(), "dev-1")
		require.NoError(t, err)
		assert.Equal(t, "dev-1", device.DeviceID)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("retries rate limits", func(t *testing.T) {
		clearEnv(t)

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			json.NewEncoder(w).Encode(Device{DeviceID: "dev-1"})
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL), WithMaxRetries(2))
		defer client.Close()

		_, err := client.GetDevice(context.Background(), "dev-1")
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		clearEnv(t)

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL), WithRetry(fastRetry(2)))
		defer client.Close()

		_, err := client.GetDevice(context.Background(), "dev-1")
		require.Error(t, err)
		assert.True(t, IsServerError(err))
		assert.Equal(t, int32(3), calls.Load(), "initial attempt plus two retries")
	})

	t.Run("does not retry non-transient errors", func(t *testing.T) {
		clearEnv(t)

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL), WithRetry(fastRetry(3)))
		defer client.Close()

		_, err := client.GetDevice(context.Background(), "dev-1")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("WithMaxRetries zero disables retries", func(t *testing.T) {
		clearEnv(t)

		client := NewClient(WithMaxRetries(0))
		assert.Nil(t, client.retryConfig)
	})
}
