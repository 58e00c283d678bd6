package natureos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendCommand(t *testing.T) {
	t.Run("dispatches command and returns server response", func(t *testing.T) {
		clearEnv(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/devices/dev-1/commands", r.URL.Path)

			var req CommandRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "set_led", req.CommandType)
			assert.Equal(t, "green", req.Parameters["color"])

			json.NewEncoder(w).Encode(map[string]any{
				"command_id": "cmd-77",
				"status":     "accepted",
			})
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL))
		defer client.Close()

		result, err := client.SendCommand(context.Background(), "dev-1", "set_led", map[string]any{"color": "green"})
		require.NoError(t, err)
		assert.Equal(t, "cmd-77", result["command_id"])
		assert.Equal(t, "accepted", result["status"])
	})

	t.Run("nil parameters sent as empty object", func(t *testing.T) {
		clearEnv(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]json.RawMessage
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.JSONEq(t, `{}`, string(payload["parameters"]))
			json.NewEncoder(w).Encode(map[string]any{"status": "accepted"})
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL))
		defer client.Close()

		_, err := client.SendCommand(context.Background(), "dev-1", "reboot", nil)
		require.NoError(t, err)
	})

	t.Run("validation errors", func(t *testing.T) {
		clearEnv(t)

		client := NewClient()

		_, err := client.SendCommand(context.Background(), "", "reboot", nil)
		assert.ErrorIs(t, err, ErrEmptyDeviceID)

		_, err = client.SendCommand(context.Background(), "dev-1", "", nil)
		assert.ErrorIs(t, err, ErrEmptyCommandType)
	})

	t.Run("failure propagates without result", func(t *testing.T) {
		clearEnv(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL))
		defer client.Close()

		result, err := client.SendCommand(context.Background(), "dev-9", "reboot", nil)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.Nil(t, result)
	})
}
