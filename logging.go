package natureos

import (
	"context"
	"log/slog"
	"time"
)

// WithLogger configures a structured logger for the client.
// When set, the client will log API requests, responses, and device operations.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	client := natureos.NewClient(natureos.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// logRequest logs an outgoing API request.
func (c *Client) logRequest(ctx context.Context, method, path, requestID string) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "api_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
	)
}

// logResponse logs an API response or transport failure.
func (c *Client) logResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration, err error) {
	if c.logger == nil {
		return
	}

	level := slog.LevelDebug
	if statusCode >= 400 {
		level = slog.LevelWarn
	}
	if statusCode >= 500 || err != nil {
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", statusCode),
		slog.Duration("duration", duration),
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	c.logger.LogAttrs(ctx, level, "api_response", attrs...)
}

// LogDeviceRegistration logs a device registration outcome. Used internally
// after each registration call; exported for custom registration flows.
func (c *Client) LogDeviceRegistration(ctx context.Context, deviceID, deviceType string, err error) {
	if c.logger == nil {
		return
	}

	level := slog.LevelInfo
	attrs := []slog.Attr{
		slog.String("device_id", deviceID),
		slog.String("device_type", deviceType),
	}

	if err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	c.logger.LogAttrs(ctx, level, "device_registration", attrs...)
}

// LogDeviceCommand logs a device command dispatch outcome.
func (c *Client) LogDeviceCommand(ctx context.Context, deviceID, commandType string, err error) {
	if c.logger == nil {
		return
	}

	level := slog.LevelInfo
	attrs := []slog.Attr{
		slog.String("device_id", deviceID),
		slog.String("command_type", commandType),
	}

	if err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	c.logger.LogAttrs(ctx, level, "device_command", attrs...)
}
