package natureos

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the NatureOS client.
// All errors are defined here for easy discovery and consistent organization.
var (
	// Authentication errors
	ErrUnauthorized = errors.New("natureos: unauthorized (invalid or expired API key)")

	// Resource errors
	ErrNotFound = errors.New("natureos: resource not found")

	// Rate limiting
	ErrRateLimited = errors.New("natureos: rate limited (too many requests)")

	// Device validation errors
	ErrEmptyDeviceID   = errors.New("natureos: device ID cannot be empty")
	ErrEmptyDeviceName = errors.New("natureos: device name cannot be empty")
	ErrEmptyDeviceType = errors.New("natureos: device type cannot be empty")

	// Command validation errors
	ErrEmptyCommandType = errors.New("natureos: command type cannot be empty")

	// MycoBrain validation errors
	ErrEmptySerialNumber    = errors.New("natureos: serial number cannot be empty")
	ErrEmptyFirmwareVersion = errors.New("natureos: firmware version cannot be empty")
)

// APIError represents an error response from the NatureOS API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("natureos: API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
	}
	return fmt.Sprintf("natureos: API error %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized returns true if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

// IsNotFound returns true if the error indicates the resource was not found.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}

// IsServerError returns true if the error indicates a remote internal failure (5xx).
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 && apiErr.StatusCode < 600
	}
	return false
}

// IsTimeout returns true if the error indicates a timeout.
func IsTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
