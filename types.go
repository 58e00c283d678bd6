package natureos

import "time"

// DeviceTypeMycoBrain is the device type assigned to MycoBrain hardware.
const DeviceTypeMycoBrain = "mycobrain"

// Device represents a device registered on the NatureOS platform.
type Device struct {
	DeviceID   string             `json:"device_id"`
	Name       string             `json:"name"`
	DeviceType string             `json:"device_type"`
	Status     string             `json:"status,omitempty"`
	Location   map[string]float64 `json:"location,omitempty"`
	Metadata   map[string]any     `json:"metadata,omitempty"`
	TenantID   string             `json:"tenant_id,omitempty"`
	CreatedAt  string             `json:"created_at,omitempty"`
	UpdatedAt  string             `json:"updated_at,omitempty"`
}

// DeviceListResponse is the paged container returned by the devices collection.
type DeviceListResponse struct {
	Items []Device `json:"items"`
}

// ListDevicesOptions filters a device listing. A zero value for any field
// leaves that filter off.
type ListDevicesOptions struct {
	// DeviceType filters by device type (e.g. "mycobrain").
	DeviceType string
	// Status filters by device status.
	Status string
	// Limit caps the number of returned devices (default: 100).
	Limit int
}

// DeviceRegistration is the payload for registering a new device.
// Location and Metadata are omitted from the request body when nil.
type DeviceRegistration struct {
	DeviceID   string             `json:"device_id"`
	Name       string             `json:"name"`
	DeviceType string             `json:"device_type"`
	Location   map[string]float64 `json:"location,omitempty"`
	Metadata   map[string]any     `json:"metadata,omitempty"`
}

// MycoBrainRegistration is the payload for registering a MycoBrain device.
// SerialNumber and FirmwareVersion are required and are always recorded in
// the device metadata alongside the fixed "mycobrain" device type.
type MycoBrainRegistration struct {
	DeviceID        string
	SerialNumber    string
	Name            string
	FirmwareVersion string
	Location        map[string]float64
	Metadata        map[string]any
}

// SensorReading is a single timestamped measurement from a device.
type SensorReading struct {
	DeviceID   string         `json:"device_id,omitempty"`
	SensorType string         `json:"sensor_type"`
	Timestamp  time.Time      `json:"timestamp"`
	Value      any            `json:"value"`
	Unit       string         `json:"unit,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// SensorDataResponse is the paged container returned by the sensor-data endpoint.
type SensorDataResponse struct {
	Items []SensorReading `json:"items"`
}

// SensorDataOptions bounds a sensor-data query. Zero times default to a
// window ending now (UTC) and beginning 24 hours earlier, computed at call time.
type SensorDataOptions struct {
	// SensorType filters by sensor type (e.g. "temperature").
	SensorType string
	// StartTime is the inclusive window start.
	StartTime time.Time
	// EndTime is the inclusive window end.
	EndTime time.Time
	// Limit caps the number of returned readings (default: 1000).
	Limit int
}

// CommandRequest is the payload sent to a device's command endpoint.
type CommandRequest struct {
	CommandType string         `json:"command_type"`
	Parameters  map[string]any `json:"parameters"`
}

// CommandResult is the server's synchronous response to a dispatched command.
// Its shape is server-defined; the client does not track execution status.
type CommandResult map[string]any
