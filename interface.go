package natureos

import "context"

// DeviceAPI defines the interface for NatureOS API operations.
// Client implements this interface, enabling mocking for tests.
type DeviceAPI interface {
	ListDevices(ctx context.Context, opts *ListDevicesOptions) ([]Device, error)
	GetDevice(ctx context.Context, deviceID string) (*Device, error)
	RegisterDevice(ctx context.Context, reg *DeviceRegistration) (*Device, error)
	GetSensorData(ctx context.Context, deviceID string, opts *SensorDataOptions) ([]SensorReading, error)
	SendCommand(ctx context.Context, deviceID, commandType string, parameters map[string]any) (CommandResult, error)
	RegisterMycoBrainDevice(ctx context.Context, reg *MycoBrainRegistration) (*Device, error)
	Close() error
}

var _ DeviceAPI = (*Client)(nil)
