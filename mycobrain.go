package natureos

import "context"

// RegisterMycoBrainDevice registers a MycoBrain device. The serial number,
// firmware version, and the fixed "mycobrain" device type are recorded in the
// device metadata; caller-supplied metadata is merged in but cannot override
// those three keys.
func (c *Client) RegisterMycoBrainDevice(ctx context.Context, reg *MycoBrainRegistration) (*Device, error) {
	if reg.SerialNumber == "" {
		return nil, ErrEmptySerialNumber
	}
	if reg.FirmwareVersion == "" {
		return nil, ErrEmptyFirmwareVersion
	}

	metadata := make(map[string]any, len(reg.Metadata)+3)
	for k, v := range reg.Metadata {
		metadata[k] = v
	}
	metadata["serial_number"] = reg.SerialNumber
	metadata["firmware_version"] = reg.FirmwareVersion
	metadata["device_type"] = DeviceTypeMycoBrain

	return c.RegisterDevice(ctx, &DeviceRegistration{
		DeviceID:   reg.DeviceID,
		Name:       reg.Name,
		DeviceType: DeviceTypeMycoBrain,
		Location:   reg.Location,
		Metadata:   metadata,
	})
}
