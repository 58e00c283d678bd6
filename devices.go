package natureos

import (
	"context"
	"net/url"
	"strconv"
)

// DefaultListLimit is the device listing limit applied when none is given.
const DefaultListLimit = 100

// ListDevices returns devices registered on the platform, optionally filtered
// by device type and status. A nil opts lists up to DefaultListLimit devices.
// The result is never nil; no matches yields an empty slice.
func (c *Client) ListDevices(ctx context.Context, opts *ListDevicesOptions) ([]Device, error) {
	params := url.Values{}

	limit := DefaultListLimit
	if opts != nil {
		if opts.Limit > 0 {
			limit = opts.Limit
		}
		if opts.DeviceType != "" {
			params.Set("device_type", opts.DeviceType)
		}
		if opts.Status != "" {
			params.Set("status", opts.Status)
		}
	}
	params.Set("limit", strconv.Itoa(limit))

	data, err := c.get(ctx, "/devices?"+params.Encode())
	if err != nil {
		return nil, err
	}

	resp, err := unmarshalResponse[DeviceListResponse](data, "device list")
	if err != nil {
		return nil, err
	}

	if resp.Items == nil {
		return []Device{}, nil
	}
	return resp.Items, nil
}

// GetDevice returns a single device by ID.
func (c *Client) GetDevice(ctx context.Context, deviceID string) (*Device, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}

	data, err := c.get(ctx, "/devices/"+url.PathEscape(deviceID))
	if err != nil {
		return nil, err
	}

	return unmarshalResponse[Device](data, "device")
}

// RegisterDevice registers a new device and returns the created record.
// Location and metadata are omitted from the request body when nil.
func (c *Client) RegisterDevice(ctx context.Context, reg *DeviceRegistration) (*Device, error) {
	if reg.DeviceID == "" {
		return nil, ErrEmptyDeviceID
	}
	if reg.Name == "" {
		return nil, ErrEmptyDeviceName
	}
	if reg.DeviceType == "" {
		return nil, ErrEmptyDeviceType
	}

	data, err := c.post(ctx, "/devices/register", reg)
	if err != nil {
		c.LogDeviceRegistration(ctx, reg.DeviceID, reg.DeviceType, err)
		return nil, err
	}

	device, err := unmarshalResponse[Device](data, "registered device")
	if err != nil {
		return nil, err
	}

	c.LogDeviceRegistration(ctx, reg.DeviceID, reg.DeviceType, nil)
	return device, nil
}

// FilterDevices returns devices matching the given filter function.
func FilterDevices(devices []Device, filter func(Device) bool) []Device {
	result := make([]Device, 0, len(devices))
	for _, d := range devices {
		if filter(d) {
			result = append(result, d)
		}
	}
	return result
}

// FilterByDeviceType returns devices of a specific type.
func FilterByDeviceType(devices []Device, deviceType string) []Device {
	return FilterDevices(devices, func(d Device) bool {
		return d.DeviceType == deviceType
	})
}

// FindDeviceByID returns the device with the given ID.
// Returns a pointer to the device in the slice, or nil if not found.
func FindDeviceByID(devices []Device, deviceID string) *Device {
	for i := range devices {
		if devices[i].DeviceID == deviceID {
			return &devices[i]
		}
	}
	return nil
}

// FindDeviceByName returns the first device matching the given name.
// Returns a pointer to the device in the slice, or nil if not found.
func FindDeviceByName(devices []Device, name string) *Device {
	for i := range devices {
		if devices[i].Name == name {
			return &devices[i]
		}
	}
	return nil
}
