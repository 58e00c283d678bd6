package natureos

import (
	"context"
	"net/url"
)

// SendCommand dispatches a command to a device and returns the server's
// synchronous response. Parameters may be empty but are always sent as an
// object, never null. The client does not track command execution status.
func (c *Client) SendCommand(ctx context.Context, deviceID, commandType string, parameters map[string]any) (CommandResult, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}
	if commandType == "" {
		return nil, ErrEmptyCommandType
	}

	if parameters == nil {
		parameters = map[string]any{}
	}

	req := CommandRequest{
		CommandType: commandType,
		Parameters:  parameters,
	}

	data, err := c.post(ctx, "/devices/"+url.PathEscape(deviceID)+"/commands", req)
	if err != nil {
		c.LogDeviceCommand(ctx, deviceID, commandType, err)
		return nil, err
	}

	result, err := unmarshalResponse[CommandResult](data, "command result")
	if err != nil {
		return nil, err
	}

	c.LogDeviceCommand(ctx, deviceID, commandType, nil)
	return *result, nil
}
