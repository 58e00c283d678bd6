package natureos

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// DefaultSensorDataLimit is the sensor-data limit applied when none is given.
const DefaultSensorDataLimit = 1000

// DefaultSensorDataWindow is the lookback applied when no start time is given.
const DefaultSensorDataWindow = 24 * time.Hour

// GetSensorData returns sensor readings for a device within a time window.
// A nil opts (or zero StartTime/EndTime) queries the window ending now and
// beginning 24 hours earlier, computed in UTC at call time.
func (c *Client) GetSensorData(ctx context.Context, deviceID string, opts *SensorDataOptions) ([]SensorReading, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}

	params := url.Values{}

	limit := DefaultSensorDataLimit
	if opts != nil && opts.Limit > 0 {
		limit = opts.Limit
	}
	params.Set("limit", strconv.Itoa(limit))

	if opts != nil && opts.SensorType != "" {
		params.Set("sensor_type", opts.SensorType)
	}

	now := time.Now().UTC()
	start := now.Add(-DefaultSensorDataWindow)
	end := now
	if opts != nil && !opts.StartTime.IsZero() {
		start = opts.StartTime
	}
	if opts != nil && !opts.EndTime.IsZero() {
		end = opts.EndTime
	}
	params.Set("start_time", start.Format(time.RFC3339))
	params.Set("end_time", end.Format(time.RFC3339))

	data, err := c.get(ctx, "/devices/"+url.PathEscape(deviceID)+"/sensor-data?"+params.Encode())
	if err != nil {
		return nil, err
	}

	resp, err := unmarshalResponse[SensorDataResponse](data, "sensor data")
	if err != nil {
		return nil, err
	}

	if resp.Items == nil {
		return []SensorReading{}, nil
	}
	return resp.Items, nil
}
