// Package natureos provides a Go client library for the NatureOS
// device-management API.
//
// This library provides access to the NatureOS platform, including device
// registration and lookup, sensor-data retrieval, command dispatch, and a
// specialized registration path for MycoBrain hardware.
//
// # Authentication
//
// The client authenticates with a bearer API key and optionally scopes all
// requests to a tenant. Both can be supplied explicitly or through the
// NATUREOS_API_KEY and NATUREOS_TENANT_ID environment variables:
//
//	client := natureos.NewClient(
//	    natureos.WithAPIKey("your-api-key"),
//	    natureos.WithTenantID("acme-labs"),
//	)
//	defer client.Close()
//
// # Basic Usage
//
// List registered devices:
//
//	devices, err := client.ListDevices(ctx, nil)
//	for _, device := range devices {
//	    fmt.Printf("Device: %s (%s)\n", device.Name, device.DeviceID)
//	}
//
// Retrieve recent sensor data (defaults to the last 24 hours):
//
//	readings, err := client.GetSensorData(ctx, "dev-1", nil)
//
// Send a command:
//
//	result, err := client.SendCommand(ctx, "dev-1", "set_led", map[string]any{
//	    "color": "green",
//	})
//
// Register a MycoBrain device:
//
//	device, err := client.RegisterMycoBrainDevice(ctx, &natureos.MycoBrainRegistration{
//	    DeviceID:        "mb-0042",
//	    SerialNumber:    "MB-SN-0042",
//	    Name:            "Greenhouse unit 42",
//	    FirmwareVersion: "1.4.2",
//	})
//
// # Error Handling
//
// The library maps API failures to typed errors:
//
//	device, err := client.GetDevice(ctx, deviceID)
//	if err != nil {
//	    if natureos.IsNotFound(err) {
//	        // Device doesn't exist
//	    } else if natureos.IsRateLimited(err) {
//	        // Too many requests
//	    }
//	}
//
// # Retries
//
// Automatic retry with exponential backoff is disabled by default and can be
// enabled for transient failures (rate limits, server errors, timeouts):
//
//	client := natureos.NewClient(natureos.WithMaxRetries(3))
package natureos
