package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const deviceIDKey contextKey = "device_id"

// DefaultDeviceID is used when a client sends no X-Device-ID header, which
// keeps single-client setups (the CLI, curl) working without one.
const DefaultDeviceID = "default"

// Device extracts the X-Device-ID header into the request context. Each
// device gets its own flow controller, mirroring one app install per
// device.
func Device() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deviceID := r.Header.Get("X-Device-ID")
			if deviceID == "" {
				deviceID = DefaultDeviceID
			}
			ctx := context.WithValue(r.Context(), deviceIDKey, deviceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DeviceID returns the device id for the request.
func DeviceID(ctx context.Context) string {
	if id, ok := ctx.Value(deviceIDKey).(string); ok {
		return id
	}
	return DefaultDeviceID
}
