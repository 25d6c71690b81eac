// Package httpmsg extracts human-readable messages from heterogeneous
// error and response shapes.
package httpmsg

import (
	"net/http"

	"apputil/coerce"
)

// FromError resolves a best-effort message from err. Decoded response maps
// are probed in priority order: message, data.message, data.error (when a
// string), data.error.message, statusText, status. Native error values
// resolve to their Error() text and *http.Response values to their status
// line. Anything that does not resolve comes back unchanged; FromError
// never fails.
func FromError(err any) any {
	switch e := err.(type) {
	case error:
		return e.Error()
	case *http.Response:
		if e != nil && e.Status != "" {
			return e.Status
		}
		return err
	}

	m, ok := err.(map[string]any)
	if !ok {
		return err
	}
	if msg := m["message"]; coerce.Truthy(msg) {
		return msg
	}
	if data, ok := m["data"].(map[string]any); ok {
		if msg := data["message"]; coerce.Truthy(msg) {
			return msg
		}
		switch inner := data["error"].(type) {
		case string:
			if inner != "" {
				return inner
			}
		case map[string]any:
			if msg := inner["message"]; coerce.Truthy(msg) {
				return msg
			}
		}
	}
	if st := m["statusText"]; coerce.Truthy(st) {
		return st
	}
	if st := m["status"]; coerce.Truthy(st) {
		return st
	}
	return err
}
