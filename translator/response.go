package translator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// decodeResponse maps a raw service response onto out. A nil out means the
// operation only needs a success acknowledgement. Decoding is a pure,
// single-attempt transform: no retry, no recovery.
func decodeResponse(resp *http.Response, body []byte, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serviceError(resp.StatusCode, extractErrorMessage(body))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return decodeError(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// extractErrorMessage pulls a human-readable message out of an error body.
// The service has used a few envelope shapes over time; fall back to the raw
// body when none match.
func extractErrorMessage(body []byte) string {
	var envelope struct {
		Error        json.RawMessage `json:"error"`
		ErrorMessage string          `json:"error_message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Error) > 0 {
			var msg string
			if json.Unmarshal(envelope.Error, &msg) == nil && msg != "" {
				return msg
			}
			var obj struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(envelope.Error, &obj) == nil && obj.Message != "" {
				return obj.Message
			}
		}
		if envelope.ErrorMessage != "" {
			return envelope.ErrorMessage
		}
	}
	return strings.TrimSpace(string(body))
}
