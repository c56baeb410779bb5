package response

import (
	"encoding/json"
	"net/http"

	"docbuilder/pkg/logger"
)

// Base is the envelope every store response carries. Failures are reported
// through the same shape with Success=false and an HTTP 200 status; the
// client inspects the flag, never the status code.
type Base struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(message string) Base {
	return Base{Success: true, Message: message}
}

// JSON writes the payload with status 200.
func JSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Sugar.Errorf("Failed to encode response: %v", err)
	}
}

// Fail writes a Success=false envelope with the given message.
func Fail(w http.ResponseWriter, message string) {
	JSON(w, Base{Success: false, Message: message})
}
