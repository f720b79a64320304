package helpers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error      string `json:"error"`
	URL        string `json:"url"`
	KeyPreview string `json:"key_preview"`
}

// Success writes data with status 200. Failures of downstream services are
// reported inside data, never through the status line.
func Success(e *core.RequestEvent, data interface{}) error {
	return e.JSON(http.StatusOK, data)
}

// Error logs the failure and writes it with status 200.
func Error(e *core.RequestEvent, resp ErrorResponse) error {
	Logging("error", resp.Error, "url", resp.URL)
	return e.JSON(http.StatusOK, resp)
}
