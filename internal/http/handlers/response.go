package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saradorri/safecasino/internal/domain"
)

// APIResponse is the uniform response envelope
type APIResponse struct {
	Success    bool                `json:"success"`
	StatusCode int                 `json:"status_code"`
	Message    string              `json:"message,omitempty"`
	Data       interface{}         `json:"data,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Timestamp  time.Time           `json:"timestamp"`
}

// respond writes a success envelope
func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, APIResponse{
		Success:    true,
		StatusCode: status,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	})
}

// respondError maps an error onto the envelope. Unknown errors become a
// generic 500 so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	appErr, ok := domain.IsAppError(err)
	if !ok {
		appErr = domain.NewInternalError("", err)
	}

	if requestID, exists := c.Get("request_id"); exists {
		appErr.RequestID, _ = requestID.(string)
	}

	c.JSON(appErr.HTTPStatus, APIResponse{
		Success:    false,
		StatusCode: appErr.HTTPStatus,
		Message:    appErr.Message,
		Errors:     appErr.Fields,
		Timestamp:  time.Now().UTC(),
	})
}

// respondValidation reports gin binding failures
func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success:    false,
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request body: " + err.Error(),
		Timestamp:  time.Now().UTC(),
	})
}
