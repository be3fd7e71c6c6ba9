// Package respond writes the uniform response envelope. Every handler reply,
// success or failure, goes through here; statusCode inside the body always
// matches the transport status.
package respond

import (
	"github.com/gin-gonic/gin"

	"lunchscan/internal/apperr"
)

// Envelope is the wire shape shared by all endpoints.
type Envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// OK writes a success envelope with the given transport status.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success:    true,
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// Fail writes an error envelope.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success:    false,
		StatusCode: status,
		Message:    message,
		Data:       nil,
	})
}

// Error maps a service error onto the envelope, collapsing anything that is
// not an apperr.Error to a generic internal failure.
func Error(c *gin.Context, err error, fallback string) {
	Fail(c, apperr.Status(err), apperr.Message(err, fallback))
}

// AbortFail writes an error envelope and stops the middleware chain.
func AbortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Success:    false,
		StatusCode: status,
		Message:    message,
		Data:       nil,
	})
}
