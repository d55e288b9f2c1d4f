package handler

import (
	"time"

	"github.com/labstack/echo/v4"
)

const apiVersion = "1.0"

// Meta carries the response timestamp and API version.
type Meta struct {
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// Response is the uniform success envelope.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    Meta        `json:"meta"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func respond(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, Response{
		Success: true,
		Data:    data,
		Message: message,
		Meta: Meta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   apiVersion,
		},
	})
}
