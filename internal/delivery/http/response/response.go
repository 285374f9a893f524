// Package response renders the JSON envelope every endpoint returns.
//
// The envelope duplicates the HTTP status code in the body so clients that
// only inspect the payload can still branch on it:
//
//	{"status": 200, "data": {"message": "...", "content": ...}}
//
// Authentication responses additionally carry a securityContext holding the
// issued token.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the top-level response body.
type Envelope struct {
	Status          int              `json:"status"`
	SecurityContext *SecurityContext `json:"securityContext,omitempty"`
	Data            Data             `json:"data"`
}

// Data carries the human-readable message plus the operation result, if any.
type Data struct {
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// SecurityContext carries credentials issued alongside a successful response.
type SecurityContext struct {
	Token string `json:"token"`
}

// Success writes a 200 envelope with the given message and content.
func Success(c echo.Context, message string, content any) error {
	return c.JSON(http.StatusOK, Envelope{
		Status: http.StatusOK,
		Data:   Data{Message: message, Content: content},
	})
}

// SuccessWithToken writes a 200 envelope that also carries an issued token in
// the securityContext section.
func SuccessWithToken(c echo.Context, message string, content any, token string) error {
	return c.JSON(http.StatusOK, Envelope{
		Status:          http.StatusOK,
		SecurityContext: &SecurityContext{Token: token},
		Data:            Data{Message: message, Content: content},
	})
}

// Failure writes an error envelope. The HTTP status and the in-body status
// always match.
func Failure(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{
		Status: status,
		Data:   Data{Message: message},
	})
}
