package handler

import (
	"bytes"
	"encoding/json"
	"io"

	domainerrors "accounts/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindPayload decodes the request body into target. Bodies may arrive either
// as the object itself or wrapped as {"json": "<stringified object>"}; both
// forms are accepted. An empty body leaves target at its zero value so the
// service layer reports the missing fields.
func bindPayload(c echo.Context, target any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body could not be read")
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}

	var wrapper struct {
		JSON string `json:"json"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.JSON != "" {
		body = []byte(wrapper.JSON)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}
	return nil
}
