package handler

import (
	"github.com/labstack/echo/v4"

	"accounts/internal/delivery/http/response"
	"accounts/internal/usecase"
)

// AuthHandler serves account registration and sign-in.
type AuthHandler struct {
	userUsecase usecase.UserUsecase
}

func NewAuthHandler(userUsecase usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{userUsecase: userUsecase}
}

// Signup registers a new account. The created record is not echoed back.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := bindPayload(c, &input); err != nil {
		return err
	}

	if _, err := h.userUsecase.CreateUser(c.Request().Context(), &input); err != nil {
		return err
	}

	return response.Success(c, "User signup successful", nil)
}

// Login authenticates by email and password and issues a token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.AuthenticateInput
	if err := bindPayload(c, &input); err != nil {
		return err
	}

	output, err := h.userUsecase.Authenticate(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	content := map[string]any{
		"logged": true,
		"id":     output.User.ID,
	}
	return response.SuccessWithToken(c, "Sign in successful", content, output.Token)
}
