package handler

import (
	"github.com/labstack/echo/v4"

	"accounts/internal/delivery/http/response"
	"accounts/internal/usecase"
)

// UserHandler serves the account CRUD endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// List returns every stored user without password material.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUsecase.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return response.Success(c, "Users listed successfully", toUserViews(users))
}

// Get looks a user up by identifier. An absent user is a successful lookup
// with empty content, not an error.
func (h *UserHandler) Get(c echo.Context) error {
	var input usecase.IdentifierInput
	if err := bindPayload(c, &input); err != nil {
		return err
	}

	user, err := h.userUsecase.GetUser(c.Request().Context(), input.ID)
	if err != nil {
		return err
	}

	var content any
	if view := toUserView(user); view != nil {
		content = view
	}
	return response.Success(c, "User search successful", content)
}

// Create registers a user and echoes the stored record back.
func (h *UserHandler) Create(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := bindPayload(c, &input); err != nil {
		return err
	}

	user, err := h.userUsecase.CreateUser(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, "User created successfully", toUserView(user))
}

// Update overwrites a user's profile fields.
func (h *UserHandler) Update(c echo.Context) error {
	var input usecase.UpdateUserInput
	if err := bindPayload(c, &input); err != nil {
		return err
	}

	if _, err := h.userUsecase.UpdateUser(c.Request().Context(), &input); err != nil {
		return err
	}

	return response.Success(c, "User updated successfully", nil)
}

// Delete removes a user. Deleting an unknown identifier still succeeds.
func (h *UserHandler) Delete(c echo.Context) error {
	var input usecase.IdentifierInput
	if err := bindPayload(c, &input); err != nil {
		return err
	}

	if err := h.userUsecase.DeleteUser(c.Request().Context(), input.ID); err != nil {
		return err
	}

	return response.Success(c, "User deleted successfully", nil)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, "Service is healthy", map[string]string{"status": "ok"})
}
