package handler

import (
	"net/http"

	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name, email, and password are required")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.authService.Register(ctx, &req)
	if err != nil {
		return respondError(err, "Registration failed")
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.Login(ctx, &req)
	if err != nil {
		return respondError(err, "Login failed")
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.AdminLogin(ctx, &req)
	if err != nil {
		return respondError(err, "Login failed")
	}

	return c.JSON(http.StatusOK, resp)
}
