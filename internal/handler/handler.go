package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"freshpack-backend/internal/service"

	"github.com/labstack/echo/v4"
)

// respondError maps the service error taxonomy onto HTTP. Anything outside it
// becomes a 500 carrying fallback, with the cause kept for the error logger.
func respondError(err error, fallback string) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrPaymentVerification):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	}

	var svcErr *service.Error
	if status != http.StatusInternalServerError && errors.As(err, &svcErr) {
		return echo.NewHTTPError(status, svcErr.Message)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, fallback).SetInternal(err)
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}

func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
	}
	return uint(id), nil
}
