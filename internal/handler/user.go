package handler

import (
	"net/http"

	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/middleware"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService    service.UserService
	addressService service.AddressService
}

func NewUserHandler(userService service.UserService, addressService service.AddressService) *UserHandler {
	return &UserHandler{
		userService:    userService,
		addressService: addressService,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.List(ctx, model.Role(c.QueryParam("role")))
	if err != nil {
		return respondError(err, "Failed to fetch users")
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userService.Get(ctx, middleware.Actor(c), id)
	if err != nil {
		return respondError(err, "Failed to fetch user")
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userService.Update(ctx, middleware.Actor(c), id, &req)
	if err != nil {
		return respondError(err, "Failed to update user")
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userService.Delete(ctx, id); err != nil {
		return respondError(err, "Failed to delete user")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

func (h *UserHandler) ToggleUserStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userService.ToggleStatus(ctx, id)
	if err != nil {
		return respondError(err, "Failed to update user status")
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListAddresses(c echo.Context) error {
	ctx := c.Request().Context()

	addresses, err := h.addressService.List(ctx, middleware.Actor(c))
	if err != nil {
		return respondError(err, "Failed to fetch addresses")
	}

	return c.JSON(http.StatusOK, addresses)
}

func (h *UserHandler) CreateAddress(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.addressService.Create(ctx, middleware.Actor(c), &req)
	if err != nil {
		return respondError(err, "Failed to create address")
	}

	return c.JSON(http.StatusCreated, address)
}

func (h *UserHandler) UpdateAddress(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateAddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.addressService.Update(ctx, middleware.Actor(c), id, &req)
	if err != nil {
		return respondError(err, "Failed to update address")
	}

	return c.JSON(http.StatusOK, address)
}

func (h *UserHandler) DeleteAddress(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.addressService.Delete(ctx, middleware.Actor(c), id); err != nil {
		return respondError(err, "Failed to delete address")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Address deleted successfully"})
}
