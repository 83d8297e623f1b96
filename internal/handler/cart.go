package handler

import (
	"net/http"

	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/middleware"
	"freshpack-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) ListOwnCart(c echo.Context) error {
	actor := middleware.Actor(c)
	return h.list(c, actor, actor.ID)
}

func (h *CartHandler) ListUserCart(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}
	return h.list(c, middleware.Actor(c), userID)
}

func (h *CartHandler) list(c echo.Context, actor service.Actor, userID uint) error {
	ctx := c.Request().Context()

	items, err := h.cartService.List(ctx, actor, userID)
	if err != nil {
		return respondError(err, "Failed to fetch cart")
	}

	return c.JSON(http.StatusOK, items)
}

// AddToCart answers 201 for a new line and 200 when an existing line was
// incremented.
func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, created, err := h.cartService.Add(ctx, middleware.Actor(c), &req)
	if err != nil {
		return respondError(err, "Failed to add to cart")
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, item)
}

func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.cartService.UpdateQuantity(ctx, middleware.Actor(c), id, req.Quantity)
	if err != nil {
		return respondError(err, "Failed to update cart")
	}

	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) RemoveCartItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.cartService.Remove(ctx, middleware.Actor(c), id); err != nil {
		return respondError(err, "Failed to remove from cart")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Item removed from cart"})
}
