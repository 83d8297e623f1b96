package handler

import (
	"net/http"

	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/middleware"
	"freshpack-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.orderService.Create(ctx, middleware.Actor(c), &req)
	if err != nil {
		return respondError(err, "Failed to create order")
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListAll(ctx)
	if err != nil {
		return respondError(err, "Failed to fetch orders")
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListByUser(ctx, middleware.Actor(c), userID)
	if err != nil {
		return respondError(err, "Failed to fetch orders")
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "orderId")
	if err != nil {
		return err
	}

	order, err := h.orderService.Get(ctx, middleware.Actor(c), id)
	if err != nil {
		return respondError(err, "Failed to fetch order")
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return respondError(err, "Failed to update order status")
	}

	return c.JSON(http.StatusOK, order)
}
