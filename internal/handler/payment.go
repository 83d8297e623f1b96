package handler

import (
	"errors"
	"net/http"

	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/middleware"
	"freshpack-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	ctx := c.Request().Context()

	payments, err := h.paymentService.List(ctx)
	if err != nil {
		return respondError(err, "Failed to fetch payments")
	}

	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) UpdateOrderPayment(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := paramID(c, "orderId")
	if err != nil {
		return err
	}

	var req dto.UpdatePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payment, err := h.paymentService.UpdateForOrder(ctx, middleware.Actor(c), orderID, &req)
	if err != nil {
		return respondError(err, "Failed to update payment")
	}

	return c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) CreateRazorpayOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateRazorpayOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.paymentService.CreateRazorpayOrder(ctx, middleware.Actor(c), &req)
	if err != nil {
		return respondError(err, "Failed to create payment order")
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VerifyPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.paymentService.Verify(ctx, middleware.Actor(c), &req)
	if errors.Is(err, service.ErrPaymentVerification) && resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}
	if err != nil {
		return respondError(err, "Payment verification failed")
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) CreateManualPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ManualPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payment, err := h.paymentService.CreateManual(ctx, &req)
	if err != nil {
		return respondError(err, "Failed to create payment")
	}

	return c.JSON(http.StatusCreated, payment)
}
