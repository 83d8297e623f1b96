package dto

import (
	"freshpack-backend/internal/model"

	"github.com/shopspring/decimal"
)

type AddToCartRequest struct {
	PackID          *uint            `json:"packId"`
	Quantity        int              `json:"quantity" validate:"required,min=1"`
	IsCustom        bool             `json:"isCustom"`
	CustomPackName  *string          `json:"customPackName"`
	CustomPackItems OpaqueText       `json:"customPackItems"`
	UnitPrice       *decimal.Decimal `json:"unitPrice"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	PackID          *uint               `json:"packId"`
	Quantity        int                 `json:"quantity" validate:"required,min=1"`
	DeliveryAddress string              `json:"deliveryAddress"`
	AddressID       *uint               `json:"addressId"`
	PaymentMethod   model.PaymentMethod `json:"paymentMethod" validate:"required,oneof=cod card upi net_banking wallet razorpay"`
	TotalAmount     *decimal.Decimal    `json:"totalAmount"`
	IsCustom        bool                `json:"isCustom"`
	CustomPackName  *string             `json:"customPackName"`
	CustomPackItems OpaqueText          `json:"customPackItems"`
	UnitPrice       *decimal.Decimal    `json:"unitPrice"`
	PaymentNonce    string              `json:"paymentNonce"`
}

type CreateOrderResponse struct {
	Order           *model.Order   `json:"order"`
	Payment         *model.Payment `json:"payment"`
	RazorpayOrderID string         `json:"razorpayOrderId,omitempty"`
	Amount          int64          `json:"amount,omitempty"`
	Currency        string         `json:"currency,omitempty"`
	KeyID           string         `json:"keyId,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" validate:"required,oneof=pending processing confirmed shipped delivered cancelled"`
}

type UpdatePaymentRequest struct {
	RazorpayPaymentID *string             `json:"razorpayPaymentId"`
	RazorpayOrderID   *string             `json:"razorpayOrderId"`
	Status            model.PaymentStatus `json:"status" validate:"required,oneof=pending processing completed failed refunded"`
}

type CreateRazorpayOrderRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	OrderID uint            `json:"orderId" validate:"required"`
}

type CreateRazorpayOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId,omitempty"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string          `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string          `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string          `json:"razorpay_signature" validate:"required"`
	OrderID           uint            `json:"orderId" validate:"required"`
	Amount            decimal.Decimal `json:"amount"`
}

type VerifyPaymentResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Payment *model.Payment `json:"payment,omitempty"`
}

type ManualPaymentRequest struct {
	OrderID       uint                `json:"orderId" validate:"required"`
	PaymentMethod model.PaymentMethod `json:"paymentMethod" validate:"omitempty,oneof=cod card upi net_banking wallet razorpay"`
}
