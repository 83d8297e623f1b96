package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "INR"

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"index;not null" json:"userId"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	DeliveryAddress string          `gorm:"type:text;not null" json:"deliveryAddress"`
	PaymentMethod   PaymentMethod   `gorm:"size:32;not null" json:"paymentMethod"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	IsCustom        bool            `gorm:"not null" json:"isCustom"`
	CustomPackName  *string         `gorm:"size:255" json:"customPackName"`
	CustomPackItems *string         `gorm:"type:text" json:"customPackItems"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	PackID          *uint           `gorm:"index" json:"packId"`
	Status          OrderStatus     `gorm:"size:16;index;not null" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"size:16;not null" json:"paymentStatus"`
	OrderDate       time.Time       `gorm:"not null" json:"orderDate"`
	DeliveryDate    *time.Time      `json:"deliveryDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	User         *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Pack         *Pack              `gorm:"foreignKey:PackID" json:"pack,omitempty"`
	Payments     []Payment          `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
	PackContents []OrderPackContent `gorm:"foreignKey:OrderID" json:"packContents,omitempty"`
}

func (Order) TableName() string { return "Orders" }

type Payment struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	OrderID           uint            `gorm:"index;not null" json:"orderId"`
	UserID            uint            `gorm:"index;not null" json:"userId"`
	Amount            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency          string          `gorm:"size:8;not null" json:"currency"`
	PaymentMethod     PaymentMethod   `gorm:"size:32" json:"paymentMethod"`
	Status            PaymentStatus   `gorm:"size:16;index;not null" json:"status"`
	TransactionID     *string         `gorm:"size:255" json:"transactionId"`
	RazorpayOrderID   *string         `gorm:"size:255;index" json:"razorpayOrderId"`
	RazorpayPaymentID *string         `gorm:"size:255" json:"razorpayPaymentId"`
	RazorpaySignature *string         `gorm:"size:255" json:"razorpaySignature"`
	GatewayResponse   *string         `gorm:"type:text" json:"gatewayResponse"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`

	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Payment) TableName() string { return "Payments" }

// OrderPackContent freezes one pack line at order time so later edits to the
// pack do not rewrite order history.
type OrderPackContent struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"index;not null" json:"orderId"`
	ProductID   uint            `gorm:"not null" json:"productId"`
	ProductName string          `gorm:"size:255;not null" json:"productName"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (OrderPackContent) TableName() string { return "OrderPackContents" }
