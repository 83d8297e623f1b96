package dto

import (
	"freshpack-backend/internal/model"
	"time"

	"github.com/shopspring/decimal"
)

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"isActive"`
}

type UnitTypeRequest struct {
	Name         string  `json:"name" validate:"required"`
	Abbreviation string  `json:"abbreviation" validate:"required"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"isActive"`
}

type ProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Image       *string          `json:"image"`
	CategoryID  uint             `json:"categoryId" validate:"required"`
	UnitTypeID  *uint            `json:"unitTypeId"`
	Quantity    *decimal.Decimal `json:"quantity"`
	IsAvailable *bool            `json:"isAvailable"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
}

type PackTypeRequest struct {
	Name      string             `json:"name" validate:"required"`
	Duration  model.PackDuration `json:"duration" validate:"required,oneof=weekly bi-weekly monthly"`
	BasePrice decimal.Decimal    `json:"basePrice"`
	IsActive  *bool              `json:"isActive"`
}

type PackRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	CategoryID  uint             `json:"categoryId" validate:"required"`
	PackTypeID  uint             `json:"packTypeId" validate:"required"`
	BasePrice   decimal.Decimal  `json:"basePrice"`
	FinalPrice  *decimal.Decimal `json:"finalPrice"`
	IsActive    *bool            `json:"isActive"`
	ValidFrom   time.Time        `json:"validFrom" validate:"required"`
	ValidUntil  time.Time        `json:"validUntil" validate:"required"`
}

type PackProductItem struct {
	ProductID uint            `json:"productId" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type BulkPackProductsRequest struct {
	PackID   uint              `json:"packId" validate:"required"`
	Products []PackProductItem `json:"products" validate:"dive"`
}

type DeletePackProductsResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}
