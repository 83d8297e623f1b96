package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is one line of a user's pending selection. Removal flips IsActive.
type Cart struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"index:idx_carts_user_pack;not null" json:"userId"`
	PackID          *uint           `gorm:"index:idx_carts_user_pack" json:"packId"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	IsActive        bool            `gorm:"index;not null" json:"isActive"`
	IsCustom        bool            `gorm:"not null" json:"isCustom"`
	CustomPackName  *string         `gorm:"size:255" json:"customPackName"`
	CustomPackItems *string         `gorm:"type:text" json:"customPackItems"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Pack *Pack `gorm:"foreignKey:PackID" json:"pack,omitempty"`
}

func (Cart) TableName() string { return "Carts" }
