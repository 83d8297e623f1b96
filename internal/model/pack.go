package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PackType struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Duration  PackDuration    `gorm:"size:16;not null" json:"duration"`
	BasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	IsActive  bool            `gorm:"not null" json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (PackType) TableName() string { return "PackTypes" }

type Pack struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description"`
	CategoryID  uint            `gorm:"index;not null" json:"categoryId"`
	PackTypeID  uint            `gorm:"index;not null" json:"packTypeId"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	FinalPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"finalPrice"`
	IsActive    bool            `gorm:"not null" json:"isActive"`
	ValidFrom   time.Time       `gorm:"not null" json:"validFrom"`
	ValidUntil  time.Time       `gorm:"not null" json:"validUntil"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	Category *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	PackType *PackType     `gorm:"foreignKey:PackTypeID" json:"packType,omitempty"`
	Products []PackProduct `gorm:"foreignKey:PackID" json:"products,omitempty"`
}

func (Pack) TableName() string { return "Packs" }

// Purchasable reports whether the pack can be put in a cart or ordered at t.
func (p *Pack) Purchasable(t time.Time) bool {
	return p.IsActive && !t.Before(p.ValidFrom) && !t.After(p.ValidUntil)
}

// PackProduct is one line of a pack's composition. UnitPrice is locked in at
// composition time and does not follow Product.Price.
type PackProduct struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	PackID    uint            `gorm:"index;not null" json:"packId"`
	ProductID uint            `gorm:"index;not null" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (PackProduct) TableName() string { return "PackProducts" }

// Subtotal is UnitPrice × Quantity.
func (pp PackProduct) Subtotal() decimal.Decimal {
	return pp.UnitPrice.Mul(decimal.NewFromInt(int64(pp.Quantity)))
}

// PackPrice sums the subtotals of a composition.
func PackPrice(items []PackProduct) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
