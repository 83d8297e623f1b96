package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;index;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description"`
	Image       *string        `gorm:"size:512" json:"image"`
	IsActive    bool           `gorm:"not null" json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Category) TableName() string { return "Categories" }

type UnitType struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Abbreviation string         `gorm:"size:32;index;not null" json:"abbreviation"`
	Description  *string        `gorm:"type:text" json:"description"`
	IsActive     bool           `gorm:"not null" json:"isActive"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UnitType) TableName() string { return "UnitTypes" }

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       *string         `gorm:"size:512" json:"image"`
	CategoryID  uint            `gorm:"index;not null" json:"categoryId"`
	UnitTypeID  *uint           `gorm:"index" json:"unitTypeId"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"` // pack-size multiplier
	IsAvailable bool            `gorm:"not null" json:"isAvailable"`
	Stock       int             `gorm:"not null" json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	UnitType *UnitType `gorm:"foreignKey:UnitTypeID" json:"unitType,omitempty"`
}

func (Product) TableName() string { return "Products" }
