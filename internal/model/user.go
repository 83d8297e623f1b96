package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"size:255;index;not null" json:"email"`
	Phone     *string        `gorm:"size:32" json:"phone"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      Role           `gorm:"size:16;index;not null" json:"role"`
	IsActive  bool           `gorm:"not null" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "Users" }

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Address struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"userId"`
	Type      AddressType    `gorm:"size:16;not null" json:"type"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Address   string         `gorm:"type:text;not null" json:"address"`
	IsDefault bool           `gorm:"not null" json:"isDefault"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Address) TableName() string { return "Addresses" }
