package dto

import "freshpack-backend/internal/model"

type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserSummary struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

func NewUserSummary(u *model.User) UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

type AuthResponse struct {
	Message string      `json:"message,omitempty"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type UpdateUserRequest struct {
	Name     *string     `json:"name"`
	Email    *string     `json:"email" validate:"omitempty,email"`
	Phone    *string     `json:"phone"`
	Address  *string     `json:"address"`
	Password *string     `json:"password"`
	Role     *model.Role `json:"role" validate:"omitempty,oneof=customer admin delivery"`
	IsActive *bool       `json:"isActive"`
}

type AddressRequest struct {
	Type      model.AddressType `json:"type" validate:"omitempty,oneof=home work other"`
	Name      string            `json:"name" validate:"required"`
	Address   string            `json:"address" validate:"required"`
	IsDefault bool              `json:"isDefault"`
}

type UpdateAddressRequest struct {
	Type      *model.AddressType `json:"type" validate:"omitempty,oneof=home work other"`
	Name      *string            `json:"name" validate:"omitempty,min=1"`
	Address   *string            `json:"address" validate:"omitempty,min=1"`
	IsDefault *bool              `json:"isDefault"`
}
