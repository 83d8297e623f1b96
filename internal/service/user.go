package service

import (
	"context"
	"fmt"
	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"
	"strings"
)

type UserService interface {
	List(ctx context.Context, role model.Role) ([]*model.User, error)
	Get(ctx context.Context, actor Actor, id uint) (*model.User, error)
	Update(ctx context.Context, actor Actor, id uint, req *dto.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id uint) error
	ToggleStatus(ctx context.Context, id uint) (*model.User, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) List(ctx context.Context, role model.Role) ([]*model.User, error) {
	if role != "" && !role.Valid() {
		return nil, validationError("Invalid role %q", role)
	}
	return s.userRepo.List(ctx, role)
}

func (s *userServiceImpl) Get(ctx context.Context, actor Actor, id uint) (*model.User, error) {
	if err := requireAccess(actor, id); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "User")
	}
	return user, nil
}

func (s *userServiceImpl) Update(ctx context.Context, actor Actor, id uint, req *dto.UpdateUserRequest) (*model.User, error) {
	if err := requireAccess(actor, id); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && (req.Role != nil || req.IsActive != nil) {
		return nil, newError(ErrForbidden, "Only admins can change role or status")
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashed
	}

	if len(fields) > 0 {
		if err := s.userRepo.Update(ctx, id, fields); err != nil {
			return nil, translate(err, "User")
		}
	}

	return s.Get(ctx, actor, id)
}

func (s *userServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return translate(err, "User")
	}
	return nil
}

func (s *userServiceImpl) ToggleStatus(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "User")
	}

	user.IsActive = !user.IsActive
	if err := s.userRepo.Update(ctx, id, map[string]interface{}{"is_active": user.IsActive}); err != nil {
		return nil, fmt.Errorf("toggle user status: %w", err)
	}

	return user, nil
}
