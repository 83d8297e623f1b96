package service

import (
	"context"
	"fmt"
	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"

	"gorm.io/gorm"
)

type AddressService interface {
	List(ctx context.Context, actor Actor) ([]*model.Address, error)
	Create(ctx context.Context, actor Actor, req *dto.AddressRequest) (*model.Address, error)
	Update(ctx context.Context, actor Actor, id uint, req *dto.UpdateAddressRequest) (*model.Address, error)
	Delete(ctx context.Context, actor Actor, id uint) error
}

type addressServiceImpl struct {
	db          *gorm.DB
	addressRepo repository.AddressRepository
}

func NewAddressService(db *gorm.DB, addressRepo repository.AddressRepository) AddressService {
	return &addressServiceImpl{
		db:          db,
		addressRepo: addressRepo,
	}
}

func (s *addressServiceImpl) List(ctx context.Context, actor Actor) ([]*model.Address, error) {
	return s.addressRepo.ListByUser(ctx, actor.ID)
}

func (s *addressServiceImpl) Create(ctx context.Context, actor Actor, req *dto.AddressRequest) (*model.Address, error) {
	addressType := req.Type
	if addressType == "" {
		addressType = model.AddressHome
	}

	address := &model.Address{
		UserID:    actor.ID,
		Type:      addressType,
		Name:      req.Name,
		Address:   req.Address,
		IsDefault: req.IsDefault,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := s.addressRepo.ClearDefault(ctx, tx, actor.ID); err != nil {
				return fmt.Errorf("clear default address: %w", err)
			}
		}
		return s.addressRepo.Create(ctx, tx, address)
	})
	if err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}

	return address, nil
}

func (s *addressServiceImpl) owned(ctx context.Context, actor Actor, id uint) (*model.Address, error) {
	address, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Address")
	}
	if address.UserID != actor.ID {
		return nil, newError(ErrForbidden, "Access denied")
	}
	return address, nil
}

func (s *addressServiceImpl) Update(ctx context.Context, actor Actor, id uint, req *dto.UpdateAddressRequest) (*model.Address, error) {
	address, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		address.Type = *req.Type
	}
	if req.Name != nil {
		address.Name = *req.Name
	}
	if req.Address != nil {
		address.Address = *req.Address
	}
	if req.IsDefault != nil {
		address.IsDefault = *req.IsDefault
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := s.addressRepo.ClearDefault(ctx, tx, address.UserID); err != nil {
				return fmt.Errorf("clear default address: %w", err)
			}
		}
		return s.addressRepo.Save(ctx, tx, address)
	})
	if err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}

	return address, nil
}

func (s *addressServiceImpl) Delete(ctx context.Context, actor Actor, id uint) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}

	if err := s.addressRepo.Delete(ctx, id); err != nil {
		return translate(err, "Address")
	}
	return nil
}
