package service

import (
	"context"
	"errors"
	"fmt"
	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService interface {
	List(ctx context.Context, actor Actor, userID uint) ([]*model.Cart, error)
	// Add returns the resulting line and whether a new line was created.
	Add(ctx context.Context, actor Actor, req *dto.AddToCartRequest) (*model.Cart, bool, error)
	UpdateQuantity(ctx context.Context, actor Actor, id uint, quantity int) (*model.Cart, error)
	Remove(ctx context.Context, actor Actor, id uint) error
}

type cartServiceImpl struct {
	db       *gorm.DB
	cartRepo repository.CartRepository
	packRepo repository.PackRepository
	now      func() time.Time
}

func NewCartService(db *gorm.DB, cartRepo repository.CartRepository, packRepo repository.PackRepository) CartService {
	return &cartServiceImpl{
		db:       db,
		cartRepo: cartRepo,
		packRepo: packRepo,
		now:      time.Now,
	}
}

func (s *cartServiceImpl) List(ctx context.Context, actor Actor, userID uint) ([]*model.Cart, error) {
	if err := requireAccess(actor, userID); err != nil {
		return nil, err
	}
	return s.cartRepo.ListActive(ctx, userID)
}

func (s *cartServiceImpl) Add(ctx context.Context, actor Actor, req *dto.AddToCartRequest) (*model.Cart, bool, error) {
	if req.Quantity < 1 {
		return nil, false, validationError("Quantity must be at least 1")
	}

	if req.IsCustom {
		return s.addCustom(ctx, actor, req)
	}

	if req.PackID == nil {
		return nil, false, validationError("packId is required")
	}

	pack, err := s.packRepo.FindByID(ctx, *req.PackID)
	if err != nil {
		return nil, false, translate(err, "Pack")
	}
	if !pack.Purchasable(s.now()) {
		return nil, false, validationError("Pack is not available")
	}

	var (
		line    *model.Cart
		created bool
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.cartRepo.FindActiveByPack(ctx, tx, actor.ID, pack.ID)
		switch {
		case err == nil:
			if err := s.cartRepo.IncrementQuantity(ctx, tx, existing.ID, req.Quantity); err != nil {
				return fmt.Errorf("increment cart line: %w", err)
			}
			line, err = s.cartRepo.FindActive(ctx, tx, existing.ID)
			return err
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("find cart line: %w", err)
		}

		line = &model.Cart{
			UserID:     actor.ID,
			PackID:     &pack.ID,
			Quantity:   req.Quantity,
			UnitPrice:  pack.FinalPrice,
			TotalPrice: pack.FinalPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
			IsActive:   true,
		}
		created = true
		return s.cartRepo.Create(ctx, tx, line)
	})
	if err != nil {
		return nil, false, err
	}

	line.Pack = pack
	return line, created, nil
}

func (s *cartServiceImpl) addCustom(ctx context.Context, actor Actor, req *dto.AddToCartRequest) (*model.Cart, bool, error) {
	if req.CustomPackName == nil || strings.TrimSpace(*req.CustomPackName) == "" {
		return nil, false, validationError("customPackName is required for custom items")
	}
	if req.UnitPrice == nil || !req.UnitPrice.IsPositive() {
		return nil, false, validationError("unitPrice must be greater than 0 for custom items")
	}

	line := &model.Cart{
		UserID:          actor.ID,
		Quantity:        req.Quantity,
		UnitPrice:       *req.UnitPrice,
		TotalPrice:      req.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		IsActive:        true,
		IsCustom:        true,
		CustomPackName:  req.CustomPackName,
		CustomPackItems: req.CustomPackItems.Ptr(),
	}
	if err := s.cartRepo.Create(ctx, s.db, line); err != nil {
		return nil, false, fmt.Errorf("create custom cart line: %w", err)
	}

	return line, true, nil
}

func (s *cartServiceImpl) owned(ctx context.Context, tx *gorm.DB, actor Actor, id uint) (*model.Cart, error) {
	line, err := s.cartRepo.FindActive(ctx, tx, id)
	if err != nil {
		return nil, translate(err, "Cart item")
	}
	if line.UserID != actor.ID {
		return nil, newError(ErrForbidden, "Access denied")
	}
	return line, nil
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, actor Actor, id uint, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		return nil, validationError("Quantity must be at least 1")
	}

	var line *model.Cart
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.owned(ctx, tx, actor, id); err != nil {
			return err
		}
		if err := s.cartRepo.SetQuantity(ctx, tx, id, quantity); err != nil {
			return translate(err, "Cart item")
		}

		var err error
		line, err = s.cartRepo.FindActive(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return line, nil
}

func (s *cartServiceImpl) Remove(ctx context.Context, actor Actor, id uint) error {
	if _, err := s.owned(ctx, s.db, actor, id); err != nil {
		return err
	}
	return translate(s.cartRepo.Deactivate(ctx, id), "Cart item")
}
