package service

import (
	"context"
	"errors"
	"fmt"
	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PackService interface {
	ListPackTypes(ctx context.Context) ([]*model.PackType, error)
	CreatePackType(ctx context.Context, req *dto.PackTypeRequest) (*model.PackType, error)
	UpdatePackType(ctx context.Context, id uint, req *dto.PackTypeRequest) (*model.PackType, error)

	ListPacks(ctx context.Context, filter repository.PackFilter) ([]*model.Pack, error)
	// ListPurchasable returns active packs whose validity window covers now.
	ListPurchasable(ctx context.Context, categoryID *uint) ([]*model.Pack, error)
	GetPack(ctx context.Context, id uint) (*model.Pack, error)
	CreatePack(ctx context.Context, req *dto.PackRequest) (*model.Pack, error)
	UpdatePack(ctx context.Context, id uint, req *dto.PackRequest) (*model.Pack, error)
	DeletePack(ctx context.Context, id uint) error

	GetPackProducts(ctx context.Context, packID uint) ([]*model.PackProduct, error)
	ReplacePackProducts(ctx context.Context, req *dto.BulkPackProductsRequest) ([]*model.PackProduct, error)
	ClearPackProducts(ctx context.Context, packID uint) (int64, error)
}

type packServiceImpl struct {
	db           *gorm.DB
	packRepo     repository.PackRepository
	packTypeRepo repository.PackTypeRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	logger       *zap.Logger
	now          func() time.Time
}

func NewPackService(
	db *gorm.DB,
	packRepo repository.PackRepository,
	packTypeRepo repository.PackTypeRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	logger *zap.Logger,
) PackService {
	return &packServiceImpl{
		db:           db,
		packRepo:     packRepo,
		packTypeRepo: packTypeRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *packServiceImpl) ListPackTypes(ctx context.Context) ([]*model.PackType, error) {
	return s.packTypeRepo.List(ctx)
}

func (s *packServiceImpl) CreatePackType(ctx context.Context, req *dto.PackTypeRequest) (*model.PackType, error) {
	if req.BasePrice.IsNegative() {
		return nil, validationError("Base price must not be negative")
	}

	packType := &model.PackType{
		Name:      req.Name,
		Duration:  req.Duration,
		BasePrice: req.BasePrice,
		IsActive:  boolOr(req.IsActive, true),
	}
	if err := s.packTypeRepo.Create(ctx, packType); err != nil {
		return nil, translate(err, "Pack type")
	}
	return packType, nil
}

func (s *packServiceImpl) UpdatePackType(ctx context.Context, id uint, req *dto.PackTypeRequest) (*model.PackType, error) {
	if req.BasePrice.IsNegative() {
		return nil, validationError("Base price must not be negative")
	}

	packType, err := s.packTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Pack type")
	}

	packType.Name = req.Name
	packType.Duration = req.Duration
	packType.BasePrice = req.BasePrice
	packType.IsActive = boolOr(req.IsActive, packType.IsActive)

	if err := s.packTypeRepo.Save(ctx, packType); err != nil {
		return nil, translate(err, "Pack type")
	}
	return packType, nil
}

func (s *packServiceImpl) ListPacks(ctx context.Context, filter repository.PackFilter) ([]*model.Pack, error) {
	return s.packRepo.List(ctx, filter)
}

func (s *packServiceImpl) ListPurchasable(ctx context.Context, categoryID *uint) ([]*model.Pack, error) {
	now := s.now()
	return s.packRepo.List(ctx, repository.PackFilter{
		CategoryID:    categoryID,
		PurchasableAt: &now,
	})
}

func (s *packServiceImpl) GetPack(ctx context.Context, id uint) (*model.Pack, error) {
	pack, err := s.packRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Pack")
	}
	return pack, nil
}

func (s *packServiceImpl) checkPack(ctx context.Context, req *dto.PackRequest) error {
	if req.ValidUntil.Before(req.ValidFrom) {
		return validationError("validUntil must not precede validFrom")
	}
	if req.BasePrice.IsNegative() || (req.FinalPrice != nil && req.FinalPrice.IsNegative()) {
		return validationError("Prices must not be negative")
	}

	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validationError("Category %d does not exist", req.CategoryID)
		}
		return fmt.Errorf("find category: %w", err)
	}
	if _, err := s.packTypeRepo.FindByID(ctx, req.PackTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validationError("Pack type %d does not exist", req.PackTypeID)
		}
		return fmt.Errorf("find pack type: %w", err)
	}
	return nil
}

func (s *packServiceImpl) CreatePack(ctx context.Context, req *dto.PackRequest) (*model.Pack, error) {
	if err := s.checkPack(ctx, req); err != nil {
		return nil, err
	}

	pack := &model.Pack{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		PackTypeID:  req.PackTypeID,
		BasePrice:   req.BasePrice,
		FinalPrice:  req.BasePrice,
		IsActive:    boolOr(req.IsActive, true),
		ValidFrom:   req.ValidFrom,
		ValidUntil:  req.ValidUntil,
	}
	if req.FinalPrice != nil {
		pack.FinalPrice = *req.FinalPrice
	}

	if err := s.packRepo.Create(ctx, pack); err != nil {
		return nil, translate(err, "Pack")
	}
	return s.GetPack(ctx, pack.ID)
}

func (s *packServiceImpl) UpdatePack(ctx context.Context, id uint, req *dto.PackRequest) (*model.Pack, error) {
	pack, err := s.GetPack(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkPack(ctx, req); err != nil {
		return nil, err
	}

	pack.Name = req.Name
	if req.Description != nil {
		pack.Description = req.Description
	}
	pack.CategoryID = req.CategoryID
	pack.PackTypeID = req.PackTypeID
	pack.BasePrice = req.BasePrice
	if req.FinalPrice != nil {
		pack.FinalPrice = *req.FinalPrice
	}
	pack.IsActive = boolOr(req.IsActive, pack.IsActive)
	pack.ValidFrom = req.ValidFrom
	pack.ValidUntil = req.ValidUntil

	if err := s.packRepo.Save(ctx, pack); err != nil {
		return nil, translate(err, "Pack")
	}
	return s.GetPack(ctx, id)
}

func (s *packServiceImpl) DeletePack(ctx context.Context, id uint) error {
	return translate(s.packRepo.Delete(ctx, id), "Pack")
}

func (s *packServiceImpl) GetPackProducts(ctx context.Context, packID uint) ([]*model.PackProduct, error) {
	if _, err := s.GetPack(ctx, packID); err != nil {
		return nil, err
	}
	return s.packRepo.GetProducts(ctx, s.db, packID)
}

// ReplacePackProducts swaps the whole composition of a pack and reprices it as
// the sum of unitPrice × quantity.
func (s *packServiceImpl) ReplacePackProducts(ctx context.Context, req *dto.BulkPackProductsRequest) ([]*model.PackProduct, error) {
	if _, err := s.GetPack(ctx, req.PackID); err != nil {
		return nil, err
	}

	items := make([]*model.PackProduct, 0, len(req.Products))
	ids := make([]uint, 0, len(req.Products))
	seen := make(map[uint]bool, len(req.Products))
	for _, p := range req.Products {
		if p.Quantity < 1 {
			return nil, validationError("Quantity must be at least 1")
		}
		if p.UnitPrice.IsNegative() {
			return nil, validationError("Unit price must not be negative")
		}
		if seen[p.ProductID] {
			return nil, validationError("Product %d listed more than once", p.ProductID)
		}
		seen[p.ProductID] = true
		ids = append(ids, p.ProductID)

		items = append(items, &model.PackProduct{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
		})
	}

	var result []*model.PackProduct
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ids) > 0 {
			products, err := s.productRepo.FindMany(ctx, tx, ids)
			if err != nil {
				return fmt.Errorf("find products: %w", err)
			}
			if len(products) != len(ids) {
				return validationError("Some products not found")
			}
		}

		if err := s.packRepo.ReplaceProducts(ctx, tx, req.PackID, items); err != nil {
			return fmt.Errorf("replace pack products: %w", err)
		}

		price := model.PackPrice(derefPackProducts(items))
		if err := s.packRepo.UpdatePrice(ctx, tx, req.PackID, price); err != nil {
			return fmt.Errorf("update pack price: %w", err)
		}

		var err error
		result, err = s.packRepo.GetProducts(ctx, tx, req.PackID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("pack composition replaced",
		zap.Uint("pack_id", req.PackID),
		zap.Int("products", len(items)),
	)
	return result, nil
}

func (s *packServiceImpl) ClearPackProducts(ctx context.Context, packID uint) (int64, error) {
	if _, err := s.GetPack(ctx, packID); err != nil {
		return 0, err
	}

	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = s.packRepo.DeleteProducts(ctx, tx, packID)
		if err != nil {
			return fmt.Errorf("delete pack products: %w", err)
		}
		return s.packRepo.UpdatePrice(ctx, tx, packID, decimal.Zero)
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

func derefPackProducts(items []*model.PackProduct) []model.PackProduct {
	out := make([]model.PackProduct, len(items))
	for i, item := range items {
		out[i] = *item
	}
	return out
}
