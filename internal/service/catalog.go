package service

import (
	"context"
	"errors"
	"fmt"
	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogService interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]*model.Category, error)
	GetCategory(ctx context.Context, id uint) (*model.Category, error)
	CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uint, req *dto.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	ListUnitTypes(ctx context.Context) ([]*model.UnitType, error)
	CreateUnitType(ctx context.Context, req *dto.UnitTypeRequest) (*model.UnitType, error)
	UpdateUnitType(ctx context.Context, id uint, req *dto.UnitTypeRequest) (*model.UnitType, error)
	DeleteUnitType(ctx context.Context, id uint) error

	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*model.Product, error)
	GetProduct(ctx context.Context, id uint, availableOnly bool) (*model.Product, error)
	CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *dto.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type catalogServiceImpl struct {
	categoryRepo repository.CategoryRepository
	unitTypeRepo repository.UnitTypeRepository
	productRepo  repository.ProductRepository
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	unitTypeRepo repository.UnitTypeRepository,
	productRepo repository.ProductRepository,
) CatalogService {
	return &catalogServiceImpl{
		categoryRepo: categoryRepo,
		unitTypeRepo: unitTypeRepo,
		productRepo:  productRepo,
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context, activeOnly bool) ([]*model.Category, error) {
	return s.categoryRepo.List(ctx, activeOnly)
}

func (s *catalogServiceImpl) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Category")
	}
	return category, nil
}

func (s *catalogServiceImpl) checkCategoryName(ctx context.Context, name string, exceptID uint) error {
	taken, err := s.categoryRepo.NameTaken(ctx, name, exceptID)
	if err != nil {
		return fmt.Errorf("check category name: %w", err)
	}
	if taken {
		return newError(ErrConflict, "Category already exists")
	}
	return nil
}

func (s *catalogServiceImpl) CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*model.Category, error) {
	if err := s.checkCategoryName(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    boolOr(req.IsActive, true),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, translate(err, "Category")
	}
	return category, nil
}

func (s *catalogServiceImpl) UpdateCategory(ctx context.Context, id uint, req *dto.CategoryRequest) (*model.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategoryName(ctx, req.Name, id); err != nil {
		return nil, err
	}

	category.Name = req.Name
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.Image != nil {
		category.Image = req.Image
	}
	category.IsActive = boolOr(req.IsActive, category.IsActive)

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, translate(err, "Category")
	}
	return category, nil
}

func (s *catalogServiceImpl) DeleteCategory(ctx context.Context, id uint) error {
	return translate(s.categoryRepo.Delete(ctx, id), "Category")
}

func (s *catalogServiceImpl) ListUnitTypes(ctx context.Context) ([]*model.UnitType, error) {
	return s.unitTypeRepo.List(ctx)
}

func (s *catalogServiceImpl) checkAbbreviation(ctx context.Context, abbreviation string, exceptID uint) error {
	taken, err := s.unitTypeRepo.AbbreviationTaken(ctx, abbreviation, exceptID)
	if err != nil {
		return fmt.Errorf("check unit type abbreviation: %w", err)
	}
	if taken {
		return newError(ErrConflict, "Unit type already exists")
	}
	return nil
}

func (s *catalogServiceImpl) CreateUnitType(ctx context.Context, req *dto.UnitTypeRequest) (*model.UnitType, error) {
	if err := s.checkAbbreviation(ctx, req.Abbreviation, 0); err != nil {
		return nil, err
	}

	unitType := &model.UnitType{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		Description:  req.Description,
		IsActive:     boolOr(req.IsActive, true),
	}
	if err := s.unitTypeRepo.Create(ctx, unitType); err != nil {
		return nil, translate(err, "Unit type")
	}
	return unitType, nil
}

func (s *catalogServiceImpl) UpdateUnitType(ctx context.Context, id uint, req *dto.UnitTypeRequest) (*model.UnitType, error) {
	unitType, err := s.unitTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Unit type")
	}

	if err := s.checkAbbreviation(ctx, req.Abbreviation, id); err != nil {
		return nil, err
	}

	unitType.Name = req.Name
	unitType.Abbreviation = req.Abbreviation
	if req.Description != nil {
		unitType.Description = req.Description
	}
	unitType.IsActive = boolOr(req.IsActive, unitType.IsActive)

	if err := s.unitTypeRepo.Save(ctx, unitType); err != nil {
		return nil, translate(err, "Unit type")
	}
	return unitType, nil
}

func (s *catalogServiceImpl) DeleteUnitType(ctx context.Context, id uint) error {
	return translate(s.unitTypeRepo.Delete(ctx, id), "Unit type")
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*model.Product, error) {
	return s.productRepo.List(ctx, filter)
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id uint, availableOnly bool) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Product")
	}
	if availableOnly && !product.IsAvailable {
		return nil, notFound("Product")
	}
	return product, nil
}

// checkReferences resolves the category and unit type a product points at.
func (s *catalogServiceImpl) checkReferences(ctx context.Context, req *dto.ProductRequest) error {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validationError("Category %d does not exist", req.CategoryID)
		}
		return fmt.Errorf("find category: %w", err)
	}

	if req.UnitTypeID != nil {
		if _, err := s.unitTypeRepo.FindByID(ctx, *req.UnitTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationError("Unit type %d does not exist", *req.UnitTypeID)
			}
			return fmt.Errorf("find unit type: %w", err)
		}
	}

	if req.Price.IsNegative() {
		return validationError("Price must not be negative")
	}
	return nil
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error) {
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		UnitTypeID:  req.UnitTypeID,
		Quantity:    decimal.NewFromInt(1),
		IsAvailable: boolOr(req.IsAvailable, true),
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, translate(err, "Product")
	}

	return s.productRepo.FindByID(ctx, product.ID)
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, id uint, req *dto.ProductRequest) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Price = req.Price
	product.CategoryID = req.CategoryID
	product.UnitTypeID = req.UnitTypeID
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Image != nil {
		product.Image = req.Image
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	product.IsAvailable = boolOr(req.IsAvailable, product.IsAvailable)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, translate(err, "Product")
	}

	return s.productRepo.FindByID(ctx, id)
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id uint) error {
	return translate(s.productRepo.Delete(ctx, id), "Product")
}
