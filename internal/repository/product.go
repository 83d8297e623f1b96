package repository

import (
	"context"
	"freshpack-backend/internal/model"

	"gorm.io/gorm"
)

type ProductFilter struct {
	CategoryID    *uint
	AvailableOnly bool
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindMany(ctx context.Context, tx *gorm.DB, ids []uint) ([]*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Save(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) List(ctx context.Context, filter ProductFilter) ([]*model.Product, error) {
	var products []*model.Product

	q := r.db.WithContext(ctx).
		Preload("Category").
		Preload("UnitType").
		Order("name ASC")
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}

	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("UnitType").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindMany(ctx context.Context, tx *gorm.DB, ids []uint) ([]*model.Product, error) {
	var products []*model.Product
	err := tx.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Save writes the scalar columns only; associations loaded for the response
// are never upserted.
func (r *productRepoImpl) Save(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit("Category", "UnitType").Save(product).Error
}

func (r *productRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
