package repository

import (
	"context"
	"freshpack-backend/internal/model"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PackFilter struct {
	CategoryID *uint
	// PurchasableAt keeps only active packs whose validity window covers it.
	PurchasableAt *time.Time
}

type PackRepository interface {
	List(ctx context.Context, filter PackFilter) ([]*model.Pack, error)
	FindByID(ctx context.Context, id uint) (*model.Pack, error)
	Create(ctx context.Context, pack *model.Pack) error
	Save(ctx context.Context, pack *model.Pack) error
	Delete(ctx context.Context, id uint) error
	GetProducts(ctx context.Context, tx *gorm.DB, packID uint) ([]*model.PackProduct, error)
	ReplaceProducts(ctx context.Context, tx *gorm.DB, packID uint, items []*model.PackProduct) error
	DeleteProducts(ctx context.Context, tx *gorm.DB, packID uint) (int64, error)
	UpdatePrice(ctx context.Context, tx *gorm.DB, packID uint, price decimal.Decimal) error
}

type packRepoImpl struct {
	db *gorm.DB
}

func NewPackRepository(db *gorm.DB) PackRepository {
	return &packRepoImpl{
		db: db,
	}
}

func (r *packRepoImpl) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("PackType").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Products.Product")
}

func (r *packRepoImpl) List(ctx context.Context, filter PackFilter) ([]*model.Pack, error) {
	var packs []*model.Pack

	q := r.withDetails(ctx).Order("id ASC")
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.PurchasableAt != nil {
		q = q.Where("is_active = ? AND valid_from <= ? AND valid_until >= ?",
			true, *filter.PurchasableAt, *filter.PurchasableAt)
	}

	if err := q.Find(&packs).Error; err != nil {
		return nil, err
	}

	return packs, nil
}

func (r *packRepoImpl) FindByID(ctx context.Context, id uint) (*model.Pack, error) {
	var pack model.Pack
	if err := r.withDetails(ctx).First(&pack, id).Error; err != nil {
		return nil, err
	}

	return &pack, nil
}

func (r *packRepoImpl) Create(ctx context.Context, pack *model.Pack) error {
	return r.db.WithContext(ctx).Omit("Category", "PackType", "Products").Create(pack).Error
}

func (r *packRepoImpl) Save(ctx context.Context, pack *model.Pack) error {
	return r.db.WithContext(ctx).Omit("Category", "PackType", "Products").Save(pack).Error
}

func (r *packRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Pack{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetProducts loads a pack's lines. Products and categories deleted after
// composition are still loaded so order snapshots keep their names.
func (r *packRepoImpl) GetProducts(ctx context.Context, tx *gorm.DB, packID uint) ([]*model.PackProduct, error) {
	var items []*model.PackProduct
	err := tx.WithContext(ctx).
		Preload("Product", unscoped).
		Preload("Product.Category", unscoped).
		Where("pack_id = ?", packID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func unscoped(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

func (r *packRepoImpl) ReplaceProducts(ctx context.Context, tx *gorm.DB, packID uint, items []*model.PackProduct) error {
	if _, err := r.DeleteProducts(ctx, tx, packID); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	for _, item := range items {
		item.PackID = packID
	}

	return tx.WithContext(ctx).Omit("Product").Create(&items).Error
}

func (r *packRepoImpl) DeleteProducts(ctx context.Context, tx *gorm.DB, packID uint) (int64, error) {
	result := tx.WithContext(ctx).
		Where("pack_id = ?", packID).
		Delete(&model.PackProduct{})

	return result.RowsAffected, result.Error
}

func (r *packRepoImpl) UpdatePrice(ctx context.Context, tx *gorm.DB, packID uint, price decimal.Decimal) error {
	result := tx.WithContext(ctx).
		Model(&model.Pack{}).
		Where("id = ?", packID).
		Updates(map[string]interface{}{
			"base_price":  price,
			"final_price": price,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
