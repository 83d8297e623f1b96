package repository

import (
	"context"
	"freshpack-backend/internal/model"

	"gorm.io/gorm"
)

type CartRepository interface {
	ListActive(ctx context.Context, userID uint) ([]*model.Cart, error)
	FindActive(ctx context.Context, tx *gorm.DB, id uint) (*model.Cart, error)
	FindActiveByPack(ctx context.Context, tx *gorm.DB, userID, packID uint) (*model.Cart, error)
	Create(ctx context.Context, tx *gorm.DB, cart *model.Cart) error
	IncrementQuantity(ctx context.Context, tx *gorm.DB, id uint, n int) error
	SetQuantity(ctx context.Context, tx *gorm.DB, id uint, quantity int) error
	Deactivate(ctx context.Context, id uint) error
	DeactivateForPack(ctx context.Context, tx *gorm.DB, userID, packID uint) (int64, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) ListActive(ctx context.Context, userID uint) ([]*model.Cart, error) {
	var lines []*model.Cart
	err := r.db.WithContext(ctx).
		Preload("Pack").
		Preload("Pack.Category").
		Preload("Pack.PackType").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *cartRepoImpl) FindActive(ctx context.Context, tx *gorm.DB, id uint) (*model.Cart, error) {
	var line model.Cart
	err := tx.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&line).Error
	if err != nil {
		return nil, err
	}

	return &line, nil
}

func (r *cartRepoImpl) FindActiveByPack(ctx context.Context, tx *gorm.DB, userID, packID uint) (*model.Cart, error) {
	var line model.Cart
	err := tx.WithContext(ctx).
		Where("user_id = ? AND pack_id = ? AND is_active = ? AND is_custom = ?", userID, packID, true, false).
		Order("id ASC").
		First(&line).Error
	if err != nil {
		return nil, err
	}

	return &line, nil
}

func (r *cartRepoImpl) Create(ctx context.Context, tx *gorm.DB, cart *model.Cart) error {
	return tx.WithContext(ctx).Omit("User", "Pack").Create(cart).Error
}

// IncrementQuantity adds n in SQL so concurrent adds are never lost.
func (r *cartRepoImpl) IncrementQuantity(ctx context.Context, tx *gorm.DB, id uint, n int) error {
	result := tx.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("quantity", gorm.Expr("quantity + ?", n))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.recalculateTotal(ctx, tx, id)
}

func (r *cartRepoImpl) SetQuantity(ctx context.Context, tx *gorm.DB, id uint, quantity int) error {
	result := tx.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("quantity", quantity)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.recalculateTotal(ctx, tx, id)
}

// recalculateTotal runs as its own statement; MySQL evaluates SET clauses
// left to right and would otherwise mix old and new quantities.
func (r *cartRepoImpl) recalculateTotal(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ?", id).
		Update("total_price", gorm.Expr("quantity * unit_price")).Error
}

func (r *cartRepoImpl) Deactivate(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *cartRepoImpl) DeactivateForPack(ctx context.Context, tx *gorm.DB, userID, packID uint) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&model.Cart{}).
		Where("user_id = ? AND pack_id = ? AND is_active = ?", userID, packID, true).
		Update("is_active", false)

	return result.RowsAffected, result.Error
}
