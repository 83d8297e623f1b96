package repository

import (
	"context"
	"freshpack-backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error
	Get(ctx context.Context, tx *gorm.DB, id uint) (*model.Order, error)
	FindDetails(ctx context.Context, id uint) (*model.Order, error)
	ListAll(ctx context.Context) ([]*model.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*model.Order, error)
	CreatePackContents(ctx context.Context, tx *gorm.DB, contents []*model.OrderPackContent) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Omit("User", "Pack", "Payments", "PackContents").Create(order).Error
}

func (r *orderRepoImpl) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := tx.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *orderRepoImpl) Get(ctx context.Context, tx *gorm.DB, id uint) (*model.Order, error) {
	var order model.Order
	if err := tx.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindDetails(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Pack").
		Preload("Pack.Category").
		Preload("Pack.PackType").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("PackContents", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&order, id).Error
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) ListAll(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Pack").
		Order("created_at DESC").
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) ListByUser(ctx context.Context, userID uint) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Pack").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) CreatePackContents(ctx context.Context, tx *gorm.DB, contents []*model.OrderPackContent) error {
	if len(contents) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&contents).Error
}
