package repository

import (
	"context"
	"freshpack-backend/internal/model"

	"gorm.io/gorm"
)

type AddressRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]*model.Address, error)
	FindByID(ctx context.Context, id uint) (*model.Address, error)
	Create(ctx context.Context, tx *gorm.DB, address *model.Address) error
	Save(ctx context.Context, tx *gorm.DB, address *model.Address) error
	ClearDefault(ctx context.Context, tx *gorm.DB, userID uint) error
	Delete(ctx context.Context, id uint) error
}

type addressRepoImpl struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepoImpl{
		db: db,
	}
}

func (r *addressRepoImpl) ListByUser(ctx context.Context, userID uint) ([]*model.Address, error) {
	var addresses []*model.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *addressRepoImpl) FindByID(ctx context.Context, id uint) (*model.Address, error) {
	var address model.Address
	if err := r.db.WithContext(ctx).First(&address, id).Error; err != nil {
		return nil, err
	}

	return &address, nil
}

func (r *addressRepoImpl) Create(ctx context.Context, tx *gorm.DB, address *model.Address) error {
	return tx.WithContext(ctx).Create(address).Error
}

func (r *addressRepoImpl) Save(ctx context.Context, tx *gorm.DB, address *model.Address) error {
	return tx.WithContext(ctx).Save(address).Error
}

func (r *addressRepoImpl) ClearDefault(ctx context.Context, tx *gorm.DB, userID uint) error {
	return tx.WithContext(ctx).
		Model(&model.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}

func (r *addressRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Address{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
