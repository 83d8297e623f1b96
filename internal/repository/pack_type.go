package repository

import (
	"context"
	"freshpack-backend/internal/model"

	"gorm.io/gorm"
)

type PackTypeRepository interface {
	List(ctx context.Context) ([]*model.PackType, error)
	FindByID(ctx context.Context, id uint) (*model.PackType, error)
	Create(ctx context.Context, packType *model.PackType) error
	Save(ctx context.Context, packType *model.PackType) error
}

type packTypeRepoImpl struct {
	db *gorm.DB
}

func NewPackTypeRepository(db *gorm.DB) PackTypeRepository {
	return &packTypeRepoImpl{
		db: db,
	}
}

func (r *packTypeRepoImpl) List(ctx context.Context) ([]*model.PackType, error) {
	var packTypes []*model.PackType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&packTypes).Error; err != nil {
		return nil, err
	}

	return packTypes, nil
}

func (r *packTypeRepoImpl) FindByID(ctx context.Context, id uint) (*model.PackType, error) {
	var packType model.PackType
	if err := r.db.WithContext(ctx).First(&packType, id).Error; err != nil {
		return nil, err
	}

	return &packType, nil
}

func (r *packTypeRepoImpl) Create(ctx context.Context, packType *model.PackType) error {
	return r.db.WithContext(ctx).Create(packType).Error
}

func (r *packTypeRepoImpl) Save(ctx context.Context, packType *model.PackType) error {
	return r.db.WithContext(ctx).Save(packType).Error
}
