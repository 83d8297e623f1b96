package repository

import (
	"context"
	"freshpack-backend/internal/model"

	"gorm.io/gorm"
)

type UnitTypeRepository interface {
	List(ctx context.Context) ([]*model.UnitType, error)
	FindByID(ctx context.Context, id uint) (*model.UnitType, error)
	AbbreviationTaken(ctx context.Context, abbreviation string, exceptID uint) (bool, error)
	Create(ctx context.Context, unitType *model.UnitType) error
	Save(ctx context.Context, unitType *model.UnitType) error
	Delete(ctx context.Context, id uint) error
}

type unitTypeRepoImpl struct {
	db *gorm.DB
}

func NewUnitTypeRepository(db *gorm.DB) UnitTypeRepository {
	return &unitTypeRepoImpl{
		db: db,
	}
}

func (r *unitTypeRepoImpl) List(ctx context.Context) ([]*model.UnitType, error) {
	var unitTypes []*model.UnitType
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&unitTypes).Error
	if err != nil {
		return nil, err
	}

	return unitTypes, nil
}

func (r *unitTypeRepoImpl) FindByID(ctx context.Context, id uint) (*model.UnitType, error) {
	var unitType model.UnitType
	if err := r.db.WithContext(ctx).First(&unitType, id).Error; err != nil {
		return nil, err
	}

	return &unitType, nil
}

func (r *unitTypeRepoImpl) AbbreviationTaken(ctx context.Context, abbreviation string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UnitType{}).
		Where("abbreviation = ? AND id <> ?", abbreviation, exceptID).
		Count(&count).Error

	return count > 0, err
}

func (r *unitTypeRepoImpl) Create(ctx context.Context, unitType *model.UnitType) error {
	return r.db.WithContext(ctx).Create(unitType).Error
}

func (r *unitTypeRepoImpl) Save(ctx context.Context, unitType *model.UnitType) error {
	return r.db.WithContext(ctx).Save(unitType).Error
}

func (r *unitTypeRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.UnitType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
