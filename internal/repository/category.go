package repository

import (
	"context"
	"freshpack-backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.Category, error)
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	NameTaken(ctx context.Context, name string, exceptID uint) (bool, error)
	Create(ctx context.Context, category *model.Category) error
	Save(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepoImpl{
		db: db,
	}
}

func (r *categoryRepoImpl) List(ctx context.Context, activeOnly bool) ([]*model.Category, error) {
	var categories []*model.Category

	q := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	if err := q.Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepoImpl) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}

	return &category, nil
}

// NameTaken reports whether another live category already uses name.
func (r *categoryRepoImpl) NameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("name = ? AND id <> ?", name, exceptID).
		Count(&count).Error

	return count > 0, err
}

func (r *categoryRepoImpl) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepoImpl) Save(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
