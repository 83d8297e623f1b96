package repository

import (
	"context"
	"freshpack-backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *model.Payment) error
	LatestForOrder(ctx context.Context, tx *gorm.DB, orderID uint) (*model.Payment, error)
	FindCompletedByRazorpayPayment(ctx context.Context, tx *gorm.DB, orderID uint, razorpayPaymentID string) (*model.Payment, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error
	Get(ctx context.Context, tx *gorm.DB, id uint) (*model.Payment, error)
	List(ctx context.Context) ([]*model.Payment, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) Create(ctx context.Context, tx *gorm.DB, payment *model.Payment) error {
	return tx.WithContext(ctx).Omit("Order", "User").Create(payment).Error
}

func (r *paymentRepoImpl) LatestForOrder(ctx context.Context, tx *gorm.DB, orderID uint) (*model.Payment, error) {
	var payment model.Payment
	err := tx.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id DESC").
		First(&payment).Error
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepoImpl) FindCompletedByRazorpayPayment(ctx context.Context, tx *gorm.DB, orderID uint, razorpayPaymentID string) (*model.Payment, error) {
	var payment model.Payment
	err := tx.WithContext(ctx).
		Where("order_id = ? AND razorpay_payment_id = ? AND status = ?", orderID, razorpayPaymentID, model.PaymentCompleted).
		Order("id ASC").
		First(&payment).Error
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepoImpl) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := tx.WithContext(ctx).
		Model(&model.Payment{}).
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

func (r *paymentRepoImpl) Get(ctx context.Context, tx *gorm.DB, id uint) (*model.Payment, error) {
	var payment model.Payment
	if err := tx.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepoImpl) List(ctx context.Context) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Order").
		Order("created_at DESC").
		Order("id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}
