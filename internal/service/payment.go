package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"freshpack-backend/internal/client"
	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentService interface {
	List(ctx context.Context) ([]*model.Payment, error)
	UpdateForOrder(ctx context.Context, actor Actor, orderID uint, req *dto.UpdatePaymentRequest) (*model.Payment, error)
	CreateRazorpayOrder(ctx context.Context, actor Actor, req *dto.CreateRazorpayOrderRequest) (*dto.CreateRazorpayOrderResponse, error)
	// Verify checks a gateway callback. A signature mismatch records a failed
	// payment and returns ErrPaymentVerification along with the response body.
	Verify(ctx context.Context, actor Actor, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
	CreateManual(ctx context.Context, req *dto.ManualPaymentRequest) (*model.Payment, error)
}

type paymentServiceImpl struct {
	db             *gorm.DB
	orderRepo      repository.OrderRepository
	paymentRepo    repository.PaymentRepository
	razorpay       client.RazorpayClient
	logger         *zap.Logger
	gatewayTimeout time.Duration
}

func NewPaymentService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	razorpay client.RazorpayClient,
	logger *zap.Logger,
	gatewayTimeout time.Duration,
) PaymentService {
	if gatewayTimeout <= 0 {
		gatewayTimeout = defaultGatewayTimeout
	}
	return &paymentServiceImpl{
		db:             db,
		orderRepo:      orderRepo,
		paymentRepo:    paymentRepo,
		razorpay:       razorpay,
		logger:         logger,
		gatewayTimeout: gatewayTimeout,
	}
}

func (s *paymentServiceImpl) List(ctx context.Context) ([]*model.Payment, error) {
	return s.paymentRepo.List(ctx)
}

func (s *paymentServiceImpl) accessibleOrder(ctx context.Context, actor Actor, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.Get(ctx, s.db, orderID)
	if err != nil {
		return nil, translate(err, "Order")
	}
	if err := requireAccess(actor, order.UserID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *paymentServiceImpl) UpdateForOrder(ctx context.Context, actor Actor, orderID uint, req *dto.UpdatePaymentRequest) (*model.Payment, error) {
	if !req.Status.Valid() {
		return nil, validationError("Invalid payment status %q", req.Status)
	}
	if _, err := s.accessibleOrder(ctx, actor, orderID); err != nil {
		return nil, err
	}

	var payment *model.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		latest, err := s.paymentRepo.LatestForOrder(ctx, tx, orderID)
		if err != nil {
			return translate(err, "Payment")
		}

		fields := map[string]interface{}{"status": req.Status}
		if req.RazorpayPaymentID != nil {
			fields["razorpay_payment_id"] = *req.RazorpayPaymentID
		}
		if req.RazorpayOrderID != nil {
			fields["razorpay_order_id"] = *req.RazorpayOrderID
		}
		if err := s.paymentRepo.UpdateFields(ctx, tx, latest.ID, fields); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}

		if req.Status == model.PaymentCompleted {
			err := s.orderRepo.UpdateFields(ctx, tx, orderID, map[string]interface{}{
				"payment_status": model.PaymentCompleted,
			})
			if err != nil {
				return fmt.Errorf("update order payment status: %w", err)
			}
		}

		payment, err = s.paymentRepo.Get(ctx, tx, latest.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment updated",
		zap.Uint("order_id", orderID),
		zap.Uint("payment_id", payment.ID),
		zap.String("status", string(payment.Status)),
	)
	return payment, nil
}

func (s *paymentServiceImpl) CreateRazorpayOrder(ctx context.Context, actor Actor, req *dto.CreateRazorpayOrderRequest) (*dto.CreateRazorpayOrderResponse, error) {
	order, err := s.accessibleOrder(ctx, actor, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsZero() && !req.Amount.Equal(order.TotalAmount) {
		return nil, validationError("amount %s does not match order total %s", req.Amount.StringFixed(2), order.TotalAmount.StringFixed(2))
	}

	gwCtx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	remote, err := s.razorpay.CreateOrder(gwCtx, &client.RazorpayOrderRequest{
		Amount:         ToPaise(order.TotalAmount),
		Currency:       model.DefaultCurrency,
		Receipt:        fmt.Sprintf("order_%d", order.ID),
		PaymentCapture: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		latest, err := s.paymentRepo.LatestForOrder(ctx, tx, order.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find payment: %w", err)
		}

		if latest != nil && latest.Status == model.PaymentPending {
			err = s.paymentRepo.UpdateFields(ctx, tx, latest.ID, map[string]interface{}{
				"razorpay_order_id": remote.ID,
			})
		} else {
			err = s.paymentRepo.Create(ctx, tx, &model.Payment{
				OrderID:         order.ID,
				UserID:          order.UserID,
				Amount:          order.TotalAmount,
				Currency:        model.DefaultCurrency,
				PaymentMethod:   model.PaymentRazorpay,
				Status:          model.PaymentPending,
				RazorpayOrderID: &remote.ID,
			})
		}
		if err != nil {
			return fmt.Errorf("record razorpay order: %w", err)
		}

		return s.orderRepo.UpdateFields(ctx, tx, order.ID, map[string]interface{}{
			"payment_status": model.PaymentProcessing,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("razorpay order created",
		zap.Uint("order_id", order.ID),
		zap.String("razorpay_order_id", remote.ID),
		zap.Int64("amount", remote.Amount),
	)

	return &dto.CreateRazorpayOrderResponse{
		OrderID:  remote.ID,
		Amount:   remote.Amount,
		Currency: remote.Currency,
		KeyID:    s.razorpay.KeyID(),
	}, nil
}

func (s *paymentServiceImpl) Verify(ctx context.Context, actor Actor, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	order, err := s.accessibleOrder(ctx, actor, req.OrderID)
	if err != nil {
		return nil, err
	}

	amount := req.Amount
	if !amount.IsPositive() {
		amount = order.TotalAmount
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode gateway response: %w", err)
	}
	gatewayResponse := string(raw)

	payment := &model.Payment{
		OrderID:           order.ID,
		UserID:            actor.ID,
		Amount:            amount,
		Currency:          model.DefaultCurrency,
		PaymentMethod:     model.PaymentRazorpay,
		RazorpayOrderID:   &req.RazorpayOrderID,
		RazorpayPaymentID: &req.RazorpayPaymentID,
		RazorpaySignature: &req.RazorpaySignature,
		GatewayResponse:   &gatewayResponse,
	}

	if !s.razorpay.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		payment.Status = model.PaymentFailed
		if err := s.paymentRepo.Create(ctx, s.db, payment); err != nil {
			return nil, fmt.Errorf("store failed payment: %w", err)
		}

		s.logger.Warn("payment signature mismatch",
			zap.Uint("order_id", order.ID),
			zap.String("razorpay_order_id", req.RazorpayOrderID),
		)
		return &dto.VerifyPaymentResponse{
			Status:  "failed",
			Message: "Payment verification failed",
		}, newError(ErrPaymentVerification, "Payment verification failed")
	}

	payment.Status = model.PaymentCompleted
	payment.TransactionID = &req.RazorpayPaymentID

	replayed := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// a repeated callback for an already settled payment changes nothing
		existing, err := s.paymentRepo.FindCompletedByRazorpayPayment(ctx, tx, order.ID, req.RazorpayPaymentID)
		switch {
		case err == nil:
			payment = existing
			replayed = true
			return nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("find settled payment: %w", err)
		}

		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("store payment: %w", err)
		}

		fields := map[string]interface{}{"payment_status": model.PaymentCompleted}
		if order.Status.CanTransitionTo(model.OrderConfirmed) {
			fields["status"] = model.OrderConfirmed
		}
		return s.orderRepo.UpdateFields(ctx, tx, order.ID, fields)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment verified",
		zap.Uint("order_id", order.ID),
		zap.String("razorpay_payment_id", req.RazorpayPaymentID),
		zap.Bool("replayed", replayed),
	)
	return &dto.VerifyPaymentResponse{
		Status:  "success",
		Payment: payment,
	}, nil
}

func (s *paymentServiceImpl) CreateManual(ctx context.Context, req *dto.ManualPaymentRequest) (*model.Payment, error) {
	order, err := s.orderRepo.Get(ctx, s.db, req.OrderID)
	if err != nil {
		return nil, translate(err, "Order")
	}

	method := req.PaymentMethod
	if method == "" {
		method = order.PaymentMethod
	}
	transactionID := "TXN_" + uuid.NewString()

	payment := &model.Payment{
		OrderID:       order.ID,
		UserID:        order.UserID,
		Amount:        order.TotalAmount,
		Currency:      model.DefaultCurrency,
		PaymentMethod: method,
		Status:        model.PaymentCompleted,
		TransactionID: &transactionID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("store payment: %w", err)
		}
		return s.orderRepo.UpdateFields(ctx, tx, order.ID, map[string]interface{}{
			"payment_status": model.PaymentCompleted,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("manual payment recorded",
		zap.Uint("order_id", order.ID),
		zap.String("transaction_id", transactionID),
		zap.String("amount", payment.Amount.StringFixed(2)),
	)
	return payment, nil
}
