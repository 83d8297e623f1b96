package service

import (
	"context"
	"errors"
	"fmt"
	"freshpack-backend/internal/client"
	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultGatewayTimeout = 10 * time.Second

type OrderService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	ListAll(ctx context.Context) ([]*model.Order, error)
	ListByUser(ctx context.Context, actor Actor, userID uint) ([]*model.Order, error)
	Get(ctx context.Context, actor Actor, id uint) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error)
}

type OrderDeps struct {
	DB          *gorm.DB
	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentRepository
	PackRepo    repository.PackRepository
	CartRepo    repository.CartRepository
	AddressRepo repository.AddressRepository
	UserRepo    repository.UserRepository
	Razorpay    client.RazorpayClient
	// Braintree is nil when card charging is not configured.
	Braintree      client.BraintreeClient
	Mail           client.MailClient
	Logger         *zap.Logger
	GatewayTimeout time.Duration
}

type orderServiceImpl struct {
	OrderDeps
	now func() time.Time
}

func NewOrderService(deps OrderDeps) OrderService {
	if deps.GatewayTimeout <= 0 {
		deps.GatewayTimeout = defaultGatewayTimeout
	}
	return &orderServiceImpl{
		OrderDeps: deps,
		now:       time.Now,
	}
}

// ToPaise converts a rupee amount to the gateway's minor units.
func ToPaise(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// orderLine is the priced, validated content of an order request.
type orderLine struct {
	pack            *model.Pack
	unitPrice       decimal.Decimal
	total           decimal.Decimal
	deliveryAddress string
}

func (s *orderServiceImpl) prepare(ctx context.Context, actor Actor, req *dto.CreateOrderRequest) (*orderLine, error) {
	if req.Quantity < 1 {
		return nil, validationError("Quantity must be at least 1")
	}
	if !req.PaymentMethod.Valid() {
		return nil, validationError("Invalid payment method %q", req.PaymentMethod)
	}

	line := &orderLine{}
	if req.IsCustom {
		if req.CustomPackName == nil || strings.TrimSpace(*req.CustomPackName) == "" {
			return nil, validationError("customPackName is required for custom orders")
		}
		if req.UnitPrice == nil || !req.UnitPrice.IsPositive() {
			return nil, validationError("unitPrice must be greater than 0 for custom orders")
		}
		line.unitPrice = *req.UnitPrice
	} else {
		if req.PackID == nil {
			return nil, validationError("packId is required")
		}
		pack, err := s.PackRepo.FindByID(ctx, *req.PackID)
		if err != nil {
			return nil, translate(err, "Pack")
		}
		if !pack.Purchasable(s.now()) {
			return nil, validationError("Pack is not available")
		}
		line.pack = pack
		line.unitPrice = pack.FinalPrice
	}

	line.total = line.unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
	if req.TotalAmount != nil && !req.TotalAmount.Equal(line.total) {
		return nil, validationError("totalAmount %s does not match %s", req.TotalAmount.StringFixed(2), line.total.StringFixed(2))
	}

	if req.AddressID != nil {
		address, err := s.AddressRepo.FindByID(ctx, *req.AddressID)
		if err != nil {
			return nil, translate(err, "Address")
		}
		if address.UserID != actor.ID {
			return nil, newError(ErrForbidden, "Access denied")
		}
		line.deliveryAddress = address.Address
	} else {
		line.deliveryAddress = strings.TrimSpace(req.DeliveryAddress)
	}
	if line.deliveryAddress == "" {
		return nil, validationError("deliveryAddress is required")
	}

	return line, nil
}

// Create runs the order workflow: one transaction inserting the order, its
// payment and the pack snapshot, with the gateway call made inside it so a
// gateway failure leaves nothing behind.
func (s *orderServiceImpl) Create(ctx context.Context, actor Actor, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	line, err := s.prepare(ctx, actor, req)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		UserID:          actor.ID,
		Quantity:        req.Quantity,
		DeliveryAddress: line.deliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		TotalAmount:     line.total,
		IsCustom:        req.IsCustom,
		UnitPrice:       line.unitPrice,
		Status:          model.OrderPending,
		PaymentStatus:   model.PaymentPending,
		OrderDate:       s.now(),
	}
	if req.IsCustom {
		order.CustomPackName = req.CustomPackName
		order.CustomPackItems = req.CustomPackItems.Ptr()
	} else {
		order.PackID = &line.pack.ID
	}

	resp := &dto.CreateOrderResponse{}
	var payment *model.Payment

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.OrderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order in db: %w", err)
		}

		payment = &model.Payment{
			OrderID:       order.ID,
			UserID:        actor.ID,
			Amount:        line.total,
			Currency:      model.DefaultCurrency,
			PaymentMethod: req.PaymentMethod,
			Status:        model.PaymentPending,
		}
		if req.PaymentMethod.SettledOnDelivery() {
			payment.Status = model.PaymentCompleted
		}

		if err := s.chargeGateway(ctx, tx, order, payment, req, resp); err != nil {
			return err
		}

		if err := s.PaymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("store payment in db: %w", err)
		}

		if line.pack != nil {
			if err := s.snapshotPack(ctx, tx, order); err != nil {
				return err
			}
			if _, err := s.CartRepo.DeactivateForPack(ctx, tx, actor.ID, line.pack.ID); err != nil {
				return fmt.Errorf("clear cart lines: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.Logger.Error("create order failed",
			zap.Uint("user_id", actor.ID),
			zap.String("payment_method", string(req.PaymentMethod)),
			zap.Error(err),
		)
		return nil, err
	}

	s.Logger.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", actor.ID),
		zap.String("total", order.TotalAmount.StringFixed(2)),
		zap.String("payment_status", string(order.PaymentStatus)),
	)
	s.sendConfirmation(ctx, order)

	resp.Order = order
	resp.Payment = payment
	return resp, nil
}

// chargeGateway performs the gateway step for methods that have one and
// records its outcome on order and payment.
func (s *orderServiceImpl) chargeGateway(
	ctx context.Context,
	tx *gorm.DB,
	order *model.Order,
	payment *model.Payment,
	req *dto.CreateOrderRequest,
	resp *dto.CreateOrderResponse,
) error {
	receipt := fmt.Sprintf("order_%d", order.ID)

	switch {
	case req.PaymentMethod == model.PaymentRazorpay:
		gwCtx, cancel := context.WithTimeout(ctx, s.GatewayTimeout)
		defer cancel()

		remote, err := s.Razorpay.CreateOrder(gwCtx, &client.RazorpayOrderRequest{
			Amount:         ToPaise(order.TotalAmount),
			Currency:       model.DefaultCurrency,
			Receipt:        receipt,
			PaymentCapture: 1,
		})
		if err != nil {
			return fmt.Errorf("razorpay create order: %w", err)
		}

		payment.RazorpayOrderID = &remote.ID
		order.PaymentStatus = model.PaymentProcessing

		resp.RazorpayOrderID = remote.ID
		resp.Amount = remote.Amount
		resp.Currency = remote.Currency
		resp.KeyID = s.Razorpay.KeyID()

	case req.PaymentMethod == model.PaymentCard && req.PaymentNonce != "" && s.Braintree != nil:
		gwCtx, cancel := context.WithTimeout(ctx, s.GatewayTimeout)
		defer cancel()

		txID, err := s.Braintree.ChargeOneTime(gwCtx, req.PaymentNonce, order.TotalAmount, receipt)
		if err != nil {
			return fmt.Errorf("braintree charge: %w", err)
		}

		payment.TransactionID = &txID
		payment.Status = model.PaymentCompleted
		order.PaymentStatus = model.PaymentCompleted

	default:
		return nil
	}

	return s.OrderRepo.UpdateFields(ctx, tx, order.ID, map[string]interface{}{
		"payment_status": order.PaymentStatus,
	})
}

// snapshotPack copies the pack's current composition into the order.
func (s *orderServiceImpl) snapshotPack(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	items, err := s.PackRepo.GetProducts(ctx, tx, *order.PackID)
	if err != nil {
		return fmt.Errorf("get pack products: %w", err)
	}

	contents := make([]*model.OrderPackContent, 0, len(items))
	for _, item := range items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		contents = append(contents, &model.OrderPackContent{
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	if err := s.OrderRepo.CreatePackContents(ctx, tx, contents); err != nil {
		return fmt.Errorf("store pack contents: %w", err)
	}
	return nil
}

func (s *orderServiceImpl) sendConfirmation(ctx context.Context, order *model.Order) {
	user, err := s.UserRepo.FindByID(ctx, order.UserID)
	if err != nil {
		s.Logger.Warn("load user for order mail", zap.Uint("order_id", order.ID), zap.Error(err))
		return
	}

	subject := fmt.Sprintf("Order #%d received", order.ID)
	text := fmt.Sprintf("Hi %s,\n\nWe received your order #%d for Rs. %s (%s).\nIt will be delivered to:\n%s",
		user.Name, order.ID, order.TotalAmount.StringFixed(2), order.PaymentMethod, order.DeliveryAddress)
	html := fmt.Sprintf("<p>Hi %s,</p><p>We received your order <b>#%d</b> for Rs. %s (%s).</p><p>It will be delivered to:<br>%s</p>",
		user.Name, order.ID, order.TotalAmount.StringFixed(2), order.PaymentMethod, order.DeliveryAddress)

	if err := s.Mail.Send(ctx, user.Email, subject, html, text); err != nil {
		s.Logger.Warn("send order mail", zap.Uint("order_id", order.ID), zap.Error(err))
	}
}

func (s *orderServiceImpl) ListAll(ctx context.Context) ([]*model.Order, error) {
	return s.OrderRepo.ListAll(ctx)
}

func (s *orderServiceImpl) ListByUser(ctx context.Context, actor Actor, userID uint) ([]*model.Order, error) {
	if err := requireAccess(actor, userID); err != nil {
		return nil, err
	}
	return s.OrderRepo.ListByUser(ctx, userID)
}

func (s *orderServiceImpl) Get(ctx context.Context, actor Actor, id uint) (*model.Order, error) {
	order, err := s.OrderRepo.FindDetails(ctx, id)
	if err != nil {
		return nil, translate(err, "Order")
	}
	if err := requireAccess(actor, order.UserID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, validationError("Invalid order status %q", status)
	}

	var order *model.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = s.OrderRepo.Get(ctx, tx, id)
		if err != nil {
			return translate(err, "Order")
		}
		if !order.Status.CanTransitionTo(status) {
			return validationError("Cannot change order status from %s to %s", order.Status, status)
		}

		fields := map[string]interface{}{"status": status}
		order.Status = status
		if status == model.OrderDelivered {
			delivered := s.now()
			order.DeliveryDate = &delivered
			fields["delivery_date"] = delivered
		}

		return s.OrderRepo.UpdateFields(ctx, tx, id, fields)
	})
	if err != nil {
		var svcErr *Error
		if !errors.As(err, &svcErr) {
			s.Logger.Error("update order status", zap.Uint("order_id", id), zap.Error(err))
		}
		return nil, err
	}

	s.Logger.Info("order status changed", zap.Uint("order_id", id), zap.String("status", string(status)))
	return order, nil
}
