package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"freshpack-backend/internal/client"
	"freshpack-backend/internal/config"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"
	"freshpack-backend/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testKeySecret = "rzp_secret"

type fakeRazorpay struct {
	mu    sync.Mutex
	calls []client.RazorpayOrderRequest
	err   error
}

func (f *fakeRazorpay) CreateOrder(_ context.Context, req *client.RazorpayOrderRequest) (*client.RazorpayOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, *req)
	if f.err != nil {
		return nil, f.err
	}
	return &client.RazorpayOrder{
		ID:       "order_remote_1",
		Entity:   "order",
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}, nil
}

func (f *fakeRazorpay) VerifySignature(orderID, paymentID, signature string) bool {
	return client.Sign(testKeySecret, orderID, paymentID) == signature
}

func (f *fakeRazorpay) KeyID() string { return "rzp_test_key" }

type fakeMail struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMail) Send(_ context.Context, to, _, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

type fakeBraintree struct {
	txID string
	err  error
}

func (f *fakeBraintree) ChargeOneTime(context.Context, string, decimal.Decimal, string) (string, error) {
	return f.txID, f.err
}

var errGatewayDown = errors.New("gateway unavailable")

// env is a wired service graph on a fresh database.
type env struct {
	db       *gorm.DB
	razorpay *fakeRazorpay
	mail     *fakeMail
	seq      int

	users     repository.UserRepository
	addresses repository.AddressRepository
	packs     repository.PackRepository
	carts     repository.CartRepository
	orders    repository.OrderRepository
	payments  repository.PaymentRepository

	tokens     TokenManager
	authSvc    AuthService
	userSvc    UserService
	addressSvc AddressService
	catalogSvc CatalogService
	packSvc    PackService
	cartSvc    CartService
	orderSvc   OrderService
	paymentSvc PaymentService
	seedSvc    SeedService
	orderDeps  OrderDeps
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := testutil.NewDB(t)
	logger := zap.NewNop()

	e := &env{
		db:        db,
		razorpay:  &fakeRazorpay{},
		mail:      &fakeMail{},
		users:     repository.NewUserRepository(db),
		addresses: repository.NewAddressRepository(db),
		packs:     repository.NewPackRepository(db),
		carts:     repository.NewCartRepository(db),
		orders:    repository.NewOrderRepository(db),
		payments:  repository.NewPaymentRepository(db),
	}

	categories := repository.NewCategoryRepository(db)
	unitTypes := repository.NewUnitTypeRepository(db)
	products := repository.NewProductRepository(db)
	packTypes := repository.NewPackTypeRepository(db)

	e.tokens = NewTokenManager(config.JWT{Secret: "test-secret", TTL: time.Hour})
	e.authSvc = NewAuthService(e.users, e.tokens, e.mail, logger)
	e.userSvc = NewUserService(e.users)
	e.addressSvc = NewAddressService(db, e.addresses)
	e.catalogSvc = NewCatalogService(categories, unitTypes, products)
	e.packSvc = NewPackService(db, e.packs, packTypes, categories, products, logger)
	e.cartSvc = NewCartService(db, e.carts, e.packs)
	e.orderDeps = OrderDeps{
		DB:             db,
		OrderRepo:      e.orders,
		PaymentRepo:    e.payments,
		PackRepo:       e.packs,
		CartRepo:       e.carts,
		AddressRepo:    e.addresses,
		UserRepo:       e.users,
		Razorpay:       e.razorpay,
		Mail:           e.mail,
		Logger:         logger,
		GatewayTimeout: time.Second,
	}
	e.orderSvc = NewOrderService(e.orderDeps)
	e.paymentSvc = NewPaymentService(db, e.orders, e.payments, e.razorpay, logger, time.Second)
	e.seedSvc = NewSeedService(db, e.users, logger)

	return e
}

func (e *env) createUser(t *testing.T, email string, role model.Role) *model.User {
	t.Helper()

	hashed, err := HashPassword("password123")
	require.NoError(t, err)

	user := &model.User{Name: "Test " + string(role), Email: email, Password: hashed, Role: role, IsActive: true}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func actorOf(u *model.User) Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

// createPack stores a purchasable pack whose composition totals finalPrice.
func (e *env) createPack(t *testing.T, finalPrice string) *model.Pack {
	t.Helper()

	price := decimal.RequireFromString(finalPrice)
	e.seq++
	category := &model.Category{Name: fmt.Sprintf("Vegetables %d", e.seq), IsActive: true}
	require.NoError(t, e.db.Create(category).Error)

	packType := &model.PackType{Name: "Weekly", Duration: model.DurationWeekly, BasePrice: decimal.Zero, IsActive: true}
	require.NoError(t, e.db.Create(packType).Error)

	product := &model.Product{
		Name:        "Tomato",
		Price:       price,
		CategoryID:  category.ID,
		Quantity:    decimal.NewFromInt(1),
		IsAvailable: true,
		Stock:       100,
	}
	require.NoError(t, e.db.Create(product).Error)

	now := time.Now()
	pack := &model.Pack{
		Name:       "Veg Weekly Pack",
		CategoryID: category.ID,
		PackTypeID: packType.ID,
		BasePrice:  price,
		FinalPrice: price,
		IsActive:   true,
		ValidFrom:  now.Add(-24 * time.Hour),
		ValidUntil: now.Add(30 * 24 * time.Hour),
	}
	require.NoError(t, e.db.Create(pack).Error)

	item := &model.PackProduct{PackID: pack.ID, ProductID: product.ID, Quantity: 1, UnitPrice: price}
	require.NoError(t, e.db.Omit("Product").Create(item).Error)

	return pack
}

func (e *env) count(t *testing.T, table interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, e.db.Model(table).Count(&n).Error)
	return n
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func uintPtr(v uint) *uint {
	return &v
}
