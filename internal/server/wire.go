package server

import (
	"time"

	"freshpack-backend/internal/client"
	"freshpack-backend/internal/config"
	"freshpack-backend/internal/repository"
	"freshpack-backend/internal/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Clients are the outbound integrations. Braintree may be nil.
type Clients struct {
	Razorpay  client.RazorpayClient
	Braintree client.BraintreeClient
	Mail      client.MailClient
}

// NewServices builds the repositories and services on top of db.
func NewServices(db *gorm.DB, jwtCfg config.JWT, gatewayTimeout time.Duration, clients Clients, logger *zap.Logger) Services {
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	unitTypeRepo := repository.NewUnitTypeRepository(db)
	productRepo := repository.NewProductRepository(db)
	packTypeRepo := repository.NewPackTypeRepository(db)
	packRepo := repository.NewPackRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	tokens := service.NewTokenManager(jwtCfg)

	return Services{
		Tokens:  tokens,
		Auth:    service.NewAuthService(userRepo, tokens, clients.Mail, logger),
		Users:   service.NewUserService(userRepo),
		Address: service.NewAddressService(db, addressRepo),
		Catalog: service.NewCatalogService(categoryRepo, unitTypeRepo, productRepo),
		Packs:   service.NewPackService(db, packRepo, packTypeRepo, categoryRepo, productRepo, logger),
		Cart:    service.NewCartService(db, cartRepo, packRepo),
		Orders: service.NewOrderService(service.OrderDeps{
			DB:             db,
			OrderRepo:      orderRepo,
			PaymentRepo:    paymentRepo,
			PackRepo:       packRepo,
			CartRepo:       cartRepo,
			AddressRepo:    addressRepo,
			UserRepo:       userRepo,
			Razorpay:       clients.Razorpay,
			Braintree:      clients.Braintree,
			Mail:           clients.Mail,
			Logger:         logger,
			GatewayTimeout: gatewayTimeout,
		}),
		Payments: service.NewPaymentService(db, orderRepo, paymentRepo, clients.Razorpay, logger, gatewayTimeout),
		Seed:     service.NewSeedService(db, userRepo, logger),
	}
}
