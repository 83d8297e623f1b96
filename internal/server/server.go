package server

import (
	"context"
	"errors"
	"net/http"

	"freshpack-backend/internal/handler"
	mw "freshpack-backend/internal/middleware"
	"freshpack-backend/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Tokens   service.TokenManager
	Auth     service.AuthService
	Users    service.UserService
	Address  service.AddressService
	Catalog  service.CatalogService
	Packs    service.PackService
	Cart     service.CartService
	Orders   service.OrderService
	Payments service.PaymentService
	Seed     service.SeedService
}

type Options struct {
	// MaintenanceEnabled exposes /api/seed and /api/force-sync.
	MaintenanceEnabled bool
}

type Server struct {
	echo   *echo.Echo
	logger *zap.Logger
	tokens service.TokenManager
	opts   Options

	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	catalogHandler     *handler.CatalogHandler
	packHandler        *handler.PackHandler
	cartHandler        *handler.CartHandler
	orderHandler       *handler.OrderHandler
	paymentHandler     *handler.PaymentHandler
	maintenanceHandler *handler.MaintenanceHandler
}

func NewServer(svc Services, logger *zap.Logger, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()

	s := &Server{
		echo:   e,
		logger: logger,
		tokens: svc.Tokens,
		opts:   opts,

		authHandler:        handler.NewAuthHandler(svc.Auth),
		userHandler:        handler.NewUserHandler(svc.Users, svc.Address),
		catalogHandler:     handler.NewCatalogHandler(svc.Catalog),
		packHandler:        handler.NewPackHandler(svc.Packs),
		cartHandler:        handler.NewCartHandler(svc.Cart),
		orderHandler:       handler.NewOrderHandler(svc.Orders),
		paymentHandler:     handler.NewPaymentHandler(svc.Payments),
		maintenanceHandler: handler.NewMaintenanceHandler(svc.Seed),
	}

	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Warn("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", handler.Health)

	api := s.echo.Group("/api")
	api.GET("/health", handler.Health)

	if s.opts.MaintenanceEnabled {
		api.POST("/seed", s.maintenanceHandler.Seed)
		api.POST("/force-sync", s.maintenanceHandler.ForceSync)
	}

	authn := mw.Auth(s.tokens)
	admin := mw.RequireAdmin()

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)
	auth.POST("/admin-login", s.authHandler.AdminLogin)

	// -------- public catalog --------
	public := api.Group("/public")
	public.GET("/categories", s.catalogHandler.ListPublicCategories)
	public.GET("/categories/:id/products", s.catalogHandler.ListPublicCategoryProducts)
	public.GET("/categories/:id/packs", s.packHandler.ListPublicCategoryPacks)
	public.GET("/products", s.catalogHandler.ListPublicProducts)
	public.GET("/products/:id", s.catalogHandler.GetPublicProduct)
	public.GET("/packs", s.packHandler.ListPublicPacks)

	// -------- catalog --------
	categories := api.Group("/categories")
	categories.GET("", s.catalogHandler.ListCategories)
	categories.GET("/:id", s.catalogHandler.GetCategory)
	categories.GET("/:id/products", s.catalogHandler.ListCategoryProducts)
	categories.POST("", s.catalogHandler.CreateCategory, authn, admin)
	categories.PUT("/:id", s.catalogHandler.UpdateCategory, authn, admin)
	categories.DELETE("/:id", s.catalogHandler.DeleteCategory, authn, admin)

	unitTypes := api.Group("/unit-types")
	unitTypes.GET("", s.catalogHandler.ListUnitTypes)
	unitTypes.POST("", s.catalogHandler.CreateUnitType, authn, admin)
	unitTypes.PUT("/:id", s.catalogHandler.UpdateUnitType, authn, admin)
	unitTypes.DELETE("/:id", s.catalogHandler.DeleteUnitType, authn, admin)

	products := api.Group("/products")
	products.GET("", s.catalogHandler.ListProducts)
	products.GET("/:id", s.catalogHandler.GetProduct)
	products.POST("", s.catalogHandler.CreateProduct, authn, admin)
	products.PUT("/:id", s.catalogHandler.UpdateProduct, authn, admin)
	products.DELETE("/:id", s.catalogHandler.DeleteProduct, authn, admin)

	// -------- packs --------
	packTypes := api.Group("/pack-types")
	packTypes.GET("", s.packHandler.ListPackTypes)
	packTypes.POST("", s.packHandler.CreatePackType, authn, admin)
	packTypes.PUT("/:id", s.packHandler.UpdatePackType, authn, admin)

	packs := api.Group("/packs")
	packs.GET("", s.packHandler.ListPacks)
	packs.GET("/:id", s.packHandler.GetPack)
	packs.GET("/:id/products", s.packHandler.GetPackProducts)
	packs.POST("", s.packHandler.CreatePack, authn, admin)
	packs.PUT("/:id", s.packHandler.UpdatePack, authn, admin)
	packs.DELETE("/:id", s.packHandler.DeletePack, authn, admin)
	packs.DELETE("/:id/products", s.packHandler.ClearPackProducts, authn, admin)

	api.POST("/pack-products/bulk", s.packHandler.ReplacePackProducts, authn, admin)

	// -------- users & addresses --------
	users := api.Group("/users", authn)
	users.GET("", s.userHandler.ListUsers, admin)
	users.GET("/:id", s.userHandler.GetUser)
	users.PUT("/:id", s.userHandler.UpdateUser)
	users.DELETE("/:id", s.userHandler.DeleteUser, admin)
	users.PATCH("/:id/status", s.userHandler.ToggleUserStatus, admin)

	addresses := api.Group("/addresses", authn)
	addresses.GET("", s.userHandler.ListAddresses)
	addresses.POST("", s.userHandler.CreateAddress)
	addresses.PUT("/:id", s.userHandler.UpdateAddress)
	addresses.DELETE("/:id", s.userHandler.DeleteAddress)

	// -------- cart --------
	cart := api.Group("/cart", authn)
	cart.GET("", s.cartHandler.ListOwnCart)
	cart.GET("/:userId", s.cartHandler.ListUserCart)
	cart.POST("", s.cartHandler.AddToCart)
	cart.PUT("/:id", s.cartHandler.UpdateCartItem)
	cart.DELETE("/:id", s.cartHandler.RemoveCartItem)

	// -------- orders & payments --------
	orders := api.Group("/orders", authn)
	orders.GET("", s.orderHandler.ListOrders, admin)
	orders.POST("", s.orderHandler.CreateOrder)
	orders.GET("/details/:orderId", s.orderHandler.GetOrder)
	orders.GET("/:userId", s.orderHandler.ListUserOrders)
	orders.PATCH("/:id/status", s.orderHandler.UpdateOrderStatus, admin)
	orders.PUT("/:orderId/payment", s.paymentHandler.UpdateOrderPayment)

	payments := api.Group("/payments", authn, admin)
	payments.GET("", s.paymentHandler.ListPayments)
	payments.POST("", s.paymentHandler.CreateManualPayment)

	api.POST("/create-razorpay-order", s.paymentHandler.CreateRazorpayOrder, authn)
	api.POST("/verify-payment", s.paymentHandler.VerifyPayment, authn)
}

// handleError renders every failure as {"error": message}.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Something went wrong"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
		if errors.Is(err, echo.ErrNotFound) {
			message = "Route not found"
		}
	}

	if code >= http.StatusInternalServerError {
		s.logger.Error("request error",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]string{"error": message})
	}
	if err != nil {
		s.logger.Error("write error response", zap.Error(err))
	}
}

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
