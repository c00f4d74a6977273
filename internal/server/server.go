package server

import (
	"fitmarket/internal/handler"
	custommw "fitmarket/internal/middleware"
	"fitmarket/internal/service"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo             *echo.Echo
	jwtSecret        string
	checkoutHandler  *handler.CheckoutHandler
	catalogHandler   *handler.CatalogHandler
	purchasesHandler *handler.PurchasesHandler
}

func NewServer(
	jwtSecret string,
	logger *slog.Logger,
	checkoutService service.CheckoutService,
	fulfillmentService service.FulfillmentService,
	catalogService service.CatalogService,
	purchaseService service.PurchaseService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"error", v.Error,
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:             e,
		jwtSecret:        jwtSecret,
		checkoutHandler:  handler.NewCheckoutHandler(checkoutService, fulfillmentService, logger),
		catalogHandler:   handler.NewCatalogHandler(catalogService),
		purchasesHandler: handler.NewPurchasesHandler(purchaseService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:id", s.catalogHandler.GetProduct)

	authed := api.Group("", custommw.Auth(s.jwtSecret))

	// -------- checkout --------
	checkout := authed.Group("/checkout")
	checkout.POST("/session", s.checkoutHandler.CreateSession)
	checkout.GET("/reconcile", s.checkoutHandler.Reconcile)

	// -------- purchases --------
	authed.GET("/orders", s.purchasesHandler.ListOrders)
	authed.GET("/entitlements", s.purchasesHandler.ListEntitlements)

	// -------- admin --------
	admin := authed.Group("/admin", custommw.RequireAdmin())
	admin.PATCH("/orders/:id/status", s.purchasesHandler.UpdateOrderStatus)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
