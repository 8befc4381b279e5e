// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/nattawat-k/storefront-service/config"
	"github.com/nattawat-k/storefront-service/internal/http"
	"github.com/nattawat-k/storefront-service/internal/repository"
	"github.com/nattawat-k/storefront-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// mongoChecker adapts the MongoDB health check to the HealthChecker interface.
type mongoChecker struct {
	db *repository.MongoDB
}

func (c mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.db.HealthCheck(ctx)
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var (
		productService  service.ProductService
		customerService service.CustomerService
		orderService    service.OrderService
	)
	if dbComponents != nil {
		productService = service.NewProductService(dbComponents.ProductsRepo)
		customerService = service.NewCustomerService(dbComponents.CustomersRepo)
		orderService = service.NewOrderService(dbComponents.OrdersRepo)
	} else {
		// Without a database the summary preview and container endpoints
		// still work; persistence endpoints report unavailability.
		productService = service.NewProductService(nil)
		customerService = service.NewCustomerService(nil)
		orderService = service.NewOrderService(nil)
	}

	healthHandler := http.NewHealthHandler()

	// Register database health and circuit breaker monitoring
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
		}
		if dbComponents.OrdersCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_orders", dbComponents.OrdersCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:       cfg.Server.RateLimit,
		RateWindow:      cfg.Server.RateWindow,
		RequestTimeout:  cfg.Server.RequestTimeout,
		OrderListLimit:  cfg.Store.OrderListLimit,
		CORSOrigins:     cfg.Server.CORSOrigins,
		SwaggerUser:     cfg.Server.SwaggerUser,
		SwaggerPass:     cfg.Server.SwaggerPass,
		ProductService:  productService,
		CustomerService: customerService,
		OrderService:    orderService,
		ContainerOpts:   serviceComponents.ContainerOpts,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
