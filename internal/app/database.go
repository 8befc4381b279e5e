// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/nattawat-k/storefront-service/config"
	"github.com/nattawat-k/storefront-service/internal/circuitbreaker"
	"github.com/nattawat-k/storefront-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	ProductsRepo         repository.ProductsRepositoryInterface
	CustomersRepo        repository.CustomersRepositoryInterface
	OrdersRepo           repository.OrdersRepositoryInterface
	OrdersCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Orders are the write path that must fail fast when the database
	// struggles; catalog reads go through unwrapped.
	ordersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-orders",
	})

	ordersRepo := repository.NewOrdersRepository(db)
	ordersRepoWithCB := repository.NewOrdersRepositoryWithCircuitBreaker(ordersRepo, ordersCB)

	return &DatabaseComponents{
		DB:                   db,
		ProductsRepo:         repository.NewProductsRepository(db),
		CustomersRepo:        repository.NewCustomersRepository(db),
		OrdersRepo:           ordersRepoWithCB,
		OrdersCircuitBreaker: ordersCB,
	}
}
