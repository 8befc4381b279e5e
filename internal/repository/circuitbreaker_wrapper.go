package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nattawat-k/storefront-service/internal/circuitbreaker"
	"github.com/nattawat-k/storefront-service/internal/domain/model"
)

// OrdersRepositoryWithCircuitBreaker wraps an orders repository with a
// circuit breaker so a struggling database fails order writes fast
// instead of piling up timeouts.
type OrdersRepositoryWithCircuitBreaker struct {
	repo OrdersRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewOrdersRepositoryWithCircuitBreaker wraps repo with cb.
func NewOrdersRepositoryWithCircuitBreaker(repo OrdersRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *OrdersRepositoryWithCircuitBreaker {
	return &OrdersRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

// Create inserts an order through the circuit breaker.
func (r *OrdersRepositoryWithCircuitBreaker) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	var created *model.Order
	err := r.cb.Execute(ctx, func() error {
		var innerErr error
		created, innerErr = r.repo.Create(ctx, order)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List lists orders through the circuit breaker.
func (r *OrdersRepositoryWithCircuitBreaker) List(ctx context.Context, limit int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.cb.Execute(ctx, func() error {
		var innerErr error
		orders, innerErr = r.repo.List(ctx, limit)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID fetches an order through the circuit breaker.
func (r *OrdersRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	var order *model.Order
	err := r.cb.Execute(ctx, func() error {
		var innerErr error
		order, innerErr = r.repo.GetByID(ctx, id)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// SetPaid updates the paid flag through the circuit breaker.
func (r *OrdersRepositoryWithCircuitBreaker) SetPaid(ctx context.Context, id primitive.ObjectID, paid bool) (*model.Order, error) {
	var updated *model.Order
	err := r.cb.Execute(ctx, func() error {
		var innerErr error
		updated, innerErr = r.repo.SetPaid(ctx, id, paid)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
