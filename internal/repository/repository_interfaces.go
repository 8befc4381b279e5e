// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nattawat-k/storefront-service/internal/domain/model"
)

// ProductsRepositoryInterface defines the products repository operations.
type ProductsRepositoryInterface interface {
	List(ctx context.Context, search string, page int64, sort string) ([]model.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, product model.Product) (*model.Product, error)
}

// CustomersRepositoryInterface defines the customers repository operations.
type CustomersRepositoryInterface interface {
	List(ctx context.Context, search string) ([]model.Customer, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error)
	Create(ctx context.Context, customer model.Customer) (*model.Customer, error)
	Update(ctx context.Context, id primitive.ObjectID, customer model.Customer) (*model.Customer, error)
}

// OrdersRepositoryInterface defines the orders repository operations.
type OrdersRepositoryInterface interface {
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	List(ctx context.Context, limit int64) ([]model.Order, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	SetPaid(ctx context.Context, id primitive.ObjectID, paid bool) (*model.Order, error)
}
