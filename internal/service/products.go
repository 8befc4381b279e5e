package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nattawat-k/storefront-service/internal/domain/model"
	"github.com/nattawat-k/storefront-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when a service is used without
// a backing repository.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ProductService provides product catalog operations.
type ProductService interface {
	List(ctx context.Context, search string, page int64, sort string) ([]model.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, product model.Product) (*model.Product, error)
}

// ProductServiceImpl implements ProductService.
type ProductServiceImpl struct {
	repo repository.ProductsRepositoryInterface
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductsRepositoryInterface) ProductService {
	return &ProductServiceImpl{repo: repo}
}

func (s *ProductServiceImpl) List(ctx context.Context, search string, page int64, sort string) ([]model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, search, page, sort)
}

func (s *ProductServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ProductServiceImpl) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Create(ctx, product)
}

func (s *ProductServiceImpl) Update(ctx context.Context, id primitive.ObjectID, product model.Product) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Update(ctx, id, product)
}
