package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nattawat-k/storefront-service/internal/domain/model"
	"github.com/nattawat-k/storefront-service/internal/repository"
)

// CustomerService provides customer lookup and maintenance operations.
type CustomerService interface {
	List(ctx context.Context, search string) ([]model.Customer, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Customer, error)
	Create(ctx context.Context, customer model.Customer) (*model.Customer, error)
	Update(ctx context.Context, id primitive.ObjectID, customer model.Customer) (*model.Customer, error)
}

// CustomerServiceImpl implements CustomerService.
type CustomerServiceImpl struct {
	repo repository.CustomersRepositoryInterface
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.CustomersRepositoryInterface) CustomerService {
	return &CustomerServiceImpl{repo: repo}
}

func (s *CustomerServiceImpl) List(ctx context.Context, search string) ([]model.Customer, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, search)
}

func (s *CustomerServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerServiceImpl) Create(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Create(ctx, customer)
}

func (s *CustomerServiceImpl) Update(ctx context.Context, id primitive.ObjectID, customer model.Customer) (*model.Customer, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Update(ctx, id, customer)
}
