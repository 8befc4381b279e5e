package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nattawat-k/storefront-service/internal/domain/model"
	"github.com/nattawat-k/storefront-service/internal/repository"
)

// ErrEmptyOrder is returned when an order is submitted without items.
var ErrEmptyOrder = errors.New("order has no items")

// OrderService finalizes order sessions and provides order history.
type OrderService interface {
	Finish(ctx context.Context, session *OrderSession, userID string) (*model.Order, error)
	List(ctx context.Context, limit int64) ([]model.Order, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	SetPaid(ctx context.Context, id primitive.ObjectID, paid bool) (*model.Order, error)
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	repo repository.OrdersRepositoryInterface
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrdersRepositoryInterface) OrderService {
	return &OrderServiceImpl{repo: repo}
}

// Finish renders the session summary, snapshots the cart and container
// allocation into an order document and persists it. The session itself
// is not mutated; callers reset it once the order is stored.
func (s *OrderServiceImpl) Finish(ctx context.Context, session *OrderSession, userID string) (*model.Order, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if session.Cart.IsEmpty() {
		return nil, ErrEmptyOrder
	}

	summary, totalCost := session.Summary()

	order := model.Order{
		OrderDetails:    orderLines(session.Cart),
		CustomerDetails: session.Customer,
		DeliveryDetails: session.Delivery,
		Containers:      session.Containers.Serialize(),
		Summary:         summary,
		TotalCost:       totalCost.InexactFloat64(),
		UserID:          userID,
	}
	order.ProductIDs = make([]string, 0, len(order.OrderDetails))
	for _, line := range order.OrderDetails {
		order.ProductIDs = append(order.ProductIDs, line.ProductID)
	}

	return s.repo.Create(ctx, order)
}

func (s *OrderServiceImpl) List(ctx context.Context, limit int64) ([]model.Order, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}

func (s *OrderServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.GetByID(ctx, id)
}

func (s *OrderServiceImpl) SetPaid(ctx context.Context, id primitive.ObjectID, paid bool) (*model.Order, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.SetPaid(ctx, id, paid)
}

func orderLines(cart *model.Cart) []model.OrderLine {
	items := cart.Items()
	lines := make([]model.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, model.OrderLine{
			ProductID: item.Product.ID.Hex(),
			Label:     item.Product.Label,
			Price:     item.Product.Price,
			Kg:        item.Product.Kg,
			Unit:      item.Product.Unit,
			LotNumber: item.Product.LotNumber,
			Count:     item.Count,
		})
	}
	return lines
}
