package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nattawat-k/storefront-service/internal/domain/model"
)

// OrdersRepository provides access to the orders collection.
type OrdersRepository struct {
	collection *mongo.Collection
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{collection: db.Orders}
}

// Create inserts a completed order.
func (r *OrdersRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	order.ID = primitive.NewObjectID()
	order.IsEnable = true
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders newest first. A non-positive limit returns all.
func (r *OrdersRepository) List(ctx context.Context, limit int64) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"isEnable": true}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns the order with the given id, or nil if absent.
func (r *OrdersRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SetPaid flags an order as paid or unpaid and returns the updated
// document.
func (r *OrdersRepository) SetPaid(ctx context.Context, id primitive.ObjectID, paid bool) (*model.Order, error) {
	update := bson.M{"$set": bson.M{
		"isPaid":     paid,
		"updated_at": time.Now(),
	}}

	var updated model.Order
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
