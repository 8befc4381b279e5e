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

// customersSearchLimit caps customer search results the way the
// storefront's picker does.
const customersSearchLimit = 10

// CustomersRepository provides access to the customers collection.
type CustomersRepository struct {
	collection *mongo.Collection
}

// NewCustomersRepository creates a new customers repository.
func NewCustomersRepository(db *MongoDB) *CustomersRepository {
	return &CustomersRepository{collection: db.Customers}
}

// List returns customers matching the search term across name, phone
// and address, newest first. An empty term returns the first page of
// all customers.
func (r *CustomersRepository) List(ctx context.Context, search string) ([]model.Customer, error) {
	filter := bson.M{}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"phone": regex},
			{"address": regex},
		}
	}

	opts := options.Find().
		SetSort(bson.M{"name": 1}).
		SetLimit(customersSearchLimit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var customers []model.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetByID returns the customer with the given id, or nil if absent.
func (r *CustomersRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	var customer model.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create inserts a new customer.
func (r *CustomersRepository) Create(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	customer.ID = primitive.NewObjectID()
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update replaces the mutable fields of an existing customer and
// returns the updated document.
func (r *CustomersRepository) Update(ctx context.Context, id primitive.ObjectID, customer model.Customer) (*model.Customer, error) {
	update := bson.M{"$set": bson.M{
		"name":            customer.Name,
		"address":         customer.Address,
		"phone":           customer.Phone,
		"deliveryService": customer.DeliveryService,
		"deliveryNote":    customer.DeliveryNote,
		"carRegistration": customer.CarRegistration,
		"updated_at":      time.Now(),
	}}

	var updated model.Customer
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
