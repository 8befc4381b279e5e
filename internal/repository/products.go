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

const (
	// productsPerPage matches the storefront's page size.
	productsPerPage = 30
	// defaultProductSort is the default list ordering.
	defaultProductSort = "label"
)

// ProductsRepository provides access to the products collection.
type ProductsRepository struct {
	collection *mongo.Collection
}

// NewProductsRepository creates a new products repository.
func NewProductsRepository(db *MongoDB) *ProductsRepository {
	return &ProductsRepository{collection: db.Products}
}

// List returns one page of active products, optionally filtered by a
// case-insensitive label substring.
func (r *ProductsRepository) List(ctx context.Context, search string, page int64, sort string) ([]model.Product, error) {
	filter := bson.M{"is_active": true}
	if search != "" {
		filter["label"] = bson.M{"$regex": search, "$options": "i"}
	}
	if sort == "" {
		sort = defaultProductSort
	}
	if page < 1 {
		page = 1
	}

	opts := options.Find().
		SetSort(bson.M{sort: 1}).
		SetSkip((page - 1) * productsPerPage).
		SetLimit(productsPerPage)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns the product with the given id, or nil if absent.
func (r *ProductsRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create inserts a new product.
func (r *ProductsRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces the mutable fields of an existing product and returns
// the updated document.
func (r *ProductsRepository) Update(ctx context.Context, id primitive.ObjectID, product model.Product) (*model.Product, error) {
	update := bson.M{"$set": bson.M{
		"label":         product.Label,
		"price":         product.Price,
		"kg":            product.Kg,
		"unit":          product.Unit,
		"lotNumber":     product.LotNumber,
		"image":         product.Image,
		"is_active":     product.IsActive,
		"priceByWeight": product.PriceByWeight,
		"updated_at":    time.Now(),
	}}

	var updated model.Product
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
