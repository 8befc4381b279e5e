// Package model defines the core domain entities for the storefront service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is one sellable item from the catalog.
//
// Price is the price per weight step, Kg the weight of one unit.
// LotNumber identifies the stock lot for withdrawal slips.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Label         string             `bson:"label" json:"label"`
	Price         float64            `bson:"price" json:"price"`
	Kg            float64            `bson:"kg" json:"kg"`
	Unit          string             `bson:"unit" json:"unit"`
	LotNumber     string             `bson:"lotNumber" json:"lotNumber"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	IsActive      bool               `bson:"is_active" json:"is_active"`
	PriceByWeight bool               `bson:"priceByWeight" json:"priceByWeight"`
	CreatedAt     time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt     time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
