package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryDetails holds the delivery options of one order session.
//
// DeliveryCost and ContainerCount are the legacy flat fields kept for
// orders written before multi-spec packaging existed; new orders carry
// their packaging in Containers.
type DeliveryDetails struct {
	IsDeliver       bool                       `bson:"isDeliver" json:"isDeliver"`
	DeliveryCost    float64                    `bson:"deliveryCost,omitempty" json:"deliveryCost,omitempty"`
	ContainerCount  int                        `bson:"containerCount,omitempty" json:"containerCount,omitempty"`
	PackageType     bool                       `bson:"packageType,omitempty" json:"packageType,omitempty"`
	ProductLocation string                     `bson:"productLocation,omitempty" json:"productLocation,omitempty"`
	Containers      map[string]StoredSelection `bson:"containers,omitempty" json:"containers,omitempty"`
}

// OrderOptions holds the output-mode toggles of one order session.
type OrderOptions struct {
	// IsWithoutDetails suppresses the header and trailing note blocks
	// in generated summaries.
	IsWithoutDetails bool `bson:"isWithoutDetails" json:"isWithoutDetails"`
	// IsWithdrawal switches from a priced sales receipt to an internal
	// stock-withdrawal slip.
	IsWithdrawal bool `bson:"isWithdrawal" json:"isWithdrawal"`
}

// OrderLine is the persisted snapshot of one cart entry.
type OrderLine struct {
	ProductID string  `bson:"productId" json:"productId"`
	Label     string  `bson:"label" json:"label"`
	Price     float64 `bson:"price" json:"price"`
	Kg        float64 `bson:"kg" json:"kg"`
	Unit      string  `bson:"unit" json:"unit"`
	LotNumber string  `bson:"lotNumber,omitempty" json:"lotNumber,omitempty"`
	Count     int     `bson:"count" json:"count"`
}

// Order is a completed, persisted order. Summary and Containers embed
// the formatter output and the serialized allocation verbatim.
type Order struct {
	ID              primitive.ObjectID         `bson:"_id,omitempty" json:"id"`
	OrderDetails    []OrderLine                `bson:"orderDetails" json:"orderDetails"`
	CustomerDetails CustomerDetails            `bson:"customerDetails" json:"customerDetails"`
	DeliveryDetails DeliveryDetails            `bson:"deliveryDetails" json:"deliveryDetails"`
	Containers      map[string]StoredSelection `bson:"containers,omitempty" json:"containers,omitempty"`
	Summary         string                     `bson:"summary" json:"summary"`
	TotalCost       float64                    `bson:"totalCost" json:"totalCost"`
	IsPaid          bool                       `bson:"isPaid" json:"isPaid"`
	IsEnable        bool                       `bson:"isEnable" json:"isEnable"`
	UserID          string                     `bson:"user,omitempty" json:"user,omitempty"`
	ProductIDs      []string                   `bson:"products,omitempty" json:"products,omitempty"`
	CreatedAt       time.Time                  `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time                  `bson:"updated_at" json:"updated_at"`
}
