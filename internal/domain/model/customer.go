package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is a stored customer record.
type Customer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Address         string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	DeliveryService string             `bson:"deliveryService,omitempty" json:"deliveryService,omitempty"`
	DeliveryNote    string             `bson:"deliveryNote,omitempty" json:"deliveryNote,omitempty"`
	CarRegistration string             `bson:"carRegistration,omitempty" json:"carRegistration,omitempty"`
	CreatedAt       time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt       time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// CustomerDetails is the customer snapshot attached to one order
// session. All fields default to empty; the formatter performs no
// validation on them.
type CustomerDetails struct {
	Name            string `bson:"name" json:"name"`
	Address         string `bson:"address,omitempty" json:"address,omitempty"`
	Phone           string `bson:"phone,omitempty" json:"phone,omitempty"`
	DeliveryService string `bson:"deliveryService,omitempty" json:"deliveryService,omitempty"`
	DeliveryNote    string `bson:"deliveryNote,omitempty" json:"deliveryNote,omitempty"`
	CarRegistration string `bson:"carRegistration,omitempty" json:"carRegistration,omitempty"`
}

// Details returns the session snapshot of a stored customer.
func (c Customer) Details() CustomerDetails {
	return CustomerDetails{
		Name:            c.Name,
		Address:         c.Address,
		Phone:           c.Phone,
		DeliveryService: c.DeliveryService,
		DeliveryNote:    c.DeliveryNote,
		CarRegistration: c.CarRegistration,
	}
}
