// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// OrderItemRequest is one cart line in an order or summary request.
// The client submits the full product snapshot so the generated summary
// reflects the prices the customer actually saw.
type OrderItemRequest struct {
	// ProductID is the catalog id of the product, if any.
	ProductID string `json:"product_id,omitempty" example:"64f1c0a2e13a4b0001c0ffee"`
	// Label is the product display name.
	Label string `json:"label" binding:"required" example:"หมูสามชั้น"`
	// Price is the unit price in baht.
	Price float64 `json:"price" binding:"gte=0" example:"120"`
	// Kg is the unit weight in kilograms.
	Kg float64 `json:"kg" binding:"gte=0" example:"1"`
	// Unit is the display unit for withdrawal slips.
	Unit      string `json:"unit,omitempty" example:"แพ็ค"`
	LotNumber string `json:"lot_number,omitempty" example:"L-0423"`
	// Count is the ordered quantity. Must be greater than 0.
	Count int `json:"count" binding:"required,gt=0" example:"2" minimum:"1"`
} // @name OrderItemRequest

// CustomerDetailsRequest is the customer snapshot of an order request.
type CustomerDetailsRequest struct {
	Name            string `json:"name,omitempty" example:"ร้านป้าแดง"`
	Address         string `json:"address,omitempty"`
	Phone           string `json:"phone,omitempty" example:"0812345678"`
	DeliveryService string `json:"delivery_service,omitempty" example:"รถตู้สายเหนือ"`
	DeliveryNote    string `json:"delivery_note,omitempty"`
	CarRegistration string `json:"car_registration,omitempty" example:"1กข-2345"`
} // @name CustomerDetailsRequest

// DeliveryDetailsRequest is the delivery block of an order request.
// Containers maps container spec ids to quantities; the legacy
// package_type/container_count pair is accepted from older clients and
// migrated when no container map is sent.
type DeliveryDetailsRequest struct {
	IsDeliver       bool           `json:"is_deliver" example:"true"`
	ProductLocation string         `json:"product_location,omitempty" example:"หน้าร้าน"`
	Containers      map[string]int `json:"containers,omitempty" swaggertype:"object"`
	ContainerCount  int            `json:"container_count,omitempty" example:"0"`
	PackageType     bool           `json:"package_type,omitempty"`
} // @name DeliveryDetailsRequest

// OrderOptionsRequest holds the output-mode toggles of a request.
type OrderOptionsRequest struct {
	IsWithoutDetails bool `json:"is_without_details" example:"false"`
	IsWithdrawal     bool `json:"is_withdrawal" example:"false"`
} // @name OrderOptionsRequest

// CreateOrderRequest represents the JSON request body for finalizing an order.
//
// @Description Request to finalize an order from a cart snapshot
type CreateOrderRequest struct {
	// Items is the ordered cart content. Must contain at least one line.
	Items    []OrderItemRequest     `json:"items" binding:"required,min=1,dive"`
	Customer CustomerDetailsRequest `json:"customer"`
	Delivery DeliveryDetailsRequest `json:"delivery"`
	Options  OrderOptionsRequest    `json:"options"`
	// User identifies who submitted the order.
	User string `json:"user,omitempty" example:"line-u4f9d"`
} // @name CreateOrderRequest

// SummaryRequest represents the JSON request body for previewing an
// order summary without persisting anything. It carries the same
// payload as CreateOrderRequest minus the submitting user.
//
// @Description Request to render an order summary preview
type SummaryRequest struct {
	Items    []OrderItemRequest     `json:"items" binding:"required,min=1,dive"`
	Customer CustomerDetailsRequest `json:"customer"`
	Delivery DeliveryDetailsRequest `json:"delivery"`
	Options  OrderOptionsRequest    `json:"options"`
} // @name SummaryRequest

// SuggestContainersRequest represents the JSON request body for the
// container suggestion endpoint.
//
// @Description Request to suggest containers for a total order weight
// @Example {"total_weight": 23.5}
type SuggestContainersRequest struct {
	// TotalWeight is the total order weight in kilograms. Zero yields an
	// empty suggestion.
	TotalWeight float64 `json:"total_weight" binding:"gte=0" example:"23.5" minimum:"0"`
} // @name SuggestContainersRequest

// ProductRequest represents the JSON request body for creating or
// updating a product.
type ProductRequest struct {
	// Label is the product display name. Must not be empty.
	Label string `json:"label" binding:"required" example:"หมูสามชั้น"`
	// Price is the unit price in baht.
	Price float64 `json:"price" binding:"gte=0" example:"120"`
	// Kg is the unit weight in kilograms.
	Kg            float64 `json:"kg" binding:"gte=0" example:"1"`
	Unit          string  `json:"unit,omitempty" example:"แพ็ค"`
	LotNumber     string  `json:"lot_number,omitempty"`
	Image         string  `json:"image,omitempty"`
	IsActive      bool    `json:"is_active" example:"true"`
	PriceByWeight bool    `json:"price_by_weight"`
} // @name ProductRequest

// CustomerRequest represents the JSON request body for creating or
// updating a customer.
type CustomerRequest struct {
	// Name is the customer display name. Must not be empty.
	Name            string `json:"name" binding:"required" example:"ร้านป้าแดง"`
	Address         string `json:"address,omitempty"`
	Phone           string `json:"phone,omitempty"`
	DeliveryService string `json:"delivery_service,omitempty"`
	DeliveryNote    string `json:"delivery_note,omitempty"`
	CarRegistration string `json:"car_registration,omitempty"`
} // @name CustomerRequest

// SetPaidRequest represents the JSON request body for toggling an
// order's paid flag.
type SetPaidRequest struct {
	Paid bool `json:"paid" example:"true"`
} // @name SetPaidRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrNoItems is returned when an order carries no cart lines.
	ErrNoItems = &ValidationError{
		Field:   "items",
		Message: "must contain at least one item",
	}
	// ErrInvalidCount is returned when a cart line count is not positive.
	ErrInvalidCount = &ValidationError{
		Field:   "items.count",
		Message: "must be a positive integer",
	}
	// ErrInvalidWeight is returned when total_weight is negative.
	ErrInvalidWeight = &ValidationError{
		Field:   "total_weight",
		Message: "must not be negative",
	}
	// ErrInvalidContainerQuantity is returned when a container quantity
	// is not positive.
	ErrInvalidContainerQuantity = &ValidationError{
		Field:   "delivery.containers",
		Message: "quantities must be positive integers",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *CreateOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range r.Items {
		if item.Count <= 0 {
			return ErrInvalidCount
		}
	}
	return r.Delivery.validate()
}

// Validate performs custom validation on the request.
func (r *SummaryRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range r.Items {
		if item.Count <= 0 {
			return ErrInvalidCount
		}
	}
	return r.Delivery.validate()
}

// Validate performs custom validation on the request.
func (r *SuggestContainersRequest) Validate() error {
	if r.TotalWeight < 0 {
		return ErrInvalidWeight
	}
	return nil
}

func (d *DeliveryDetailsRequest) validate() error {
	for _, quantity := range d.Containers {
		if quantity <= 0 {
			return ErrInvalidContainerQuantity
		}
	}
	return nil
}
