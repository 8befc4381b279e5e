package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nattawat-k/storefront-service/internal/domain/dto"
	"github.com/nattawat-k/storefront-service/internal/domain/model"
	"github.com/nattawat-k/storefront-service/internal/i18n"
	"github.com/nattawat-k/storefront-service/internal/service"
)

// CustomersHandler provides HTTP handlers for customer routes.
type CustomersHandler struct {
	customers service.CustomerService
}

// NewCustomersHandler creates a new CustomersHandler instance.
func NewCustomersHandler(customers service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

func customerFromRequest(req *dto.CustomerRequest) model.Customer {
	return model.Customer{
		Name:            req.Name,
		Address:         req.Address,
		Phone:           req.Phone,
		DeliveryService: req.DeliveryService,
		DeliveryNote:    req.DeliveryNote,
		CarRegistration: req.CarRegistration,
	}
}

// ListCustomers handles GET /api/customers requests.
//
// @Summary      Search customers
// @Description  Returns customers matching the search text against name, phone and address.
// @Tags         Customers
// @Produce      json
// @Param        search query string false "Search text"
// @Success      200 {object} dto.SuccessResponse "Customers"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/customers [get]
func (h *CustomersHandler) ListCustomers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	customers, err := h.customers.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}

	builder.SuccessOK(customers)
}

// GetCustomer handles GET /api/customers/:id requests.
//
// @Summary      Get a customer
// @Tags         Customers
// @Produce      json
// @Param        id path string true "Customer id"
// @Success      200 {object} dto.SuccessResponse "Customer"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Customer not found"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/customers/{id} [get]
func (h *CustomersHandler) GetCustomer(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, err)
		return
	}

	customer, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}
	if customer == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(customer)
}

// CreateCustomer handles POST /api/customers requests.
//
// @Summary      Create a customer
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        request body dto.CustomerRequest true "Customer payload"
// @Success      201 {object} dto.SuccessResponse "Stored customer"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/customers [post]
func (h *CustomersHandler) CreateCustomer(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CustomerRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), customerFromRequest(req))
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}

	builder.SuccessCreated(customer)
}

// UpdateCustomer handles PUT /api/customers/:id requests.
//
// @Summary      Update a customer
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer id"
// @Param        request body dto.CustomerRequest true "Customer payload"
// @Success      200 {object} dto.SuccessResponse "Updated customer"
// @Failure      400 {object} dto.ErrorResponse "Invalid id or body"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/customers/{id} [put]
func (h *CustomersHandler) UpdateCustomer(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, err)
		return
	}

	req, err := BuildRequest[dto.CustomerRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), id, customerFromRequest(req))
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}

	builder.SuccessOK(customer)
}
