package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nattawat-k/storefront-service/internal/domain/dto"
	"github.com/nattawat-k/storefront-service/internal/domain/model"
	"github.com/nattawat-k/storefront-service/internal/i18n"
	"github.com/nattawat-k/storefront-service/internal/metrics"
	"github.com/nattawat-k/storefront-service/internal/service"
)

const defaultOrderListLimit = 50

// OrdersHandler provides HTTP handlers for order routes.
type OrdersHandler struct {
	orders        service.OrderService
	listLimit     int64
	containerOpts []service.ContainerOption
}

// NewOrdersHandler creates a new OrdersHandler instance. listLimit is the
// page size used when the list request carries no limit; values <= 0 fall
// back to the built-in default.
func NewOrdersHandler(orders service.OrderService, listLimit int, containerOpts ...service.ContainerOption) *OrdersHandler {
	if listLimit <= 0 {
		listLimit = defaultOrderListLimit
	}
	return &OrdersHandler{
		orders:        orders,
		listLimit:     int64(listLimit),
		containerOpts: containerOpts,
	}
}

// sessionFromRequest builds an order session from a request payload.
// The container map is validated against the catalog; the legacy
// package_type/container_count pair is migrated when no map is sent.
func (h *OrdersHandler) sessionFromRequest(
	items []dto.OrderItemRequest,
	customer dto.CustomerDetailsRequest,
	delivery dto.DeliveryDetailsRequest,
	options dto.OrderOptionsRequest,
) (*service.OrderSession, error) {
	session := service.NewOrderSession(h.containerOpts...)

	for _, item := range items {
		product := model.Product{
			Label:     item.Label,
			Price:     item.Price,
			Kg:        item.Kg,
			Unit:      item.Unit,
			LotNumber: item.LotNumber,
		}
		if id, err := primitive.ObjectIDFromHex(item.ProductID); err == nil {
			product.ID = id
		}
		session.Cart.Add(product, item.Count)
	}

	session.Customer = model.CustomerDetails{
		Name:            customer.Name,
		Address:         customer.Address,
		Phone:           customer.Phone,
		DeliveryService: customer.DeliveryService,
		DeliveryNote:    customer.DeliveryNote,
		CarRegistration: customer.CarRegistration,
	}
	session.Delivery = model.DeliveryDetails{
		IsDeliver:       delivery.IsDeliver,
		ContainerCount:  delivery.ContainerCount,
		PackageType:     delivery.PackageType,
		ProductLocation: delivery.ProductLocation,
	}
	session.Options = model.OrderOptions{
		IsWithoutDetails: options.IsWithoutDetails,
		IsWithdrawal:     options.IsWithdrawal,
	}

	if len(delivery.Containers) > 0 {
		for specID, quantity := range delivery.Containers {
			if err := session.Containers.AddContainer(specID, quantity); err != nil {
				return nil, err
			}
		}
	} else if delivery.ContainerCount > 0 {
		session.Containers.MigrateLegacySelection(delivery.PackageType, delivery.ContainerCount)
	}

	return session, nil
}

// CreateOrder handles POST /api/orders requests.
//
// @Summary      Finalize an order
// @Description  Renders the order summary from the submitted cart snapshot, persists the order together with its container allocation, and returns the stored document.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "Order payload"
// @Success      201 {object} dto.SuccessResponse "Order stored"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateOrderRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			metrics.RecordOrderCreated("validation_error")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	session, err := h.sessionFromRequest(req.Items, req.Customer, req.Delivery, req.Options)
	if err != nil {
		metrics.RecordOrderCreated("validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyContainerSpecNotFound, err)
		return
	}

	order, err := h.orders.Finish(c.Request.Context(), session, req.User)
	if err != nil {
		metrics.RecordOrderCreated("error")
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}

	metrics.RecordOrderCreated("success")
	builder.SuccessCreated(order)
}

// PreviewSummary handles POST /api/orders/summary requests.
//
// @Summary      Preview an order summary
// @Description  Renders the summary text and total for the submitted cart snapshot without persisting anything. Used for the copy-to-chat preview.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body dto.SummaryRequest true "Summary payload"
// @Success      200 {object} dto.SuccessResponse "Rendered summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/orders/summary [post]
func (h *OrdersHandler) PreviewSummary(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SummaryRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	session, err := h.sessionFromRequest(req.Items, req.Customer, req.Delivery, req.Options)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyContainerSpecNotFound, err)
		return
	}

	start := time.Now()
	summary, totalCost := session.Summary()
	metrics.RecordSummaryGeneration(time.Since(start))

	builder.SuccessOK(dto.SummaryResponse{
		Summary:   summary,
		TotalCost: totalCost.InexactFloat64(),
	})
}

// ListOrders handles GET /api/orders requests.
//
// @Summary      List orders
// @Description  Returns enabled orders, newest first.
// @Tags         Orders
// @Produce      json
// @Param        limit query int false "Maximum number of orders to return" default(50)
// @Success      200 {object} dto.SuccessResponse "Orders"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := h.listLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := parsePositiveInt(raw); err == nil {
			limit = parsed
		}
	}

	orders, err := h.orders.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}

	builder.SuccessOK(orders)
}

// GetOrder handles GET /api/orders/:id requests.
//
// @Summary      Get an order
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Order id"
// @Success      200 {object} dto.SuccessResponse "Order"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/orders/{id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, err)
		return
	}

	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}
	if order == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(order)
}

// SetPaid handles PATCH /api/orders/:id/paid requests.
//
// @Summary      Toggle the paid flag of an order
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order id"
// @Param        request body dto.SetPaidRequest true "Paid flag"
// @Success      200 {object} dto.SuccessResponse "Updated order"
// @Failure      400 {object} dto.ErrorResponse "Invalid id or body"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/orders/{id}/paid [patch]
func (h *OrdersHandler) SetPaid(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, err)
		return
	}

	req, err := BuildRequest[dto.SetPaidRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.orders.SetPaid(c.Request.Context(), id, req.Paid)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}

	builder.SuccessOK(order)
}
