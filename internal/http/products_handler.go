package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nattawat-k/storefront-service/internal/domain/dto"
	"github.com/nattawat-k/storefront-service/internal/domain/model"
	"github.com/nattawat-k/storefront-service/internal/i18n"
	"github.com/nattawat-k/storefront-service/internal/service"
)

// ProductsHandler provides HTTP handlers for product catalog routes.
type ProductsHandler struct {
	products service.ProductService
}

// NewProductsHandler creates a new ProductsHandler instance.
func NewProductsHandler(products service.ProductService) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// parsePositiveInt parses a positive int64 query value.
func parsePositiveInt(raw string) (int64, error) {
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if parsed <= 0 {
		return 0, strconv.ErrRange
	}
	return parsed, nil
}

func productFromRequest(req *dto.ProductRequest) model.Product {
	return model.Product{
		Label:         req.Label,
		Price:         req.Price,
		Kg:            req.Kg,
		Unit:          req.Unit,
		LotNumber:     req.LotNumber,
		Image:         req.Image,
		IsActive:      req.IsActive,
		PriceByWeight: req.PriceByWeight,
	}
}

// ListProducts handles GET /api/products requests.
//
// @Summary      List products
// @Description  Returns active products, paginated and optionally filtered by a case-insensitive label search.
// @Tags         Products
// @Produce      json
// @Param        search query string false "Label search text"
// @Param        page query int false "Page number, 1-based" default(1)
// @Param        sort query string false "Sort field" default(label)
// @Success      200 {object} dto.SuccessResponse "Products"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/products [get]
func (h *ProductsHandler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	page := int64(1)
	if raw := c.Query("page"); raw != "" {
		if parsed, err := parsePositiveInt(raw); err == nil {
			page = parsed
		}
	}

	products, err := h.products.List(c.Request.Context(), c.Query("search"), page, c.Query("sort"))
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}

	builder.SuccessOK(products)
}

// GetProduct handles GET /api/products/:id requests.
//
// @Summary      Get a product
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product id"
// @Success      200 {object} dto.SuccessResponse "Product"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/products/{id} [get]
func (h *ProductsHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, err)
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}
	if product == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(product)
}

// CreateProduct handles POST /api/products requests.
//
// @Summary      Create a product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        request body dto.ProductRequest true "Product payload"
// @Success      201 {object} dto.SuccessResponse "Stored product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/products [post]
func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ProductRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), productFromRequest(req))
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}

	builder.SuccessCreated(product)
}

// UpdateProduct handles PUT /api/products/:id requests.
//
// @Summary      Update a product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product id"
// @Param        request body dto.ProductRequest true "Product payload"
// @Success      200 {object} dto.SuccessResponse "Updated product"
// @Failure      400 {object} dto.ErrorResponse "Invalid id or body"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/products/{id} [put]
func (h *ProductsHandler) UpdateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, err)
		return
	}

	req, err := BuildRequest[dto.ProductRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product := productFromRequest(req)
	product.UpdatedAt = time.Now()

	updated, err := h.products.Update(c.Request.Context(), id, product)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseUnavailable, err)
		return
	}

	builder.SuccessOK(updated)
}
