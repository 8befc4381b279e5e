package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nattawat-k/storefront-service/internal/service"
)

// StoreRoutes handles storefront route registration: products, customers,
// orders and the packaging catalog.
type StoreRoutes struct {
	products   *ProductsHandler
	customers  *CustomersHandler
	orders     *OrdersHandler
	containers *ContainersHandler
}

var _ PublicRouteGroup = (*StoreRoutes)(nil)

// NewStoreRoutes creates a new StoreRoutes instance.
func NewStoreRoutes(
	productService service.ProductService,
	customerService service.CustomerService,
	orderService service.OrderService,
	orderListLimit int,
	containerOpts ...service.ContainerOption,
) *StoreRoutes {
	return &StoreRoutes{
		products:   NewProductsHandler(productService),
		customers:  NewCustomersHandler(customerService),
		orders:     NewOrdersHandler(orderService, orderListLimit, containerOpts...),
		containers: NewContainersHandler(nil, containerOpts...),
	}
}

// RegisterPublicRoutes registers storefront routes on the API group.
func (r *StoreRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", r.products.ListProducts)
	rg.GET("/products/:id", r.products.GetProduct)
	rg.POST("/products", r.products.CreateProduct)
	rg.PUT("/products/:id", r.products.UpdateProduct)

	rg.GET("/customers", r.customers.ListCustomers)
	rg.GET("/customers/:id", r.customers.GetCustomer)
	rg.POST("/customers", r.customers.CreateCustomer)
	rg.PUT("/customers/:id", r.customers.UpdateCustomer)

	rg.POST("/orders", r.orders.CreateOrder)
	rg.POST("/orders/summary", r.orders.PreviewSummary)
	rg.GET("/orders", r.orders.ListOrders)
	rg.GET("/orders/:id", r.orders.GetOrder)
	rg.PATCH("/orders/:id/paid", r.orders.SetPaid)

	rg.GET("/containers/specs", r.containers.ListSpecs)
	rg.POST("/containers/suggest", r.containers.SuggestContainers)
}

// OrdersHandler returns the underlying orders handler.
func (r *StoreRoutes) OrdersHandler() *OrdersHandler {
	return r.orders
}
