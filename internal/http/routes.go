package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup is a set of routes mounted on the API group. Every
// storefront route is open; only the swagger UI carries basic auth.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers the group's routes.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}
