// Package app provides service initialization.
package app

import (
	"github.com/nattawat-k/storefront-service/config"
	"github.com/nattawat-k/storefront-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	ContainerOpts []service.ContainerOption
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.StoreConfig) *ServiceComponents {
	var opts []service.ContainerOption

	if cfg.SuggestFillRatio > 0 {
		opts = append(opts, service.WithSuggestFillRatio(cfg.SuggestFillRatio))
	}

	return &ServiceComponents{
		ContainerOpts: opts,
	}
}
