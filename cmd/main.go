// Package main is the entry point for the storefront-service application.
//
// @title           Storefront Service API
// @version         1.0.0
// @description     API for a small-business ordering workflow: product catalog,
//	customers, container allocation and Thai order summaries.
//
// @contact.name   API Support
// @contact.url    https://github.com/nattawat-k/storefront-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Products
// @tag.description Product catalog operations
//
// @tag.name        Customers
// @tag.description Customer lookup and maintenance
//
// @tag.name        Orders
// @tag.description Order finalization, history and summary previews
//
// @tag.name        Containers
// @tag.description Packaging catalog and weight-based suggestions
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/nattawat-k/storefront-service/docs" // swagger docs

	"github.com/nattawat-k/storefront-service/config"
	"github.com/nattawat-k/storefront-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
