package main

import (
	"os"
	"path/filepath"

	"FigureShopAPI/external/portone"
	"FigureShopAPI/internal/metrics"
	"FigureShopAPI/internal/repository"
	"FigureShopAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	// ======================
	// INFRA
	// ======================
	dataDir := getEnv("DATA_DIR", "./data")
	store, err := repository.NewFileStore(filepath.Join(dataDir, "figure-shop.json"))
	if err != nil {
		log.Fatal(err)
	}

	// ======================
	// EXTERNALS
	// ======================
	var gateway services.PaymentGateway
	if client, err := portone.NewClient(); err != nil {
		log.WithError(err).Warn("payment gateway not configured, checkout will report it as unavailable")
	} else {
		gateway = client
	}

	// ======================
	// REPOSITORIES
	// ======================
	catalogRepo := repository.NewCatalogRepository()
	cartRepo := repository.NewCartRepository(store)
	orderRepo := repository.NewOrderRepository(store)

	// ======================
	// SERVICES
	// ======================
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(cartRepo, catalogRepo)
	checkoutSvc := services.NewCheckoutService(
		cartRepo,
		orderRepo,
		gateway,
		getEnv("PORTONE_STORE_ID", "iamporttest_3"),
		os.Getenv("PORTONE_CHANNEL_KEY"),
	)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(metrics.PrometheusMiddleware("figure-shop"))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/figure-shop")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerCatalogRoutes(api, catalogSvc)
	registerCartRoutes(api, cartSvc)
	registerCheckoutRoutes(api, checkoutSvc)

	// ======================
	// SERVER
	// ======================
	port := getEnv("PORT", "8080")
	e.Logger.Fatal(e.Start(":" + port))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
