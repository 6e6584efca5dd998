package main

import (
	"net/http"

	"FigureShopAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCatalogRoutes(g *echo.Group, cs *services.CatalogService) {
	p := g.Group("/catalog")

	// LIST (filter + search)
	p.GET("", func(c echo.Context) error {
		products := cs.Browse(c.QueryParam("category"), c.QueryParam("q"))
		return c.JSON(http.StatusOK, echo.Map{"products": products})
	})
}
