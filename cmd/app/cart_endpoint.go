package main

import (
	"net/http"

	"FigureShopAPI/internal/middleware"
	"FigureShopAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	ProductID string `json:"productid"`
}

type updateCartRequest struct {
	Delta int `json:"delta"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")
	p.Use(middleware.SessionMiddleware())

	// GET cart
	p.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, cs.Get(middleware.GetSessionID(c)))
	})

	// ADD item
	p.POST("", func(c echo.Context) error {
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil || req.ProductID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		cart, err := cs.Add(middleware.GetSessionID(c), req.ProductID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, cart)
	})

	// UPDATE quantity (delta, clamped at zero)
	p.PUT("/:productid", func(c echo.Context) error {
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		cart, err := cs.Update(middleware.GetSessionID(c), c.Param("productid"), req.Delta)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cart)
	})

	// REMOVE item
	p.DELETE("/:productid", func(c echo.Context) error {
		cart, err := cs.Remove(middleware.GetSessionID(c), c.Param("productid"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cart)
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		if err := cs.Clear(middleware.GetSessionID(c)); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})
}
