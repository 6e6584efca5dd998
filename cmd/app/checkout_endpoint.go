package main

import (
	"errors"
	"net/http"

	"FigureShopAPI/internal/middleware"
	"FigureShopAPI/internal/model"
	"FigureShopAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type checkoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func registerCheckoutRoutes(g *echo.Group, ks *services.CheckoutService) {
	p := g.Group("")
	p.Use(middleware.SessionMiddleware())

	// PAY
	p.POST("/checkout", func(c echo.Context) error {
		req := new(checkoutRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		form := model.OrderForm{
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
		}

		confirmation, err := ks.Pay(c.Request().Context(), middleware.GetSessionID(c), form)
		if err != nil {
			var gwErr *services.GatewayError
			switch {
			case errors.Is(err, services.ErrGatewayNotReady):
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
			case errors.Is(err, services.ErrPaymentInFlight):
				return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
			case errors.As(err, &gwErr):
				return c.JSON(http.StatusPaymentRequired, echo.Map{
					"error": gwErr.Message,
					"code":  gwErr.Code,
				})
			default:
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
		}

		return c.JSON(http.StatusOK, confirmation)
	})

	// LAST ORDER
	p.GET("/orders/last", func(c echo.Context) error {
		confirmation, ok := ks.LastOrder(middleware.GetSessionID(c))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no order yet"})
		}
		return c.JSON(http.StatusOK, confirmation)
	})
}
