package main

import (
	"net/http"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/middleware"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

func registerOrderRoutes(g *echo.Group, os *services.OrderService, auth *middleware.Auth) {
	o := g.Group("/orders")
	o.Use(auth.Middleware())

	o.POST("/checkout", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		var req struct {
			PaymentMethod string `json:"payment_method"`
			Address       string `json:"address"`
			PostalCode    string `json:"postal_code"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}

		result, err := os.Checkout(
			c.Request().Context(),
			cl.AccountID,
			req.PaymentMethod,
			req.Address,
			req.PostalCode,
		)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusCreated, result)
	})

	o.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		orders, err := os.ListMine(c.Request().Context(), cl.AccountID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, orders)
	})

	o.GET("/:orderNumber", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		order, err := os.GetMine(c.Request().Context(), cl.AccountID, c.Param("orderNumber"))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, order)
	})
}
