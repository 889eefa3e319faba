package main

import (
	"net/http"
	"strconv"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/middleware"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCartRoutes(g *echo.Group, cs *services.CartService, auth *middleware.Auth) {
	cart := g.Group("/cart")
	cart.Use(auth.Middleware())

	cart.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		resp, err := cs.Get(c.Request().Context(), cl.AccountID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, resp)
	})

	cart.POST("/items", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		var req struct {
			ProductID int64 `json:"product_id"`
			Quantity  int   `json:"quantity"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}
		if err := cs.Add(c.Request().Context(), cl.AccountID, req.ProductID, req.Quantity); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "added"})
	})

	cart.PUT("/items/:productId", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
		if err != nil || productID <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}
		if err := cs.Update(c.Request().Context(), cl.AccountID, productID, req.Quantity); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "updated"})
	})

	cart.DELETE("/items/:productId", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
		if err != nil || productID <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		if err := cs.Remove(c.Request().Context(), cl.AccountID, productID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "removed"})
	})

	cart.DELETE("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if err := cs.Clear(c.Request().Context(), cl.AccountID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "cleared"})
	})
}
