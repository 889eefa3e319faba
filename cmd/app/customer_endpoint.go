package main

import (
	"net/http"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/middleware"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCustomerRoutes(g *echo.Group, cs *services.CustomerService, auth *middleware.Auth) {
	me := g.Group("/me")
	me.Use(auth.Middleware())

	me.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		profile, err := cs.GetProfile(c.Request().Context(), cl.AccountID)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, profile)
	})

	me.PUT("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		var req struct {
			Address    string `json:"address"`
			PostalCode string `json:"postal_code"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}
		if err := cs.UpdateProfile(c.Request().Context(), cl.AccountID, req.Address, req.PostalCode); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "updated"})
	})
}
