package main

import (
	"net/http"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCoverageRoutes(g *echo.Group, cs *services.CoverageService) {
	g.GET("/coverage", func(c echo.Context) error {
		postalCode := c.QueryParam("postal_code")
		result, err := cs.Check(c.Request().Context(), postalCode)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, result)
	})
}
