package main

import (
	"net/http"
	"strconv"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

// The diagnosis flow is public: the storefront runs it before signup.
func registerDiagnosisRoutes(g *echo.Group, ds *services.DiagnosisService) {
	d := g.Group("/diagnosis")

	d.POST("", func(c echo.Context) error {
		var profile model.PetProfile
		if err := c.Bind(&profile); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}

		sessionID, plan, err := ds.Evaluate(c.Request().Context(), nil, profile)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"session_id": sessionID,
			"plan":       plan,
		})
	})

	d.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
		}

		session, err := ds.GetSession(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusOK, session)
	})
}
