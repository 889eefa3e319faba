package main

import (
	"net/http"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

func registerAuthRoutes(g *echo.Group, as *services.AuthService) {
	a := g.Group("/auth")

	a.POST("/register", func(c echo.Context) error {
		var req struct {
			Email    string  `json:"email"`
			Password string  `json:"password"`
			FullName *string `json:"full_name"`
			Phone    *string `json:"phone"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}

		token, err := as.Register(c.Request().Context(), req.Email, req.Password, req.FullName, req.Phone)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusCreated, echo.Map{"token": token})
	})

	a.POST("/login", func(c echo.Context) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}

		token, err := as.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, echo.Map{"token": token})
	})
}
