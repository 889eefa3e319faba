package main

import (
	"net/http"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/middleware"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

func registerDeliveryRoutes(g *echo.Group, ds *services.DeliveryService, auth *middleware.Auth) {
	d := g.Group("/deliveries")
	d.Use(auth.Middleware())

	// ============================
	// DRIVER PHOTO UPLOAD
	// ============================
	d.POST("/:orderNumber/photo", func(c echo.Context) error {
		cl := middleware.GetClaims(c)

		fh, err := c.FormFile("photo")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "photo file is required"})
		}

		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read photo"})
		}
		defer f.Close()

		photo, err := ds.UploadPhoto(
			c.Request().Context(),
			c.Param("orderNumber"),
			cl.AccountID,
			fh.Filename,
			fh.Header.Get("Content-Type"),
			f,
		)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusCreated, photo)
	}, middleware.RequireRole(model.RoleDriver))

	// ============================
	// ADMIN PHOTO LISTING
	// ============================
	d.GET("/:orderNumber/photos", func(c echo.Context) error {
		photos, err := ds.ListPhotos(c.Request().Context(), c.Param("orderNumber"))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, photos)
	}, middleware.RequireRole(model.RoleAdmin))
}
