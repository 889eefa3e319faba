package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/csestrada2005/puebla-barf-connect-sub001/external/sheets"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// The gateway calls this surface cross-origin, so every response carries
// these headers and OPTIONS is answered without auth or side effects.
func webhookCORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}
		return next(c)
	}
}

func registerWebhookRoutes(
	g *echo.Group,
	ps *services.PaymentService,
	fw *sheets.Forwarder,
	maskStoreFailures bool,
	log *zap.Logger,
) {
	w := g.Group("/webhooks", webhookCORS)

	// ============================
	// PAYMENT GATEWAY CALLBACK
	// (public, HMAC-authenticated)
	// ============================
	w.OPTIONS("/payment", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	w.POST("/payment", func(c echo.Context) error {
		var ev model.PaymentEvent
		dec := json.NewDecoder(c.Request().Body)
		dec.UseNumber()
		if err := dec.Decode(&ev); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Webhook processing error",
			})
		}
		if err := ev.Validate(); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Webhook processing error",
			})
		}

		_, err := ps.HandleGatewayEvent(c.Request().Context(), ev)
		if err != nil {
			if errors.Is(err, services.ErrInvalidSignature) {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid signature",
				})
			}
			// store fault: by default the gateway still gets a 200 so it
			// stops retrying; reconciliation is then visible in logs only
			log.Error("webhook reconciliation failed", zap.Error(err))
			if maskStoreFailures {
				return c.JSON(http.StatusOK, echo.Map{"received": true})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Webhook processing error",
			})
		}

		return c.JSON(http.StatusOK, echo.Map{"received": true})
	})

	// ============================
	// ORDER SYNC
	// (forwards the payload to the ops spreadsheet)
	// ============================
	w.OPTIONS("/order-sync", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	w.POST("/order-sync", func(c echo.Context) error {
		if fw == nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"error": "order sync not configured",
			})
		}

		var payload map[string]interface{}
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid payload",
			})
		}

		if err := fw.Forward(c.Request().Context(), payload); err != nil {
			log.Error("order sync forward failed", zap.Error(err))
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error": "order sync failed",
			})
		}

		return c.JSON(http.StatusOK, echo.Map{"forwarded": true})
	})
}
