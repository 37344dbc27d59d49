package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TrackDelivery marca cada entrega de webhook com um id próprio para
// correlação nos logs e barra requisições que não são JSON.
func TrackDelivery(handlerFunc echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {

		deliveryID := uuid.NewString()
		c.Set("delivery_id", deliveryID)
		c.Response().Header().Set("X-Delivery-Id", deliveryID)

		contentType := c.Request().Header.Get(echo.HeaderContentType)
		if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
			log.Printf("Webhook %s: requisição não-JSON recebida (Content-Type %q).", deliveryID, contentType)
			return c.JSON(http.StatusBadRequest, map[string]string{"status": "error", "message": "Request must be JSON"})
		}

		log.Printf("Webhook %s %s: entrega %s recebida.", c.Request().Method, c.Path(), deliveryID)

		return handlerFunc(c)
	}
}
