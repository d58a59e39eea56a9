// Package httpserver assembles the Echo router for webhooks, media streams
// and health reporting.
package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/session"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/telephony"
)

// New creates the configured Echo server with all routes registered.
func New(twilioSvc *telephony.Service, manager *session.Manager) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":       "healthy",
			"active_calls": manager.Registry().Len(),
		})
	})

	e.GET("/api/status", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"active_calls": manager.Registry().Len(),
			"call_control": twilioSvc.Enabled(),
		})
	})

	e.POST("/twilio/voice", twilioSvc.HandleVoice, telephony.TwilioAuth(twilioSvc.AuthToken))

	e.GET("/ws/media/:callSid", manager.HandleMediaStream)

	return e
}
