package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalRequestID  = "request_id"
)

// HTTPObserver recibe la duración de cada petición (métricas).
type HTTPObserver interface {
	ObserveHTTP(method, route string, code int, elapsed time.Duration)
}

// RequestLogger registra cada petición con zerolog y propaga X-Request-ID.
// El id entrante se respeta; si no viene se genera uno. obs puede ser nil.
// Método e id se copian: fasthttp reutiliza sus buffers entre peticiones.
func RequestLogger(log zerolog.Logger, obs HTTPObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		method := utils.CopyString(c.Method())
		id := utils.CopyString(c.Get(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)

		chainErr := c.Next()
		if chainErr != nil {
			// El código de estado lo fija el ErrorHandler; se invoca aquí para registrarlo.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		code := c.Response().StatusCode()
		elapsed := time.Since(start)
		route := routePattern(c)
		if obs != nil {
			obs.ObserveHTTP(method, route, code, elapsed)
		}

		var ev *zerolog.Event
		switch {
		case code >= fiber.StatusInternalServerError:
			ev = log.Error().Err(chainErr)
		case code >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev.Str("request_id", id).
			Str("method", method).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", code).
			Dur("latency", elapsed).
			Msg("petición HTTP")
		return nil
	}
}

// routePattern ruta registrada sin la barra final que agregan los grupos ("/api/storages/").
func routePattern(c *fiber.Ctx) string {
	route := strings.TrimSuffix(c.Route().Path, "/")
	if route == "" {
		return "/"
	}
	return route
}

// GetRequestID devuelve el id de la petición en curso.
func GetRequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalRequestID).(string); ok {
		return v
	}
	return ""
}
