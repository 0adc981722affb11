package http

import (
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-api/pkg/logger"
)

// RequestCounter contador de peticiones atendidas desde el arranque.
// Es estado inyectado del proceso, no una variable global del paquete.
type RequestCounter struct {
	count atomic.Int64
}

// NewRequestCounter construye el contador.
func NewRequestCounter() *RequestCounter {
	return &RequestCounter{}
}

// Increment suma una petición y devuelve el total acumulado.
func (rc *RequestCounter) Increment() int64 {
	return rc.count.Add(1)
}

// Count devuelve el total acumulado.
func (rc *RequestCounter) Count() int64 {
	return rc.count.Load()
}

// RequestMiddleware cuenta cada petición, le asigna un request id y la registra
// en el log con método, ruta, status y duración.
func RequestMiddleware(counter *RequestCounter, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		total := counter.Increment()
		requestID := uuid.NewString()
		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Int64("total_requests", total).
			Msg("request")
		return err
	}
}
