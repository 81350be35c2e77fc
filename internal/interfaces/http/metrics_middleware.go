package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// requestObserver é o contrato mínimo que o middleware precisa; *metrics.Registry o implementa.
type requestObserver interface {
	ObserveRequest(method, route, status string, elapsed time.Duration)
}

// RequestMetrics registra método, rota (o padrão registrado, não a URL) e status de cada requisição.
// Com erro devolvido pelo handler, o status vem do próprio erro.
func RequestMetrics(obs requestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := "desconhecida"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		obs.ObserveRequest(c.Method(), route, strconv.Itoa(status), time.Since(start))
		return err
	}
}
