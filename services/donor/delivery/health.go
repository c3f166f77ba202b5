package delivery

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"raktasewa/config"
)

type healthHandler struct {
	db *pgxpool.Pool
}

func NewHealthDelivery(app *fiber.App, db *pgxpool.Pool) {
	handler := &healthHandler{
		db: db,
	}

	app.Get("/api/health", handler.deliveryHealth)
	app.Get("/api/ping", handler.deliveryPing)
}

func (hh *healthHandler) deliveryHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok": true,
	})
}

// deliveryPing also checks store connectivity.
func (hh *healthHandler) deliveryPing(c *fiber.Ctx) error {
	if err := hh.db.Ping(c.Context()); err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryPing")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok": true,
		"db": true,
	})
}
