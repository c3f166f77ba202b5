package delivery

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"raktasewa/config"
	"raktasewa/domain"
)

type contactHandler struct {
	cuc domain.ContactUseCase
}

func NewContactDelivery(app *fiber.App, uc domain.ContactUseCase) {
	handler := &contactHandler{
		cuc: uc,
	}

	app.Post("/api/contact", handler.deliveryRelayContact)
}

func (ch *contactHandler) deliveryRelayContact(c *fiber.Ctx) error {
	var req domain.ContactRequest

	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryRelayContact")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := ch.cuc.RelayContactUC(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			config.PrintLogInfo(fiber.StatusBadRequest, "deliveryRelayContact")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, domain.ErrDonorNotFound):
			config.PrintLogInfo(fiber.StatusNotFound, "deliveryRelayContact")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Donor not found",
			})
		case errors.Is(err, domain.ErrDeliveryFailed):
			config.PrintLogInfo(fiber.StatusBadGateway, "deliveryRelayContact")
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":   "SMS relay failed.",
				"details": err.Error(),
				"relayed": false,
			})
		default:
			config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryRelayContact")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		}
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryRelayContact")
	return c.Status(fiber.StatusOK).JSON(result)
}
