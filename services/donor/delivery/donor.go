package delivery

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"raktasewa/config"
	"raktasewa/domain"
)

type donorHandler struct {
	duc domain.DonorUseCase
}

func NewDonorDelivery(app *fiber.App, uc domain.DonorUseCase) {
	handler := &donorHandler{
		duc: uc,
	}

	route := app.Group("/api/donors")

	route.Get("/", handler.deliveryGetAllDonor)
	route.Post("/", handler.deliveryInsertDonor)
	route.Delete("/:id", handler.deliveryDeleteDonor)
}

func (dh *donorHandler) deliveryGetAllDonor(c *fiber.Ctx) error {
	filter := &domain.DonorFilter{
		BloodGroup: c.Query("blood_group"),
		District:   c.Query("district"),
		Query:      c.Query("q"),
	}

	donors, err := dh.duc.GetAllDonorUC(c.Context(), filter)
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryGetAllDonor")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch donors",
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryGetAllDonor")
	return c.Status(fiber.StatusOK).JSON(donors)
}

func (dh *donorHandler) deliveryInsertDonor(c *fiber.Ctx) error {
	var donor domain.Donor

	if err := c.BodyParser(&donor); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryInsertDonor")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := dh.duc.CreateDonorUC(c.Context(), &donor); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			config.PrintLogInfo(fiber.StatusBadRequest, "deliveryInsertDonor")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, domain.ErrDuplicateDonor):
			config.PrintLogInfo(fiber.StatusConflict, "deliveryInsertDonor")
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A donor with this phone already exists in this district",
			})
		default:
			config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryInsertDonor")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create donor",
			})
		}
	}

	config.PrintLogInfo(fiber.StatusCreated, "deliveryInsertDonor")
	return c.Status(fiber.StatusCreated).JSON(donor)
}

func (dh *donorHandler) deliveryDeleteDonor(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := dh.duc.DeleteDonorUC(c.Context(), id); err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryDeleteDonor")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete donor",
		})
	}

	config.PrintLogInfo(fiber.StatusNoContent, "deliveryDeleteDonor")
	return c.SendStatus(fiber.StatusNoContent)
}
