package controllers

import (
	"github.com/VeloF2025/Life-Arrow-V1-sub003/db"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/utils"
	"github.com/gofiber/fiber/v2"
)

// GetAllCentres lists centres; inactive centres are hidden unless all=true.
func GetAllCentres(c *fiber.Ctx) error {
	query := db.DB.Preload("Services")
	if c.Query("all") != "true" {
		query = query.Where("active = ?", true)
	}

	var centres []models.TreatmentCentre
	if err := query.Find(&centres).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch centres",
			Error:   err.Error(),
		})
	}
	return c.JSON(centres)
}

// GetCentre returns one centre with the services it offers
func GetCentre(c *fiber.Ctx) error {
	id := c.Params("id")
	var centre models.TreatmentCentre
	if err := db.DB.Preload("Services").First(&centre, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Centre not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(centre)
}

// CreateCentre adds a centre
func CreateCentre(c *fiber.Ctx) error {
	centre := new(models.TreatmentCentre)
	if err := c.BodyParser(centre); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if centre.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Validation failed",
			Fields:  map[string]string{"name": "required"},
		})
	}
	if err := db.DB.Create(centre).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create centre",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(centre)
}

// UpdateCentre edits a centre, including toggling its active flag.
func UpdateCentre(c *fiber.Ctx) error {
	id := c.Params("id")
	var centre models.TreatmentCentre
	if err := db.DB.First(&centre, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Centre not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&centre); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&centre).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update centre",
			Error:   err.Error(),
		})
	}
	return c.JSON(centre)
}

// DeleteCentre removes a centre
func DeleteCentre(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.TreatmentCentre{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete centre",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
