package controllers

import (
	"fmt"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/csvimport"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/db"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllClients lists client records with pagination and an optional status filter.
func GetAllClients(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 25)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Client{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("q"); search != "" {
		like := fmt.Sprintf("%%%s%%", search)
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
	}

	var count int64
	query.Count(&count)

	var clients []models.Client
	if err := query.Order("added_time desc").Limit(limit).Offset(offset).Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clients",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"clients": clients,
		"total":   count,
		"page":    page,
		"limit":   limit,
		"pages":   (int(count) + limit - 1) / limit,
	})
}

// GetClient returns one client record
func GetClient(c *fiber.Ctx) error {
	id := c.Params("id")
	var client models.Client
	if err := db.DB.Preload("NearestCentre").First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Client not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(client)
}

// CreateClient adds a client record from the back office.
func CreateClient(c *fiber.Ctx) error {
	client := new(models.Client)
	if err := c.BodyParser(client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if client.FirstName == "" || client.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Validation failed",
			Fields: map[string]string{
				"first_name": "required",
				"email":      "required",
			},
		})
	}
	if err := db.DB.Create(client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create client",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// UpdateClient updates a client record
func UpdateClient(c *fiber.Ctx) error {
	id := c.Params("id")
	var client models.Client
	if err := db.DB.First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Client not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update client",
			Error:   err.Error(),
		})
	}
	return c.JSON(client)
}

// DeleteClient removes a client record
func DeleteClient(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.Client{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete client",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ImportClients ingests a CSV of client records. Rows that fail validation are
// reported per line; good rows are written in one transaction.
func ImportClients(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "A CSV file upload named 'file' is required",
			Error:   err.Error(),
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to open uploaded file",
			Error:   err.Error(),
		})
	}
	defer f.Close()

	result, err := csvimport.Parse(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "CSV could not be parsed",
			Error:   err.Error(),
		})
	}

	batchID := uuid.New().String()
	if len(result.Clients) > 0 {
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			for i := range result.Clients {
				if err := tx.Create(&result.Clients[i]).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Import failed; no rows were written",
				Error:   err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"batch_id": batchID,
		"imported": len(result.Clients),
		"rejected": len(result.Errors),
		"errors":   result.Errors,
	})
}
