package controllers

import (
	"fmt"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/db"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/utils"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetAllStaff lists staff profiles, optionally by centre.
func GetAllStaff(c *fiber.Ctx) error {
	query := db.DB.Preload("User.Role").Preload("Centre")
	if centreID := c.QueryInt("centre_id"); centreID > 0 {
		query = query.Where("centre_id = ?", centreID)
	}

	var staff []models.StaffProfile
	if err := query.Find(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch staff",
			Error:   err.Error(),
		})
	}
	for i := range staff {
		staff[i].User.Password = ""
	}
	return c.JSON(staff)
}

// GetStaffMember returns one staff profile
func GetStaffMember(c *fiber.Ctx) error {
	id := c.Params("id")
	var staff models.StaffProfile
	if err := db.DB.Preload("User.Role").Preload("Centre").First(&staff, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff member not found",
			Error:   err.Error(),
		})
	}
	staff.User.Password = ""
	return c.JSON(staff)
}

type staffInput struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Password       string            `json:"password"`
	RoleName       string            `json:"role_name"`
	Title          string            `json:"title"`
	Specialization string            `json:"specialization"`
	Qualifications models.StringList `json:"qualifications"`
	CentreID       *uint             `json:"centre_id"`
}

// CreateStaffMember creates the account and profile for a new staff member.
func CreateStaffMember(c *fiber.Ctx) error {
	input := new(staffInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Validation failed",
			Fields: map[string]string{
				"name":     "required",
				"email":    "required",
				"password": "required",
			},
		})
	}

	roleName := input.RoleName
	if roleName == "" {
		roleName = "staff"
	}
	var role models.Role
	if err := db.DB.Where("name = ?", roleName).First(&role).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: fmt.Sprintf("Role %q not found", roleName),
			Error:   err.Error(),
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to hash password",
			Error:   err.Error(),
		})
	}

	user := models.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   string(hashed),
		IsVerified: true,
		RoleID:     role.ID,
	}
	profile := models.StaffProfile{
		Title:          input.Title,
		Specialization: input.Specialization,
		Qualifications: input.Qualifications,
		CentreID:       input.CentreID,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(&profile).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create staff member",
			Error:   err.Error(),
		})
	}

	user.Password = ""
	profile.User = user
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// UpdateStaffMember edits a staff profile.
func UpdateStaffMember(c *fiber.Ctx) error {
	id := c.Params("id")
	var staff models.StaffProfile
	if err := db.DB.First(&staff, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff member not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&staff); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update staff member",
			Error:   err.Error(),
		})
	}
	return c.JSON(staff)
}

// AssignStaffRole changes the role on a staff member's account.
func AssignStaffRole(c *fiber.Ctx) error {
	var input struct {
		UserID   uint   `json:"user_id"`
		RoleName string `json:"role_name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var role models.Role
	if err := db.DB.Where("name = ?", input.RoleName).First(&role).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Role not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Model(&models.User{}).Where("id = ?", input.UserID).
		Update("role_id", role.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to assign role",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Role assigned", "role": role.Name})
}

// UploadStaffPhoto uploads a staff profile photo to Cloudinary.
func UploadStaffPhoto(c *fiber.Ctx) error {
	id := c.Params("id")
	var staff models.StaffProfile
	if err := db.DB.First(&staff, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff member not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "A photo upload named 'photo' is required",
			Error:   err.Error(),
		})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to open photo",
			Error:   err.Error(),
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("staff_%d_%d", staff.ID, time.Now().Unix())
	secureURL, err := utils.UploadPhoto(c.Context(), f, publicID, "staff_photos")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload photo",
			Error:   err.Error(),
		})
	}

	staff.PhotoURL = secureURL
	if err := db.DB.Save(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save photo URL",
			Error:   err.Error(),
		})
	}
	return c.JSON(staff)
}
