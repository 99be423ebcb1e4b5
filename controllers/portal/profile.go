package portal

import (
	"fmt"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/db"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/utils"
	"github.com/gofiber/fiber/v2"
)

// GetMyProfile returns the caller's profile document.
func GetMyProfile(c *fiber.Ctx) error {
	profile, err := currentProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}

type profileInput struct {
	FirstName         *string                   `json:"first_name"`
	LastName          *string                   `json:"last_name"`
	Mobile            *string                   `json:"mobile"`
	Address           *string                   `json:"address"`
	City              *string                   `json:"city"`
	PostalCode        *string                   `json:"postal_code"`
	MedicalConditions *string                   `json:"medical_conditions"`
	Medications       *string                   `json:"medications"`
	Allergies         *string                   `json:"allergies"`
	Goals             *models.StringList        `json:"goals"`
	HealthMetrics     *models.StringList        `json:"health_metrics"`
	Preferences       *models.Preferences       `json:"preferences"`
}

// UpdateMyProfile applies a partial edit to the caller's profile. Only the
// fields present in the body change.
func UpdateMyProfile(c *fiber.Ctx) error {
	profile, err := currentProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}

	input := new(profileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.Mobile != nil {
		profile.Mobile = *input.Mobile
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.PostalCode != nil {
		profile.PostalCode = *input.PostalCode
	}
	if input.MedicalConditions != nil {
		profile.MedicalConditions = *input.MedicalConditions
	}
	if input.Medications != nil {
		profile.Medications = *input.Medications
	}
	if input.Allergies != nil {
		profile.Allergies = *input.Allergies
	}
	if input.Goals != nil {
		profile.Goals = *input.Goals
	}
	if input.HealthMetrics != nil {
		profile.HealthMetrics = *input.HealthMetrics
	}
	if input.Preferences != nil {
		profile.Preferences = *input.Preferences
	}

	if err := db.DB.Save(profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update profile",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}

// CompleteOnboarding marks the caller's profile as onboarded once the basics
// are filled in.
func CompleteOnboarding(c *fiber.Ctx) error {
	profile, err := currentProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}

	fields := map[string]string{}
	if profile.FirstName == "" {
		fields["first_name"] = "required"
	}
	if profile.LastName == "" {
		fields["last_name"] = "required"
	}
	if profile.Mobile == "" {
		fields["mobile"] = "required"
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Fill in the required profile fields first",
			Fields:  fields,
		})
	}

	now := time.Now()
	profile.OnboardingCompleted = true
	profile.OnboardedAt = &now
	if err := db.DB.Save(profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to complete onboarding",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}

// UploadMyPhoto uploads a profile photo to Cloudinary and stores the URL.
func UploadMyPhoto(c *fiber.Ctx) error {
	profile, err := currentProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
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

	publicID := fmt.Sprintf("client_%d_%d", profile.UserID, time.Now().Unix())
	secureURL, err := utils.UploadPhoto(c.Context(), f, publicID, "client_photos")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload photo",
			Error:   err.Error(),
		})
	}

	profile.PhotoURL = secureURL
	if err := db.DB.Save(profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save photo URL",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}
