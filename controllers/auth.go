package controllers

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/db"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/linker"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return secret
}

// CheckSignupEmail backs the signup form's debounced email lookup. When a client
// record matches, the form pre-populates the name fields and tells the user their
// existing data will be linked to the new account.
func CheckSignupEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "email query parameter is required",
		})
	}

	l := linker.New(linker.NewGormStore(db.DB))
	match, err := l.Match(c.Context(), email)
	if err != nil {
		// Lookup failure is not "no match": tell the caller so a duplicate,
		// unlinked record is a conscious risk rather than a silent one.
		log.Printf("signup email lookup failed: %v", err)
		return c.JSON(fiber.Map{
			"match":          false,
			"lookup_failed":  true,
			"lookup_message": "We could not check for an existing client record. You can continue signing up.",
		})
	}
	if match == nil {
		return c.JSON(fiber.Map{"match": false})
	}
	return c.JSON(fiber.Map{
		"match":      true,
		"first_name": match.FirstName,
		"last_name":  match.LastName,
		"message":    "We found an existing client record for this email. It will be linked to your new account.",
	})
}

// Register handles signup for client self-service accounts. If a pre-existing
// client record matches the email it is linked to the account and its details are
// imported into the new profile.
func Register(c *fiber.Ctx) error {
	user := new(models.User)

	if err := c.BodyParser(user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if user.Email == "" || user.Password == "" || user.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	user.Email = linker.NormalizeEmail(user.Email)

	var existingUser models.User
	if db.DB.Where("email = ?", user.Email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this email already exists",
		})
	}

	// Look for a pre-existing client record before creating the account. A failed
	// lookup is reported but does not block signup.
	l := linker.New(linker.NewGormStore(db.DB))
	match, lookupErr := l.Match(c.Context(), user.Email)
	if lookupErr != nil {
		log.Printf("client record lookup failed during signup for %s: %v", user.Email, lookupErr)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}
	user.Password = string(hashedPassword)

	if user.RoleID == 0 {
		var clientRole models.Role
		if err := db.DB.Where("name = ?", "client").First(&clientRole).Error; err != nil {
			log.Printf("Error finding client role: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to assign default role. Role 'client' not found.",
			})
		}
		user.RoleID = clientRole.ID
		user.Role = clientRole
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user: " + err.Error(),
		})
	}

	// Account exists from here on. Linker failures below must not pretend signup
	// succeeded cleanly; each failure mode gets its own message.
	profile, err := l.Complete(c.Context(), user.ID, match, time.Now())
	if err != nil {
		log.Printf("record linking failed for account %d: %v", user.ID, err)
		msg := "Signup completed but your profile could not be set up. Please contact support."
		if errors.Is(err, linker.ErrLinkWrite) {
			msg = "Your account was created but your existing client record could not be linked. Please contact support."
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: msg,
			Error:   err.Error(),
		})
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":          user,
		"profile":       profile,
		"linked_record": match != nil,
		"lookup_failed": lookupErr != nil,
	})
}

// ForgotPassword mails a one-time code for resetting the password. The response is
// the same whether or not the email has an account.
func ForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Validation failed",
			Fields:  map[string]string{"email": "required"},
		})
	}

	genericResponse := fiber.Map{
		"message": "If an account exists for that email, a reset code has been sent.",
	}

	var user models.User
	if db.DB.Where("email = ?", linker.NormalizeEmail(input.Email)).First(&user).RowsAffected == 0 {
		return c.JSON(genericResponse)
	}

	user.OTP = utils.GenerateOTP()
	user.OTPExpiresAt = time.Now().Add(10 * time.Minute)
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue reset code",
		})
	}

	body := fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Your password reset code is:</p>"+
			"<h2>%s</h2>"+
			"<p>It expires in 10 minutes. If you did not request a reset, you can ignore this mail.</p>",
		user.Name, user.OTP)
	if err := utils.SendEmail(user.Email, "Password Reset Code", body); err != nil {
		log.Printf("failed to send reset code to %s: %v", user.Email, err)
	}
	return c.JSON(genericResponse)
}

// ResetPassword sets a new password after verifying the one-time code. The code is
// single use: it is cleared on success.
func ResetPassword(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		OTP      string `json:"otp"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	fields := map[string]string{}
	if input.Email == "" {
		fields["email"] = "required"
	}
	if input.OTP == "" {
		fields["otp"] = "required"
	}
	if input.Password == "" {
		fields["password"] = "required"
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Validation failed",
			Fields:  fields,
		})
	}

	var user models.User
	if db.DB.Where("email = ?", linker.NormalizeEmail(input.Email)).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired reset code",
		})
	}
	if !user.OTPValid(input.OTP, time.Now()) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired reset code",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	err = db.DB.Model(&user).Updates(map[string]interface{}{
		"password":       string(hashed),
		"otp":            "",
		"otp_expires_at": time.Time{},
	}).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset password",
		})
	}
	return c.JSON(fiber.Map{"message": "Password has been reset"})
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if db.DB.Preload("Role").Where("email = ?", linker.NormalizeEmail(input.Email)).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
		"role":  user.Role.Name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtSecret()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	refreshClaims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(jwtSecret()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate refresh token",
		})
	}

	return c.JSON(fiber.Map{
		"token":        tokenString,
		"refreshToken": refreshTokenString,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role.Name,
		},
	})
}

// GetUserProfile returns the current user's account
func GetUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.Preload("Role").First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	user.Password = ""
	return c.JSON(user)
}

// Logout doesn't actually invalidate the token as JWTs are stateless
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// RefreshToken generates a new access token using a refresh token
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret()), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	claims := token.Claims.(jwt.MapClaims)

	// Re-resolve the role so a refresh picks up role changes.
	var user models.User
	if err := db.DB.Preload("Role").First(&user, uint(claims["id"].(float64))).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	newClaims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
		"role":  user.Role.Name,
	}
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)
	tokenString, err := newToken.SignedString([]byte(jwtSecret()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}
