package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"school360_backend/internals/configs"
	"school360_backend/internals/features/users/auth/dto"
	"school360_backend/internals/features/users/auth/model"
	helper "school360_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

const accessTokenTTL = 12 * time.Hour

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}

	var usr model.UserModel
	if err := ctrl.DB.Where("LOWER(user_email) = ?", strings.ToLower(req.Email)).First(&usr).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !usr.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := IssueAccessToken(&usr)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(&usr),
	})
}

// 🟢 GET /api/u/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var usr model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&usr).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(&usr))
}

// IssueAccessToken signs the claims the auth middleware expects.
func IssueAccessToken(usr *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   usr.UserID.String(),
		"user_name": usr.UserName,
		"role":      usr.UserRole,
		"school_id": usr.UserSchoolID.String(),
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
