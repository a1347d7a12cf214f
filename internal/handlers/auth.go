package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenlease/greenlease/internal/services"
	"github.com/greenlease/greenlease/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles account registration
type AuthHandler struct {
	DB *gorm.DB
}

// Register handles POST /api/auth/register
// @Summary Register an account
// @Description Create a local account record. Authentication itself is delegated to the Authorizer instance.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body services.RegisterInput true "Registration fields"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "register")
	}

	user, err := services.RegisterUser(h.DB, &in)
	if err != nil {
		return respondServiceError(c, err, "User not found", "register")
	}

	return utils.SuccessResponse(c, user, fiber.StatusCreated)
}

// Profile handles GET /api/auth/profile
// @Summary Current session profile
// @Description The Authorizer user resolved by the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.Map{
		"user": c.Locals("user"),
	}, fiber.StatusOK)
}
