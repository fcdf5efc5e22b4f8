package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/department-store/internal/api/dto"
	"github.com/spec-kit/department-store/internal/auth"
	apperrors "github.com/spec-kit/department-store/pkg/util"
)

const adminSubject = "admin"

// AuthHandler issues admin access tokens.
type AuthHandler struct {
	tokens       *auth.TokenManager
	passwordHash string
}

// NewAuthHandler constructs handler. An empty hash disables login.
func NewAuthHandler(tokens *auth.TokenManager, passwordHash string) *AuthHandler {
	return &AuthHandler{tokens: tokens, passwordHash: passwordHash}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Password == "" {
		return apperrors.NewValidationError("password required", nil)
	}
	if err := auth.ComparePassword(h.passwordHash, req.Password); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := h.tokens.GenerateToken(adminSubject, auth.RoleAdmin)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{Token: token, ExpiresAt: exp}})
}
