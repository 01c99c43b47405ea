package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/service"
	"github.com/spec-kit/account-service/pkg/util"
)

// AuthHandler exposes login and registration endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrBadRequest
	}
	if req.Email == "" || req.Password == "" {
		return util.ErrInvalidParameter
	}

	token, _, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return respond(c, util.StatusOK, token)
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrBadRequest
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.PasswordCheck == "" {
		return util.ErrInvalidParameter
	}

	token, _, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		PasswordCheck: req.PasswordCheck,
	})
	if err != nil {
		return err
	}
	return respond(c, util.StatusCreated, token)
}
