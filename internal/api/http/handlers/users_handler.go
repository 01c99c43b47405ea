package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/service"
	"github.com/spec-kit/account-service/pkg/util"
)

// UsersHandler exposes account read and update endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, util.StatusOK, dto.NewUserResponseList(users))
}

// Get handles GET /users/{id}.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return util.ErrInvalidParameter
	}

	user, err := h.users.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, util.StatusOK, dto.NewUserResponse(user))
}

// GetSelf handles GET /users/me. The id comes from the token claims, never
// from the path.
func (h *UsersHandler) GetSelf(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return util.ErrUnauthenticated
	}

	user, err := h.users.Get(c.UserContext(), claims.UserID)
	if err != nil {
		return err
	}
	return respond(c, util.StatusOK, dto.NewUserResponse(user))
}

// Update handles PATCH /users/{id}.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return util.ErrInvalidParameter
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrBadRequest
	}

	user, err := h.users.Update(c.UserContext(), id, req.Patch())
	if err != nil {
		return err
	}
	return respond(c, util.StatusOK, dto.NewUserResponse(user))
}

// UpdateSelf handles PATCH /users/me.
func (h *UsersHandler) UpdateSelf(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return util.ErrUnauthenticated
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrBadRequest
	}

	user, err := h.users.Update(c.UserContext(), claims.UserID, req.Patch())
	if err != nil {
		return err
	}
	return respond(c, util.StatusOK, dto.NewUserResponse(user))
}
