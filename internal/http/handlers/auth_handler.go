package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "All fields are required")
	}

	// Email is required to be present, nothing more; the store's UNIQUE
	// index is what governs it beyond that.
	name, okName := validate.Name(req.Name)
	email := strings.TrimSpace(req.Email)
	if !okName || email == "" || req.Password == "" {
		return errJSON(c, fiber.StatusBadRequest, "All fields are required")
	}
	if !validate.Password(req.Password) {
		return errJSON(c, fiber.StatusBadRequest, "Password must be at least 6 characters")
	}

	id, err := h.Auth.Register(name, email, req.Password)
	if errors.Is(err, services.ErrEmailTaken) {
		return errJSON(c, fiber.StatusBadRequest, "User already exists")
	}
	if err != nil {
		log.Error(c, "register.store", err, nil)
		return errJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}

	log.Audit(c, "register.success", map[string]any{"user_id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"userId":  id,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Email and password are required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return errJSON(c, fiber.StatusBadRequest, "Email and password are required")
	}

	a, err := h.Auth.Login(email, req.Password)
	if errors.Is(err, services.ErrBadCreds) {
		log.Security(c, "login.fail", map[string]any{"email": email})
		return errJSON(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		log.Error(c, "login.store", err, nil)
		return errJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}

	log.Audit(c, "login.success", map[string]any{"user_id": a.ID})
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    a,
	})
}
