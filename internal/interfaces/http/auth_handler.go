package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestionale-hr/personale-api/internal/application/auth"
	"github.com/gestionale-hr/personale-api/internal/application/dto"
	"github.com/gestionale-hr/personale-api/internal/domain"
	"github.com/gestionale-hr/personale-api/pkg/logger"
)

// AuthHandler gestisce il login.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler costruisce l'handler.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login POST /api/auth/login
// Credenziali errate e utente inesistente producono la stessa risposta 401.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo della richiesta non valido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Email e password sono obbligatorie"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrWrongCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Credenziali non valide"})
		}
		h.log.Error().Err(err).Msg("Errore durante il login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore durante il login"})
	}
	return c.JSON(out)
}
