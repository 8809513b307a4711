package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gestionale-hr/personale-api/internal/application/authz"
	"github.com/gestionale-hr/personale-api/internal/application/dto"
	"github.com/gestionale-hr/personale-api/internal/domain/entity"
	"github.com/gestionale-hr/personale-api/pkg/jwt"
)

// Chiavi Locals per i claims del token in Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida il Bearer Token JWT e carica user_id e role in c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Header Authorization richiesto"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Formato atteso: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Token vuoto"})
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Token non valido o scaduto"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autorizza solo i ruoli indicati. Va usato DOPO AuthMiddleware.
// Un token senza claim di ruolo riconosciuto produce 401; un ruolo valido ma
// non ammesso sulla rotta produce 403.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := entity.Role(GetRole(c))
		if !role.Valid() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Ruolo mancante nel token"})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Non disponi dei permessi necessari"})
	}
}

// GetUserID restituisce lo user_id dal contesto (dopo AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole restituisce il ruolo dal contesto (dopo AuthMiddleware).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// CallerFrom costruisce il contesto esplicito del chiamante per la politica
// di autorizzazione, al posto della lettura sparsa dei locals nei controller.
func CallerFrom(c *fiber.Ctx) authz.Caller {
	return authz.Caller{
		Role:   entity.Role(GetRole(c)),
		UserID: GetUserID(c),
	}
}
