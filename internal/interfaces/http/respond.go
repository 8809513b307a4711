package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestionale-hr/personale-api/internal/application/dto"
	"github.com/gestionale-hr/personale-api/internal/application/validate"
	"github.com/gestionale-hr/personale-api/internal/domain"
	"github.com/gestionale-hr/personale-api/pkg/logger"
)

// failMessages messaggi per gli esiti negativi di una singola operazione.
type failMessages struct {
	NotFound  string
	Forbidden string
	Internal  string
}

// respondError traduce gli errori di dominio in risposte HTTP.
// Gli errori attesi (validazione, conflitto, non trovato, negato) hanno un
// messaggio dedicato; tutto il resto viene loggato per intero lato server e
// restituito al client solo come messaggio generico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error, m failMessages) error {
	var verrs validate.Errors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Dati non validi",
			Errors:  verrs,
		})
	case errors.Is(err, domain.ErrEmailInUse):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Email già in uso"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: m.Forbidden})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: m.NotFound})
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg(m.Internal)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: m.Internal})
	}
}
