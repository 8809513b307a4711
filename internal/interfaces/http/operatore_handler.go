package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionale-hr/personale-api/internal/application/dto"
	"github.com/gestionale-hr/personale-api/internal/application/usecase"
	"github.com/gestionale-hr/personale-api/pkg/logger"
)

// OperatoreHandler gestisce le richieste HTTP sugli operatori.
type OperatoreHandler struct {
	uc  *usecase.OperatoreUseCase
	log *logger.Logger
}

// NewOperatoreHandler costruisce l'handler.
func NewOperatoreHandler(uc *usecase.OperatoreUseCase, log *logger.Logger) *OperatoreHandler {
	return &OperatoreHandler{uc: uc, log: log}
}

// List GET /api/operatori
// Risponde con l'elenco filtrato per il ruolo del chiamante, cognome ascendente.
// Nessun risultato è un array vuoto, non 404.
func (h *OperatoreHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), CallerFrom(c))
	if err != nil {
		return respondError(c, h.log, err, failMessages{
			Forbidden: "Non sei autorizzato a visualizzare gli operatori",
			Internal:  "Errore nel recupero degli operatori",
		})
	}
	return c.JSON(list)
}

// Get GET /api/operatori/:id
func (h *OperatoreHandler) Get(c *fiber.Ctx) error {
	op, err := h.uc.Get(c.Context(), CallerFrom(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, failMessages{
			NotFound:  "Operatore non trovato",
			Forbidden: "Non sei autorizzato a visualizzare questo operatore",
			Internal:  "Errore nel recupero dell'operatore",
		})
	}
	return c.JSON(op)
}

// Create POST /api/operatori
func (h *OperatoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProfiloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo della richiesta non valido"})
	}
	created, err := h.uc.Create(c.Context(), CallerFrom(c), in)
	if err != nil {
		return respondError(c, h.log, err, failMessages{
			Forbidden: "Non sei autorizzato a creare operatori",
			Internal:  "Errore nella creazione dell'operatore",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update PUT /api/operatori/:id
func (h *OperatoreHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfiloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo della richiesta non valido"})
	}
	op, err := h.uc.Update(c.Context(), CallerFrom(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err, failMessages{
			NotFound:  "Operatore non trovato",
			Forbidden: "Non sei autorizzato a modificare questo operatore",
			Internal:  "Errore nell'aggiornamento dell'operatore",
		})
	}
	return c.JSON(op)
}

// Delete DELETE /api/operatori/:id
// Risponde 200 con un messaggio di conferma, non 204.
func (h *OperatoreHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Context(), CallerFrom(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, failMessages{
			NotFound:  "Operatore non trovato",
			Forbidden: "Non sei autorizzato a eliminare questo operatore",
			Internal:  "Errore nell'eliminazione dell'operatore",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Operatore eliminato con successo"})
}
