package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionale-hr/personale-api/internal/application/dto"
	"github.com/gestionale-hr/personale-api/internal/application/usecase"
	"github.com/gestionale-hr/personale-api/pkg/logger"
)

// ResponsabileHandler gestisce le richieste HTTP sui responsabili.
type ResponsabileHandler struct {
	uc  *usecase.ResponsabileUseCase
	log *logger.Logger
}

// NewResponsabileHandler costruisce l'handler.
func NewResponsabileHandler(uc *usecase.ResponsabileUseCase, log *logger.Logger) *ResponsabileHandler {
	return &ResponsabileHandler{uc: uc, log: log}
}

// List GET /api/responsabili
func (h *ResponsabileHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), CallerFrom(c))
	if err != nil {
		return respondError(c, h.log, err, failMessages{
			Forbidden: "Non sei autorizzato a visualizzare i responsabili",
			Internal:  "Errore nel recupero dei responsabili",
		})
	}
	return c.JSON(list)
}

// Get GET /api/responsabili/:id
func (h *ResponsabileHandler) Get(c *fiber.Ctx) error {
	r, err := h.uc.Get(c.Context(), CallerFrom(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, failMessages{
			NotFound:  "Responsabile non trovato",
			Forbidden: "Non sei autorizzato a visualizzare i dettagli dei responsabili",
			Internal:  "Errore nel recupero del responsabile",
		})
	}
	return c.JSON(r)
}

// Create POST /api/responsabili
func (h *ResponsabileHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProfiloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo della richiesta non valido"})
	}
	created, err := h.uc.Create(c.Context(), CallerFrom(c), in)
	if err != nil {
		return respondError(c, h.log, err, failMessages{
			Forbidden: "Non sei autorizzato a creare responsabili",
			Internal:  "Errore nella creazione del responsabile",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update PUT /api/responsabili/:id
func (h *ResponsabileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfiloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo della richiesta non valido"})
	}
	r, err := h.uc.Update(c.Context(), CallerFrom(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err, failMessages{
			NotFound:  "Responsabile non trovato",
			Forbidden: "Non sei autorizzato a modificare i responsabili",
			Internal:  "Errore nell'aggiornamento del responsabile",
		})
	}
	return c.JSON(r)
}

// Delete DELETE /api/responsabili/:id
func (h *ResponsabileHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Context(), CallerFrom(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, failMessages{
			NotFound:  "Responsabile non trovato",
			Forbidden: "Non sei autorizzato a eliminare i responsabili",
			Internal:  "Errore nell'eliminazione del responsabile",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Responsabile eliminato con successo"})
}
