package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionale-hr/personale-api/internal/application/auth"
	"github.com/gestionale-hr/personale-api/internal/application/usecase"
	"github.com/gestionale-hr/personale-api/internal/domain/entity"
	"github.com/gestionale-hr/personale-api/pkg/logger"
)

// RouterDeps dipendenze per il router.
type RouterDeps struct {
	OperatoreUC    *usecase.OperatoreUseCase
	ResponsabileUC *usecase.ResponsabileUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra le rotte dell'API. Il gate di ruolo a livello di rotta è il
// primo filtro; la politica in authz applica poi il filtro fine per ruolo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (pubblico)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/auth/login", authHandler.Login)

	// Rotte protette (richiedono Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Operatori: tutte le rotte ammettono i quattro ruoli conosciuti tranne la
	// creazione, riservata ad amministratori e responsabili; la visibilità
	// effettiva per RESPONSABILE e OPERATORE la decide la politica.
	operatori := protected.Group("/operatori")
	operatoreHandler := NewOperatoreHandler(deps.OperatoreUC, deps.Log)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleAmministratore, entity.RoleResponsabile, entity.RoleOperatore)
	operatori.Get("/", anyRole, operatoreHandler.List)
	operatori.Get("/:id", anyRole, operatoreHandler.Get)
	operatori.Post("/", RequireRole(entity.RoleAdmin, entity.RoleAmministratore, entity.RoleResponsabile), operatoreHandler.Create)
	operatori.Put("/:id", anyRole, operatoreHandler.Update)
	operatori.Delete("/:id", anyRole, operatoreHandler.Delete)

	// Responsabili: solo admin e amministratori.
	responsabili := protected.Group("/responsabili")
	responsabileHandler := NewResponsabileHandler(deps.ResponsabileUC, deps.Log)
	adminOnly := RequireRole(entity.RoleAdmin, entity.RoleAmministratore)
	responsabili.Get("/", adminOnly, responsabileHandler.List)
	responsabili.Get("/:id", adminOnly, responsabileHandler.Get)
	responsabili.Post("/", adminOnly, responsabileHandler.Create)
	responsabili.Put("/:id", adminOnly, responsabileHandler.Update)
	responsabili.Delete("/:id", adminOnly, responsabileHandler.Delete)
}
