// Package authz centralizza la politica di autorizzazione: una sola funzione
// pura mappa (chiamante, azione) in una decisione, al posto dei controlli di
// ruolo sparsi nei singoli controller.
package authz

import "github.com/gestionale-hr/personale-api/internal/domain/entity"

// Caller identifica il chiamante autenticato. Viene costruito esplicitamente
// dal middleware HTTP e passato come argomento, mai letto da stato ambiente.
type Caller struct {
	Role   entity.Role
	UserID string
}

// Azione operazione richiesta sulle risorse del personale.
type Azione int

const (
	ListOperatori Azione = iota
	ReadOperatore
	CreateOperatore
	UpdateOperatore
	DeleteOperatore
	ListResponsabili
	ReadResponsabile
	CreateResponsabile
	UpdateResponsabile
	DeleteResponsabile
)

// Decisione esito della politica di autorizzazione.
type Decisione int

const (
	// Deny accesso negato.
	Deny Decisione = iota
	// Allow accesso pieno, nessun filtro.
	Allow
	// AllowSelf limitato al profilo del chiamante stesso.
	AllowSelf
	// AllowAssociated limitato agli operatori associati al chiamante
	// tramite la relazione responsabili-operatori.
	AllowAssociated
)

// Decide applica le regole di visibilità per ruolo.
//
// Operatori: ADMIN e AMMINISTRATORE vedono e gestiscono tutto; un RESPONSABILE
// vede e gestisce solo gli operatori a lui associati (e può crearne di nuovi,
// che gli vengono associati); un OPERATORE vede solo se stesso e non modifica.
// Lettura, aggiornamento ed eliminazione del singolo operatore applicano lo
// stesso filtro del listato, non solo il gate di rotta.
//
// Responsabili: ogni operazione è riservata ad ADMIN e AMMINISTRATORE.
func Decide(caller Caller, az Azione) Decisione {
	if !caller.Role.Valid() {
		return Deny
	}

	switch az {
	case ListOperatori, ReadOperatore:
		switch {
		case caller.Role.IsAmministrativo():
			return Allow
		case caller.Role == entity.RoleResponsabile:
			return AllowAssociated
		default: // OPERATORE
			return AllowSelf
		}

	case CreateOperatore:
		if caller.Role.IsAmministrativo() || caller.Role == entity.RoleResponsabile {
			return Allow
		}
		return Deny

	case UpdateOperatore, DeleteOperatore:
		switch {
		case caller.Role.IsAmministrativo():
			return Allow
		case caller.Role == entity.RoleResponsabile:
			return AllowAssociated
		default:
			return Deny
		}

	case ListResponsabili, ReadResponsabile, CreateResponsabile,
		UpdateResponsabile, DeleteResponsabile:
		if caller.Role.IsAmministrativo() {
			return Allow
		}
		return Deny
	}

	return Deny
}
