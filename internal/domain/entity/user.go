package entity

import "time"

// Role ruolo di accesso di un utente. Enumerazione chiusa: ogni confronto
// passa da queste costanti, mai da stringhe sparse nei controller.
type Role string

// Ruoli validi per User.
const (
	RoleAdmin          Role = "ADMIN"
	RoleAmministratore Role = "AMMINISTRATORE"
	RoleResponsabile   Role = "RESPONSABILE"
	RoleOperatore      Role = "OPERATORE"
)

// Valid indica se il ruolo è uno dei quattro conosciuti.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAmministratore, RoleResponsabile, RoleOperatore:
		return true
	}
	return false
}

// IsAmministrativo indica se il ruolo ha visibilità amministrativa completa.
func (r Role) IsAmministrativo() bool {
	return r == RoleAdmin || r == RoleAmministratore
}

// User rappresenta l'identità di accesso al sistema. Viene creato insieme al
// profilo (Operatore o Responsabile) dal flusso di provisioning, mai da solo.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, mai in chiaro dopo la persistenza
	Role         Role
	CreatedAt    time.Time
}
