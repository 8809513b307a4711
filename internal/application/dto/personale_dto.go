package dto

import "time"

// CreateProfiloRequest input per la creazione di un operatore o responsabile.
// Password è opzionale: se assente viene generata e restituita una sola volta.
type CreateProfiloRequest struct {
	Nome     string `json:"nome"`
	Cognome  string `json:"cognome"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// UpdateProfiloRequest input per l'aggiornamento dell'anagrafica.
type UpdateProfiloRequest struct {
	Nome    string `json:"nome"`
	Cognome string `json:"cognome"`
	Email   string `json:"email"`
}

// ProfiloResponse anagrafica di un operatore o responsabile.
type ProfiloResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Cognome   string    `json:"cognome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatedProfiloResponse risposta alla creazione: anagrafica più l'id
// dell'identità di accesso e, solo se non fornita dal chiamante, la password generata.
type CreatedProfiloResponse struct {
	ProfiloResponse
	UserID            string `json:"userId"`
	GeneratedPassword string `json:"generatedPassword,omitempty"`
}
