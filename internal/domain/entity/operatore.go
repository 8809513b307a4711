package entity

import "time"

// Operatore rappresenta il profilo anagrafico di un dipendente.
// L'identità di accesso (User) è una riga separata, legata per email.
type Operatore struct {
	ID        string
	Nome      string
	Cognome   string
	Email     string
	CreatedAt time.Time
}
