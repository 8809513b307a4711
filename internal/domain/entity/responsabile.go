package entity

import "time"

// Responsabile rappresenta il profilo anagrafico di un responsabile,
// amministrativamente superiore agli operatori a lui associati.
type Responsabile struct {
	ID        string
	Nome      string
	Cognome   string
	Email     string
	CreatedAt time.Time
}

// Associazione lega un responsabile a un operatore che supervisiona (molti-a-molti).
// Viene creata quando un RESPONSABILE crea un nuovo operatore (auto-associazione).
type Associazione struct {
	IDResponsabile string
	IDOperatore    string
}
