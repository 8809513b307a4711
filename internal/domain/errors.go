package domain

import "errors"

// Errori di dominio (senza dipendenze esterne). I layer HTTP li traducono in status code.
var (
	ErrNotFound         = errors.New("risorsa non trovata")
	ErrUserNotFound     = errors.New("utente non trovato")
	ErrEmailInUse       = errors.New("email già in uso")
	ErrInvalidInput     = errors.New("dati non validi")
	ErrUnauthorized     = errors.New("non autorizzato")
	ErrForbidden        = errors.New("accesso negato")
	ErrWrongCredentials = errors.New("credenziali errate")
)
