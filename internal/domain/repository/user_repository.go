package repository

import (
	"context"

	"github.com/gestionale-hr/personale-api/internal/domain/entity"
)

// UserRepository definisce la porta di persistenza per User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail restituisce (nil, nil) se l'email non esiste.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateEmail sposta l'identità di accesso sulla nuova email quando il
	// profilo cambia indirizzo: il legame profilo-utente passa per l'email.
	UpdateEmail(ctx context.Context, oldEmail, newEmail string) error
	// DeleteByEmail rimuove l'identità di accesso associata a un profilo eliminato.
	DeleteByEmail(ctx context.Context, email string) error
}
