package repository

import (
	"context"

	"github.com/gestionale-hr/personale-api/internal/domain/entity"
)

// OperatoreRepository definisce la porta di persistenza per Operatore.
// Tutti i listati sono ordinati per cognome ascendente.
type OperatoreRepository interface {
	Create(ctx context.Context, op *entity.Operatore) error
	// GetByID restituisce (nil, nil) se l'operatore non esiste.
	GetByID(ctx context.Context, id string) (*entity.Operatore, error)
	// GetByEmail risale dal login al profilo; (nil, nil) se assente.
	GetByEmail(ctx context.Context, email string) (*entity.Operatore, error)
	ListAll(ctx context.Context) ([]*entity.Operatore, error)
	// ListByResponsabile restituisce solo gli operatori associati al responsabile.
	ListByResponsabile(ctx context.Context, idResponsabile string) ([]*entity.Operatore, error)
	// ListByID restituisce al più una riga: il profilo del chiamante stesso.
	ListByID(ctx context.Context, id string) ([]*entity.Operatore, error)
	Update(ctx context.Context, op *entity.Operatore) error
	Delete(ctx context.Context, id string) error
}

// AssociazioneRepository definisce la porta per la relazione responsabili-operatori.
type AssociazioneRepository interface {
	Create(ctx context.Context, idResponsabile, idOperatore string) error
	Exists(ctx context.Context, idResponsabile, idOperatore string) (bool, error)
}
