package repository

import (
	"context"

	"github.com/gestionale-hr/personale-api/internal/domain/entity"
)

// ResponsabileRepository definisce la porta di persistenza per Responsabile.
type ResponsabileRepository interface {
	Create(ctx context.Context, r *entity.Responsabile) error
	// GetByID restituisce (nil, nil) se il responsabile non esiste.
	GetByID(ctx context.Context, id string) (*entity.Responsabile, error)
	// GetByEmail risale dal login al profilo; (nil, nil) se assente.
	GetByEmail(ctx context.Context, email string) (*entity.Responsabile, error)
	ListAll(ctx context.Context) ([]*entity.Responsabile, error)
	Update(ctx context.Context, r *entity.Responsabile) error
	Delete(ctx context.Context, id string) error
}
