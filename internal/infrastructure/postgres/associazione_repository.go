package postgres

import (
	"context"
	"fmt"

	"github.com/gestionale-hr/personale-api/internal/domain/repository"
)

var _ repository.AssociazioneRepository = (*AssociazioneRepo)(nil)

// AssociazioneRepo implementazione della relazione responsabili-operatori su PostgreSQL.
type AssociazioneRepo struct {
	db Querier
}

// NewAssociazioneRepository costruisce l'adapter; accetta il pool o una transazione.
func NewAssociazioneRepository(db Querier) *AssociazioneRepo {
	return &AssociazioneRepo{db: db}
}

// Create lega un responsabile a un operatore. La coppia è chiave primaria:
// l'inserimento ripetuto è idempotente.
func (r *AssociazioneRepo) Create(ctx context.Context, idResponsabile, idOperatore string) error {
	query := `
		INSERT INTO responsabili_operatori (id_responsabile, id_operatore)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	if _, err := r.db.Exec(ctx, query, idResponsabile, idOperatore); err != nil {
		return fmt.Errorf("insert associazione: %w", err)
	}
	return nil
}

// Exists indica se l'operatore è associato al responsabile.
func (r *AssociazioneRepo) Exists(ctx context.Context, idResponsabile, idOperatore string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM responsabili_operatori
			WHERE id_responsabile = $1 AND id_operatore = $2
		)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, idResponsabile, idOperatore).Scan(&exists); err != nil {
		return false, fmt.Errorf("check associazione: %w", err)
	}
	return exists, nil
}
