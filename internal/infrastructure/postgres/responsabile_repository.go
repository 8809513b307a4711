package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestionale-hr/personale-api/internal/domain/entity"
	"github.com/gestionale-hr/personale-api/internal/domain/repository"
)

var _ repository.ResponsabileRepository = (*ResponsabileRepo)(nil)

// ResponsabileRepo implementazione della porta ResponsabileRepository su PostgreSQL.
type ResponsabileRepo struct {
	db Querier
}

// NewResponsabileRepository costruisce l'adapter; accetta il pool o una transazione.
func NewResponsabileRepository(db Querier) *ResponsabileRepo {
	return &ResponsabileRepo{db: db}
}

// Create persiste un nuovo responsabile.
func (r *ResponsabileRepo) Create(ctx context.Context, resp *entity.Responsabile) error {
	query := `
		INSERT INTO responsabili (id, nome, cognome, email, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(ctx, query, resp.ID, resp.Nome, resp.Cognome, resp.Email, resp.CreatedAt); err != nil {
		return fmt.Errorf("insert responsabile: %w", err)
	}
	return nil
}

// GetByID recupera un responsabile per id; (nil, nil) se assente.
func (r *ResponsabileRepo) GetByID(ctx context.Context, id string) (*entity.Responsabile, error) {
	return r.getOne(ctx, `
		SELECT id, nome, cognome, email, created_at
		FROM responsabili WHERE id = $1`, id, "get responsabile by id")
}

// GetByEmail recupera un responsabile per email; (nil, nil) se assente.
func (r *ResponsabileRepo) GetByEmail(ctx context.Context, email string) (*entity.Responsabile, error) {
	return r.getOne(ctx, `
		SELECT id, nome, cognome, email, created_at
		FROM responsabili WHERE email = $1`, email, "get responsabile by email")
}

// ListAll restituisce tutti i responsabili, per cognome ascendente.
func (r *ResponsabileRepo) ListAll(ctx context.Context) ([]*entity.Responsabile, error) {
	query := `
		SELECT id, nome, cognome, email, created_at
		FROM responsabili ORDER BY cognome ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list responsabili: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Responsabile, 0)
	for rows.Next() {
		var resp entity.Responsabile
		if err := rows.Scan(&resp.ID, &resp.Nome, &resp.Cognome, &resp.Email, &resp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan responsabile: %w", err)
		}
		list = append(list, &resp)
	}
	return list, rows.Err()
}

// Update aggiorna l'anagrafica di un responsabile.
func (r *ResponsabileRepo) Update(ctx context.Context, resp *entity.Responsabile) error {
	query := `
		UPDATE responsabili SET nome = $2, cognome = $3, email = $4
		WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, resp.ID, resp.Nome, resp.Cognome, resp.Email); err != nil {
		return fmt.Errorf("update responsabile: %w", err)
	}
	return nil
}

// Delete elimina un responsabile; le associazioni cadono per ON DELETE CASCADE.
func (r *ResponsabileRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM responsabili WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete responsabile: %w", err)
	}
	return nil
}

func (r *ResponsabileRepo) getOne(ctx context.Context, query, arg, op string) (*entity.Responsabile, error) {
	var resp entity.Responsabile
	err := r.db.QueryRow(ctx, query, arg).Scan(&resp.ID, &resp.Nome, &resp.Cognome, &resp.Email, &resp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &resp, nil
}
