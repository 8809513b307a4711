package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/gestionale-hr/personale-api/internal/domain/entity"
	"github.com/gestionale-hr/personale-api/internal/domain/repository"
)

var _ repository.OperatoreRepository = (*OperatoreRepo)(nil)

// OperatoreRepo implementazione della porta OperatoreRepository su PostgreSQL.
// I listati filtrati per ruolo sono composti con squirrel sulla stessa base.
type OperatoreRepo struct {
	db Querier
}

// NewOperatoreRepository costruisce l'adapter; accetta il pool o una transazione.
func NewOperatoreRepository(db Querier) *OperatoreRepo {
	return &OperatoreRepo{db: db}
}

// selectOperatori base comune dei listati: sempre ordinati per cognome ascendente.
func selectOperatori() squirrel.SelectBuilder {
	return psql.
		Select("o.id", "o.nome", "o.cognome", "o.email", "o.created_at").
		From("operatori o").
		OrderBy("o.cognome ASC")
}

// Create persiste un nuovo operatore.
func (r *OperatoreRepo) Create(ctx context.Context, op *entity.Operatore) error {
	query := `
		INSERT INTO operatori (id, nome, cognome, email, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(ctx, query, op.ID, op.Nome, op.Cognome, op.Email, op.CreatedAt); err != nil {
		return fmt.Errorf("insert operatore: %w", err)
	}
	return nil
}

// GetByID recupera un operatore per id; (nil, nil) se assente.
func (r *OperatoreRepo) GetByID(ctx context.Context, id string) (*entity.Operatore, error) {
	return r.getOne(ctx, `
		SELECT id, nome, cognome, email, created_at
		FROM operatori WHERE id = $1`, id, "get operatore by id")
}

// GetByEmail recupera un operatore per email; (nil, nil) se assente.
func (r *OperatoreRepo) GetByEmail(ctx context.Context, email string) (*entity.Operatore, error) {
	return r.getOne(ctx, `
		SELECT id, nome, cognome, email, created_at
		FROM operatori WHERE email = $1`, email, "get operatore by email")
}

// ListAll restituisce tutti gli operatori.
func (r *OperatoreRepo) ListAll(ctx context.Context) ([]*entity.Operatore, error) {
	return r.list(ctx, selectOperatori())
}

// ListByResponsabile restituisce gli operatori associati al responsabile.
func (r *OperatoreRepo) ListByResponsabile(ctx context.Context, idResponsabile string) ([]*entity.Operatore, error) {
	return r.list(ctx, selectOperatori().
		Join("responsabili_operatori ro ON ro.id_operatore = o.id").
		Where(squirrel.Eq{"ro.id_responsabile": idResponsabile}))
}

// ListByID restituisce al più una riga, il profilo del chiamante stesso.
func (r *OperatoreRepo) ListByID(ctx context.Context, id string) ([]*entity.Operatore, error) {
	return r.list(ctx, selectOperatori().Where(squirrel.Eq{"o.id": id}))
}

// Update aggiorna l'anagrafica di un operatore.
func (r *OperatoreRepo) Update(ctx context.Context, op *entity.Operatore) error {
	query := `
		UPDATE operatori SET nome = $2, cognome = $3, email = $4
		WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, op.ID, op.Nome, op.Cognome, op.Email); err != nil {
		return fmt.Errorf("update operatore: %w", err)
	}
	return nil
}

// Delete elimina un operatore; le associazioni cadono per ON DELETE CASCADE.
func (r *OperatoreRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM operatori WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete operatore: %w", err)
	}
	return nil
}

func (r *OperatoreRepo) getOne(ctx context.Context, query, arg, op string) (*entity.Operatore, error) {
	var o entity.Operatore
	err := r.db.QueryRow(ctx, query, arg).Scan(&o.ID, &o.Nome, &o.Cognome, &o.Email, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &o, nil
}

func (r *OperatoreRepo) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*entity.Operatore, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query operatori: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operatori: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Operatore, 0)
	for rows.Next() {
		var o entity.Operatore
		if err := rows.Scan(&o.ID, &o.Nome, &o.Cognome, &o.Email, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan operatore: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
