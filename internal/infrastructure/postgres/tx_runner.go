package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestionale-hr/personale-api/internal/application/usecase"
	"github.com/gestionale-hr/personale-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner esegue callback dentro una transazione PostgreSQL con i
// repository legati alla transazione stessa.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner costruisce il runner con il pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run apre la transazione, esegue fn con i repository transazionali e fa
// Commit, oppure Rollback se fn o il Commit falliscono.
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	operatori repository.OperatoreRepository,
	responsabili repository.ResponsabileRepository,
	assoc repository.AssociazioneRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewUserRepository(tx),
		NewOperatoreRepository(tx),
		NewResponsabileRepository(tx),
		NewAssociazioneRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
