package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestionale-hr/personale-api/internal/domain"
	"github.com/gestionale-hr/personale-api/internal/domain/entity"
	"github.com/gestionale-hr/personale-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementazione della porta UserRepository su PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository costruisce l'adapter di persistenza per gli utenti.
// Accetta il pool o una transazione.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste una nuova identità di accesso. Una violazione dell'indice
// unico su email viene tradotta in domain.ErrEmailInUse.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailInUse
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID recupera un utente per id; (nil, nil) se assente.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, created_at
		FROM users WHERE id = $1`, id), "get user by id")
}

// GetByEmail recupera un utente per email; (nil, nil) se assente.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, created_at
		FROM users WHERE email = $1`, email), "get user by email")
}

// UpdateEmail sposta l'identità di accesso sulla nuova email. Una violazione
// dell'indice unico viene tradotta in domain.ErrEmailInUse.
func (r *UserRepo) UpdateEmail(ctx context.Context, oldEmail, newEmail string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET email = $2 WHERE email = $1`, oldEmail, newEmail)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailInUse
		}
		return fmt.Errorf("update user email: %w", err)
	}
	return nil
}

// DeleteByEmail elimina l'identità di accesso legata a un profilo rimosso.
func (r *UserRepo) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE email = $1`, email); err != nil {
		return fmt.Errorf("delete user by email: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var (
		u    entity.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Role = entity.Role(role)
	return &u, nil
}
