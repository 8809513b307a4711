// Package migrations applica lo schema del database con goose.
// I file SQL sono incorporati nel binario: nessuna dipendenza dal filesystem in deploy.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib" // driver database/sql per goose
)

//go:embed *.sql
var embedMigrations embed.FS

// Up applica le migrazioni pendenti sul DSN indicato.
func Up(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("apertura connessione migrazioni: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("dialetto goose: %w", err)
	}
	if err := goose.Up(db, "."); err != nil && !errors.Is(err, goose.ErrNoNextVersion) {
		return fmt.Errorf("migrazione: %w", err)
	}
	return nil
}
