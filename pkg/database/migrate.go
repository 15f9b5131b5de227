package database

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"venue-booking/pkg/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// RunMigrations applies any pending schema migrations from the embedded
// migrations directory before the server starts taking requests.
func RunMigrations(migrations fs.FS, config utils.DatabaseConfig) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}

	dsn := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(config.User),
		url.QueryEscape(config.Password),
		config.Host, config.Port, config.Name,
	)

	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
