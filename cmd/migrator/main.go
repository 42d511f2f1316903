// The migrator applies the shop's schema migrations to Postgres.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const (
	dsnFlag           = "dsn"
	migrationPathFlag = "migrations-path"
)

func main() {
	dsn, migrationsPath := getFlagsValues()
	validateFlags(dsn, migrationsPath)
	makeMigrations(dsn, migrationsPath)
}

type MigrationLogger struct {
	logger  *slog.Logger
	verbose bool
}

func NewMigrationLogger() *MigrationLogger {
	return &MigrationLogger{
		logger:  slog.Default(),
		verbose: true,
	}
}

func (ml *MigrationLogger) Printf(format string, v ...any) {
	ml.logger.Info(fmt.Sprintf(format, v...))
}

func (ml *MigrationLogger) Verbose() bool {
	return ml.verbose
}

func getFlagsValues() (dsn, migrations string) {
	dsnValue := pflag.StringP(dsnFlag, "d", "", "postgres dsn without scheme")
	migrationsPath := pflag.StringP(migrationPathFlag, "m", "migrations", "")
	pflag.Parse()
	return *dsnValue, *migrationsPath
}

func validateFlags(dsn, migrationsPath string) {
	var errs []error

	if dsn == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", dsnFlag))
	}

	if migrationsPath == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", migrationPathFlag))
	}

	if len(errs) != 0 {
		slog.Error("too few args", "err", errors.Join(errs...))
		fallDown()
	}
}

func makeMigrations(dsn, migrationsPath string) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		fmt.Sprintf("pgx5://%s", dsn),
	)
	if err != nil {
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}

	m.Log = NewMigrationLogger()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("no migrations to apply")
			return
		}
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	m.Log.Printf("migration applied\n")
}

func fallDown() {
	os.Exit(2)
}
