package postgres

import (
	"book_rental_dapp/config"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// Enabled reports whether a journal database is configured at all.
func Enabled(cfg *config.Config) bool {
	return cfg.Postgres.Host != ""
}

func NewPostgresClient(cfg *config.Config) *sqlx.DB {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DbName,
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		slog.Error("Error while connecting Postgres", slog.String("err", err.Error()))
		panic(err)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxIdleTime(time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second)

	slog.Info("Postgres connected", slog.String("host", cfg.Postgres.Host), slog.String("db", cfg.Postgres.DbName))

	return db
}

// MustMigrate applies every pending migration from cfg.Postgres.MigrationsDir.
func MustMigrate(cfg *config.Config, db *sqlx.DB) {
	driver, err := pgxmigrate.WithInstance(db.DB, &pgxmigrate.Config{})
	if err != nil {
		slog.Error("Error while creating migration driver", slog.String("err", err.Error()))
		panic(err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.Postgres.MigrationsDir, "pgx5", driver)
	if err != nil {
		slog.Error("Error while reading migrations", slog.String("dir", cfg.Postgres.MigrationsDir), slog.String("err", err.Error()))
		panic(err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		slog.Error("Error while applying migrations", slog.String("err", err.Error()))
		panic(err)
	}

	version, dirty, _ := m.Version()
	slog.Info("Postgres migrated", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
}
