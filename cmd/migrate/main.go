// Aplica las migraciones SQL de migrations/ en orden de nombre de archivo.
// Usa un advisory lock para que dos migradores no corran a la vez y registra
// cada versión aplicada (con checksum) en schema_migrations.
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dronify/warehouse-api/internal/infrastructure/postgres"
	"github.com/dronify/warehouse-api/pkg/config"
	"github.com/dronify/warehouse-api/pkg/logger"
)

const advisoryLockKey = 8312450

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	conn, err := pool.Acquire(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("adquirir conexión para el lock")
	}
	defer conn.Release()

	var locked bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", advisoryLockKey).Scan(&locked); err != nil {
		log.Fatal().Err(err).Msg("consultar advisory lock")
	}
	if !locked {
		log.Fatal().Msg("otro migrador está corriendo")
	}

	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			filename   TEXT NOT NULL,
			checksum   TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		log.Fatal().Err(err).Msg("crear schema_migrations")
	}

	for _, filename := range discoverMigrations(log) {
		applyMigration(ctx, pool, log, filename)
	}
	log.Info().Msg("migraciones al día")
}

func discoverMigrations(log *logger.Logger) []string {
	entries, err := os.ReadDir("migrations")
	if err != nil {
		log.Fatal().Err(err).Msg("leer directorio migrations")
	}
	seen := make(map[string]bool)
	var filenames []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		version, _, ok := strings.Cut(entry.Name(), "_")
		if !ok {
			log.Fatal().Str("file", entry.Name()).Msg("nombre inválido, se espera NNN_descripcion.sql")
		}
		if seen[version] {
			log.Fatal().Str("version", version).Msg("versión duplicada")
		}
		seen[version] = true
		filenames = append(filenames, entry.Name())
	}
	sort.Strings(filenames)
	return filenames
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger, filename string) {
	version, _, _ := strings.Cut(filename, "_")
	contents, err := os.ReadFile(filepath.Join("migrations", filename))
	if err != nil {
		log.Fatal().Err(err).Str("file", filename).Msg("leer migración")
	}
	sum := sha256.Sum256(contents)
	checksum := hex.EncodeToString(sum[:])

	var applied string
	err = pool.QueryRow(ctx,
		"SELECT checksum FROM schema_migrations WHERE version = $1", version).Scan(&applied)
	switch {
	case err == nil:
		if applied != checksum {
			log.Fatal().Str("file", filename).Msg("checksum distinto al aplicado, migración modificada")
		}
		return // ya aplicada
	case !errors.Is(err, pgx.ErrNoRows):
		log.Fatal().Err(err).Str("file", filename).Msg("consultar schema_migrations")
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("file", filename).Msg("begin")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, string(contents)); err != nil {
		log.Fatal().Err(err).Str("file", filename).Msg("ejecutar migración")
	}
	if _, err := tx.Exec(ctx,
		"INSERT INTO schema_migrations (version, filename, checksum) VALUES ($1, $2, $3)",
		version, filename, checksum); err != nil {
		log.Fatal().Err(err).Str("file", filename).Msg("registrar migración")
	}
	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Str("file", filename).Msg("commit")
	}
	log.Info().Str("file", filename).Msg("migración aplicada")
}
