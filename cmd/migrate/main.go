// Command migrate applies or rolls back the schema in migrations/
// against the database named by reservationd's config, using
// golang-migrate — the same migrator the rest of the example pack
// reaches for instead of a hand-rolled schema runner.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"github.com/shiva/reservation/internal/config"
)

func main() {
	dir := flag.String("dir", "migrations", "path to the migrations directory")
	flag.Parse()

	direction := "up"
	if args := flag.Args(); len(args) > 0 {
		direction = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// The pgx/v5 database driver registers itself under the "pgx5"
	// URL scheme rather than "postgres".
	dsn := "pgx5://" + strings.TrimPrefix(cfg.Database.DSN(), "postgres://")

	m, err := migrate.New("file://"+*dir, dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize migrator")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Error().Err(srcErr).Msg("closing migration source")
		}
		if dbErr != nil {
			log.Error().Err(dbErr).Msg("closing migration database")
		}
	}()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		fmt.Fprintf(os.Stderr, "unknown direction %q: use \"up\" or \"down\"\n", direction)
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Str("direction", direction).Msg("migration failed")
	}

	log.Info().Str("direction", direction).Msg("migrations applied")
}
