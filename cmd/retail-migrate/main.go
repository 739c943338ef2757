package main

import (
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/retail-cli/pkg/config"
	"github.com/jhoicas/retail-cli/pkg/logger"
)

// Aplica las migraciones pendientes del directorio migrations/ y termina.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := goose.OpenDBWithDriver("postgres", cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión para migraciones")
	}
	defer db.Close()

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Str("db", cfg.DB.DBName).Msg("migraciones aplicadas")
}
