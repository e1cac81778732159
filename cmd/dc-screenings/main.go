package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/dcfilmcal/screenings/internal/cli"
)

func main() {
	// Optional .env for TMDB_API_KEY and friends; absence is fine.
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(cli.ExitError)
	}
}
