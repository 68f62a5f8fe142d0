// Command migrate applies or rolls back the database schema.
package main

import (
	"flag"
	"fmt"
	"os"

	"agenda/config"
	"agenda/internal/infra/persistence/migrate"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration instead of applying pending ones")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	databaseURL := cfg.Postgres.URL()

	if *down {
		if err := migrate.Down(databaseURL); err != nil {
			fmt.Fprintf(os.Stderr, "migration rollback failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("rolled back one migration")

		return
	}

	if err := migrate.Up(databaseURL); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("migrations applied")
}
