// Command seed creates the schema and loads demo projects and donations.
package main

import (
	"flag"
	"fmt"
	"log"

	"charity_backend/internals/configs"
	database "charity_backend/internals/databases"
	"charity_backend/internals/seeds"
)

func main() {
	file := flag.String("file", "", "seed JSON file (default: $SEED_FILE)")
	flag.Parse()

	cfg, err := configs.LoadEnv()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}
	if *file != "" {
		cfg.SeedFile = *file
	}

	if err := run(cfg); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// run owns the DB pool so it is closed on every path.
func run(cfg configs.Config) error {
	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("DB: %w", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	return seeds.RunAllSeeds(db, cfg)
}
