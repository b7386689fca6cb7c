package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"charity_backend/internals/configs"
	charity "charity_backend/internals/seeds/charity"
)

func RunAllSeeds(db *gorm.DB, cfg configs.Config) error {
	//* Charity projects + donations
	if _, err := charity.SeedCharityFromJSON(db, cfg.SeedFile); err != nil {
		return fmt.Errorf("charity seed: %w", err)
	}
	return nil
}
