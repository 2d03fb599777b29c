package usecase

import "context"

// SeedOutput reports what a seed run inserted.
type SeedOutput struct {
	Seeded      bool
	Restaurants int
	MenuItems   int
}

// SeedUsecase loads the demo catalog into an empty database.
type SeedUsecase interface {
	Seed(ctx context.Context) (*SeedOutput, error)
}
