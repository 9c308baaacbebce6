package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// SeedFlights loads flights into repo when it holds no flights yet and
// reports how many records were written.
func SeedFlights(ctx context.Context, repo FlightRepository, flights []domain.Flight) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list flights: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i := range flights {
		f := flights[i].Clone()
		if err := repo.Create(ctx, &f); err != nil {
			return i, fmt.Errorf("seed flight %d: %w", f.ID, err)
		}
	}
	return len(flights), nil
}
