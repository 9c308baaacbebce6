package repository

import (
	"context"
	"testing"

	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFlightRepository_ListReturnsCopies(t *testing.T) {
	repo := NewMemoryFlightRepository(catalog.Flights())
	ctx := context.Background()

	flights, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, flights, 15)
	assert.Equal(t, int64(1), flights[0].ID)
	assert.Equal(t, int64(15), flights[14].ID)

	flights[9].LegBoundaryIDs[0] = 404
	flights[0].Price = 1

	again, err := repo.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{8, 9}, again.LegBoundaryIDs)
	first, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(129), first.Price)
}

func TestMemoryFlightRepository_CRUD(t *testing.T) {
	repo := NewMemoryFlightRepository(nil)
	ctx := context.Background()

	f := &domain.Flight{Code: "SH-OTP-VIE-01", DepartureCode: "OTP", ArrivalCode: "VIE"}
	require.NoError(t, repo.Create(ctx, f))
	assert.Equal(t, int64(1), f.ID)

	explicit := &domain.Flight{ID: 7, Code: "SH-VIE-OTP-01"}
	require.NoError(t, repo.Create(ctx, explicit))
	assert.Error(t, repo.Create(ctx, &domain.Flight{ID: 7}))

	next := &domain.Flight{Code: "SH-OTP-BER-01"}
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, int64(8), next.ID)

	f.Price = 99
	require.NoError(t, repo.Update(ctx, f))
	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(99), got.Price)

	require.NoError(t, repo.Delete(ctx, 7))
	_, err = repo.GetByID(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 7), domain.ErrFlightNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &domain.Flight{ID: 42}), domain.ErrFlightNotFound)
}

func TestSeedFlights(t *testing.T) {
	repo := NewMemoryFlightRepository(nil)
	ctx := context.Background()

	n, err := SeedFlights(ctx, repo, catalog.Flights())
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	// повторный запуск ничего не меняет
	n, err = SeedFlights(ctx, repo, catalog.Flights())
	require.NoError(t, err)
	assert.Zero(t, n)

	flights, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, flights, 15)
}
