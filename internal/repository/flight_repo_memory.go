package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// MemoryFlightRepository keeps the catalog in process, ordered by id.
type MemoryFlightRepository struct {
	mu      sync.RWMutex
	flights []domain.Flight
}

func NewMemoryFlightRepository(seed []domain.Flight) *MemoryFlightRepository {
	flights := make([]domain.Flight, 0, len(seed))
	for _, f := range seed {
		flights = append(flights, f.Clone())
	}
	sort.Slice(flights, func(i, j int) bool { return flights[i].ID < flights[j].ID })
	return &MemoryFlightRepository{flights: flights}
}

func (r *MemoryFlightRepository) List(_ context.Context) ([]domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		out = append(out, f.Clone())
	}
	return out, nil
}

func (r *MemoryFlightRepository) GetByID(_ context.Context, id int64) (*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrFlightNotFound
	}
	f := r.flights[i].Clone()
	return &f, nil
}

func (r *MemoryFlightRepository) Create(_ context.Context, f *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f.ID == 0 {
		f.ID = r.nextID()
	} else if r.indexOf(f.ID) >= 0 {
		return fmt.Errorf("flight %d already exists", f.ID)
	}
	r.flights = append(r.flights, f.Clone())
	sort.Slice(r.flights, func(i, j int) bool { return r.flights[i].ID < r.flights[j].ID })
	return nil
}

func (r *MemoryFlightRepository) Update(_ context.Context, f *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(f.ID)
	if i < 0 {
		return domain.ErrFlightNotFound
	}
	r.flights[i] = f.Clone()
	return nil
}

func (r *MemoryFlightRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrFlightNotFound
	}
	r.flights = append(r.flights[:i], r.flights[i+1:]...)
	return nil
}

func (r *MemoryFlightRepository) indexOf(id int64) int {
	for i := range r.flights {
		if r.flights[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryFlightRepository) nextID() int64 {
	var max int64
	for _, f := range r.flights {
		if f.ID > max {
			max = f.ID
		}
	}
	return max + 1
}

var _ FlightRepository = (*MemoryFlightRepository)(nil)
