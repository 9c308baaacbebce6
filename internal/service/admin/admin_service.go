package admin

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/itinerary"
	"github.com/Domenick1991/skybooking/internal/logger"
	"github.com/Domenick1991/skybooking/internal/metrics"
	"github.com/Domenick1991/skybooking/internal/repository"
)

// AdminUseCase backs the administrative console that curates the catalog.
type AdminUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Create(ctx context.Context, flight domain.Flight) (*domain.Flight, error)
	Update(ctx context.Context, id int64, flight domain.Flight) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status domain.FlightStatus) (*domain.Flight, error)
	Compose(ctx context.Context, input ComposeInput) (*domain.Flight, error)
	Stats(ctx context.Context) (*Stats, error)
}

type CacheInvalidator interface {
	InvalidateFlights(ctx context.Context) error
}

// ComposeInput describes a connecting flight built from existing legs.
// Fields set on Draft win over values derived from the legs.
type ComposeInput struct {
	Draft  domain.Flight `json:"draft"`
	LegIDs []int64       `json:"leg_ids"`
}

type Stats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	Transit      int            `json:"transit"`
	AveragePrice int64          `json:"average_price"`
}

type AdminService struct {
	mu      sync.Mutex
	repo    repository.FlightRepository
	cache   CacheInvalidator
	log     logger.Logger
	metrics *metrics.Metrics
}

type AdminServiceOption func(*AdminService)

func WithLogger(log logger.Logger) AdminServiceOption {
	return func(s *AdminService) { s.log = log }
}

func WithMetrics(m *metrics.Metrics) AdminServiceOption {
	return func(s *AdminService) { s.metrics = m }
}

func NewAdminService(repo repository.FlightRepository, cache CacheInvalidator, opts ...AdminServiceOption) *AdminService {
	s := &AdminService{repo: repo, cache: cache, log: logger.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AdminService) List(ctx context.Context) ([]domain.Flight, error) {
	return s.repo.List(ctx)
}

func (s *AdminService) Create(ctx context.Context, flight domain.Flight) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	flight.ID = 0
	normalize(&flight)
	s.log.Debug("admin add flight", "draft", flight)
	if err := validate(flight, table); err != nil {
		s.log.Debug("admin add flight rejected", "error", err)
		return nil, err
	}
	if flight.Code == "" {
		flight.Code = nextCode(flight.DepartureCode, flight.ArrivalCode, table)
	}

	if err := s.repo.Create(ctx, &flight); err != nil {
		return nil, err
	}
	s.changed(ctx, "create")
	s.log.Info("flight created", "id", flight.ID, "code", flight.Code)
	return &flight, nil
}

func (s *AdminService) Update(ctx context.Context, id int64, flight domain.Flight) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	table, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	flight.ID = id
	normalize(&flight)
	if flight.Code == "" {
		flight.Code = current.Code
	}
	if err := validate(flight, table); err != nil {
		return nil, err
	}
	if flight.IsTransit() {
		if parent := referencedBy(id, table); parent != 0 {
			return nil, fmt.Errorf("%w: flight %d is a leg of flight %d and cannot have transits", domain.ErrValidation, id, parent)
		}
	}

	if err := s.repo.Update(ctx, &flight); err != nil {
		return nil, err
	}
	s.changed(ctx, "update")
	return &flight, nil
}

func (s *AdminService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if parent := referencedBy(id, table); parent != 0 {
		return fmt.Errorf("%w: flight %d is a leg of flight %d", domain.ErrFlightInUse, id, parent)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.changed(ctx, "delete")
	s.log.Info("flight deleted", "id", id)
	return nil
}

func (s *AdminService) SetStatus(ctx context.Context, id int64, status domain.FlightStatus) (*domain.Flight, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	flight.Status = status
	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	s.changed(ctx, "status")
	return flight, nil
}

// Compose is the flight builder: it derives a connecting flight from its
// legs and stores it like Create does.
func (s *AdminService) Compose(ctx context.Context, input ComposeInput) (*domain.Flight, error) {
	if len(input.LegIDs) == 0 || len(input.LegIDs) > domain.MaxLegBoundaryIDs {
		return nil, fmt.Errorf("%w: a connecting flight needs 1 to %d legs", domain.ErrValidation, domain.MaxLegBoundaryIDs)
	}

	legs := make([]domain.Flight, 0, len(input.LegIDs))
	for _, id := range input.LegIDs {
		leg, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", id, err)
		}
		legs = append(legs, *leg)
	}
	for i := 1; i < len(legs); i++ {
		if legs[i-1].ArrivalCode != legs[i].DepartureCode {
			return nil, fmt.Errorf("%w: leg %d arrives at %s but leg %d departs from %s", domain.ErrValidation,
				legs[i-1].ID, legs[i-1].ArrivalCode, legs[i].ID, legs[i].DepartureCode)
		}
	}

	flight, err := composeFlight(input.Draft, legs)
	if err != nil {
		return nil, err
	}
	s.log.Debug("admin compose flight", "legs", input.LegIDs, "duration", flight.Duration)
	return s.Create(ctx, flight)
}

func (s *AdminService) Stats(ctx context.Context) (*Stats, error) {
	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(flights), ByStatus: map[string]int{}}
	var sum int64
	for _, f := range flights {
		stats.ByStatus[string(f.Status)]++
		if f.IsTransit() {
			stats.Transit++
		}
		sum += f.Price
	}
	if len(flights) > 0 {
		stats.AveragePrice = sum / int64(len(flights))
	}
	return stats, nil
}

func (s *AdminService) changed(ctx context.Context, op string) {
	if s.metrics != nil {
		s.metrics.CatalogChanges.WithLabelValues(op).Inc()
	}
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		s.log.Warn("flights cache invalidation failed", "error", err)
	}
}

func composeFlight(draft domain.Flight, legs []domain.Flight) (domain.Flight, error) {
	first, last := legs[0], legs[len(legs)-1]

	minutes, err := itinerary.ElapsedMinutes(legs)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	f := draft
	f.DepartureCity, f.DepartureCode, f.DepartureTime = first.DepartureCity, first.DepartureCode, first.DepartureTime
	f.ArrivalCity, f.ArrivalCode, f.ArrivalTime = last.ArrivalCity, last.ArrivalCode, last.ArrivalTime
	f.Duration = itinerary.FormatMinutes(minutes)
	f.LegBoundaryIDs = make([]int64, 0, len(legs))
	for _, leg := range legs {
		f.LegBoundaryIDs = append(f.LegBoundaryIDs, leg.ID)
	}

	if f.StartDate == "" {
		f.StartDate = first.StartDate
	}
	if f.Frequency == "" {
		f.Frequency = first.Frequency
	}
	if f.FlightNumber == "" {
		f.FlightNumber = first.FlightNumber
	}
	if f.Meal == "" {
		f.Meal = first.Meal
	}
	if f.Price == 0 {
		for _, leg := range legs {
			f.Price += leg.Price
		}
	}
	if f.Aircraft == "" {
		var names []string
		for _, leg := range legs {
			if leg.Aircraft != "" && !contains(names, leg.Aircraft) {
				names = append(names, leg.Aircraft)
			}
		}
		f.Aircraft = strings.Join(names, " / ")
	}
	if f.SeatConfiguration == "" && len(legs) > 1 {
		f.SeatConfiguration = "mixed"
	} else if f.SeatConfiguration == "" {
		f.SeatConfiguration = first.SeatConfiguration
	}
	return f, nil
}

func normalize(f *domain.Flight) {
	f.DepartureCode = strings.ToUpper(strings.TrimSpace(f.DepartureCode))
	f.ArrivalCode = strings.ToUpper(strings.TrimSpace(f.ArrivalCode))
	f.DepartureCity = strings.TrimSpace(f.DepartureCity)
	f.ArrivalCity = strings.TrimSpace(f.ArrivalCity)
	f.Code = strings.TrimSpace(f.Code)
	if f.Frequency == "" {
		f.Frequency = domain.FrequencyDaily
	}
	if f.Status == "" {
		f.Status = domain.FlightStatusActive
	}
	if len(f.LegBoundaryIDs) == 0 {
		f.LegBoundaryIDs = nil
	}
}

func validate(f domain.Flight, table []domain.Flight) error {
	var problems []string
	req := func(v, name string) {
		if strings.TrimSpace(v) == "" {
			problems = append(problems, name+" is required")
		}
	}
	req(f.FlightNumber, "flight number")
	req(f.DepartureCity, "departure city")
	req(f.ArrivalCity, "arrival city")

	if !airportCode(f.DepartureCode) {
		problems = append(problems, "departure code must be 3 letters")
	}
	if !airportCode(f.ArrivalCode) {
		problems = append(problems, "arrival code must be 3 letters")
	}
	if f.DepartureCode != "" && f.DepartureCode == f.ArrivalCode {
		problems = append(problems, "departure and arrival must differ")
	}
	if !itinerary.ValidClock(f.DepartureTime) {
		problems = append(problems, "departure time must be HH:MM")
	}
	if !itinerary.ValidClock(f.ArrivalTime) {
		problems = append(problems, "arrival time must be HH:MM")
	}
	if f.StartDate != "" && !itinerary.ValidDate(f.StartDate) {
		problems = append(problems, "start date must be YYYY-MM-DD")
	}
	if !f.Frequency.Valid() {
		problems = append(problems, "frequency must be daily or weekly")
	}
	if !f.Status.Valid() {
		problems = append(problems, "status must be active, completed or cancelled")
	}
	if f.Price < 0 {
		problems = append(problems, "price must not be negative")
	}
	if f.Code != "" && codeTaken(f.Code, table, f.ID) {
		problems = append(problems, fmt.Sprintf("code %s is already used", f.Code))
	}
	problems = append(problems, transitProblems(f, table)...)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

func transitProblems(f domain.Flight, table []domain.Flight) []string {
	if len(f.LegBoundaryIDs) > domain.MaxLegBoundaryIDs {
		return []string{fmt.Sprintf("at most %d transits are allowed", domain.MaxLegBoundaryIDs)}
	}

	var problems []string
	seen := map[int64]bool{}
	for _, id := range f.LegBoundaryIDs {
		switch {
		case id == f.ID:
			problems = append(problems, "a flight cannot be its own transit")
		case seen[id]:
			problems = append(problems, fmt.Sprintf("transit %d is listed twice", id))
		default:
			leg, ok := lookup(table, id)
			if !ok {
				problems = append(problems, fmt.Sprintf("transit %d does not exist", id))
			} else if leg.IsTransit() {
				problems = append(problems, fmt.Sprintf("transit %d is itself a connecting flight", id))
			}
		}
		seen[id] = true
	}
	return problems
}

// nextCode numbers flights per route: SH-OTP-JFK-01, SH-OTP-JFK-02, ...
func nextCode(dep, arr string, table []domain.Flight) string {
	prefix := fmt.Sprintf("SH-%s-%s-", dep, arr)
	n := 0
	for _, f := range table {
		if strings.HasPrefix(f.Code, prefix) {
			n++
		}
	}
	for {
		n++
		code := fmt.Sprintf("%s%02d", prefix, n)
		if !codeTaken(code, table, 0) {
			return code
		}
	}
}

// codeTaken reports whether a flight other than except already uses code.
func codeTaken(code string, table []domain.Flight, except int64) bool {
	for _, f := range table {
		if f.Code == code && f.ID != except {
			return true
		}
	}
	return false
}

func referencedBy(id int64, table []domain.Flight) int64 {
	for _, f := range table {
		for _, leg := range f.LegBoundaryIDs {
			if leg == id && f.ID != id {
				return f.ID
			}
		}
	}
	return 0
}

func lookup(table []domain.Flight, id int64) (domain.Flight, bool) {
	for _, f := range table {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Flight{}, false
}

func airportCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

var _ AdminUseCase = (*AdminService)(nil)
