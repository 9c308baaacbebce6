package admin

import (
	"context"
	"testing"

	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) InvalidateFlights(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newService() (*AdminService, *repository.MemoryFlightRepository, *MockInvalidator) {
	repo := repository.NewMemoryFlightRepository(catalog.Flights())
	cache := &MockInvalidator{}
	return NewAdminService(repo, cache), repo, cache
}

func draft() domain.Flight {
	return domain.Flight{
		FlightNumber:  "SH777",
		DepartureCity: "Bucharest",
		DepartureCode: "otp",
		ArrivalCity:   "Vienna",
		ArrivalCode:   "vie",
		DepartureTime: "12:00",
		ArrivalTime:   "12:45",
		StartDate:     "2026-12-01",
		Price:         99,
	}
}

func TestAdminService_Create(t *testing.T) {
	service, repo, cache := newService()
	ctx := context.Background()
	cache.On("InvalidateFlights", ctx).Return(nil).Once()

	created, err := service.Create(ctx, draft())

	require.NoError(t, err)
	assert.Equal(t, int64(16), created.ID)
	assert.Equal(t, "SH-OTP-VIE-01", created.Code)
	assert.Equal(t, "OTP", created.DepartureCode)
	assert.Equal(t, domain.FrequencyDaily, created.Frequency)
	assert.Equal(t, domain.FlightStatusActive, created.Status)

	stored, err := repo.GetByID(ctx, 16)
	require.NoError(t, err)
	assert.Equal(t, created.Code, stored.Code)
	cache.AssertExpectations(t)
}

func TestAdminService_Create_NumbersCodesPerRoute(t *testing.T) {
	service, _, cache := newService()
	ctx := context.Background()
	cache.On("InvalidateFlights", ctx).Return(nil)

	f := draft()
	f.ArrivalCity, f.ArrivalCode = "New York", "JFK"

	created, err := service.Create(ctx, f)

	require.NoError(t, err)
	assert.Equal(t, "SH-OTP-JFK-04", created.Code)
}

func TestAdminService_Create_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(f *domain.Flight)
		problem string
	}{
		{name: "flight number", mutate: func(f *domain.Flight) { f.FlightNumber = "" }, problem: "flight number is required"},
		{name: "airport code", mutate: func(f *domain.Flight) { f.ArrivalCode = "VIENNA" }, problem: "arrival code must be 3 letters"},
		{name: "same airports", mutate: func(f *domain.Flight) { f.ArrivalCode = "OTP" }, problem: "departure and arrival must differ"},
		{name: "clock", mutate: func(f *domain.Flight) { f.DepartureTime = "24:00" }, problem: "departure time must be HH:MM"},
		{name: "unpadded clock", mutate: func(f *domain.Flight) { f.DepartureTime = "9:30" }, problem: "departure time must be HH:MM"},
		{name: "signed clock", mutate: func(f *domain.Flight) { f.ArrivalTime = "+9:30" }, problem: "arrival time must be HH:MM"},
		{name: "date", mutate: func(f *domain.Flight) { f.StartDate = "01.12.2026" }, problem: "start date must be YYYY-MM-DD"},
		{name: "frequency", mutate: func(f *domain.Flight) { f.Frequency = "monthly" }, problem: "frequency must be daily or weekly"},
		{name: "price", mutate: func(f *domain.Flight) { f.Price = -1 }, problem: "price must not be negative"},
		{name: "too many transits", mutate: func(f *domain.Flight) { f.LegBoundaryIDs = []int64{1, 2, 3} }, problem: "at most 2 transits are allowed"},
		{name: "missing transit", mutate: func(f *domain.Flight) { f.LegBoundaryIDs = []int64{404} }, problem: "transit 404 does not exist"},
		{name: "duplicate transit", mutate: func(f *domain.Flight) { f.LegBoundaryIDs = []int64{8, 8} }, problem: "transit 8 is listed twice"},
		{name: "nested transit", mutate: func(f *domain.Flight) { f.LegBoundaryIDs = []int64{10} }, problem: "transit 10 is itself a connecting flight"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _, cache := newService()
			f := draft()
			tc.mutate(&f)

			_, err := service.Create(context.Background(), f)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.problem)
			cache.AssertNotCalled(t, "InvalidateFlights", mock.Anything)
		})
	}
}

func TestAdminService_Update(t *testing.T) {
	service, repo, cache := newService()
	ctx := context.Background()
	cache.On("InvalidateFlights", ctx).Return(nil).Once()

	current, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	changed := *current
	changed.Code = ""
	changed.Price = 150

	updated, err := service.Update(ctx, 1, changed)

	require.NoError(t, err)
	assert.Equal(t, "SH-OTP-CDG-01", updated.Code)
	assert.Equal(t, int64(150), updated.Price)
}

func TestAdminService_DuplicateCode(t *testing.T) {
	service, repo, cache := newService()
	ctx := context.Background()

	f := draft()
	f.Code = "SH-OTP-CDG-01"
	_, err := service.Create(ctx, f)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "code SH-OTP-CDG-01 is already used")

	other, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	other.Code = "SH-OTP-CDG-01"
	_, err = service.Update(ctx, 2, *other)
	assert.ErrorIs(t, err, domain.ErrValidation)

	stored, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "SH-CDG-OTP-01", stored.Code)
	cache.AssertNotCalled(t, "InvalidateFlights", mock.Anything)

	// собственный код рейса при обновлении не конфликтует
	cache.On("InvalidateFlights", ctx).Return(nil).Once()
	own, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	own.Price = 175
	updated, err := service.Update(ctx, 1, *own)
	require.NoError(t, err)
	assert.Equal(t, "SH-OTP-CDG-01", updated.Code)

	// свободный код принимается как есть
	cache.On("InvalidateFlights", ctx).Return(nil).Once()
	f.Code = "SH-OTP-VIE-77"
	created, err := service.Create(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, "SH-OTP-VIE-77", created.Code)
	cache.AssertExpectations(t)
}

func TestAdminService_Update_LegCannotBecomeTransit(t *testing.T) {
	service, repo, _ := newService()
	ctx := context.Background()

	leg, err := repo.GetByID(ctx, 8)
	require.NoError(t, err)
	leg.LegBoundaryIDs = []int64{1}

	_, err = service.Update(ctx, 8, *leg)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_Update_SelfTransit(t *testing.T) {
	service, repo, _ := newService()
	ctx := context.Background()

	f, err := repo.GetByID(ctx, 6)
	require.NoError(t, err)
	f.LegBoundaryIDs = []int64{6}

	_, err = service.Update(ctx, 6, *f)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "own transit")
}

func TestAdminService_Update_NotFound(t *testing.T) {
	service, _, _ := newService()

	_, err := service.Update(context.Background(), 404, draft())

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestAdminService_Delete(t *testing.T) {
	service, repo, cache := newService()
	ctx := context.Background()

	// рейс 9 входит в стыковочный рейс 10
	err := service.Delete(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrFlightInUse)

	cache.On("InvalidateFlights", ctx).Return(nil).Once()
	require.NoError(t, service.Delete(ctx, 15))

	_, err = repo.GetByID(ctx, 15)
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
	cache.AssertExpectations(t)
}

func TestAdminService_SetStatus(t *testing.T) {
	service, _, cache := newService()
	ctx := context.Background()
	cache.On("InvalidateFlights", ctx).Return(nil).Once()

	f, err := service.SetStatus(ctx, 3, domain.FlightStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.FlightStatusCancelled, f.Status)

	_, err = service.SetStatus(ctx, 3, "boarding")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_Compose(t *testing.T) {
	service, _, cache := newService()
	ctx := context.Background()
	cache.On("InvalidateFlights", ctx).Return(nil).Once()

	f, err := service.Compose(ctx, ComposeInput{LegIDs: []int64{12, 11}})

	require.NoError(t, err)
	assert.Equal(t, "SH-OTP-DXB-02", f.Code)
	assert.Equal(t, "SH730", f.FlightNumber)
	assert.Equal(t, "OTP", f.DepartureCode)
	assert.Equal(t, "06:00", f.DepartureTime)
	assert.Equal(t, "DXB", f.ArrivalCode)
	assert.Equal(t, "22:45", f.ArrivalTime)
	assert.Equal(t, "16h 45m", f.Duration)
	assert.Equal(t, int64(520), f.Price)
	assert.Equal(t, "mixed", f.SeatConfiguration)
	assert.Equal(t, []int64{12, 11}, f.LegBoundaryIDs)
	assert.Equal(t, "2026-11-06", f.StartDate)
}

func TestAdminService_Compose_DraftWins(t *testing.T) {
	service, _, cache := newService()
	ctx := context.Background()
	cache.On("InvalidateFlights", ctx).Return(nil).Once()

	f, err := service.Compose(ctx, ComposeInput{
		Draft:  domain.Flight{FlightNumber: "SH999", Price: 499, StartDate: "2026-12-24"},
		LegIDs: []int64{8, 9},
	})

	require.NoError(t, err)
	assert.Equal(t, "SH999", f.FlightNumber)
	assert.Equal(t, int64(499), f.Price)
	assert.Equal(t, "2026-12-24", f.StartDate)
	assert.Equal(t, "24h 0m", f.Duration)
}

func TestAdminService_Compose_Rejects(t *testing.T) {
	service, _, _ := newService()
	ctx := context.Background()

	_, err := service.Compose(ctx, ComposeInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.Compose(ctx, ComposeInput{LegIDs: []int64{1, 8, 9}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// CDG не стыкуется с LHR
	_, err = service.Compose(ctx, ComposeInput{LegIDs: []int64{1, 9}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.Compose(ctx, ComposeInput{LegIDs: []int64{404}})
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestAdminService_Stats(t *testing.T) {
	service, _, _ := newService()

	stats, err := service.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 15, stats.Total)
	assert.Equal(t, 13, stats.ByStatus["active"])
	assert.Equal(t, 1, stats.ByStatus["completed"])
	assert.Equal(t, 1, stats.ByStatus["cancelled"])
	assert.Equal(t, 3, stats.Transit)
	assert.Equal(t, int64(280), stats.AveragePrice)
}
