package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/itinerary"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Search(ctx context.Context, criteria flights.SearchCriteria) ([]domain.Flight, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Itinerary(ctx context.Context, id int64) (*domain.Itinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Itinerary), args.Error(1)
}

func newFlightRouter(service flights.FlightUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewFlightHandler(service)
	h.Register(r.Group("/flights"))
	h.RegisterTools(r.Group(""))
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	r := newFlightRouter(mockService)

	expected := flights.SearchCriteria{From: "OTP", To: "new york", Date: "2026-11-10", MaxPrice: 600}
	mockService.On("Search", mock.Anything, expected).Return(catalog.Flights()[9:10], nil).Once()

	w := serve(r, httptest.NewRequest(http.MethodGet, "/flights?from=OTP&to=new+york&date=2026-11-10&max_price=600", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var got []domain.Flight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "SH-OTP-JFK-03", got[0].Code)
	assert.Equal(t, []int64{8, 9}, got[0].LegBoundaryIDs)
	assert.Contains(t, w.Body.String(), `"transits":[8,9]`)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_list_ValidationError(t *testing.T) {
	mockService := &MockFlightUseCase{}
	r := newFlightRouter(mockService)

	mockService.On("Search", mock.Anything, flights.SearchCriteria{Date: "tomorrow"}).
		Return(nil, domain.ErrValidation).Once()

	w := serve(r, httptest.NewRequest(http.MethodGet, "/flights?date=tomorrow", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/flights?max_price=cheap", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	r := newFlightRouter(mockService)

	flight := catalog.Flights()[0]
	mockService.On("GetByID", mock.Anything, int64(1)).Return(&flight, nil).Once()
	mockService.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrFlightNotFound).Once()

	w := serve(r, httptest.NewRequest(http.MethodGet, "/flights/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SH-OTP-CDG-01")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/flights/404", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/flights/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightHandler_itinerary(t *testing.T) {
	mockService := &MockFlightUseCase{}
	r := newFlightRouter(mockService)

	table := catalog.Flights()
	it, err := itinerary.Build(table[9], table)
	require.NoError(t, err)
	mockService.On("Itinerary", mock.Anything, int64(10)).Return(&it, nil).Once()

	w := serve(r, httptest.NewRequest(http.MethodGet, "/flights/10/itinerary", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp itineraryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Segments, 2)
	assert.Equal(t, "Wed, 04 Nov 2026", resp.Segments[0].DisplayDate)
	assert.Equal(t, "LHR", resp.Segments[1].DepartureCode)
	require.Len(t, resp.Layovers, 1)
	assert.Equal(t, "14h 0m", resp.Layovers[0].Duration)
	assert.Equal(t, 1, resp.Stops)
}

func TestFlightHandler_itinerary_InternalError(t *testing.T) {
	mockService := &MockFlightUseCase{}
	r := newFlightRouter(mockService)

	mockService.On("Itinerary", mock.Anything, int64(10)).Return(nil, assert.AnError).Once()

	w := serve(r, httptest.NewRequest(http.MethodGet, "/flights/10/itinerary", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestFlightHandler_layover(t *testing.T) {
	r := newFlightRouter(&MockFlightUseCase{})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/layover?arrival=23:00&departure=01:00", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"arrival":"23:00","departure":"01:00","duration":"2h 0m"}`, w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/layover?arrival=late&departure=01:00", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
