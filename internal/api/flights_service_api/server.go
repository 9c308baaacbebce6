package flights_service_api

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/api/rpc"
	"github.com/Domenick1991/skybooking/internal/service/flights"
)

// Server implements FlightsService on top of the flight use case.
type Server struct {
	flights flights.FlightUseCase
}

func NewServer(flights flights.FlightUseCase) *Server {
	return &Server{flights: flights}
}

func (s *Server) ListFlights(ctx context.Context, req *ListFlightsRequest) (*ListFlightsResponse, error) {
	list, err := s.flights.Search(ctx, flights.SearchCriteria{
		From:     req.From,
		To:       req.To,
		Date:     req.Date,
		MaxPrice: req.MaxPrice,
	})
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &ListFlightsResponse{Flights: list}, nil
}

func (s *Server) GetFlight(ctx context.Context, req *GetFlightRequest) (*GetFlightResponse, error) {
	flight, err := s.flights.GetByID(ctx, req.ID)
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &GetFlightResponse{Flight: flight}, nil
}

func (s *Server) GetItinerary(ctx context.Context, req *GetFlightRequest) (*GetItineraryResponse, error) {
	it, err := s.flights.Itinerary(ctx, req.ID)
	if err != nil {
		return nil, rpc.Status(err)
	}
	return &GetItineraryResponse{Itinerary: it}, nil
}

var _ FlightsServiceServer = (*Server)(nil)
