package flights_service_api

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/api/rpc"
	"github.com/Domenick1991/skybooking/internal/domain"
	"google.golang.org/grpc"
)

const ServiceName = "skybooking.flights.v1.FlightsService"

type ListFlightsRequest struct {
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Date     string `json:"date,omitempty"`
	MaxPrice int64  `json:"max_price,omitempty"`
}

type ListFlightsResponse struct {
	Flights []domain.Flight `json:"flights"`
}

type GetFlightRequest struct {
	ID int64 `json:"id"`
}

type GetFlightResponse struct {
	Flight *domain.Flight `json:"flight"`
}

type GetItineraryResponse struct {
	Itinerary *domain.Itinerary `json:"itinerary"`
}

type FlightsServiceServer interface {
	ListFlights(context.Context, *ListFlightsRequest) (*ListFlightsResponse, error)
	GetFlight(context.Context, *GetFlightRequest) (*GetFlightResponse, error)
	GetItinerary(context.Context, *GetFlightRequest) (*GetItineraryResponse, error)
}

func RegisterFlightsServiceServer(s grpc.ServiceRegistrar, srv FlightsServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FlightsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListFlights", Handler: unary("ListFlights", func(s FlightsServiceServer, ctx context.Context, in *ListFlightsRequest) (any, error) {
			return s.ListFlights(ctx, in)
		})},
		{MethodName: "GetFlight", Handler: unary("GetFlight", func(s FlightsServiceServer, ctx context.Context, in *GetFlightRequest) (any, error) {
			return s.GetFlight(ctx, in)
		})},
		{MethodName: "GetItinerary", Handler: unary("GetItinerary", func(s FlightsServiceServer, ctx context.Context, in *GetFlightRequest) (any, error) {
			return s.GetItinerary(ctx, in)
		})},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "skybooking/flights/v1",
}

func unary[Req any](method string, call func(FlightsServiceServer, context.Context, *Req) (any, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FlightsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + method}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(FlightsServiceServer), ctx, req.(*Req))
		})
	}
}

// Client calls FlightsService over an existing connection.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) ListFlights(ctx context.Context, in *ListFlightsRequest, opts ...grpc.CallOption) (*ListFlightsResponse, error) {
	out := new(ListFlightsResponse)
	if err := c.invoke(ctx, "ListFlights", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFlight(ctx context.Context, in *GetFlightRequest, opts ...grpc.CallOption) (*GetFlightResponse, error) {
	out := new(GetFlightResponse)
	if err := c.invoke(ctx, "GetFlight", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetItinerary(ctx context.Context, in *GetFlightRequest, opts ...grpc.CallOption) (*GetItineraryResponse, error) {
	out := new(GetItineraryResponse)
	if err := c.invoke(ctx, "GetItinerary", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(rpc.CodecName)}, opts...)
	return c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}
