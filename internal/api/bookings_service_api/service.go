package bookings_service_api

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/api/rpc"
	"google.golang.org/grpc"
)

const ServiceName = "skybooking.bookings.v1.BookingsService"

type CreateBookingRequest struct {
	FlightID   int64  `json:"flight_id"`
	Fare       string `json:"fare"`
	SeatNumber int32  `json:"seat_number"`
	Email      string `json:"email"`
}

type BookingTokenRequest struct {
	Token string `json:"token"`
}

type Booking struct {
	Token      string `json:"token"`
	Status     string `json:"status"`
	ExpiresAt  string `json:"expires_at"`
	FlightID   int64  `json:"flight_id"`
	Fare       string `json:"fare"`
	SeatNumber int32  `json:"seat_number"`
	PriceTotal int64  `json:"price_total"`
	Email      string `json:"email"`
}

type BookingsServiceServer interface {
	CreateBooking(context.Context, *CreateBookingRequest) (*Booking, error)
	GetBooking(context.Context, *BookingTokenRequest) (*Booking, error)
	CancelBooking(context.Context, *BookingTokenRequest) (*Booking, error)
}

func RegisterBookingsServiceServer(s grpc.ServiceRegistrar, srv BookingsServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateBooking", Handler: unary("CreateBooking", func(s BookingsServiceServer, ctx context.Context, in *CreateBookingRequest) (any, error) {
			return s.CreateBooking(ctx, in)
		})},
		{MethodName: "GetBooking", Handler: unary("GetBooking", func(s BookingsServiceServer, ctx context.Context, in *BookingTokenRequest) (any, error) {
			return s.GetBooking(ctx, in)
		})},
		{MethodName: "CancelBooking", Handler: unary("CancelBooking", func(s BookingsServiceServer, ctx context.Context, in *BookingTokenRequest) (any, error) {
			return s.CancelBooking(ctx, in)
		})},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "skybooking/bookings/v1",
}

func unary[Req any](method string, call func(BookingsServiceServer, context.Context, *Req) (any, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BookingsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + method}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(BookingsServiceServer), ctx, req.(*Req))
		})
	}
}

type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) CreateBooking(ctx context.Context, in *CreateBookingRequest, opts ...grpc.CallOption) (*Booking, error) {
	return c.invoke(ctx, "CreateBooking", in, opts)
}

func (c *Client) GetBooking(ctx context.Context, in *BookingTokenRequest, opts ...grpc.CallOption) (*Booking, error) {
	return c.invoke(ctx, "GetBooking", in, opts)
}

func (c *Client) CancelBooking(ctx context.Context, in *BookingTokenRequest, opts ...grpc.CallOption) (*Booking, error) {
	return c.invoke(ctx, "CancelBooking", in, opts)
}

func (c *Client) invoke(ctx context.Context, method string, in any, opts []grpc.CallOption) (*Booking, error) {
	out := new(Booking)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(rpc.CodecName)}, opts...)
	if err := c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
