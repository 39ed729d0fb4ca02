package rsvppb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	serviceName = "rsvp.ReservationService"

	callContentSubtype = codecName
)

// CallOption selects the json codec subtype on outbound calls; a client
// built with NewReservationServiceClient always passes it so the
// generated-style boilerplate below round-trips through jsonCodec
// rather than the default (protobuf) codec.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(callContentSubtype)
}

// ReservationServiceServer is the interface implementing types of the
// reservation RPC surface must satisfy.
type ReservationServiceServer interface {
	Reserve(context.Context, *ReserveRequest) (*ReserveResponse, error)
	Confirm(context.Context, *ConfirmRequest) (*ConfirmResponse, error)
	Update(context.Context, *UpdateRequest) (*UpdateResponse, error)
	Cancel(context.Context, *CancelRequest) (*CancelResponse, error)
	Get(context.Context, *GetRequest) (*GetResponse, error)
	Query(*QueryRequest, ReservationService_QueryServer) error
	Filter(context.Context, *FilterRequest) (*FilterResponse, error)
	Listen(*ListenRequest, ReservationService_ListenServer) error
}

// UnimplementedReservationServiceServer can be embedded to satisfy the
// interface while only overriding the methods a particular build needs.
type UnimplementedReservationServiceServer struct{}

func (UnimplementedReservationServiceServer) Reserve(context.Context, *ReserveRequest) (*ReserveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Reserve not implemented")
}

func (UnimplementedReservationServiceServer) Confirm(context.Context, *ConfirmRequest) (*ConfirmResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Confirm not implemented")
}

func (UnimplementedReservationServiceServer) Update(context.Context, *UpdateRequest) (*UpdateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Update not implemented")
}

func (UnimplementedReservationServiceServer) Cancel(context.Context, *CancelRequest) (*CancelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Cancel not implemented")
}

func (UnimplementedReservationServiceServer) Get(context.Context, *GetRequest) (*GetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Get not implemented")
}

func (UnimplementedReservationServiceServer) Query(*QueryRequest, ReservationService_QueryServer) error {
	return status.Error(codes.Unimplemented, "method Query not implemented")
}

func (UnimplementedReservationServiceServer) Filter(context.Context, *FilterRequest) (*FilterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Filter not implemented")
}

func (UnimplementedReservationServiceServer) Listen(*ListenRequest, ReservationService_ListenServer) error {
	return status.Error(codes.Unimplemented, "method Listen not implemented")
}

// ReservationService_QueryServer is the server-side stream handle for
// the Query RPC.
type ReservationService_QueryServer interface {
	Send(*Reservation) error
	grpc.ServerStream
}

type reservationServiceQueryServer struct {
	grpc.ServerStream
}

func (s *reservationServiceQueryServer) Send(r *Reservation) error {
	return s.ServerStream.SendMsg(r)
}

// ReservationService_ListenServer is the server-side stream handle for
// the Listen RPC.
type ReservationService_ListenServer interface {
	Send(*ListenResponse) error
	grpc.ServerStream
}

type reservationServiceListenServer struct {
	grpc.ServerStream
}

func (s *reservationServiceListenServer) Send(r *ListenResponse) error {
	return s.ServerStream.SendMsg(r)
}

func registerReserveHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReserveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).Reserve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/Reserve"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReservationServiceServer).Reserve(ctx, req.(*ReserveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func registerConfirmHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).Confirm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/Confirm"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReservationServiceServer).Confirm(ctx, req.(*ConfirmRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func registerUpdateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).Update(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/Update"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReservationServiceServer).Update(ctx, req.(*UpdateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func registerCancelHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).Cancel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/Cancel"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReservationServiceServer).Cancel(ctx, req.(*CancelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func registerGetHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/Get"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReservationServiceServer).Get(ctx, req.(*GetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func registerFilterHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FilterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).Filter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/Filter"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReservationServiceServer).Filter(ctx, req.(*FilterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func streamQueryHandler(srv interface{}, stream grpc.ServerStream) error {
	in := new(QueryRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ReservationServiceServer).Query(in, &reservationServiceQueryServer{stream})
}

func streamListenHandler(srv interface{}, stream grpc.ServerStream) error {
	in := new(ListenRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ReservationServiceServer).Listen(in, &reservationServiceListenServer{stream})
}

// ServiceDesc is the grpc.ServiceDesc for ReservationService, the
// equivalent of what protoc-gen-go-grpc would emit from the IDL in
// proto/reservation.proto.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ReservationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Reserve", Handler: registerReserveHandler},
		{MethodName: "Confirm", Handler: registerConfirmHandler},
		{MethodName: "Update", Handler: registerUpdateHandler},
		{MethodName: "Cancel", Handler: registerCancelHandler},
		{MethodName: "Get", Handler: registerGetHandler},
		{MethodName: "Filter", Handler: registerFilterHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Query", Handler: streamQueryHandler, ServerStreams: true},
		{StreamName: "Listen", Handler: streamListenHandler, ServerStreams: true},
	},
	Metadata: "reservation.proto",
}

// RegisterReservationServiceServer registers srv on s.
func RegisterReservationServiceServer(s grpc.ServiceRegistrar, srv ReservationServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ReservationServiceClient is the client-side stub for the reservation
// RPC surface.
type ReservationServiceClient interface {
	Reserve(ctx context.Context, in *ReserveRequest, opts ...grpc.CallOption) (*ReserveResponse, error)
	Confirm(ctx context.Context, in *ConfirmRequest, opts ...grpc.CallOption) (*ConfirmResponse, error)
	Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*UpdateResponse, error)
	Cancel(ctx context.Context, in *CancelRequest, opts ...grpc.CallOption) (*CancelResponse, error)
	Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetResponse, error)
	Query(ctx context.Context, in *QueryRequest, opts ...grpc.CallOption) (ReservationService_QueryClient, error)
	Filter(ctx context.Context, in *FilterRequest, opts ...grpc.CallOption) (*FilterResponse, error)
	Listen(ctx context.Context, in *ListenRequest, opts ...grpc.CallOption) (ReservationService_ListenClient, error)
}

type reservationServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewReservationServiceClient builds a client over cc, pinned to the
// json call-content subtype so it round-trips through jsonCodec.
func NewReservationServiceClient(cc grpc.ClientConnInterface) ReservationServiceClient {
	return &reservationServiceClient{cc}
}

func (c *reservationServiceClient) Reserve(ctx context.Context, in *ReserveRequest, opts ...grpc.CallOption) (*ReserveResponse, error) {
	out := new(ReserveResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Reserve", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reservationServiceClient) Confirm(ctx context.Context, in *ConfirmRequest, opts ...grpc.CallOption) (*ConfirmResponse, error) {
	out := new(ConfirmResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Confirm", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reservationServiceClient) Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*UpdateResponse, error) {
	out := new(UpdateResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Update", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reservationServiceClient) Cancel(ctx context.Context, in *CancelRequest, opts ...grpc.CallOption) (*CancelResponse, error) {
	out := new(CancelResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Cancel", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reservationServiceClient) Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetResponse, error) {
	out := new(GetResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Get", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reservationServiceClient) Filter(ctx context.Context, in *FilterRequest, opts ...grpc.CallOption) (*FilterResponse, error) {
	out := new(FilterResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Filter", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ReservationService_QueryClient is the client-side stream handle for
// the Query RPC.
type ReservationService_QueryClient interface {
	Recv() (*Reservation, error)
	grpc.ClientStream
}

type reservationServiceQueryClient struct {
	grpc.ClientStream
}

func (x *reservationServiceQueryClient) Recv() (*Reservation, error) {
	m := new(Reservation)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *reservationServiceClient) Query(ctx context.Context, in *QueryRequest, opts ...grpc.CallOption) (ReservationService_QueryClient, error) {
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ServiceDesc.Streams[0], "/"+serviceName+"/Query", opts...)
	if err != nil {
		return nil, err
	}
	x := &reservationServiceQueryClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// ReservationService_ListenClient is the client-side stream handle for
// the Listen RPC.
type ReservationService_ListenClient interface {
	Recv() (*ListenResponse, error)
	grpc.ClientStream
}

type reservationServiceListenClient struct {
	grpc.ClientStream
}

func (x *reservationServiceListenClient) Recv() (*ListenResponse, error) {
	m := new(ListenResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *reservationServiceClient) Listen(ctx context.Context, in *ListenRequest, opts ...grpc.CallOption) (ReservationService_ListenClient, error) {
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ServiceDesc.Streams[1], "/"+serviceName+"/Listen", opts...)
	if err != nil {
		return nil, err
	}
	x := &reservationServiceListenClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
