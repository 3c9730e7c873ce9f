package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "networth.v1.NetWorthService"

// NetWorthServer is the server API for networth.v1.NetWorthService.
// Payloads are google.protobuf.Struct documents carrying the JSON form of the domain records.
type NetWorthServer interface {
	GetSnapshot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	PlanRebalance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListLoans(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	UpdatePrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetHistory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(NetWorthServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// ServiceDesc describes networth.v1.NetWorthService for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NetWorthServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetSnapshot", Handler: unaryHandler("GetSnapshot", NetWorthServer.GetSnapshot)},
		{MethodName: "PlanRebalance", Handler: unaryHandler("PlanRebalance", NetWorthServer.PlanRebalance)},
		{MethodName: "ListLoans", Handler: unaryHandler("ListLoans", NetWorthServer.ListLoans)},
		{MethodName: "UpdatePrice", Handler: unaryHandler("UpdatePrice", NetWorthServer.UpdatePrice)},
		{MethodName: "GetHistory", Handler: unaryHandler("GetHistory", NetWorthServer.GetHistory)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "networth/v1/networth.proto",
}

// Register registers the service implementation on a gRPC server
func Register(s grpc.ServiceRegistrar, srv NetWorthServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(NetWorthServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(NetWorthServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client is a thin client for networth.v1.NetWorthService
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client over an established connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes a unary method by name, e.g. "GetSnapshot"
func (c *Client) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
