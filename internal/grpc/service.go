package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified name of the show service.
const ServiceName = "showfinder.v1.ShowService"

const (
	searchShowsMethod = "/" + ServiceName + "/SearchShows"
	getEpisodesMethod = "/" + ServiceName + "/GetEpisodes"
)

// ShowServiceServer is the server API for showfinder.v1.ShowService.
//
// The service is described with protobuf well-known types only:
//
//	rpc SearchShows(google.protobuf.StringValue) returns (google.protobuf.ListValue);
//	rpc GetEpisodes(google.protobuf.Int64Value) returns (google.protobuf.ListValue);
//
// Each list element is a Struct with the fields of models.Show or models.Episode.
type ShowServiceServer interface {
	SearchShows(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	GetEpisodes(context.Context, *wrapperspb.Int64Value) (*structpb.ListValue, error)
}

// RegisterShowServiceServer registers srv on s.
func RegisterShowServiceServer(s grpc.ServiceRegistrar, srv ShowServiceServer) {
	s.RegisterService(&showServiceDesc, srv)
}

var showServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ShowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SearchShows", Handler: searchShowsHandler},
		{MethodName: "GetEpisodes", Handler: getEpisodesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: showServiceFile,
}

func searchShowsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowServiceServer).SearchShows(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: searchShowsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShowServiceServer).SearchShows(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func getEpisodesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowServiceServer).GetEpisodes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getEpisodesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShowServiceServer).GetEpisodes(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

// ShowServiceClient is the client API for showfinder.v1.ShowService.
type ShowServiceClient interface {
	SearchShows(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetEpisodes(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type showServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewShowServiceClient creates a client for the show service on cc.
func NewShowServiceClient(cc grpc.ClientConnInterface) ShowServiceClient {
	return &showServiceClient{cc: cc}
}

func (c *showServiceClient) SearchShows(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, searchShowsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *showServiceClient) GetEpisodes(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, getEpisodesMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
