package chardetv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	History_SaveSample_FullMethodName    = "/chardetect.v1.History/SaveSample"
	History_ListSamples_FullMethodName   = "/chardetect.v1.History/ListSamples"
	History_GetSample_FullMethodName     = "/chardetect.v1.History/GetSample"
	History_SearchSamples_FullMethodName = "/chardetect.v1.History/SearchSamples"
	History_DeleteSample_FullMethodName  = "/chardetect.v1.History/DeleteSample"
	History_BlockStats_FullMethodName    = "/chardetect.v1.History/BlockStats"
	History_WatchSamples_FullMethodName  = "/chardetect.v1.History/WatchSamples"
)

// HistoryClient is the client API for the History service.
type HistoryClient interface {
	SaveSample(ctx context.Context, in *SaveSampleRequest, opts ...grpc.CallOption) (*SaveSampleResponse, error)
	ListSamples(ctx context.Context, in *ListSamplesRequest, opts ...grpc.CallOption) (*ListSamplesResponse, error)
	GetSample(ctx context.Context, in *GetSampleRequest, opts ...grpc.CallOption) (*GetSampleResponse, error)
	SearchSamples(ctx context.Context, in *SearchSamplesRequest, opts ...grpc.CallOption) (*SearchSamplesResponse, error)
	DeleteSample(ctx context.Context, in *DeleteSampleRequest, opts ...grpc.CallOption) (*DeleteSampleResponse, error)
	BlockStats(ctx context.Context, in *BlockStatsRequest, opts ...grpc.CallOption) (*BlockStatsResponse, error)
	WatchSamples(ctx context.Context, in *WatchSamplesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SampleEvent], error)
}

type historyClient struct {
	cc grpc.ClientConnInterface
}

func NewHistoryClient(cc grpc.ClientConnInterface) HistoryClient {
	return &historyClient{cc}
}

func (c *historyClient) SaveSample(ctx context.Context, in *SaveSampleRequest, opts ...grpc.CallOption) (*SaveSampleResponse, error) {
	out := new(SaveSampleResponse)
	if err := c.cc.Invoke(ctx, History_SaveSample_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *historyClient) ListSamples(ctx context.Context, in *ListSamplesRequest, opts ...grpc.CallOption) (*ListSamplesResponse, error) {
	out := new(ListSamplesResponse)
	if err := c.cc.Invoke(ctx, History_ListSamples_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *historyClient) GetSample(ctx context.Context, in *GetSampleRequest, opts ...grpc.CallOption) (*GetSampleResponse, error) {
	out := new(GetSampleResponse)
	if err := c.cc.Invoke(ctx, History_GetSample_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *historyClient) SearchSamples(ctx context.Context, in *SearchSamplesRequest, opts ...grpc.CallOption) (*SearchSamplesResponse, error) {
	out := new(SearchSamplesResponse)
	if err := c.cc.Invoke(ctx, History_SearchSamples_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *historyClient) DeleteSample(ctx context.Context, in *DeleteSampleRequest, opts ...grpc.CallOption) (*DeleteSampleResponse, error) {
	out := new(DeleteSampleResponse)
	if err := c.cc.Invoke(ctx, History_DeleteSample_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *historyClient) BlockStats(ctx context.Context, in *BlockStatsRequest, opts ...grpc.CallOption) (*BlockStatsResponse, error) {
	out := new(BlockStatsResponse)
	if err := c.cc.Invoke(ctx, History_BlockStats_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *historyClient) WatchSamples(ctx context.Context, in *WatchSamplesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SampleEvent], error) {
	stream, err := c.cc.NewStream(ctx, &History_ServiceDesc.Streams[0], History_WatchSamples_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchSamplesRequest, SampleEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// History_WatchSamplesClient is the client stream of WatchSamples.
type History_WatchSamplesClient = grpc.ServerStreamingClient[SampleEvent]

// HistoryServer is the server API for the History service.
// Implementations must embed UnimplementedHistoryServer.
type HistoryServer interface {
	SaveSample(context.Context, *SaveSampleRequest) (*SaveSampleResponse, error)
	ListSamples(context.Context, *ListSamplesRequest) (*ListSamplesResponse, error)
	GetSample(context.Context, *GetSampleRequest) (*GetSampleResponse, error)
	SearchSamples(context.Context, *SearchSamplesRequest) (*SearchSamplesResponse, error)
	DeleteSample(context.Context, *DeleteSampleRequest) (*DeleteSampleResponse, error)
	BlockStats(context.Context, *BlockStatsRequest) (*BlockStatsResponse, error)
	WatchSamples(*WatchSamplesRequest, grpc.ServerStreamingServer[SampleEvent]) error
	mustEmbedUnimplementedHistoryServer()
}

// UnimplementedHistoryServer must be embedded for forward compatibility.
type UnimplementedHistoryServer struct{}

func (UnimplementedHistoryServer) SaveSample(context.Context, *SaveSampleRequest) (*SaveSampleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveSample not implemented")
}
func (UnimplementedHistoryServer) ListSamples(context.Context, *ListSamplesRequest) (*ListSamplesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSamples not implemented")
}
func (UnimplementedHistoryServer) GetSample(context.Context, *GetSampleRequest) (*GetSampleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSample not implemented")
}
func (UnimplementedHistoryServer) SearchSamples(context.Context, *SearchSamplesRequest) (*SearchSamplesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchSamples not implemented")
}
func (UnimplementedHistoryServer) DeleteSample(context.Context, *DeleteSampleRequest) (*DeleteSampleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteSample not implemented")
}
func (UnimplementedHistoryServer) BlockStats(context.Context, *BlockStatsRequest) (*BlockStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BlockStats not implemented")
}
func (UnimplementedHistoryServer) WatchSamples(*WatchSamplesRequest, grpc.ServerStreamingServer[SampleEvent]) error {
	return status.Errorf(codes.Unimplemented, "method WatchSamples not implemented")
}
func (UnimplementedHistoryServer) mustEmbedUnimplementedHistoryServer() {}

func RegisterHistoryServer(s grpc.ServiceRegistrar, srv HistoryServer) {
	s.RegisterService(&History_ServiceDesc, srv)
}

func _History_SaveSample_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SaveSampleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HistoryServer).SaveSample(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: History_SaveSample_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HistoryServer).SaveSample(ctx, req.(*SaveSampleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _History_ListSamples_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListSamplesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HistoryServer).ListSamples(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: History_ListSamples_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HistoryServer).ListSamples(ctx, req.(*ListSamplesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _History_GetSample_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSampleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HistoryServer).GetSample(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: History_GetSample_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HistoryServer).GetSample(ctx, req.(*GetSampleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _History_SearchSamples_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchSamplesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HistoryServer).SearchSamples(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: History_SearchSamples_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HistoryServer).SearchSamples(ctx, req.(*SearchSamplesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _History_DeleteSample_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteSampleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HistoryServer).DeleteSample(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: History_DeleteSample_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HistoryServer).DeleteSample(ctx, req.(*DeleteSampleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _History_BlockStats_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(BlockStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HistoryServer).BlockStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: History_BlockStats_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HistoryServer).BlockStats(ctx, req.(*BlockStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _History_WatchSamples_Handler(srv any, stream grpc.ServerStream) error {
	m := new(WatchSamplesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(HistoryServer).WatchSamples(m, &grpc.GenericServerStream[WatchSamplesRequest, SampleEvent]{ServerStream: stream})
}

// History_WatchSamplesServer is the server stream of WatchSamples.
type History_WatchSamplesServer = grpc.ServerStreamingServer[SampleEvent]

// History_ServiceDesc is the grpc.ServiceDesc for the History service.
var History_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chardetect.v1.History",
	HandlerType: (*HistoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SaveSample", Handler: _History_SaveSample_Handler},
		{MethodName: "ListSamples", Handler: _History_ListSamples_Handler},
		{MethodName: "GetSample", Handler: _History_GetSample_Handler},
		{MethodName: "SearchSamples", Handler: _History_SearchSamples_Handler},
		{MethodName: "DeleteSample", Handler: _History_DeleteSample_Handler},
		{MethodName: "BlockStats", Handler: _History_BlockStats_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchSamples",
			Handler:       _History_WatchSamples_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "chardetect/v1/history",
}
