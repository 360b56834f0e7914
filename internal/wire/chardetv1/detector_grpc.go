package chardetv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Detector_Classify_FullMethodName   = "/chardetect.v1.Detector/Classify"
	Detector_ListBlocks_FullMethodName = "/chardetect.v1.Detector/ListBlocks"
	Detector_GetStatus_FullMethodName  = "/chardetect.v1.Detector/GetStatus"
)

// DetectorClient is the client API for the Detector service.
type DetectorClient interface {
	Classify(ctx context.Context, in *ClassifyRequest, opts ...grpc.CallOption) (*ClassifyResponse, error)
	ListBlocks(ctx context.Context, in *ListBlocksRequest, opts ...grpc.CallOption) (*ListBlocksResponse, error)
	GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error)
}

type detectorClient struct {
	cc grpc.ClientConnInterface
}

func NewDetectorClient(cc grpc.ClientConnInterface) DetectorClient {
	return &detectorClient{cc}
}

func (c *detectorClient) Classify(ctx context.Context, in *ClassifyRequest, opts ...grpc.CallOption) (*ClassifyResponse, error) {
	out := new(ClassifyResponse)
	if err := c.cc.Invoke(ctx, Detector_Classify_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *detectorClient) ListBlocks(ctx context.Context, in *ListBlocksRequest, opts ...grpc.CallOption) (*ListBlocksResponse, error) {
	out := new(ListBlocksResponse)
	if err := c.cc.Invoke(ctx, Detector_ListBlocks_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *detectorClient) GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error) {
	out := new(GetStatusResponse)
	if err := c.cc.Invoke(ctx, Detector_GetStatus_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// DetectorServer is the server API for the Detector service.
// Implementations must embed UnimplementedDetectorServer.
type DetectorServer interface {
	Classify(context.Context, *ClassifyRequest) (*ClassifyResponse, error)
	ListBlocks(context.Context, *ListBlocksRequest) (*ListBlocksResponse, error)
	GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error)
	mustEmbedUnimplementedDetectorServer()
}

// UnimplementedDetectorServer must be embedded for forward compatibility.
type UnimplementedDetectorServer struct{}

func (UnimplementedDetectorServer) Classify(context.Context, *ClassifyRequest) (*ClassifyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Classify not implemented")
}
func (UnimplementedDetectorServer) ListBlocks(context.Context, *ListBlocksRequest) (*ListBlocksResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBlocks not implemented")
}
func (UnimplementedDetectorServer) GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStatus not implemented")
}
func (UnimplementedDetectorServer) mustEmbedUnimplementedDetectorServer() {}

func RegisterDetectorServer(s grpc.ServiceRegistrar, srv DetectorServer) {
	s.RegisterService(&Detector_ServiceDesc, srv)
}

func _Detector_Classify_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ClassifyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DetectorServer).Classify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Detector_Classify_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DetectorServer).Classify(ctx, req.(*ClassifyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Detector_ListBlocks_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListBlocksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DetectorServer).ListBlocks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Detector_ListBlocks_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DetectorServer).ListBlocks(ctx, req.(*ListBlocksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Detector_GetStatus_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DetectorServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Detector_GetStatus_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DetectorServer).GetStatus(ctx, req.(*GetStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Detector_ServiceDesc is the grpc.ServiceDesc for the Detector service.
var Detector_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chardetect.v1.Detector",
	HandlerType: (*DetectorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Classify", Handler: _Detector_Classify_Handler},
		{MethodName: "ListBlocks", Handler: _Detector_ListBlocks_Handler},
		{MethodName: "GetStatus", Handler: _Detector_GetStatus_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chardetect/v1/detector",
}
