package grpcloc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// LocatorServer is the server API for the Locator gRPC service.
//
// We intentionally use protobuf well-known wrapper types so this package does
// not require a protoc/codegen toolchain. Location payloads are the JSON
// boundary types from xdao.co/conloc/model; accounts are 0x-prefixed hex
// strings.
//
// Proto definition: locator.proto.
type LocatorServer interface {
	Invert(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	Reanchor(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	Convert(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	Reverse(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
	LocationID(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
}

// UnimplementedLocatorServer can be embedded to have forward compatible
// implementations.
type UnimplementedLocatorServer struct{}

func (UnimplementedLocatorServer) Invert(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Invert not implemented")
}
func (UnimplementedLocatorServer) Reanchor(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Reanchor not implemented")
}
func (UnimplementedLocatorServer) Convert(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Convert not implemented")
}
func (UnimplementedLocatorServer) Reverse(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Reverse not implemented")
}
func (UnimplementedLocatorServer) LocationID(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method LocationID not implemented")
}

// RegisterLocatorServer registers the Locator service on a gRPC server.
func RegisterLocatorServer(s grpc.ServiceRegistrar, srv LocatorServer) {
	s.RegisterService(&Locator_ServiceDesc, srv)
}

// LocatorClient is the client API for the Locator gRPC service.
type LocatorClient interface {
	Invert(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Reanchor(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Convert(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Reverse(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	LocationID(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type locatorClient struct{ cc grpc.ClientConnInterface }

func NewLocatorClient(cc grpc.ClientConnInterface) LocatorClient { return &locatorClient{cc: cc} }

func (c *locatorClient) Invert(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/xdao.conloc.grpcloc.v1.Locator/Invert", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *locatorClient) Reanchor(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/xdao.conloc.grpcloc.v1.Locator/Reanchor", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *locatorClient) Convert(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/xdao.conloc.grpcloc.v1.Locator/Convert", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *locatorClient) Reverse(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/xdao.conloc.grpcloc.v1.Locator/Reverse", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *locatorClient) LocationID(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/xdao.conloc.grpcloc.v1.Locator/LocationID", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Locator_Invert_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LocatorServer).Invert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.conloc.grpcloc.v1.Locator/Invert"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LocatorServer).Invert(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Locator_Reanchor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LocatorServer).Reanchor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.conloc.grpcloc.v1.Locator/Reanchor"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LocatorServer).Reanchor(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Locator_Convert_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LocatorServer).Convert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.conloc.grpcloc.v1.Locator/Convert"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LocatorServer).Convert(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Locator_Reverse_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LocatorServer).Reverse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.conloc.grpcloc.v1.Locator/Reverse"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LocatorServer).Reverse(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Locator_LocationID_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LocatorServer).LocationID(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.conloc.grpcloc.v1.Locator/LocationID"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LocatorServer).LocationID(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Locator_ServiceDesc is the grpc.ServiceDesc for the Locator service.
var Locator_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xdao.conloc.grpcloc.v1.Locator",
	HandlerType: (*LocatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Invert", Handler: _Locator_Invert_Handler},
		{MethodName: "Reanchor", Handler: _Locator_Reanchor_Handler},
		{MethodName: "Convert", Handler: _Locator_Convert_Handler},
		{MethodName: "Reverse", Handler: _Locator_Reverse_Handler},
		{MethodName: "LocationID", Handler: _Locator_LocationID_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "locator.proto",
}
