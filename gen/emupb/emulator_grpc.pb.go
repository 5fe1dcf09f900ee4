// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: emulator.proto

package emupb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	Emulator_Step_FullMethodName         = "/emulator.Emulator/Step"
	Emulator_CurrentFrame_FullMethodName = "/emulator.Emulator/CurrentFrame"
	Emulator_Reset_FullMethodName        = "/emulator.Emulator/Reset"
	Emulator_SaveState_FullMethodName    = "/emulator.Emulator/SaveState"
	Emulator_LoadState_FullMethodName    = "/emulator.Emulator/LoadState"
)

// EmulatorClient is the client API for Emulator service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// Emulator is the frame-producing game process. Frames are row-major
// single-channel byte grids, values 0-255; the last frame of a Step is the
// definitive post-tick frame.
type EmulatorClient interface {
	Step(ctx context.Context, in *StepRequest, opts ...grpc.CallOption) (*StepResponse, error)
	CurrentFrame(ctx context.Context, in *CurrentFrameRequest, opts ...grpc.CallOption) (*CurrentFrameResponse, error)
	Reset(ctx context.Context, in *ResetRequest, opts ...grpc.CallOption) (*ResetResponse, error)
	SaveState(ctx context.Context, in *SaveStateRequest, opts ...grpc.CallOption) (*SaveStateResponse, error)
	LoadState(ctx context.Context, in *LoadStateRequest, opts ...grpc.CallOption) (*LoadStateResponse, error)
}

type emulatorClient struct {
	cc grpc.ClientConnInterface
}

func NewEmulatorClient(cc grpc.ClientConnInterface) EmulatorClient {
	return &emulatorClient{cc}
}

func (c *emulatorClient) Step(ctx context.Context, in *StepRequest, opts ...grpc.CallOption) (*StepResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StepResponse)
	err := c.cc.Invoke(ctx, Emulator_Step_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *emulatorClient) CurrentFrame(ctx context.Context, in *CurrentFrameRequest, opts ...grpc.CallOption) (*CurrentFrameResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CurrentFrameResponse)
	err := c.cc.Invoke(ctx, Emulator_CurrentFrame_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *emulatorClient) Reset(ctx context.Context, in *ResetRequest, opts ...grpc.CallOption) (*ResetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResetResponse)
	err := c.cc.Invoke(ctx, Emulator_Reset_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *emulatorClient) SaveState(ctx context.Context, in *SaveStateRequest, opts ...grpc.CallOption) (*SaveStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveStateResponse)
	err := c.cc.Invoke(ctx, Emulator_SaveState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *emulatorClient) LoadState(ctx context.Context, in *LoadStateRequest, opts ...grpc.CallOption) (*LoadStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoadStateResponse)
	err := c.cc.Invoke(ctx, Emulator_LoadState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EmulatorServer is the server API for Emulator service.
// All implementations must embed UnimplementedEmulatorServer
// for forward compatibility.
//
// Emulator is the frame-producing game process. Frames are row-major
// single-channel byte grids, values 0-255; the last frame of a Step is the
// definitive post-tick frame.
type EmulatorServer interface {
	Step(context.Context, *StepRequest) (*StepResponse, error)
	CurrentFrame(context.Context, *CurrentFrameRequest) (*CurrentFrameResponse, error)
	Reset(context.Context, *ResetRequest) (*ResetResponse, error)
	SaveState(context.Context, *SaveStateRequest) (*SaveStateResponse, error)
	LoadState(context.Context, *LoadStateRequest) (*LoadStateResponse, error)
	mustEmbedUnimplementedEmulatorServer()
}

// UnimplementedEmulatorServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedEmulatorServer struct{}

func (UnimplementedEmulatorServer) Step(context.Context, *StepRequest) (*StepResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Step not implemented")
}
func (UnimplementedEmulatorServer) CurrentFrame(context.Context, *CurrentFrameRequest) (*CurrentFrameResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CurrentFrame not implemented")
}
func (UnimplementedEmulatorServer) Reset(context.Context, *ResetRequest) (*ResetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Reset not implemented")
}
func (UnimplementedEmulatorServer) SaveState(context.Context, *SaveStateRequest) (*SaveStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveState not implemented")
}
func (UnimplementedEmulatorServer) LoadState(context.Context, *LoadStateRequest) (*LoadStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LoadState not implemented")
}
func (UnimplementedEmulatorServer) mustEmbedUnimplementedEmulatorServer() {}
func (UnimplementedEmulatorServer) testEmbeddedByValue()                  {}

// UnsafeEmulatorServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to EmulatorServer will
// result in compilation errors.
type UnsafeEmulatorServer interface {
	mustEmbedUnimplementedEmulatorServer()
}

func RegisterEmulatorServer(s grpc.ServiceRegistrar, srv EmulatorServer) {
	// If the following call pancis, it indicates UnimplementedEmulatorServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&Emulator_ServiceDesc, srv)
}

func _Emulator_Step_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StepRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmulatorServer).Step(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Emulator_Step_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EmulatorServer).Step(ctx, req.(*StepRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Emulator_CurrentFrame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CurrentFrameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmulatorServer).CurrentFrame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Emulator_CurrentFrame_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EmulatorServer).CurrentFrame(ctx, req.(*CurrentFrameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Emulator_Reset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmulatorServer).Reset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Emulator_Reset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EmulatorServer).Reset(ctx, req.(*ResetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Emulator_SaveState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmulatorServer).SaveState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Emulator_SaveState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EmulatorServer).SaveState(ctx, req.(*SaveStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Emulator_LoadState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoadStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmulatorServer).LoadState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Emulator_LoadState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EmulatorServer).LoadState(ctx, req.(*LoadStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Emulator_ServiceDesc is the grpc.ServiceDesc for Emulator service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Emulator_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "emulator.Emulator",
	HandlerType: (*EmulatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Step",
			Handler:    _Emulator_Step_Handler,
		},
		{
			MethodName: "CurrentFrame",
			Handler:    _Emulator_CurrentFrame_Handler,
		},
		{
			MethodName: "Reset",
			Handler:    _Emulator_Reset_Handler,
		},
		{
			MethodName: "SaveState",
			Handler:    _Emulator_SaveState_Handler,
		},
		{
			MethodName: "LoadState",
			Handler:    _Emulator_LoadState_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "emulator.proto",
}
