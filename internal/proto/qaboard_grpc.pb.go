// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: qaboard.proto

package proto

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
	BoardStore_RegisterUser_FullMethodName     = "/qaboard.service.BoardStore/RegisterUser"
	BoardStore_Login_FullMethodName            = "/qaboard.service.BoardStore/Login"
	BoardStore_RefreshToken_FullMethodName     = "/qaboard.service.BoardStore/RefreshToken"
	BoardStore_Ping_FullMethodName             = "/qaboard.service.BoardStore/Ping"
	BoardStore_ListResources_FullMethodName    = "/qaboard.service.BoardStore/ListResources"
	BoardStore_CreateResource_FullMethodName   = "/qaboard.service.BoardStore/CreateResource"
	BoardStore_WatchResources_FullMethodName   = "/qaboard.service.BoardStore/WatchResources"
	BoardStore_GetQuota_FullMethodName         = "/qaboard.service.BoardStore/GetQuota"
	BoardStore_AttachmentPutURL_FullMethodName = "/qaboard.service.BoardStore/AttachmentPutURL"
	BoardStore_AttachmentGetURL_FullMethodName = "/qaboard.service.BoardStore/AttachmentGetURL"
)

// BoardStoreClient is the client API for BoardStore service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// BoardStore is the remote document store behind the QA dashboard. It
// serves collection snapshots, accepts creations, and pushes full
// replacement snapshots to watchers whenever a collection changes.
type BoardStoreClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	ListResources(ctx context.Context, in *ListResourcesRequest, opts ...grpc.CallOption) (*ListResourcesResponse, error)
	CreateResource(ctx context.Context, in *CreateResourceRequest, opts ...grpc.CallOption) (*CreateResourceResponse, error)
	// WatchResources streams full snapshots, never deltas.
	WatchResources(ctx context.Context, in *WatchResourcesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ResourceSnapshot], error)
	GetQuota(ctx context.Context, in *GetQuotaRequest, opts ...grpc.CallOption) (*GetQuotaResponse, error)
	AttachmentPutURL(ctx context.Context, in *AttachmentPutURLRequest, opts ...grpc.CallOption) (*AttachmentPutURLResponse, error)
	AttachmentGetURL(ctx context.Context, in *AttachmentGetURLRequest, opts ...grpc.CallOption) (*AttachmentGetURLResponse, error)
}

type boardStoreClient struct {
	cc grpc.ClientConnInterface
}

func NewBoardStoreClient(cc grpc.ClientConnInterface) BoardStoreClient {
	return &boardStoreClient{cc}
}

func (c *boardStoreClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterUserResponse)
	err := c.cc.Invoke(ctx, BoardStore_RegisterUser_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boardStoreClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoginResponse)
	err := c.cc.Invoke(ctx, BoardStore_Login_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boardStoreClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RefreshTokenResponse)
	err := c.cc.Invoke(ctx, BoardStore_RefreshToken_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boardStoreClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, BoardStore_Ping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boardStoreClient) ListResources(ctx context.Context, in *ListResourcesRequest, opts ...grpc.CallOption) (*ListResourcesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListResourcesResponse)
	err := c.cc.Invoke(ctx, BoardStore_ListResources_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boardStoreClient) CreateResource(ctx context.Context, in *CreateResourceRequest, opts ...grpc.CallOption) (*CreateResourceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateResourceResponse)
	err := c.cc.Invoke(ctx, BoardStore_CreateResource_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boardStoreClient) WatchResources(ctx context.Context, in *WatchResourcesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ResourceSnapshot], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &BoardStore_ServiceDesc.Streams[0], BoardStore_WatchResources_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchResourcesRequest, ResourceSnapshot]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type BoardStore_WatchResourcesClient = grpc.ServerStreamingClient[ResourceSnapshot]

func (c *boardStoreClient) GetQuota(ctx context.Context, in *GetQuotaRequest, opts ...grpc.CallOption) (*GetQuotaResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetQuotaResponse)
	err := c.cc.Invoke(ctx, BoardStore_GetQuota_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boardStoreClient) AttachmentPutURL(ctx context.Context, in *AttachmentPutURLRequest, opts ...grpc.CallOption) (*AttachmentPutURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AttachmentPutURLResponse)
	err := c.cc.Invoke(ctx, BoardStore_AttachmentPutURL_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boardStoreClient) AttachmentGetURL(ctx context.Context, in *AttachmentGetURLRequest, opts ...grpc.CallOption) (*AttachmentGetURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AttachmentGetURLResponse)
	err := c.cc.Invoke(ctx, BoardStore_AttachmentGetURL_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BoardStoreServer is the server API for BoardStore service.
// All implementations must embed UnimplementedBoardStoreServer
// for forward compatibility.
//
// BoardStore is the remote document store behind the QA dashboard. It
// serves collection snapshots, accepts creations, and pushes full
// replacement snapshots to watchers whenever a collection changes.
type BoardStoreServer interface {
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	ListResources(context.Context, *ListResourcesRequest) (*ListResourcesResponse, error)
	CreateResource(context.Context, *CreateResourceRequest) (*CreateResourceResponse, error)
	// WatchResources streams full snapshots, never deltas.
	WatchResources(*WatchResourcesRequest, grpc.ServerStreamingServer[ResourceSnapshot]) error
	GetQuota(context.Context, *GetQuotaRequest) (*GetQuotaResponse, error)
	AttachmentPutURL(context.Context, *AttachmentPutURLRequest) (*AttachmentPutURLResponse, error)
	AttachmentGetURL(context.Context, *AttachmentGetURLRequest) (*AttachmentGetURLResponse, error)
	mustEmbedUnimplementedBoardStoreServer()
}

// UnimplementedBoardStoreServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBoardStoreServer struct{}

func (UnimplementedBoardStoreServer) RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterUser not implemented")
}
func (UnimplementedBoardStoreServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedBoardStoreServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedBoardStoreServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedBoardStoreServer) ListResources(context.Context, *ListResourcesRequest) (*ListResourcesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListResources not implemented")
}
func (UnimplementedBoardStoreServer) CreateResource(context.Context, *CreateResourceRequest) (*CreateResourceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateResource not implemented")
}
func (UnimplementedBoardStoreServer) WatchResources(*WatchResourcesRequest, grpc.ServerStreamingServer[ResourceSnapshot]) error {
	return status.Error(codes.Unimplemented, "method WatchResources not implemented")
}
func (UnimplementedBoardStoreServer) GetQuota(context.Context, *GetQuotaRequest) (*GetQuotaResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetQuota not implemented")
}
func (UnimplementedBoardStoreServer) AttachmentPutURL(context.Context, *AttachmentPutURLRequest) (*AttachmentPutURLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AttachmentPutURL not implemented")
}
func (UnimplementedBoardStoreServer) AttachmentGetURL(context.Context, *AttachmentGetURLRequest) (*AttachmentGetURLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AttachmentGetURL not implemented")
}
func (UnimplementedBoardStoreServer) mustEmbedUnimplementedBoardStoreServer() {}
func (UnimplementedBoardStoreServer) testEmbeddedByValue()                    {}

// UnsafeBoardStoreServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BoardStoreServer will
// result in compilation errors.
type UnsafeBoardStoreServer interface {
	mustEmbedUnimplementedBoardStoreServer()
}

func RegisterBoardStoreServer(s grpc.ServiceRegistrar, srv BoardStoreServer) {
	// If the following call panics, it indicates UnimplementedBoardStoreServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BoardStore_ServiceDesc, srv)
}

func _BoardStore_RegisterUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoardStoreServer).RegisterUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoardStore_RegisterUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoardStoreServer).RegisterUser(ctx, req.(*RegisterUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoardStore_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoardStoreServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoardStore_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoardStoreServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoardStore_RefreshToken_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoardStoreServer).RefreshToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoardStore_RefreshToken_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoardStoreServer).RefreshToken(ctx, req.(*RefreshTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoardStore_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoardStoreServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoardStore_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoardStoreServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoardStore_ListResources_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListResourcesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoardStoreServer).ListResources(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoardStore_ListResources_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoardStoreServer).ListResources(ctx, req.(*ListResourcesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoardStore_CreateResource_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateResourceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoardStoreServer).CreateResource(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoardStore_CreateResource_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoardStoreServer).CreateResource(ctx, req.(*CreateResourceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoardStore_WatchResources_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WatchResourcesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(BoardStoreServer).WatchResources(m, &grpc.GenericServerStream[WatchResourcesRequest, ResourceSnapshot]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type BoardStore_WatchResourcesServer = grpc.ServerStreamingServer[ResourceSnapshot]

func _BoardStore_GetQuota_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetQuotaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoardStoreServer).GetQuota(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoardStore_GetQuota_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoardStoreServer).GetQuota(ctx, req.(*GetQuotaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoardStore_AttachmentPutURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttachmentPutURLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoardStoreServer).AttachmentPutURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoardStore_AttachmentPutURL_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoardStoreServer).AttachmentPutURL(ctx, req.(*AttachmentPutURLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoardStore_AttachmentGetURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttachmentGetURLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoardStoreServer).AttachmentGetURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoardStore_AttachmentGetURL_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoardStoreServer).AttachmentGetURL(ctx, req.(*AttachmentGetURLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BoardStore_ServiceDesc is the grpc.ServiceDesc for BoardStore service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BoardStore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "qaboard.service.BoardStore",
	HandlerType: (*BoardStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterUser",
			Handler:    _BoardStore_RegisterUser_Handler,
		},
		{
			MethodName: "Login",
			Handler:    _BoardStore_Login_Handler,
		},
		{
			MethodName: "RefreshToken",
			Handler:    _BoardStore_RefreshToken_Handler,
		},
		{
			MethodName: "Ping",
			Handler:    _BoardStore_Ping_Handler,
		},
		{
			MethodName: "ListResources",
			Handler:    _BoardStore_ListResources_Handler,
		},
		{
			MethodName: "CreateResource",
			Handler:    _BoardStore_CreateResource_Handler,
		},
		{
			MethodName: "GetQuota",
			Handler:    _BoardStore_GetQuota_Handler,
		},
		{
			MethodName: "AttachmentPutURL",
			Handler:    _BoardStore_AttachmentPutURL_Handler,
		},
		{
			MethodName: "AttachmentGetURL",
			Handler:    _BoardStore_AttachmentGetURL_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchResources",
			Handler:       _BoardStore_WatchResources_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "qaboard.proto",
}
