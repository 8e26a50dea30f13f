// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.9
// 	protoc        (unknown)
// source: qaboard.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Resource struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// kind is the collection the resource belongs to: "suite" or "activity".
	Kind string `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	// scope_kind is "individual" or "organization".
	ScopeKind     string            `protobuf:"bytes,3,opt,name=scope_kind,json=scopeKind,proto3" json:"scope_kind,omitempty"`
	OwnerId       string            `protobuf:"bytes,4,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name          string            `protobuf:"bytes,5,opt,name=name,proto3" json:"name,omitempty"`
	Status        string            `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAtUnix int64             `protobuf:"varint,7,opt,name=created_at_unix,json=createdAtUnix,proto3" json:"created_at_unix,omitempty"`
	Payload       map[string]string `protobuf:"bytes,8,rep,name=payload,proto3" json:"payload,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Permissions   map[string]string `protobuf:"bytes,9,rep,name=permissions,proto3" json:"permissions,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Resource) Reset() {
	*x = Resource{}
	mi := &file_qaboard_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Resource) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Resource) ProtoMessage() {}

func (x *Resource) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Resource.ProtoReflect.Descriptor instead.
func (*Resource) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{0}
}

func (x *Resource) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Resource) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Resource) GetScopeKind() string {
	if x != nil {
		return x.ScopeKind
	}
	return ""
}

func (x *Resource) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Resource) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Resource) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Resource) GetCreatedAtUnix() int64 {
	if x != nil {
		return x.CreatedAtUnix
	}
	return 0
}

func (x *Resource) GetPayload() map[string]string {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *Resource) GetPermissions() map[string]string {
	if x != nil {
		return x.Permissions
	}
	return nil
}

type RegisterUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterUserRequest) Reset() {
	*x = RegisterUserRequest{}
	mi := &file_qaboard_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterUserRequest) ProtoMessage() {}

func (x *RegisterUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterUserRequest.ProtoReflect.Descriptor instead.
func (*RegisterUserRequest) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{1}
}

func (x *RegisterUserRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *RegisterUserRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type RegisterUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterUserResponse) Reset() {
	*x = RegisterUserResponse{}
	mi := &file_qaboard_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterUserResponse) ProtoMessage() {}

func (x *RegisterUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterUserResponse.ProtoReflect.Descriptor instead.
func (*RegisterUserResponse) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{2}
}

func (x *RegisterUserResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type LoginRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_qaboard_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginRequest.ProtoReflect.Descriptor instead.
func (*LoginRequest) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{3}
}

func (x *LoginRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *LoginRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type LoginResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccessToken   string                 `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	RefreshToken  string                 `protobuf:"bytes,2,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	UserId        string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginResponse) Reset() {
	*x = LoginResponse{}
	mi := &file_qaboard_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginResponse) ProtoMessage() {}

func (x *LoginResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginResponse.ProtoReflect.Descriptor instead.
func (*LoginResponse) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{4}
}

func (x *LoginResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *LoginResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

func (x *LoginResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type RefreshTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RefreshToken  string                 `protobuf:"bytes,1,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshTokenRequest) Reset() {
	*x = RefreshTokenRequest{}
	mi := &file_qaboard_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshTokenRequest) ProtoMessage() {}

func (x *RefreshTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshTokenRequest.ProtoReflect.Descriptor instead.
func (*RefreshTokenRequest) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{5}
}

func (x *RefreshTokenRequest) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type RefreshTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccessToken   string                 `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	RefreshToken  string                 `protobuf:"bytes,2,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshTokenResponse) Reset() {
	*x = RefreshTokenResponse{}
	mi := &file_qaboard_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshTokenResponse) ProtoMessage() {}

func (x *RefreshTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshTokenResponse.ProtoReflect.Descriptor instead.
func (*RefreshTokenResponse) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{6}
}

func (x *RefreshTokenResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *RefreshTokenResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type PingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingRequest) Reset() {
	*x = PingRequest{}
	mi := &file_qaboard_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingRequest) ProtoMessage() {}

func (x *PingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingRequest.ProtoReflect.Descriptor instead.
func (*PingRequest) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{7}
}

type PingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingResponse) Reset() {
	*x = PingResponse{}
	mi := &file_qaboard_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingResponse) ProtoMessage() {}

func (x *PingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingResponse.ProtoReflect.Descriptor instead.
func (*PingResponse) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{8}
}

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListResourcesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	ScopeKind     string                 `protobuf:"bytes,2,opt,name=scope_kind,json=scopeKind,proto3" json:"scope_kind,omitempty"`
	OwnerId       string                 `protobuf:"bytes,3,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResourcesRequest) Reset() {
	*x = ListResourcesRequest{}
	mi := &file_qaboard_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResourcesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResourcesRequest) ProtoMessage() {}

func (x *ListResourcesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResourcesRequest.ProtoReflect.Descriptor instead.
func (*ListResourcesRequest) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{9}
}

func (x *ListResourcesRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ListResourcesRequest) GetScopeKind() string {
	if x != nil {
		return x.ScopeKind
	}
	return ""
}

func (x *ListResourcesRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ListResourcesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*Resource            `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResourcesResponse) Reset() {
	*x = ListResourcesResponse{}
	mi := &file_qaboard_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResourcesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResourcesResponse) ProtoMessage() {}

func (x *ListResourcesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResourcesResponse.ProtoReflect.Descriptor instead.
func (*ListResourcesResponse) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{10}
}

func (x *ListResourcesResponse) GetItems() []*Resource {
	if x != nil {
		return x.Items
	}
	return nil
}

type CreateResourceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Resource      *Resource              `protobuf:"bytes,1,opt,name=resource,proto3" json:"resource,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateResourceRequest) Reset() {
	*x = CreateResourceRequest{}
	mi := &file_qaboard_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateResourceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateResourceRequest) ProtoMessage() {}

func (x *CreateResourceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateResourceRequest.ProtoReflect.Descriptor instead.
func (*CreateResourceRequest) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{11}
}

func (x *CreateResourceRequest) GetResource() *Resource {
	if x != nil {
		return x.Resource
	}
	return nil
}

type CreateResourceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Resource      *Resource              `protobuf:"bytes,1,opt,name=resource,proto3" json:"resource,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateResourceResponse) Reset() {
	*x = CreateResourceResponse{}
	mi := &file_qaboard_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateResourceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateResourceResponse) ProtoMessage() {}

func (x *CreateResourceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateResourceResponse.ProtoReflect.Descriptor instead.
func (*CreateResourceResponse) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{12}
}

func (x *CreateResourceResponse) GetResource() *Resource {
	if x != nil {
		return x.Resource
	}
	return nil
}

type WatchResourcesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	ScopeKind     string                 `protobuf:"bytes,2,opt,name=scope_kind,json=scopeKind,proto3" json:"scope_kind,omitempty"`
	OwnerId       string                 `protobuf:"bytes,3,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchResourcesRequest) Reset() {
	*x = WatchResourcesRequest{}
	mi := &file_qaboard_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchResourcesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchResourcesRequest) ProtoMessage() {}

func (x *WatchResourcesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchResourcesRequest.ProtoReflect.Descriptor instead.
func (*WatchResourcesRequest) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{13}
}

func (x *WatchResourcesRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *WatchResourcesRequest) GetScopeKind() string {
	if x != nil {
		return x.ScopeKind
	}
	return ""
}

func (x *WatchResourcesRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ResourceSnapshot struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Items []*Resource            `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	// revision increases monotonically per owner key.
	Revision      int64 `protobuf:"varint,2,opt,name=revision,proto3" json:"revision,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResourceSnapshot) Reset() {
	*x = ResourceSnapshot{}
	mi := &file_qaboard_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResourceSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResourceSnapshot) ProtoMessage() {}

func (x *ResourceSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResourceSnapshot.ProtoReflect.Descriptor instead.
func (*ResourceSnapshot) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{14}
}

func (x *ResourceSnapshot) GetItems() []*Resource {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ResourceSnapshot) GetRevision() int64 {
	if x != nil {
		return x.Revision
	}
	return 0
}

type GetQuotaRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	ScopeKind     string                 `protobuf:"bytes,2,opt,name=scope_kind,json=scopeKind,proto3" json:"scope_kind,omitempty"`
	OwnerId       string                 `protobuf:"bytes,3,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuotaRequest) Reset() {
	*x = GetQuotaRequest{}
	mi := &file_qaboard_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuotaRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuotaRequest) ProtoMessage() {}

func (x *GetQuotaRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuotaRequest.ProtoReflect.Descriptor instead.
func (*GetQuotaRequest) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{15}
}

func (x *GetQuotaRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *GetQuotaRequest) GetScopeKind() string {
	if x != nil {
		return x.ScopeKind
	}
	return ""
}

func (x *GetQuotaRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type GetQuotaResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// max_allowed is -1 for unlimited plans.
	MaxAllowed    int64 `protobuf:"varint,1,opt,name=max_allowed,json=maxAllowed,proto3" json:"max_allowed,omitempty"`
	CurrentCount  int64 `protobuf:"varint,2,opt,name=current_count,json=currentCount,proto3" json:"current_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuotaResponse) Reset() {
	*x = GetQuotaResponse{}
	mi := &file_qaboard_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuotaResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuotaResponse) ProtoMessage() {}

func (x *GetQuotaResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuotaResponse.ProtoReflect.Descriptor instead.
func (*GetQuotaResponse) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{16}
}

func (x *GetQuotaResponse) GetMaxAllowed() int64 {
	if x != nil {
		return x.MaxAllowed
	}
	return 0
}

func (x *GetQuotaResponse) GetCurrentCount() int64 {
	if x != nil {
		return x.CurrentCount
	}
	return 0
}

type AttachmentPutURLRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ResourceId    string                 `protobuf:"bytes,1,opt,name=resource_id,json=resourceId,proto3" json:"resource_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachmentPutURLRequest) Reset() {
	*x = AttachmentPutURLRequest{}
	mi := &file_qaboard_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachmentPutURLRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachmentPutURLRequest) ProtoMessage() {}

func (x *AttachmentPutURLRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachmentPutURLRequest.ProtoReflect.Descriptor instead.
func (*AttachmentPutURLRequest) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{17}
}

func (x *AttachmentPutURLRequest) GetResourceId() string {
	if x != nil {
		return x.ResourceId
	}
	return ""
}

type AttachmentPutURLResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StorageKey    string                 `protobuf:"bytes,1,opt,name=storage_key,json=storageKey,proto3" json:"storage_key,omitempty"`
	Url           string                 `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachmentPutURLResponse) Reset() {
	*x = AttachmentPutURLResponse{}
	mi := &file_qaboard_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachmentPutURLResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachmentPutURLResponse) ProtoMessage() {}

func (x *AttachmentPutURLResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachmentPutURLResponse.ProtoReflect.Descriptor instead.
func (*AttachmentPutURLResponse) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{18}
}

func (x *AttachmentPutURLResponse) GetStorageKey() string {
	if x != nil {
		return x.StorageKey
	}
	return ""
}

func (x *AttachmentPutURLResponse) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

type AttachmentGetURLRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StorageKey    string                 `protobuf:"bytes,1,opt,name=storage_key,json=storageKey,proto3" json:"storage_key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachmentGetURLRequest) Reset() {
	*x = AttachmentGetURLRequest{}
	mi := &file_qaboard_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachmentGetURLRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachmentGetURLRequest) ProtoMessage() {}

func (x *AttachmentGetURLRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachmentGetURLRequest.ProtoReflect.Descriptor instead.
func (*AttachmentGetURLRequest) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{19}
}

func (x *AttachmentGetURLRequest) GetStorageKey() string {
	if x != nil {
		return x.StorageKey
	}
	return ""
}

type AttachmentGetURLResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachmentGetURLResponse) Reset() {
	*x = AttachmentGetURLResponse{}
	mi := &file_qaboard_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachmentGetURLResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachmentGetURLResponse) ProtoMessage() {}

func (x *AttachmentGetURLResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qaboard_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachmentGetURLResponse.ProtoReflect.Descriptor instead.
func (*AttachmentGetURLResponse) Descriptor() ([]byte, []int) {
	return file_qaboard_proto_rawDescGZIP(), []int{20}
}

func (x *AttachmentGetURLResponse) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

var File_qaboard_proto protoreflect.FileDescriptor

const file_qaboard_proto_rawDesc = "" +
	"\n" +
	"\rqaboard.proto\x12\x0fqaboard.service\"\xc8\x03\n" +
	"\bResource\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12\x1d\n" +
	"\n" +
	"scope_kind\x18\x03 \x01(\tR\tscopeKind\x12\x19\n" +
	"\bowner_id\x18\x04 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x05 \x01(\tR\x04name\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12&\n" +
	"\x0fcreated_at_unix\x18\a \x01(\x03R\rcreatedAtUnix\x12@\n" +
	"\apayload\x18\b \x03(\v2&.qaboard.service.Resource.PayloadEntryR\apayload\x12L\n" +
	"\vpermissions\x18\t \x03(\v2*.qaboard.service.Resource.PermissionsEntryR\vpermissions\x1a:\n" +
	"\fPayloadEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1a>\n" +
	"\x10PermissionsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"M\n" +
	"\x13RegisterUserRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\"/\n" +
	"\x14RegisterUserResponse\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"F\n" +
	"\fLoginRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\"p\n" +
	"\rLoginResponse\x12!\n" +
	"\faccess_token\x18\x01 \x01(\tR\vaccessToken\x12#\n" +
	"\rrefresh_token\x18\x02 \x01(\tR\frefreshToken\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\":\n" +
	"\x13RefreshTokenRequest\x12#\n" +
	"\rrefresh_token\x18\x01 \x01(\tR\frefreshToken\"^\n" +
	"\x14RefreshTokenResponse\x12!\n" +
	"\faccess_token\x18\x01 \x01(\tR\vaccessToken\x12#\n" +
	"\rrefresh_token\x18\x02 \x01(\tR\frefreshToken\"\r\n" +
	"\vPingRequest\"&\n" +
	"\fPingResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"d\n" +
	"\x14ListResourcesRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1d\n" +
	"\n" +
	"scope_kind\x18\x02 \x01(\tR\tscopeKind\x12\x19\n" +
	"\bowner_id\x18\x03 \x01(\tR\aownerId\"H\n" +
	"\x15ListResourcesResponse\x12/\n" +
	"\x05items\x18\x01 \x03(\v2\x19.qaboard.service.ResourceR\x05items\"N\n" +
	"\x15CreateResourceRequest\x125\n" +
	"\bresource\x18\x01 \x01(\v2\x19.qaboard.service.ResourceR\bresource\"O\n" +
	"\x16CreateResourceResponse\x125\n" +
	"\bresource\x18\x01 \x01(\v2\x19.qaboard.service.ResourceR\bresource\"e\n" +
	"\x15WatchResourcesRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1d\n" +
	"\n" +
	"scope_kind\x18\x02 \x01(\tR\tscopeKind\x12\x19\n" +
	"\bowner_id\x18\x03 \x01(\tR\aownerId\"_\n" +
	"\x10ResourceSnapshot\x12/\n" +
	"\x05items\x18\x01 \x03(\v2\x19.qaboard.service.ResourceR\x05items\x12\x1a\n" +
	"\brevision\x18\x02 \x01(\x03R\brevision\"_\n" +
	"\x0fGetQuotaRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1d\n" +
	"\n" +
	"scope_kind\x18\x02 \x01(\tR\tscopeKind\x12\x19\n" +
	"\bowner_id\x18\x03 \x01(\tR\aownerId\"X\n" +
	"\x10GetQuotaResponse\x12\x1f\n" +
	"\vmax_allowed\x18\x01 \x01(\x03R\n" +
	"maxAllowed\x12#\n" +
	"\rcurrent_count\x18\x02 \x01(\x03R\fcurrentCount\":\n" +
	"\x17AttachmentPutURLRequest\x12\x1f\n" +
	"\vresource_id\x18\x01 \x01(\tR\n" +
	"resourceId\"M\n" +
	"\x18AttachmentPutURLResponse\x12\x1f\n" +
	"\vstorage_key\x18\x01 \x01(\tR\n" +
	"storageKey\x12\x10\n" +
	"\x03url\x18\x02 \x01(\tR\x03url\":\n" +
	"\x17AttachmentGetURLRequest\x12\x1f\n" +
	"\vstorage_key\x18\x01 \x01(\tR\n" +
	"storageKey\",\n" +
	"\x18AttachmentGetURLResponse\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url2\x98\a\n" +
	"\n" +
	"BoardStore\x12[\n" +
	"\fRegisterUser\x12$.qaboard.service.RegisterUserRequest\x1a%.qaboard.service.RegisterUserResponse\x12F\n" +
	"\x05Login\x12\x1d.qaboard.service.LoginRequest\x1a\x1e.qaboard.service.LoginResponse\x12[\n" +
	"\fRefreshToken\x12$.qaboard.service.RefreshTokenRequest\x1a%.qaboard.service.RefreshTokenResponse\x12C\n" +
	"\x04Ping\x12\x1c.qaboard.service.PingRequest\x1a\x1d.qaboard.service.PingResponse\x12^\n" +
	"\rListResources\x12%.qaboard.service.ListResourcesRequest\x1a&.qaboard.service.ListResourcesResponse\x12a\n" +
	"\x0eCreateResource\x12&.qaboard.service.CreateResourceRequest\x1a'.qaboard.service.CreateResourceResponse\x12]\n" +
	"\x0eWatchResources\x12&.qaboard.service.WatchResourcesRequest\x1a!.qaboard.service.ResourceSnapshot0\x01\x12O\n" +
	"\bGetQuota\x12 .qaboard.service.GetQuotaRequest\x1a!.qaboard.service.GetQuotaResponse\x12g\n" +
	"\x10AttachmentPutURL\x12(.qaboard.service.AttachmentPutURLRequest\x1a).qaboard.service.AttachmentPutURLResponse\x12g\n" +
	"\x10AttachmentGetURL\x12(.qaboard.service.AttachmentGetURLRequest\x1a).qaboard.service.AttachmentGetURLResponseB+Z)github.com/avetrov/qaboard/internal/protob\x06proto3"

var (
	file_qaboard_proto_rawDescOnce sync.Once
	file_qaboard_proto_rawDescData []byte
)

func file_qaboard_proto_rawDescGZIP() []byte {
	file_qaboard_proto_rawDescOnce.Do(func() {
		file_qaboard_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_qaboard_proto_rawDesc), len(file_qaboard_proto_rawDesc)))
	})
	return file_qaboard_proto_rawDescData
}

var file_qaboard_proto_msgTypes = make([]protoimpl.MessageInfo, 23)
var file_qaboard_proto_goTypes = []any{
	(*Resource)(nil),                 // 0: qaboard.service.Resource
	(*RegisterUserRequest)(nil),      // 1: qaboard.service.RegisterUserRequest
	(*RegisterUserResponse)(nil),     // 2: qaboard.service.RegisterUserResponse
	(*LoginRequest)(nil),             // 3: qaboard.service.LoginRequest
	(*LoginResponse)(nil),            // 4: qaboard.service.LoginResponse
	(*RefreshTokenRequest)(nil),      // 5: qaboard.service.RefreshTokenRequest
	(*RefreshTokenResponse)(nil),     // 6: qaboard.service.RefreshTokenResponse
	(*PingRequest)(nil),              // 7: qaboard.service.PingRequest
	(*PingResponse)(nil),             // 8: qaboard.service.PingResponse
	(*ListResourcesRequest)(nil),     // 9: qaboard.service.ListResourcesRequest
	(*ListResourcesResponse)(nil),    // 10: qaboard.service.ListResourcesResponse
	(*CreateResourceRequest)(nil),    // 11: qaboard.service.CreateResourceRequest
	(*CreateResourceResponse)(nil),   // 12: qaboard.service.CreateResourceResponse
	(*WatchResourcesRequest)(nil),    // 13: qaboard.service.WatchResourcesRequest
	(*ResourceSnapshot)(nil),         // 14: qaboard.service.ResourceSnapshot
	(*GetQuotaRequest)(nil),          // 15: qaboard.service.GetQuotaRequest
	(*GetQuotaResponse)(nil),         // 16: qaboard.service.GetQuotaResponse
	(*AttachmentPutURLRequest)(nil),  // 17: qaboard.service.AttachmentPutURLRequest
	(*AttachmentPutURLResponse)(nil), // 18: qaboard.service.AttachmentPutURLResponse
	(*AttachmentGetURLRequest)(nil),  // 19: qaboard.service.AttachmentGetURLRequest
	(*AttachmentGetURLResponse)(nil), // 20: qaboard.service.AttachmentGetURLResponse
	nil,                              // 21: qaboard.service.Resource.PayloadEntry
	nil,                              // 22: qaboard.service.Resource.PermissionsEntry
}
var file_qaboard_proto_depIdxs = []int32{
	21, // 0: qaboard.service.Resource.payload:type_name -> qaboard.service.Resource.PayloadEntry
	22, // 1: qaboard.service.Resource.permissions:type_name -> qaboard.service.Resource.PermissionsEntry
	0,  // 2: qaboard.service.ListResourcesResponse.items:type_name -> qaboard.service.Resource
	0,  // 3: qaboard.service.CreateResourceRequest.resource:type_name -> qaboard.service.Resource
	0,  // 4: qaboard.service.CreateResourceResponse.resource:type_name -> qaboard.service.Resource
	0,  // 5: qaboard.service.ResourceSnapshot.items:type_name -> qaboard.service.Resource
	1,  // 6: qaboard.service.BoardStore.RegisterUser:input_type -> qaboard.service.RegisterUserRequest
	3,  // 7: qaboard.service.BoardStore.Login:input_type -> qaboard.service.LoginRequest
	5,  // 8: qaboard.service.BoardStore.RefreshToken:input_type -> qaboard.service.RefreshTokenRequest
	7,  // 9: qaboard.service.BoardStore.Ping:input_type -> qaboard.service.PingRequest
	9,  // 10: qaboard.service.BoardStore.ListResources:input_type -> qaboard.service.ListResourcesRequest
	11, // 11: qaboard.service.BoardStore.CreateResource:input_type -> qaboard.service.CreateResourceRequest
	13, // 12: qaboard.service.BoardStore.WatchResources:input_type -> qaboard.service.WatchResourcesRequest
	15, // 13: qaboard.service.BoardStore.GetQuota:input_type -> qaboard.service.GetQuotaRequest
	17, // 14: qaboard.service.BoardStore.AttachmentPutURL:input_type -> qaboard.service.AttachmentPutURLRequest
	19, // 15: qaboard.service.BoardStore.AttachmentGetURL:input_type -> qaboard.service.AttachmentGetURLRequest
	2,  // 16: qaboard.service.BoardStore.RegisterUser:output_type -> qaboard.service.RegisterUserResponse
	4,  // 17: qaboard.service.BoardStore.Login:output_type -> qaboard.service.LoginResponse
	6,  // 18: qaboard.service.BoardStore.RefreshToken:output_type -> qaboard.service.RefreshTokenResponse
	8,  // 19: qaboard.service.BoardStore.Ping:output_type -> qaboard.service.PingResponse
	10, // 20: qaboard.service.BoardStore.ListResources:output_type -> qaboard.service.ListResourcesResponse
	12, // 21: qaboard.service.BoardStore.CreateResource:output_type -> qaboard.service.CreateResourceResponse
	14, // 22: qaboard.service.BoardStore.WatchResources:output_type -> qaboard.service.ResourceSnapshot
	16, // 23: qaboard.service.BoardStore.GetQuota:output_type -> qaboard.service.GetQuotaResponse
	18, // 24: qaboard.service.BoardStore.AttachmentPutURL:output_type -> qaboard.service.AttachmentPutURLResponse
	20, // 25: qaboard.service.BoardStore.AttachmentGetURL:output_type -> qaboard.service.AttachmentGetURLResponse
	16, // [16:26] is the sub-list for method output_type
	6,  // [6:16] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_qaboard_proto_init() }
func file_qaboard_proto_init() {
	if File_qaboard_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_qaboard_proto_rawDesc), len(file_qaboard_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   23,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_qaboard_proto_goTypes,
		DependencyIndexes: file_qaboard_proto_depIdxs,
		MessageInfos:      file_qaboard_proto_msgTypes,
	}.Build()
	File_qaboard_proto = out.File
	file_qaboard_proto_goTypes = nil
	file_qaboard_proto_depIdxs = nil
}
