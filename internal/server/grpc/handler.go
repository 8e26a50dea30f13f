package grpc

import (
	"context"
	"errors"

	"github.com/avetrov/qaboard/internal/common"
	pb "github.com/avetrov/qaboard/internal/proto"
	"github.com/avetrov/qaboard/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapServiceError converts service-layer sentinels to gRPC status codes.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorQuotaExceeded):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// checkScopeAccess rejects requests for another individual's slice.
// Organization slices are readable by any authenticated member.
func checkScopeAccess(ctx context.Context, scopeKind, ownerID string) error {
	if scopeKind == "individual" && ownerID != userIDFromContext(ctx) {
		return status.Error(codes.PermissionDenied, "not your collection")
	}
	return nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterUserResponse{UserId: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &pb.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		UserId:       tokens.UserID,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &pb.RefreshTokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) ListResources(ctx context.Context, req *pb.ListResourcesRequest) (*pb.ListResourcesResponse, error) {

	if err := checkScopeAccess(ctx, req.ScopeKind, req.OwnerId); err != nil {
		return nil, err
	}

	items, err := s.resources.List(ctx, req.Kind, req.ScopeKind, req.OwnerId)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	return &pb.ListResourcesResponse{Items: toProtoList(items)}, nil
}

func (s *GRPCServer) CreateResource(ctx context.Context, req *pb.CreateResourceRequest) (*pb.CreateResourceResponse, error) {

	if req.Resource == nil {
		return nil, status.Error(codes.InvalidArgument, "resource is required")
	}
	if err := checkScopeAccess(ctx, req.Resource.ScopeKind, req.Resource.OwnerId); err != nil {
		return nil, err
	}

	created, err := s.resources.Create(ctx, fromProtoResource(req.Resource))
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	s.broadcastSlice(ctx, created.Kind, created.ScopeKind, created.OwnerID)

	return &pb.CreateResourceResponse{Resource: toProtoResource(created)}, nil
}

// broadcastSlice reloads a collection slice and pushes it to all watchers.
// Failures only cost a push; watchers recover on their next fetch.
func (s *GRPCServer) broadcastSlice(ctx context.Context, kind, scopeKind, ownerID string) {
	items, err := s.resources.List(ctx, kind, scopeKind, ownerID)
	if err != nil {
		s.logger.Warn(ctx, "could not load slice for broadcast", "error", err.Error())
		return
	}
	s.hub.broadcast(watchKey(kind, scopeKind, ownerID), toProtoList(items))
}

func (s *GRPCServer) WatchResources(req *pb.WatchResourcesRequest, stream pb.BoardStore_WatchResourcesServer) error {

	ctx := stream.Context()

	// Streams bypass the unary interceptor, so authenticate here.
	userID, err := s.authenticate(ctx)
	if err != nil {
		return err
	}
	if req.ScopeKind == "individual" && req.OwnerId != userID {
		return status.Error(codes.PermissionDenied, "not your collection")
	}

	ch, cancel := s.hub.subscribe(watchKey(req.Kind, req.ScopeKind, req.OwnerId))
	defer cancel()

	s.logger.Info(ctx, "watch opened", "kind", req.Kind, "owner", req.OwnerId)

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-ch:
			if !ok {
				return nil
			}
			if err := stream.Send(snapshot); err != nil {
				return err
			}
		}
	}
}

func (s *GRPCServer) GetQuota(ctx context.Context, req *pb.GetQuotaRequest) (*pb.GetQuotaResponse, error) {

	if err := checkScopeAccess(ctx, req.ScopeKind, req.OwnerId); err != nil {
		return nil, err
	}

	q, err := s.resources.GetQuota(ctx, req.Kind, req.ScopeKind, req.OwnerId)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	return &pb.GetQuotaResponse{
		MaxAllowed:   int64(q.MaxAllowed),
		CurrentCount: int64(q.CurrentCount),
	}, nil
}

func (s *GRPCServer) AttachmentPutURL(ctx context.Context, req *pb.AttachmentPutURLRequest) (*pb.AttachmentPutURLResponse, error) {

	key, url, err := s.resources.GetPresignedPutUrl(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	return &pb.AttachmentPutURLResponse{StorageKey: key, Url: url}, nil
}

func (s *GRPCServer) AttachmentGetURL(ctx context.Context, req *pb.AttachmentGetURLRequest) (*pb.AttachmentGetURLResponse, error) {

	url, err := s.resources.GetPresignedGetUrl(ctx, req.StorageKey)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	return &pb.AttachmentGetURLResponse{Url: url}, nil
}

// --- proto conversions ---

func toProtoResource(m *models.Resource) *pb.Resource {
	return &pb.Resource{
		Id:            m.ID,
		Kind:          m.Kind,
		ScopeKind:     m.ScopeKind,
		OwnerId:       m.OwnerID,
		Name:          m.Name,
		Status:        m.Status,
		CreatedAtUnix: m.CreatedAt.Unix(),
		Payload:       m.Payload,
		Permissions:   m.Permissions,
	}
}

func toProtoList(items []*models.Resource) []*pb.Resource {
	out := make([]*pb.Resource, 0, len(items))
	for _, item := range items {
		out = append(out, toProtoResource(item))
	}
	return out
}

func fromProtoResource(r *pb.Resource) *models.Resource {
	return &models.Resource{
		ID:          r.Id,
		Kind:        r.Kind,
		ScopeKind:   r.ScopeKind,
		OwnerID:     r.OwnerId,
		Name:        r.Name,
		Status:      r.Status,
		Payload:     r.Payload,
		Permissions: r.Permissions,
	}
}
