package grpc

import (
	"context"

	"github.com/avetrov/qaboard/internal/common"
	"github.com/avetrov/qaboard/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// openMethods require no access token.
var openMethods = map[string]bool{
	"/qaboard.service.BoardStore/RegisterUser": true,
	"/qaboard.service.BoardStore/Login":        true,
	"/qaboard.service.BoardStore/RefreshToken": true,
	"/qaboard.service.BoardStore/Ping":         true,
}

// authenticate extracts and validates the access token from incoming
// metadata and returns the authenticated user id. An expired token keeps
// its sentinel message so clients know to refresh rather than re-login.
func (s *GRPCServer) authenticate(ctx context.Context) (string, error) {
	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if err == common.ErrTokenExpired {
			return "", status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return "", status.Error(codes.Unauthenticated, "invalid token")
	}
	return userID, nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !openMethods[info.FullMethod] {
		userID, err := s.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		ctx = context.WithValue(ctx, userIDKey, userID)
	}

	return handler(ctx, req)
}

// userIDFromContext returns the user id stored by the interceptor.
func userIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}
