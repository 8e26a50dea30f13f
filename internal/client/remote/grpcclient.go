// Package remote is the gRPC adapter between the sync layer and the
// BoardStore service. It carries the access token on every call, refreshes
// it transparently when the server reports expiry, and maps transport
// errors onto the sync error taxonomy at this boundary — raw gRPC status
// values never travel further up.
package remote

import (
	"context"
	"sync"

	"github.com/avetrov/qaboard/internal/common"
	pb "github.com/avetrov/qaboard/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type Client struct {
	endpointURL string
	conn        *grpc.ClientConn
	api         pb.BoardStoreClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func NewClient(endpointURL string) (*Client, error) {
	c := &Client{endpointURL: endpointURL}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.api = pb.NewBoardStoreClient(conn)
	return c, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (c *Client) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

func (c *Client) setTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	c.refreshToken = refresh
}

// accessTokenInterceptor attaches the current access token to outbound
// unary calls. When the server answers Unauthenticated with the
// token-expired marker, the token pair is rotated once and the call is
// retried.
func (c *Client) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := c.tokens()
	ctx = withAccessToken(ctx, access)

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated {
		return err
	}
	if st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	refreshed, err := c.api.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}
	c.setTokens(refreshed.AccessToken, refreshed.RefreshToken)

	ctx = withAccessToken(ctx, refreshed.AccessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	resp, err := c.api.RegisterUser(ctx, &pb.RegisterUserRequest{Username: username, Password: password})
	if err != nil {
		return "", mapError(err)
	}
	return resp.UserId, nil
}

// Login authenticates and stores the token pair for subsequent calls. The
// returned value is the server-side user id, which callers use as the
// individual owner id.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.api.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", mapError(err)
	}
	c.setTokens(resp.AccessToken, resp.RefreshToken)
	return resp.UserId, nil
}

func (c *Client) Logout() {
	c.setTokens("", "")
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.api.Ping(ctx, &pb.PingRequest{})
	return mapError(err)
}

func (c *Client) AttachmentPutURL(ctx context.Context, resourceID string) (string, string, error) {
	resp, err := c.api.AttachmentPutURL(ctx, &pb.AttachmentPutURLRequest{ResourceId: resourceID})
	if err != nil {
		return "", "", mapError(err)
	}
	return resp.StorageKey, resp.Url, nil
}

func (c *Client) AttachmentGetURL(ctx context.Context, storageKey string) (string, error) {
	resp, err := c.api.AttachmentGetURL(ctx, &pb.AttachmentGetURLRequest{StorageKey: storageKey})
	if err != nil {
		return "", mapError(err)
	}
	return resp.Url, nil
}
