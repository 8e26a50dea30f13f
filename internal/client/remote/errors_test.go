package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/avetrov/qaboard/internal/client/syncx"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"canceled", status.Error(codes.Canceled, "call aborted"), context.Canceled},
		{"deadline", status.Error(codes.DeadlineExceeded, "too slow"), context.DeadlineExceeded},
		{"invalid argument", status.Error(codes.InvalidArgument, "bad name"), syncx.ErrValidation},
		{"already exists", status.Error(codes.AlreadyExists, "taken"), syncx.ErrDuplicateName},
		{"not found", status.Error(codes.NotFound, "gone"), syncx.ErrNotFound},
		{"permission denied", status.Error(codes.PermissionDenied, "nope"), syncx.ErrPermission},
		{"unauthenticated", status.Error(codes.Unauthenticated, "no token"), syncx.ErrPermission},
		{"resource exhausted", status.Error(codes.ResourceExhausted, "plan limit"), syncx.ErrQuotaExceeded},
		{"unavailable", status.Error(codes.Unavailable, "down"), syncx.ErrTransient},
		{"internal", status.Error(codes.Internal, "oops"), syncx.ErrTransient},
		{"plain error", errors.New("wire broke"), syncx.ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapErrorKeepsMessage(t *testing.T) {
	got := mapError(status.Error(codes.AlreadyExists, "suite name taken"))
	assert.ErrorContains(t, got, "suite name taken")
}
