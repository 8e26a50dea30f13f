package remote

import (
	"context"
	"fmt"

	"github.com/avetrov/qaboard/internal/client/syncx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapError translates a gRPC call error into the sync taxonomy.
// Cancellation keeps its native sentinel so callers can tell an aborted
// fetch apart from a failed one.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %s", syncx.ErrTransient, err.Error())
	}

	switch st.Code() {
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", syncx.ErrValidation, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", syncx.ErrDuplicateName, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", syncx.ErrNotFound, st.Message())
	case codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%w: %s", syncx.ErrPermission, st.Message())
	case codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", syncx.ErrQuotaExceeded, st.Message())
	default:
		return fmt.Errorf("%w: %s", syncx.ErrTransient, st.Message())
	}
}
