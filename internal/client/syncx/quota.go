package syncx

import (
	"context"
	"fmt"

	"github.com/avetrov/qaboard/internal/logging"
)

// QuotaDecision is a point-in-time computation of remaining creation
// capacity. It is never cached across calls.
type QuotaDecision struct {
	CanCreate  bool
	MaxAllowed int
	Remaining  int
	Message    string
}

// QuotaGuard computes remaining-create-capacity from capability data plus
// the latest known item count, and blocks creation when exhausted.
type QuotaGuard struct {
	caps CapabilityProvider
	log  logging.Logger
}

func NewQuotaGuard(caps CapabilityProvider, log logging.Logger) *QuotaGuard {
	return &QuotaGuard{caps: caps, log: log.With("module", "quota_guard")}
}

// CanCreate decides whether one more resource may be created under the
// owner key. cachedCount is the item count from the current cache snapshot;
// the effective count is the larger of it and what the capability data
// reports, so the decision reflects the latest known state.
//
// A capability lookup failure yields a conservative deny — never fail open.
func (g *QuotaGuard) CanCreate(ctx context.Context, key OwnerKey, cachedCount int) QuotaDecision {
	quota, err := g.caps.GetQuota(ctx, key)
	if err != nil {
		g.log.Warn(ctx, "capability lookup failed, denying create", "owner_key", string(key), "error", err.Error())
		return QuotaDecision{
			CanCreate: false,
			Message:   "could not verify creation quota; try again later",
		}
	}

	count := quota.CurrentCount
	if cachedCount > count {
		count = cachedCount
	}

	// Unlimited plans short-circuit before any subtraction.
	if quota.MaxAllowed < 0 {
		return QuotaDecision{CanCreate: true, MaxAllowed: -1, Remaining: -1}
	}

	remaining := quota.MaxAllowed - count
	if remaining < 0 {
		remaining = 0
	}

	d := QuotaDecision{
		CanCreate:  remaining != 0,
		MaxAllowed: quota.MaxAllowed,
		Remaining:  remaining,
	}
	if !d.CanCreate {
		d.Message = fmt.Sprintf("limit of %d reached", quota.MaxAllowed)
	}
	return d
}
