package syncx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotaGuard_CanCreate(t *testing.T) {
	tests := []struct {
		name          string
		quota         Quota
		cachedCount   int
		wantCanCreate bool
		wantRemaining int
	}{
		{
			name:          "capacity available",
			quota:         Quota{MaxAllowed: 3, CurrentCount: 1},
			cachedCount:   1,
			wantCanCreate: true,
			wantRemaining: 2,
		},
		{
			name:          "at the cap",
			quota:         Quota{MaxAllowed: 3, CurrentCount: 3},
			cachedCount:   3,
			wantCanCreate: false,
			wantRemaining: 0,
		},
		{
			name:          "over the cap clamps to zero",
			quota:         Quota{MaxAllowed: 3, CurrentCount: 5},
			cachedCount:   5,
			wantCanCreate: false,
			wantRemaining: 0,
		},
		{
			name:          "unlimited short-circuits regardless of count",
			quota:         Quota{MaxAllowed: -1, CurrentCount: 10000},
			cachedCount:   10000,
			wantCanCreate: true,
			wantRemaining: -1,
		},
		{
			name:          "cached count newer than capability count",
			quota:         Quota{MaxAllowed: 3, CurrentCount: 2},
			cachedCount:   3,
			wantCanCreate: false,
			wantRemaining: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := NewQuotaGuard(&fakeCaps{quota: tt.quota}, discardLogger())
			d := g.CanCreate(context.Background(), testKey, tt.cachedCount)
			assert.Equal(t, tt.wantCanCreate, d.CanCreate)
			assert.Equal(t, tt.wantRemaining, d.Remaining)
		})
	}
}

func TestQuotaGuard_CapabilityFailureFailsClosed(t *testing.T) {
	g := NewQuotaGuard(&fakeCaps{err: errors.New("capability service down")}, discardLogger())

	d := g.CanCreate(context.Background(), testKey, 0)
	assert.False(t, d.CanCreate, "must never fail open")
	assert.NotEmpty(t, d.Message)
}
