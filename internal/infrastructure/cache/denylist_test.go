package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenylist_RevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	d := NewDenylist()

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Hour))
	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = d.IsRevoked(ctx, "jti-2")
	assert.False(t, revoked)
}

func TestDenylist_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	d := NewDenylist()

	require.NoError(t, d.Revoke(ctx, "jti-1", 20*time.Millisecond))
	time.Sleep(40 * time.Millisecond)

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestDenylist_NonPositiveTTLIgnored(t *testing.T) {
	ctx := context.Background()
	d := NewDenylist()

	require.NoError(t, d.Revoke(ctx, "jti-1", 0))
	revoked, _ := d.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)
}
