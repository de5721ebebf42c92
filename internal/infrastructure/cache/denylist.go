// Package cache holds in-process implementations of storage ports, used when
// running without Redis.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const cleanupInterval = 10 * time.Minute

// Denylist keeps revoked token ids in memory. Entries are only visible to the
// process that revoked them.
type Denylist struct {
	store *gocache.Cache
}

func NewDenylist() *Denylist {
	return &Denylist{store: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (d *Denylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	d.store.Set(tokenID, struct{}{}, ttl)
	return nil
}

func (d *Denylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, found := d.store.Get(tokenID)
	return found, nil
}
