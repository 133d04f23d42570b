package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

var _ model.TokenDenylist = (*Denylist)(nil)

// Denylist is an in-memory token denylist. Entries expire lazily on lookup.
type Denylist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewDenylist() *Denylist {
	return &Denylist{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke marks tokenID as revoked for ttl.
func (d *Denylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.revoked[tokenID] = d.now().Add(ttl)
	return nil
}

// IsRevoked reports whether tokenID is revoked and not yet expired.
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	d.mu.RLock()
	expiry, ok := d.revoked[tokenID]
	d.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if !d.now().Before(expiry) {
		d.mu.Lock()
		if current, ok := d.revoked[tokenID]; ok && !d.now().Before(current) {
			delete(d.revoked, tokenID)
		}
		d.mu.Unlock()
		return false, nil
	}

	return true, nil
}
