package assets

import (
	"context"

	"github.com/devfolio/devfolio/backend/go-services/pkg/logger"
	"github.com/devfolio/devfolio/backend/go-services/pkg/metrics"
)

// Cleaner issues best-effort deletions of orphaned asset files. Failures are
// logged and counted but never returned: losing a stale file must not fail
// the content operation that orphaned it.
type Cleaner struct {
	store Store
}

func NewCleaner(store Store) *Cleaner {
	return &Cleaner{store: store}
}

// CleanupReplaced removes the old asset after its URL was overwritten.
// No-op when the URL did not change or either URL is empty.
func (c *Cleaner) CleanupReplaced(ctx context.Context, collection, oldURL, newURL string) {
	if oldURL == "" || newURL == "" || oldURL == newURL {
		return
	}
	c.remove(ctx, collection, oldURL)
}

// CleanupRemoved removes the asset referenced by a deleted record.
func (c *Cleaner) CleanupRemoved(ctx context.Context, collection, oldURL string) {
	if oldURL == "" {
		return
	}
	c.remove(ctx, collection, oldURL)
}

func (c *Cleaner) remove(ctx context.Context, collection, rawURL string) {
	if c == nil || c.store == nil {
		return
	}
	key := ObjectKey(rawURL)
	if key == "" {
		return
	}
	if err := c.store.Remove(ctx, key); err != nil {
		metrics.AssetCleanupFailures.WithLabelValues(collection).Inc()
		logger.Warnf("asset cleanup failed for %s (%s): %v", key, collection, err)
		return
	}
	logger.Debugf("deleted orphaned asset %s (%s)", key, collection)
}
