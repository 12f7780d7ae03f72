package assets

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	removed []string
	err     error
}

func (f *fakeStore) Remove(ctx context.Context, key string) error {
	f.removed = append(f.removed, key)
	return f.err
}

func (f *fakeStore) PresignedGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	return "", nil
}

func TestCleanupReplaced(t *testing.T) {
	ctx := context.Background()
	f := &fakeStore{}
	c := NewCleaner(f)

	// changed URL: delete the old object once
	c.CleanupReplaced(ctx, "projects", "https://host/portfolio/a.png", "https://host/portfolio/b.png")
	require.Equal(t, []string{"portfolio/a.png"}, f.removed)

	// unchanged URL: nothing
	c.CleanupReplaced(ctx, "projects", "https://host/portfolio/b.png", "https://host/portfolio/b.png")
	require.Len(t, f.removed, 1)

	// no new URL supplied: nothing
	c.CleanupReplaced(ctx, "projects", "https://host/portfolio/b.png", "")
	require.Len(t, f.removed, 1)
}

func TestCleanupRemoved(t *testing.T) {
	ctx := context.Background()
	f := &fakeStore{}
	c := NewCleaner(f)

	c.CleanupRemoved(ctx, "resumes", "https://host/portfolio/cv.pdf")
	require.Equal(t, []string{"portfolio/cv.pdf"}, f.removed)

	c.CleanupRemoved(ctx, "resumes", "")
	require.Len(t, f.removed, 1)

	// URL outside the upload convention: nothing to derive, nothing removed
	c.CleanupRemoved(ctx, "resumes", "https://host/flat.pdf")
	require.Len(t, f.removed, 1)
}

func TestCleanupSwallowsStoreErrors(t *testing.T) {
	ctx := context.Background()
	f := &fakeStore{err: fmt.Errorf("bucket gone")}
	c := NewCleaner(f)

	// must not panic or surface the error in any way
	c.CleanupRemoved(ctx, "projects", "https://host/portfolio/a.png")
	require.Len(t, f.removed, 1)
}

func TestCleanerNilStoreIsNoop(t *testing.T) {
	var c *Cleaner
	c.CleanupRemoved(context.Background(), "projects", "https://host/portfolio/a.png")
}
