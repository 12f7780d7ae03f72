package portfolio

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/devfolio/devfolio/backend/go-services/internal/content"
)

// HeroPhotoName is the photo record served as the landing-page hero image.
const HeroPhotoName = "avatar1"

// Snapshot is the combined public payload the landing page renders from.
type Snapshot struct {
	Projects     []content.Record `json:"projects"`
	Skills       []content.Record `json:"skills"`
	Experience   []content.Record `json:"experience"`
	Education    []content.Record `json:"education"`
	HeroImage    string           `json:"heroImage"`
	Contacts     []content.Record `json:"contacts"`
	Achievements []content.Record `json:"achievements"`
	Certificates []content.Record `json:"certificates"`
	Resume       content.Record   `json:"resume"`
	Dsa          []content.Record `json:"dsa"`
	Blogs        []content.Record `json:"blogs"`
}

// Service assembles the public snapshot by fanning out one read per collection.
type Service struct {
	stores map[string]content.Store
}

// NewService takes the per-collection stores keyed by collection name.
func NewService(stores map[string]content.Store) *Service {
	return &Service{stores: stores}
}

// Snapshot reads every collection concurrently and assembles the combined
// payload. All-or-nothing: a failed read of any one collection fails the call.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	var (
		snap   Snapshot
		photos []content.Record
	)
	targets := map[string]*[]content.Record{
		"projects":     &snap.Projects,
		"skills":       &snap.Skills,
		"experience":   &snap.Experience,
		"education":    &snap.Education,
		"photos":       &photos,
		"contacts":     &snap.Contacts,
		"achievements": &snap.Achievements,
		"certificates": &snap.Certificates,
		"dsa":          &snap.Dsa,
		"blogs":        &snap.Blogs,
	}

	g, gctx := errgroup.WithContext(ctx)
	var resumes []content.Record
	g.Go(func() error {
		var err error
		resumes, err = s.list(gctx, "resumes")
		return err
	})
	for name, dst := range targets {
		g.Go(func() error {
			list, err := s.list(gctx, name)
			if err != nil {
				return err
			}
			*dst = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, p := range photos {
		if p.StringField("name") == HeroPhotoName {
			snap.HeroImage = p.StringField("imageUrl")
			break
		}
	}
	snap.Contacts = visibleOnly(snap.Contacts)
	for _, r := range resumes {
		if r.IsActive() {
			snap.Resume = r
			break
		}
	}
	return &snap, nil
}

func (s *Service) list(ctx context.Context, name string) ([]content.Record, error) {
	store, ok := s.stores[name]
	if !ok {
		return nil, fmt.Errorf("no store for collection %q", name)
	}
	return store.List(ctx)
}

// visibleOnly drops records explicitly flagged inactive. Records without an
// isActive field are visible (the flag defaults to true on the admin side).
func visibleOnly(list []content.Record) []content.Record {
	out := make([]content.Record, 0, len(list))
	for _, r := range list {
		if v, ok := r["isActive"].(bool); ok && !v {
			continue
		}
		out = append(out, r)
	}
	return out
}
