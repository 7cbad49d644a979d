package service

import (
	"context"
	"encoding/json"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/farellandr/hostspot/internal/observability"
	"github.com/farellandr/hostspot/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SnapshotCache stores the serialized export. Every invalidation starts a new
// generation; a snapshot stored under an older generation is never loaded again.
type SnapshotCache interface {
	// Load returns the current generation, and the snapshot stored for it if any.
	Load(ctx context.Context) (data []byte, generation int64, ok bool, err error)
	Store(ctx context.Context, generation int64, data []byte) error
	Invalidate(ctx context.Context) error
}

type ExportListing struct {
	models.Listing
	HostName string `json:"host_name"`
}

type Snapshot struct {
	Categories []models.Category    `json:"categories"`
	Hosts      []models.HostProfile `json:"hosts"`
	Listings   []ExportListing      `json:"listings"`
}

type ExportService struct {
	store  *repository.Store
	cache  SnapshotCache
	logger logrus.FieldLogger
}

// NewExportService builds the export aggregator. cache may be nil.
func NewExportService(store *repository.Store, cache SnapshotCache, logger logrus.FieldLogger) *ExportService {
	return &ExportService{store: store, cache: cache, logger: logger}
}

// Export returns the serialized snapshot of every category, host and listing.
func (s *ExportService) Export(ctx context.Context) ([]byte, error) {
	var (
		generation int64
		cacheable  bool
	)
	if s.cache != nil {
		data, gen, ok, err := s.cache.Load(ctx)
		switch {
		case err != nil:
			observability.ExportCacheLookups.WithLabelValues("error").Inc()
			s.logger.WithError(err).Warn("export cache load failed")
		case ok:
			observability.ExportCacheLookups.WithLabelValues("hit").Inc()
			return data, nil
		default:
			observability.ExportCacheLookups.WithLabelValues("miss").Inc()
			generation, cacheable = gen, true
		}
	}

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	// Stored under the generation read before the snapshot was built, so a write that
	// lands in between invalidates it.
	if cacheable {
		if err := s.cache.Store(ctx, generation, data); err != nil {
			s.logger.WithError(err).Warn("export cache store failed")
		}
	}
	return data, nil
}

// Snapshot assembles the export straight from the database.
func (s *ExportService) Snapshot(ctx context.Context) (*Snapshot, error) {
	categories, err := s.store.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	hosts, err := s.store.Hosts.List(ctx)
	if err != nil {
		return nil, err
	}
	listings, err := s.store.Listings.List(ctx, "")
	if err != nil {
		return nil, err
	}

	accountIDs := make([]uuid.UUID, 0, len(hosts))
	for _, h := range hosts {
		accountIDs = append(accountIDs, h.AccountID)
	}
	accounts, err := s.store.Accounts.ListByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(accounts))
	for i := range accounts {
		names[accounts[i].ID] = accounts[i].Name()
	}
	hostNames := make(map[uuid.UUID]string, len(hosts))
	for _, h := range hosts {
		hostNames[h.ID] = names[h.AccountID]
	}

	out := &Snapshot{
		Categories: nonNil(categories),
		Hosts:      nonNil(hosts),
		Listings:   make([]ExportListing, 0, len(listings)),
	}
	for _, l := range listings {
		out.Listings = append(out.Listings, ExportListing{Listing: l, HostName: hostNames[l.HostID]})
	}
	return out, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// invalidate drops the cached snapshot after a write. Failures only get logged; the
// entry still expires on its TTL.
func invalidate(ctx context.Context, cache SnapshotCache, logger logrus.FieldLogger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		logger.WithError(err).Warn("export cache invalidation failed")
	}
}
