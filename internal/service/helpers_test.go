package service

import (
	"context"
	"sync"
	"testing"

	"github.com/farellandr/hostspot/internal/repository"
	"github.com/farellandr/hostspot/internal/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type memoryCache struct {
	mu          sync.Mutex
	generation  int64
	snapshots   map[int64][]byte
	stores      int
	invalidated int
}

func (c *memoryCache) Load(context.Context) ([]byte, int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.snapshots[c.generation]
	return data, c.generation, ok, nil
}

func (c *memoryCache) Store(_ context.Context, generation int64, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshots == nil {
		c.snapshots = map[int64][]byte{}
	}
	c.snapshots[generation] = data
	c.stores++
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.invalidated++
	return nil
}

type fixture struct {
	db       *gorm.DB
	store    *repository.Store
	cache    *memoryCache
	logs     *test.Hook
	identity *IdentityService
	signup   *SignupService
	listings *ListingService
	hosts    *HostService
	category *CategoryService
	export   *ExportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	store := repository.NewStore(db)
	cache := &memoryCache{}
	hasher := NewPasswordHasher(bcrypt.MinCost)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return &fixture{
		db:       db,
		store:    store,
		cache:    cache,
		logs:     hook,
		identity: NewIdentityService(store, hasher, logger),
		signup:   NewSignupService(store, hasher, cache, logger),
		listings: NewListingService(store, cache, logger),
		hosts:    NewHostService(store, cache, logger),
		category: NewCategoryService(store, cache, logger),
		export:   NewExportService(store, cache, logger),
	}
}

func ptr[T any](v T) *T {
	return &v
}
