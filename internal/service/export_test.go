package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/farellandr/hostspot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportService_Snapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	named, err := f.signup.SignupHost(ctx, HostSignup{Name: "Bea", Email: "bea@x.io", Password: "pw", Category: "musical"})
	require.NoError(t, err)
	unnamed := testutil.Host(t, f.db, "carl@x.io", "art")

	namedHost, err := f.store.Hosts.GetByID(ctx, *named.HostProfileID)
	require.NoError(t, err)
	testutil.Listing(t, f.db, *namedHost, "musical", "Jazz")
	testutil.Listing(t, f.db, unnamed, "art", "Gallery")

	snapshot, err := f.export.Snapshot(ctx)
	require.NoError(t, err)

	assert.Len(t, snapshot.Categories, len(models.CategoryNames))
	assert.Len(t, snapshot.Hosts, 2)
	require.Len(t, snapshot.Listings, 2)

	byTitle := map[string]string{}
	for _, l := range snapshot.Listings {
		byTitle[l.Title] = l.HostName
	}
	assert.Equal(t, "Bea", byTitle["Jazz"])
	assert.Equal(t, "carl", byTitle["Gallery"])
}

func TestExportService_EmptyDatabase(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.Exec("DELETE FROM categories").Error)

	data, err := f.export.Export(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"categories":[],"hosts":[],"listings":[]}`, string(data))
}

func TestExportService_Export_UsesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := testutil.Host(t, f.db, "h@x.io", "musical")
	testutil.Listing(t, f.db, host, "musical", "Jazz")

	first, err := f.export.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.stores)

	var payload struct {
		Listings []map[string]interface{} `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(first, &payload))
	require.Len(t, payload.Listings, 1)
	assert.Equal(t, "h", payload.Listings[0]["host_name"])
	assert.Equal(t, host.ID.String(), payload.Listings[0]["host"])

	// Rows written behind the service's back stay invisible until invalidation.
	testutil.Listing(t, f.db, host, "musical", "Blues")
	second, err := f.export.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.cache.stores)

	in := validListing(host.ID)
	in.Title = "Soul"
	_, err = f.listings.Create(ctx, in)
	require.NoError(t, err)

	third, err := f.export.Export(ctx)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(third, &payload))
	assert.Len(t, payload.Listings, 3)
	assert.Equal(t, 2, f.cache.stores)
}

func TestExportService_NilCache(t *testing.T) {
	f := newFixture(t)
	svc := NewExportService(f.store, nil, f.identity.logger)

	data, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"musical"`)
}

// racingCache runs a write between the snapshot being built and being stored.
type racingCache struct {
	*memoryCache
	write func()
}

func (c *racingCache) Store(ctx context.Context, generation int64, data []byte) error {
	if c.write != nil {
		write := c.write
		c.write = nil
		write()
	}
	return c.memoryCache.Store(ctx, generation, data)
}

func TestExportService_Export_WriteDuringBuildIsNotLost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := testutil.Host(t, f.db, "h@x.io", "musical")

	cache := &racingCache{memoryCache: &memoryCache{}}
	listings := NewListingService(f.store, cache, f.identity.logger)
	export := NewExportService(f.store, cache, f.identity.logger)

	cache.write = func() {
		_, err := listings.Create(ctx, validListing(host.ID))
		require.NoError(t, err)
	}

	first, err := export.Export(ctx)
	require.NoError(t, err)
	assert.NotContains(t, string(first), "Jazz Night")

	second, err := export.Export(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(second), "Jazz Night")
}
