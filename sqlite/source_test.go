package sqlite_test

import (
	"context"
	"testing"

	"github.com/brunesco/tenderwatch"
	"github.com/brunesco/tenderwatch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSourceService_UpsertSource(t *testing.T) {
	t.Parallel()

	t.Run("inserts source with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSourceService(db)
		ctx := context.Background()

		source := &tenderwatch.Source{
			Name:       "Province Sud",
			ListingURL: "https://example.nc/marches",
			Active:     true,
		}

		err := svc.UpsertSource(ctx, source)
		require.NoError(t, err)

		assert.NotEmpty(t, source.ID, "ID should be generated")
		assert.False(t, source.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, source.UpdatedAt.IsZero(), "UpdatedAt should be set")
	})

	t.Run("same listing URL keeps the existing ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSourceService(db)
		ctx := context.Background()

		first := &tenderwatch.Source{Name: "Province Sud", ListingURL: "https://example.nc/marches", Active: true}
		require.NoError(t, svc.UpsertSource(ctx, first))

		second := &tenderwatch.Source{Name: "Province Sud (nouveau portail)", ListingURL: "https://example.nc/marches", Active: true}
		require.NoError(t, svc.UpsertSource(ctx, second))

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.CreatedAt, second.CreatedAt)

		sources, err := svc.FindSources(ctx, tenderwatch.SourceFilter{})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, "Province Sud (nouveau portail)", sources[0].Name)
	})

	t.Run("returns error for invalid source", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSourceService(db)
		ctx := context.Background()

		source := &tenderwatch.Source{} // missing required fields

		err := svc.UpsertSource(ctx, source)
		require.Error(t, err)
		assert.Equal(t, tenderwatch.EINVALID, tenderwatch.ErrorCode(err))
	})
}

func TestSourceService_FindSources(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.SourceService) []*tenderwatch.Source {
		t.Helper()
		ctx := context.Background()
		sources := []*tenderwatch.Source{
			{Name: "Province Sud", ListingURL: "https://example.nc/sud", Active: true},
			{Name: "Province Nord", ListingURL: "https://example.nc/nord", Active: true},
			{Name: "Archives", ListingURL: "https://example.nc/archives", Active: false},
		}
		for _, source := range sources {
			require.NoError(t, svc.UpsertSource(ctx, source))
		}
		return sources
	}

	t.Run("returns all sources without a filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSourceService(db)
		seed(t, svc)

		sources, err := svc.FindSources(context.Background(), tenderwatch.SourceFilter{})
		require.NoError(t, err)
		assert.Len(t, sources, 3)
	})

	t.Run("filters by listing URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSourceService(db)
		seed(t, svc)

		url := "https://example.nc/nord"
		sources, err := svc.FindSources(context.Background(), tenderwatch.SourceFilter{ListingURL: &url})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, "Province Nord", sources[0].Name)
	})

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSourceService(db)
		seed(t, svc)

		name := "Archives"
		sources, err := svc.FindSources(context.Background(), tenderwatch.SourceFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.False(t, sources[0].Active)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSourceService(db)
		seed(t, svc)

		sources, err := svc.FindSources(context.Background(), tenderwatch.SourceFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, sources, 2)

		rest, err := svc.FindSources(context.Background(), tenderwatch.SourceFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})
}
