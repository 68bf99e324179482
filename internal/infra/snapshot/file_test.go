//go:build unit

package snapshot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mercado-tracker/internal/domain/product"
	"mercado-tracker/internal/domain/tracker"
	"mercado-tracker/internal/infra/snapshot"
	"mercado-tracker/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file reports not found", func(t *testing.T) {
		f := snapshot.NewFile(filepath.Join(t.TempDir(), "db.json"))

		data, err := f.Load(ctx)
		require.ErrorIs(t, err, snapshot.ErrNotFound)
		assert.Nil(t, data)
	})

	t.Run("save then load round-trips the document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.json")
		f := snapshot.NewFile(path)

		trk, err := builder.NewTrackerBuilder().BuildDomain()
		require.NoError(t, err)
		foundAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		doc := &snapshot.Data{
			Trackers: []tracker.Tracker{*trk},
			Products: []product.Product{{
				ID:        "MLB100",
				Title:     "Playstation 5 Slim",
				Price:     3499.90,
				Link:      "https://example.com/MLB100",
				Thumbnail: "https://example.com/MLB100.jpg",
				FoundAt:   foundAt,
			}},
		}

		require.NoError(t, f.Save(ctx, doc))

		loaded, err := f.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded.Trackers, 1)
		require.Len(t, loaded.Products, 1)

		assert.Equal(t, trk.ID, loaded.Trackers[0].ID)
		assert.Equal(t, trk.SearchTerm, loaded.Trackers[0].SearchTerm)
		assert.Equal(t, trk.Status, loaded.Trackers[0].Status)
		assert.Equal(t, trk.ConfirmationCode, loaded.Trackers[0].ConfirmationCode)
		assert.Equal(t, "MLB100", loaded.Products[0].ID)
		assert.True(t, foundAt.Equal(loaded.Products[0].FoundAt))
	})

	t.Run("save replaces the previous document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.json")
		f := snapshot.NewFile(path)

		require.NoError(t, f.Save(ctx, &snapshot.Data{
			Products: []product.Product{{ID: "MLB1"}},
		}))
		require.NoError(t, f.Save(ctx, &snapshot.Data{
			Products: []product.Product{{ID: "MLB2"}},
		}))

		loaded, err := f.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded.Products, 1)
		assert.Equal(t, "MLB2", loaded.Products[0].ID)
	})

	t.Run("corrupt file reports an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		f := snapshot.NewFile(path)
		data, err := f.Load(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, snapshot.ErrNotFound)
		assert.Nil(t, data)
	})

	t.Run("no temp files are left behind", func(t *testing.T) {
		dir := t.TempDir()
		f := snapshot.NewFile(filepath.Join(dir, "db.json"))

		require.NoError(t, f.Save(ctx, &snapshot.Data{}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "db.json", entries[0].Name())
	})
}
