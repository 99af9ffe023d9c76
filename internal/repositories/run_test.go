package repositories

import (
	"database/sql"
	"testing"

	"github.com/desertthunder/ytimport/internal/models"
	"github.com/desertthunder/ytimport/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func testRun(mode string) *models.ImportRun {
	run := models.NewImportRun(0, mode, "videos.txt", "PLnew123", "https://www.youtube.com/playlist?list=PLnew123", "Imported Playlist", "unlisted")
	run.SetCounts(5, 4, 1, 2)
	return run
}

func TestRunRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRunRepository(db)
		run := testRun(models.RunModeFile)

		if err := repo.Create(run); err != nil {
			t.Fatalf("failed to create run: %v", err)
		}

		if run.ID() == "" {
			t.Error("run ID should be set after creation")
		}
	})

	t.Run("Create assigns increasing sequences", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRunRepository(db)

		first := testRun(models.RunModeFile)
		second := testRun(models.RunModePlaylist)

		if err := repo.Create(first); err != nil {
			t.Fatalf("failed to create first run: %v", err)
		}
		if err := repo.Create(second); err != nil {
			t.Fatalf("failed to create second run: %v", err)
		}

		runs, err := repo.List(nil)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(runs) != 2 {
			t.Fatalf("expected 2 runs, got %d", len(runs))
		}
		if runs[0].Sequence() <= runs[1].Sequence() {
			t.Errorf("expected newest run first, got sequences %d, %d", runs[0].Sequence(), runs[1].Sequence())
		}
	})

	t.Run("Create rejects invalid runs", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRunRepository(db)
		run := models.NewImportRun(0, "bogus", "", "PL123", "", "Title", "unlisted")

		if err := repo.Create(run); err == nil {
			t.Error("expected validation error for invalid mode")
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRunRepository(db)
		run := testRun(models.RunModeWatchLater)

		if err := repo.Create(run); err != nil {
			t.Fatalf("failed to create run: %v", err)
		}

		retrieved, err := repo.Get(run.ID())
		if err != nil {
			t.Fatalf("failed to get run: %v", err)
		}

		if retrieved.Mode() != models.RunModeWatchLater {
			t.Errorf("expected mode %s, got %s", models.RunModeWatchLater, retrieved.Mode())
		}
		if retrieved.Attempted() != 5 || retrieved.Added() != 4 || retrieved.Failed() != 1 {
			t.Errorf("counts not round-tripped: attempted=%d added=%d failed=%d",
				retrieved.Attempted(), retrieved.Added(), retrieved.Failed())
		}
		if retrieved.Skipped() != 2 {
			t.Errorf("expected skipped 2, got %d", retrieved.Skipped())
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRunRepository(db)
		run := testRun(models.RunModeFile)

		if err := repo.Create(run); err != nil {
			t.Fatalf("failed to create run: %v", err)
		}

		run.SetCounts(5, 5, 0, 0)
		if err := repo.Update(run); err != nil {
			t.Fatalf("failed to update run: %v", err)
		}

		retrieved, err := repo.Get(run.ID())
		if err != nil {
			t.Fatalf("failed to get run: %v", err)
		}
		if retrieved.Added() != 5 || retrieved.Failed() != 0 {
			t.Errorf("update not persisted: added=%d failed=%d", retrieved.Added(), retrieved.Failed())
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRunRepository(db)
		run := testRun(models.RunModeFile)

		if err := repo.Create(run); err != nil {
			t.Fatalf("failed to create run: %v", err)
		}

		if err := repo.Delete(run.ID()); err != nil {
			t.Fatalf("failed to delete run: %v", err)
		}

		if _, err := repo.Get(run.ID()); err == nil {
			t.Error("expected error getting soft-deleted run")
		}

		if err := repo.Delete(run.ID()); err == nil {
			t.Error("expected error deleting already-deleted run")
		}
	})

	t.Run("List filters by mode", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRunRepository(db)

		if err := repo.Create(testRun(models.RunModeFile)); err != nil {
			t.Fatalf("failed to create run: %v", err)
		}
		if err := repo.Create(testRun(models.RunModePlaylist)); err != nil {
			t.Fatalf("failed to create run: %v", err)
		}

		runs, err := repo.List(map[string]any{"mode": models.RunModeFile})
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(runs) != 1 {
			t.Fatalf("expected 1 run, got %d", len(runs))
		}
		if runs[0].Mode() != models.RunModeFile {
			t.Errorf("expected mode %s, got %s", models.RunModeFile, runs[0].Mode())
		}
	})

	t.Run("List respects limit", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRunRepository(db)
		for range 3 {
			if err := repo.Create(testRun(models.RunModeFile)); err != nil {
				t.Fatalf("failed to create run: %v", err)
			}
		}

		runs, err := repo.List(map[string]any{"limit": 2})
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(runs) != 2 {
			t.Errorf("expected 2 runs, got %d", len(runs))
		}
	})
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first, err := NextSequence(db, "runs")
	if err != nil {
		t.Fatalf("failed to get sequence: %v", err)
	}

	second, err := NextSequence(db, "runs")
	if err != nil {
		t.Fatalf("failed to get sequence: %v", err)
	}

	if second != first+1 {
		t.Errorf("expected sequence to increment, got %d then %d", first, second)
	}
}
