package models

import (
	"strings"
	"testing"
	"time"
)

func validRun() *ImportRun {
	run := NewImportRun(1, RunModeFile, "videos.txt", "PLnew123", "https://www.youtube.com/playlist?list=PLnew123", "Imported", "unlisted")
	run.SetCounts(5, 4, 1, 2)
	return run
}

func TestNewImportRun(t *testing.T) {
	run := validRun()

	if run.Mode() != RunModeFile {
		t.Errorf("expected mode %q, got %q", RunModeFile, run.Mode())
	}
	if run.SourceRef() != "videos.txt" {
		t.Errorf("expected source ref videos.txt, got %q", run.SourceRef())
	}
	if run.PlaylistID() != "PLnew123" {
		t.Errorf("expected playlist ID PLnew123, got %q", run.PlaylistID())
	}
	if run.CreatedAt().IsZero() || run.UpdatedAt().IsZero() {
		t.Error("expected timestamps to be set")
	}
	if run.DeletedAt() != nil {
		t.Error("expected new run to not be deleted")
	}
}

func TestImportRunSetters(t *testing.T) {
	run := validRun()

	run.SetID("abc-123")
	if run.ID() != "abc-123" {
		t.Errorf("expected ID abc-123, got %q", run.ID())
	}

	run.SetSequence(7)
	if run.Sequence() != 7 {
		t.Errorf("expected sequence 7, got %d", run.Sequence())
	}

	run.SetCounts(10, 8, 2, 1)
	if run.Attempted() != 10 || run.Added() != 8 || run.Failed() != 2 || run.Skipped() != 1 {
		t.Errorf("unexpected counts: attempted=%d added=%d failed=%d skipped=%d",
			run.Attempted(), run.Added(), run.Failed(), run.Skipped())
	}

	now := time.Now()
	run.SetDeletedAt(&now)
	if run.DeletedAt() == nil {
		t.Error("expected deleted timestamp to be set")
	}
}

func TestImportRunValidate(t *testing.T) {
	t.Run("valid run passes", func(t *testing.T) {
		if err := validRun().Validate(); err != nil {
			t.Errorf("expected valid run, got %v", err)
		}
	})

	t.Run("all modes accepted", func(t *testing.T) {
		for _, mode := range []string{RunModeFile, RunModePlaylist, RunModeWatchLater} {
			run := validRun()
			run.mode = mode
			if err := run.Validate(); err != nil {
				t.Errorf("expected mode %q to validate, got %v", mode, err)
			}
		}
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		run := validRun()
		run.mode = "sync"
		err := run.Validate()
		if err == nil || !strings.Contains(err.Error(), "invalid run mode") {
			t.Errorf("expected invalid mode error, got %v", err)
		}
	})

	t.Run("rejects unknown privacy", func(t *testing.T) {
		run := validRun()
		run.privacy = "secret"
		err := run.Validate()
		if err == nil || !strings.Contains(err.Error(), "invalid privacy") {
			t.Errorf("expected invalid privacy error, got %v", err)
		}
	})

	t.Run("requires playlist ID", func(t *testing.T) {
		run := validRun()
		run.playlistID = ""
		err := run.Validate()
		if err == nil || !strings.Contains(err.Error(), "playlist ID is required") {
			t.Errorf("expected missing playlist ID error, got %v", err)
		}
	})

	t.Run("rejects negative counts", func(t *testing.T) {
		run := validRun()
		run.SetCounts(-1, -1, 0, 0)
		err := run.Validate()
		if err == nil || !strings.Contains(err.Error(), "negative") {
			t.Errorf("expected negative count error, got %v", err)
		}
	})

	t.Run("attempted must equal added plus failed", func(t *testing.T) {
		run := validRun()
		run.SetCounts(5, 2, 1, 0)
		err := run.Validate()
		if err == nil || !strings.Contains(err.Error(), "does not match") {
			t.Errorf("expected count mismatch error, got %v", err)
		}
	})
}
