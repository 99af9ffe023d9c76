package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/ytimport/internal/models"
	"github.com/desertthunder/ytimport/internal/repositories"
	"github.com/desertthunder/ytimport/internal/shared"
	"github.com/urfave/cli/v3"
)

// runView is the serializable form of a recorded import run.
type runView struct {
	ID          string `json:"id"`
	Sequence    int    `json:"sequence"`
	Mode        string `json:"mode"`
	SourceRef   string `json:"source_ref,omitempty"`
	PlaylistID  string `json:"playlist_id"`
	PlaylistURL string `json:"playlist_url"`
	Title       string `json:"title"`
	Privacy     string `json:"privacy"`
	Attempted   int    `json:"attempted"`
	Added       int    `json:"added"`
	Failed      int    `json:"failed"`
	Skipped     int    `json:"skipped"`
	CreatedAt   string `json:"created_at"`
}

func newRunView(run *models.ImportRun) runView {
	return runView{
		ID:          run.ID(),
		Sequence:    run.Sequence(),
		Mode:        run.Mode(),
		SourceRef:   run.SourceRef(),
		PlaylistID:  run.PlaylistID(),
		PlaylistURL: run.PlaylistURL(),
		Title:       run.Title(),
		Privacy:     run.Privacy(),
		Attempted:   run.Attempted(),
		Added:       run.Added(),
		Failed:      run.Failed(),
		Skipped:     run.Skipped(),
		CreatedAt:   run.CreatedAt().Format(time.RFC3339),
	}
}

// historyRepo returns the run repository behind the recorder.
func (r *Runner) historyRepo() (*repositories.RunRepository, error) {
	repo, ok := r.recorder.(*repositories.RunRepository)
	if !ok || repo == nil {
		return nil, fmt.Errorf("%w: run 'ytimport setup database' to enable run history", shared.ErrMissingConfig)
	}
	return repo, nil
}

// HistoryList lists recorded import runs, newest first.
func (r *Runner) HistoryList(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.historyRepo()
	if err != nil {
		return err
	}

	criteria := map[string]any{}
	if mode := cmd.String("mode"); mode != "" {
		criteria["mode"] = mode
	}
	if limit := cmd.Int("limit"); limit > 0 {
		criteria["limit"] = limit
	}

	runs, err := repo.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if cmd.Bool("json") {
		views := make([]runView, len(runs))
		for i, run := range runs {
			views[i] = newRunView(run)
		}
		return r.writeJSON(views, cmd.Bool("pretty"))
	}

	if len(runs) == 0 {
		r.writePlain("No import runs recorded yet.\n")
		return nil
	}

	r.writePlain("Found %d runs:\n\n", len(runs))
	for _, run := range runs {
		r.writePlain("#%d %s [%s]\n", run.Sequence(), run.Title(), run.Mode())
		r.writePlain("   ID: %s\n", run.ID())
		r.writePlain("   Added: %d/%d", run.Added(), run.Attempted())
		if run.Skipped() > 0 {
			r.writePlain(", skipped %d", run.Skipped())
		}
		r.writePlain("\n")
		r.writePlain("   When: %s\n\n", run.CreatedAt().Format(time.RFC3339))
	}

	return nil
}

// HistoryShow shows a single recorded import run.
func (r *Runner) HistoryShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: run ID", shared.ErrMissingArgument)
	}

	repo, err := r.historyRepo()
	if err != nil {
		return err
	}

	run, err := repo.Get(id)
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(newRunView(run), cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Import Run #%d", run.Sequence()))
	r.writePlain("ID: %s\n", run.ID())
	r.writePlain("Mode: %s\n", run.Mode())
	if run.SourceRef() != "" {
		r.writePlain("Source: %s\n", run.SourceRef())
	}
	r.writePlain("Playlist: %s (%s)\n", run.Title(), run.Privacy())
	r.writePlain("URL: %s\n", run.PlaylistURL())
	r.writePlain("Attempted: %d\n", run.Attempted())
	r.writePlain("Added: %d\n", run.Added())
	r.writePlain("Failed: %d\n", run.Failed())
	r.writePlain("Skipped: %d\n", run.Skipped())
	r.writePlain("When: %s\n", run.CreatedAt().Format(time.RFC3339))

	return nil
}
