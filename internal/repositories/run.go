package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/ytimport/internal/models"
	"github.com/desertthunder/ytimport/internal/shared"
)

// RunRepository implements models.Repository[*models.ImportRun] for import
// run history.
//
// Handles run CRUD operations with soft delete support and mode-based queries.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new RunRepository with the given database connection
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new import run into the database with generated ID and sequence
func (r *RunRepository) Create(run *models.ImportRun) error {
	sequence, err := NextSequence(r.db, "runs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	run.SetID(id)
	run.SetSequence(sequence)

	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO runs (
			id, sequence, mode, source_ref, playlist_id, playlist_url,
			title, privacy, attempted, added, failed, skipped,
			created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		run.Mode(),
		run.SourceRef(),
		run.PlaylistID(),
		run.PlaylistURL(),
		run.Title(),
		run.Privacy(),
		run.Attempted(),
		run.Added(),
		run.Failed(),
		run.Skipped(),
		run.CreatedAt(),
		run.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// Record persists a completed import run. Satisfies the import engine's
// recorder interface.
func (r *RunRepository) Record(run *models.ImportRun) error {
	return r.Create(run)
}

// Get retrieves an import run by ID, excluding soft-deleted runs
func (r *RunRepository) Get(id string) (*models.ImportRun, error) {
	query := `
		SELECT
			id, sequence, mode, source_ref, playlist_id, playlist_url,
			title, privacy, attempted, added, failed, skipped,
			created_at, updated_at, deleted_at
		FROM runs
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// Update modifies an existing import run in the database
func (r *RunRepository) Update(run *models.ImportRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	run.SetUpdatedAt(now)

	query := `
		UPDATE runs
		SET playlist_id = ?, playlist_url = ?, title = ?, privacy = ?,
			attempted = ?, added = ?, failed = ?, skipped = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		run.PlaylistID(),
		run.PlaylistURL(),
		run.Title(),
		run.Privacy(),
		run.Attempted(),
		run.Added(),
		run.Failed(),
		run.Skipped(),
		now,
		run.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("run not found or already deleted: %s", run.ID())
	}

	return nil
}

// Delete soft-deletes an import run by ID
func (r *RunRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE runs
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("run not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all import runs matching the given criteria, excluding soft-deleted runs
func (r *RunRepository) List(criteria map[string]any) ([]*models.ImportRun, error) {
	query := `
		SELECT
			id, sequence, mode, source_ref, playlist_id, playlist_url,
			title, privacy, attempted, added, failed, skipped,
			created_at, updated_at, deleted_at
		FROM runs
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if mode, ok := criteria["mode"].(string); ok && mode != "" {
		query += " AND mode = ?"
		args = append(args, mode)
	}

	if playlistID, ok := criteria["playlist_id"].(string); ok && playlistID != "" {
		query += " AND playlist_id = ?"
		args = append(args, playlistID)
	}

	query += " ORDER BY sequence DESC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ImportRun
	for rows.Next() {
		run, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return runs, nil
}

// scanOne scans a single [sql.Row] into a [models.ImportRun]
func (r *RunRepository) scanOne(row *sql.Row) (*models.ImportRun, error) {
	var (
		id          string
		sequence    int
		mode        string
		sourceRef   string
		playlistID  string
		playlistURL string
		title       string
		privacy     string
		attempted   int
		added       int
		failed      int
		skipped     int
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	err := row.Scan(
		&id, &sequence, &mode, &sourceRef, &playlistID, &playlistURL,
		&title, &privacy, &attempted, &added, &failed, &skipped,
		&createdAt, &updatedAt, &deletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	return buildRun(id, sequence, mode, sourceRef, playlistID, playlistURL,
		title, privacy, attempted, added, failed, skipped,
		createdAt, updatedAt, deletedAt), nil
}

// scanRow scans a row from [sql.Rows] into a [models.ImportRun]
func (r *RunRepository) scanRow(rows *sql.Rows) (*models.ImportRun, error) {
	var (
		id          string
		sequence    int
		mode        string
		sourceRef   string
		playlistID  string
		playlistURL string
		title       string
		privacy     string
		attempted   int
		added       int
		failed      int
		skipped     int
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	err := rows.Scan(
		&id, &sequence, &mode, &sourceRef, &playlistID, &playlistURL,
		&title, &privacy, &attempted, &added, &failed, &skipped,
		&createdAt, &updatedAt, &deletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	return buildRun(id, sequence, mode, sourceRef, playlistID, playlistURL,
		title, privacy, attempted, added, failed, skipped,
		createdAt, updatedAt, deletedAt), nil
}

func buildRun(id string, sequence int, mode, sourceRef, playlistID, playlistURL,
	title, privacy string, attempted, added, failed, skipped int,
	createdAt, updatedAt time.Time, deletedAt sql.NullTime,
) *models.ImportRun {
	run := models.NewImportRun(sequence, mode, sourceRef, playlistID, playlistURL, title, privacy)
	run.SetID(id)
	run.SetCounts(attempted, added, failed, skipped)
	run.SetCreatedAt(createdAt)
	run.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		run.SetDeletedAt(&deletedAt.Time)
	}
	return run
}
