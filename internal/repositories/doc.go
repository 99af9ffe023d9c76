// Package repositories implements SQLite persistence for the importer's domain entities.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
// Repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// [RunRepository] persists import run summaries and backs the history
// commands; it also satisfies the import engine's recorder interface.
//
// Sequence numbers provide stable, human-readable ordering (e.g., run #42) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments named counters in the sequences table.
package repositories
