// Package models defines the persistent domain entities for the importer.
//
// [ImportRun] records one completed import: its mode (file, playlist,
// watch-later), the source reference, the created playlist, and the
// attempted/added/failed/skipped counts.
//
// Persistent entities implement the Model interface providing ID generation, timestamps, validation, and soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
