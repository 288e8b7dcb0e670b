// Package store owns the single Résumé Document and mediates all reads and
// writes, guaranteeing the whole document is persisted after every mutation.
package store

import "context"

// SnapshotKey is the fixed key under which the serialized document is stored.
const SnapshotKey = "resume_data"

// Backend is the durable key-value blob behind the store. Implementations
// hold exactly one value: the JSON-serialized document under SnapshotKey.
type Backend interface {
	// Read returns the stored snapshot bytes, or (nil, nil) when no snapshot
	// has been written yet.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored snapshot with data as one atomic overwrite.
	Write(ctx context.Context, data []byte) error
}
