package ports

import "context"

// StoreOptions controls one fetch-and-store attempt.
type StoreOptions struct {
	// SkipExisting short-circuits without any network access when the
	// target file is already present on disk.
	SkipExisting bool
}

// DocumentStore performs fetch-and-store of remote documents into local
// directories. Store returns the written (or skipped) local path.
type DocumentStore interface {
	Store(ctx context.Context, url string, dir string, opts StoreOptions) (path string, err error)
	EnsureDir(dir string) error
}
