package filestore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/J-Rios/boe-borme-downloader/internal/domain"
	"github.com/J-Rios/boe-borme-downloader/internal/ports"
)

const (
	defaultChunkSize = 8192
	dirMode          = 0o775
	fileMode         = 0o644
)

// Store downloads remote documents into local directories through an
// afero filesystem. Bodies are written in fixed-size chunks so memory use
// stays bounded regardless of document size. A failed or interrupted
// transfer leaves whatever bytes were flushed on disk; there is no cleanup
// or resumption.
type Store struct {
	fs        afero.Fs
	client    *http.Client
	chunkSize int
	log       *slog.Logger
}

type Option func(*Store)

func WithChunkSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

func NewStore(client *http.Client, log *slog.Logger, opts ...Option) *Store {
	return NewStoreWithFS(afero.NewOsFs(), client, log, opts...)
}

func NewStoreWithFS(fs afero.Fs, client *http.Client, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		fs:        fs,
		client:    client,
		chunkSize: defaultChunkSize,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.DocumentStore = (*Store)(nil)

// FileNameFromURL derives the local file name from the URL's final path
// segment. Segments of the form xml.php?id=BOE-A-2023-12345 encode the
// document id after an '='; only the value portion is used then.
func FileNameFromURL(rawURL string) string {
	name := rawURL
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "="); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// EnsureDir creates dir and any missing parents with mode 0775.
func (s *Store) EnsureDir(dir string) error {
	if ok, err := afero.DirExists(s.fs, dir); err == nil && ok {
		return nil
	}
	if err := s.fs.MkdirAll(dir, dirMode); err != nil {
		return &domain.OpError{
			Op:   "filestore.mkdir",
			Kind: domain.KindStorage,
			Path: dir,
			Err:  err,
		}
	}
	return nil
}

// Store fetches rawURL into dir. With SkipExisting set it short-circuits
// before any network access when the target file is already present,
// returning its path.
func (s *Store) Store(ctx context.Context, rawURL string, dir string, opts ports.StoreOptions) (string, error) {
	path := filepath.Join(dir, FileNameFromURL(rawURL))

	if opts.SkipExisting {
		if ok, err := afero.Exists(s.fs, path); err == nil && ok {
			s.log.Info("file.skip_existing", "path", path)
			return path, nil
		}
	}

	if err := s.EnsureDir(dir); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &domain.OpError{
			Op:   "filestore.fetch",
			Kind: domain.KindFetch,
			Path: rawURL,
			Err:  err,
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &domain.OpError{
			Op:   "filestore.fetch",
			Kind: domain.KindFetch,
			Path: rawURL,
			Err:  err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &domain.OpError{
			Op:   "filestore.fetch",
			Kind: domain.KindFetch,
			Path: rawURL,
			Err:  fmt.Errorf("status code %d", resp.StatusCode),
		}
	}

	if err := s.write(path, resp.Body); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) write(path string, body io.Reader) error {
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return &domain.OpError{
			Op:   "filestore.write",
			Kind: domain.KindStorage,
			Path: path,
			Err:  err,
		}
	}

	buf := make([]byte, s.chunkSize)
	_, copyErr := io.CopyBuffer(f, body, buf)
	closeErr := f.Close()

	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		return &domain.OpError{
			Op:   "filestore.write",
			Kind: domain.KindStorage,
			Path: path,
			Err:  copyErr,
		}
	}
	return nil
}
