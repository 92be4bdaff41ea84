package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/J-Rios/boe-borme-downloader/internal/domain"
	"github.com/J-Rios/boe-borme-downloader/internal/infra/logger"
)

func executeRoot(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(logger.Reset)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRootRejectsShortDate(t *testing.T) {
	err := executeRoot(t, "--date", "2023101", "--type", "BOE", "--outdir", t.TempDir())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestRootRejectsNonNumericDate(t *testing.T) {
	err := executeRoot(t, "--date", "2023-10-01", "--type", "BOE", "--outdir", t.TempDir())
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestRootRejectsUnknownType(t *testing.T) {
	err := executeRoot(t, "--date", "20231007", "--type", "FOO", "--outdir", t.TempDir())
	if !errors.Is(err, domain.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestRootRequiresFlags(t *testing.T) {
	if err := executeRoot(t); err == nil {
		t.Fatalf("expected missing-flag error")
	}
	if err := executeRoot(t, "--date", "20231007", "--type", "BOE"); err == nil {
		t.Fatalf("expected missing outdir error")
	}
}
