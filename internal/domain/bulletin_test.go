package domain

import (
	"errors"
	"path/filepath"
	"testing"
)

// --- ParseDate ---

func TestParseDate(t *testing.T) {
	d, err := ParseDate("20231007")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year != "2023" || d.Month != "10" || d.Day != "07" {
		t.Fatalf("unexpected decomposition: %+v", d)
	}
	if d.String() != "20231007" {
		t.Fatalf("expected round-trip, got %q", d.String())
	}
}

func TestParseDateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"seven digits", "2023101"},
		{"nine digits", "202310071"},
		{"dashes", "2023-10-01"},
		{"letters", "2023100a"},
		{"empty", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseDate(c.input)
			if err == nil {
				t.Fatalf("expected error for %q", c.input)
			}
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate, got %v", err)
			}
			if !IsKind(err, KindInvalidInput) {
				t.Fatalf("expected invalid_input kind, got %v", err)
			}
		})
	}
}

// --- ParseKind ---

func TestParseKind(t *testing.T) {
	cases := []struct {
		input string
		want  Kind
	}{
		{"BOE", KindBOE},
		{"boe", KindBOE},
		{"Borme", KindBORME},
		{"BORME", KindBORME},
		{" boe ", KindBOE},
	}
	for _, c := range cases {
		got, err := ParseKind(c.input)
		if err != nil {
			t.Fatalf("ParseKind(%q): unexpected error: %v", c.input, err)
		}
		if got != c.want {
			t.Fatalf("ParseKind(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestParseKindRejectsUnknown(t *testing.T) {
	_, err := ParseKind("FOO")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if !IsKind(err, KindInvalidInput) {
		t.Fatalf("expected invalid_input kind, got %v", err)
	}
}

// --- KindConfig ---

func TestKindConfig(t *testing.T) {
	boe := KindBOE.Config()
	if boe.IssuerTag != "departamento" || boe.Link != LinkXML || boe.Subdir != "boe" {
		t.Fatalf("unexpected BOE config: %+v", boe)
	}

	borme := KindBORME.Config()
	if borme.IssuerTag != "emisor" || borme.Link != LinkPDF || borme.Subdir != "borme" {
		t.Fatalf("unexpected BORME config: %+v", borme)
	}
}

// --- derivations ---

func TestSummaryURL(t *testing.T) {
	d, _ := ParseDate("20231007")

	req := BulletinRequest{Date: d, Kind: KindBOE}
	want := "https://boe.es/diario_boe/xml.php?id=BOE-S-20231007"
	if got := req.SummaryURL(DefaultBaseURL); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	req.Kind = KindBORME
	want = "https://boe.es/diario_borme/xml.php?id=BORME-S-20231007"
	if got := req.SummaryURL(DefaultBaseURL); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSummaryURLTrimsTrailingSlash(t *testing.T) {
	d, _ := ParseDate("20231007")
	req := BulletinRequest{Date: d, Kind: KindBOE}

	want := "https://boe.es/diario_boe/xml.php?id=BOE-S-20231007"
	if got := req.SummaryURL("https://boe.es/"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSummaryDir(t *testing.T) {
	d, _ := ParseDate("20231007")

	req := BulletinRequest{Date: d, Kind: KindBOE}
	want := filepath.Join("/tmp/out", "boe", "2023", "10", "07")
	if got := req.SummaryDir("/tmp/out"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	req.Kind = KindBORME
	want = filepath.Join("/tmp/out", "borme", "2023", "10", "07")
	if got := req.SummaryDir("/tmp/out"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
