package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultBaseURL is the site origin every summary and document URL hangs off.
const DefaultBaseURL = "https://boe.es"

// Kind identifies one of the two supported bulletin types.
type Kind string

const (
	KindBOE   Kind = "BOE"
	KindBORME Kind = "BORME"
)

// LinkKind selects which link field of a summary item is downloadable.
type LinkKind string

const (
	LinkXML LinkKind = "xml"
	LinkPDF LinkKind = "pdf"
)

// KindConfig is the static per-kind configuration: where the daily summary
// lives, how issuers are tagged inside it, which link field items expose,
// and the subdirectory the mirror writes under.
type KindConfig struct {
	SummaryPath string
	IssuerTag   string
	Link        LinkKind
	Subdir      string
}

var kindConfigs = map[Kind]KindConfig{
	KindBOE: {
		SummaryPath: "/diario_boe/xml.php?id=BOE-S-",
		IssuerTag:   "departamento",
		Link:        LinkXML,
		Subdir:      "boe",
	},
	KindBORME: {
		SummaryPath: "/diario_borme/xml.php?id=BORME-S-",
		IssuerTag:   "emisor",
		Link:        LinkPDF,
		Subdir:      "borme",
	},
}

// ParseKind accepts a bulletin type name case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindBOE:
		return KindBOE, nil
	case KindBORME:
		return KindBORME, nil
	default:
		return "", &OpError{
			Op:   "domain.parsekind",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("%w: %q (expected BOE or BORME)", ErrUnknownKind, s),
		}
	}
}

// Config returns the static configuration for the kind.
func (k Kind) Config() KindConfig {
	return kindConfigs[k]
}

// Date is a bulletin publication date, kept as the zero-padded strings the
// URLs and directory tree are built from.
type Date struct {
	Year  string
	Month string
	Day   string
}

// ParseDate validates the YYYYMMDD form: exactly 8 numeric characters.
func ParseDate(s string) (Date, error) {
	if len(s) != 8 || !isDigits(s) {
		return Date{}, &OpError{
			Op:   "domain.parsedate",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("%w: %q (expected YYYYMMDD)", ErrInvalidDate, s),
		}
	}
	return Date{Year: s[:4], Month: s[4:6], Day: s[6:8]}, nil
}

func (d Date) String() string {
	return d.Year + d.Month + d.Day
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// BulletinRequest drives one mirror run. Immutable once constructed.
type BulletinRequest struct {
	Date Date
	Kind Kind
}

// SummaryURL is the daily summary document URL for the request.
func (r BulletinRequest) SummaryURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + r.Kind.Config().SummaryPath + r.Date.String()
}

// SummaryDir is the local directory the summary and its issuer subtrees are
// mirrored under: <outdir>/<kind-subdir>/<year>/<month>/<day>.
func (r BulletinRequest) SummaryDir(outDir string) string {
	return filepath.Join(outDir, r.Kind.Config().Subdir, r.Date.Year, r.Date.Month, r.Date.Day)
}
