package domain

import (
	"fmt"
	"strings"
)

// SummaryIndex is the parsed daily summary: issuers in document order, each
// with its items in document order. Produced once per run, read-only after.
type SummaryIndex struct {
	Issuers []Issuer
}

// Issuer groups the documents published by one department/entity. ID is used
// verbatim as a directory segment.
type Issuer struct {
	ID    string
	Items []DocumentItem
}

// DocumentItem carries both link fields a summary item may expose. Which one
// is downloadable depends on the kind's configured LinkKind.
type DocumentItem struct {
	XMLPath string
	PDFPath string
}

// DocumentURL resolves the downloadable URL for the configured link field.
// Relative references are prefixed with the site origin; absolute ones are
// taken verbatim. A missing field reports ErrMissingLinkField instead of
// silently yielding an empty URL.
func (it DocumentItem) DocumentURL(baseURL string, link LinkKind) (string, error) {
	ref := it.XMLPath
	if link == LinkPDF {
		ref = it.PDFPath
	}
	if ref == "" {
		return "", &OpError{
			Op:   "domain.documenturl",
			Kind: KindParse,
			Err:  fmt.Errorf("%w: %s link", ErrMissingLinkField, link),
		}
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	return strings.TrimSuffix(baseURL, "/") + ref, nil
}

// MirrorResult is the run's aggregate: documents stored and documents that
// failed to store.
type MirrorResult struct {
	Downloaded int
	Failed     int
}
