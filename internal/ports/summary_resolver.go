package ports

import (
	"context"

	"github.com/J-Rios/boe-borme-downloader/internal/domain"
)

// SummaryResolver fetches the daily summary document for a request and
// parses it into a navigable index of issuers and their items.
type SummaryResolver interface {
	Resolve(ctx context.Context, req domain.BulletinRequest) (domain.SummaryIndex, error)
}
