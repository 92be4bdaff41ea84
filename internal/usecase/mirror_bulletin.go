package usecase

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/J-Rios/boe-borme-downloader/internal/domain"
	"github.com/J-Rios/boe-borme-downloader/internal/ports"
)

// MirrorBulletin resolves a day's summary and mirrors every referenced
// document into the local tree. Item failures are isolated: one failing
// document (or one issuer whose directory cannot be created) never aborts
// the rest of the run.
type MirrorBulletin struct {
	resolver ports.SummaryResolver
	store    ports.DocumentStore
	log      *slog.Logger

	baseURL string
	outDir  string
}

func NewMirrorBulletin(resolver ports.SummaryResolver, store ports.DocumentStore, log *slog.Logger, baseURL, outDir string) *MirrorBulletin {
	return &MirrorBulletin{
		resolver: resolver,
		store:    store,
		log:      log,
		baseURL:  baseURL,
		outDir:   outDir,
	}
}

// Execute runs one mirror pass. Cancellation is observed between each
// issuer and each item, so a termination signal stops the run at the next
// unit boundary with the partial result returned alongside ctx.Err().
func (uc *MirrorBulletin) Execute(ctx context.Context, req domain.BulletinRequest) (domain.MirrorResult, error) {
	var res domain.MirrorResult

	if err := ctx.Err(); err != nil {
		return res, err
	}

	idx, err := uc.resolver.Resolve(ctx, req)
	if err != nil {
		return res, err
	}

	summaryURL := req.SummaryURL(uc.baseURL)
	summaryDir := req.SummaryDir(uc.outDir)

	// The summary itself is kept with skip-if-exists: reruns for the same
	// date find it on disk and perform no extra fetch.
	if _, err := uc.store.Store(ctx, summaryURL, summaryDir, ports.StoreOptions{SkipExisting: true}); err != nil {
		uc.log.Error("summary.store_failed", "url", summaryURL, "dir", summaryDir, "err", err)
	}

	link := req.Kind.Config().Link

	for _, issuer := range idx.Issuers {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		issuerDir := filepath.Join(summaryDir, issuer.ID)
		if err := uc.store.EnsureDir(issuerDir); err != nil {
			uc.log.Error("issuer.skipped", "issuer", issuer.ID, "dir", issuerDir, "err", err)
			continue
		}

		for _, item := range issuer.Items {
			if err := ctx.Err(); err != nil {
				return res, err
			}

			docURL, urlErr := item.DocumentURL(uc.baseURL, link)
			if urlErr != nil {
				uc.log.Error("item.link_missing", "issuer", issuer.ID, "err", urlErr)
				res.Failed++
				continue
			}

			uc.log.Info("item.downloading", "url", docURL, "dir", issuerDir)

			// Items are always re-fetched, existing files included. Only
			// the summary document gets the skip policy.
			path, storeErr := uc.store.Store(ctx, docURL, issuerDir, ports.StoreOptions{})
			if storeErr != nil || path == "" {
				uc.log.Error("item.store_failed", "url", docURL, "err", storeErr)
				res.Failed++
				continue
			}
			res.Downloaded++
		}
	}

	return res, nil
}
