package summaryhtml

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/J-Rios/boe-borme-downloader/internal/domain"
	"github.com/J-Rios/boe-borme-downloader/internal/ports"
)

// Resolver implements the Summary Resolver: it fetches the daily summary
// document and parses it into a SummaryIndex. The body is run through a
// lenient markup parser, so element names arrive lowercased and a stray
// prolog or encoding quirk does not abort the parse.
type Resolver struct {
	client  *http.Client
	baseURL string
	log     *slog.Logger
}

func NewResolver(client *http.Client, baseURL string, log *slog.Logger) *Resolver {
	return &Resolver{
		client:  client,
		baseURL: baseURL,
		log:     log,
	}
}

var _ ports.SummaryResolver = (*Resolver)(nil)

func (r *Resolver) Resolve(ctx context.Context, req domain.BulletinRequest) (domain.SummaryIndex, error) {
	url := req.SummaryURL(r.baseURL)
	r.log.Info("summary.downloading", "url", url)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.SummaryIndex{}, &domain.OpError{
			Op:   "summaryhtml.resolve",
			Kind: domain.KindSummaryUnavailable,
			Path: url,
			Err:  err,
		}
	}

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return domain.SummaryIndex{}, &domain.OpError{
			Op:   "summaryhtml.resolve",
			Kind: domain.KindSummaryUnavailable,
			Path: url,
			Err:  err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.SummaryIndex{}, &domain.OpError{
			Op:   "summaryhtml.resolve",
			Kind: domain.KindSummaryUnavailable,
			Path: url,
			Err:  fmt.Errorf("status code %d", resp.StatusCode),
		}
	}

	doc, err := html.Parse(resp.Body)
	if err != nil || doc == nil {
		return domain.SummaryIndex{}, &domain.OpError{
			Op:   "summaryhtml.parse",
			Kind: domain.KindParse,
			Path: url,
			Err:  err,
		}
	}

	return parseIndex(doc, req.Kind.Config().IssuerTag), nil
}

// parseIndex extracts issuer elements by tag name in document order, each
// with its nested item elements. Issuers do not nest, so the walk does not
// descend into a matched issuer beyond collecting its items.
func parseIndex(doc *html.Node, issuerTag string) domain.SummaryIndex {
	var idx domain.SummaryIndex

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == issuerTag {
			idx.Issuers = append(idx.Issuers, domain.Issuer{
				ID:    getAttr(n, "etq"),
				Items: collectItems(n),
			})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return idx
}

func collectItems(issuer *html.Node) []domain.DocumentItem {
	var items []domain.DocumentItem

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "item" {
			items = append(items, domain.DocumentItem{
				XMLPath: childText(n, "urlxml"),
				PDFPath: childText(n, "urlpdf"),
			})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := issuer.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	return items
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// childText returns the trimmed text content of the first descendant
// element with the given name, or "" when absent.
func childText(n *html.Node, name string) string {
	var found *html.Node

	var walk func(c *html.Node)
	walk = func(c *html.Node) {
		if found != nil {
			return
		}
		if c.Type == html.ElementNode && c.Data == name {
			found = c
			return
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			walk(cc)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	if found == nil {
		return ""
	}
	return strings.TrimSpace(textOfNode(found))
}

func textOfNode(n *html.Node) string {
	var sb strings.Builder
	var walk func(c *html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			walk(cc)
		}
	}
	walk(n)
	return sb.String()
}
