package httpclient

import (
	"net"
	"net/http"

	"github.com/J-Rios/boe-borme-downloader/internal/domain"
)

// New builds the HTTP client both the Summary Resolver and the document
// store share. Transport-level timeouts keep connection setup bounded, but
// no overall request deadline is set: documents may be large PDFs and a
// transfer is never cut off mid-body. Redirects follow the default policy.
func New(cfg domain.HTTPConfig) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
	}
}
