package domain

import "time"

// Config represents the tunable run configuration loaded from boedl.yaml
// and the environment. The operation inputs (date, kind, outdir) come from
// flags instead and live in BulletinRequest.
type Config struct {
	BaseURL string
	HTTP    HTTPConfig
	Mirror  MirrorConfig
}

type HTTPConfig struct {
	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

type MirrorConfig struct {
	// ChunkSize bounds memory per transfer; documents may be large PDFs.
	ChunkSize int
}

// DefaultConfig provides sane defaults if boedl.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		HTTP: HTTPConfig{
			DialTimeout:         5 * time.Second,
			KeepAlive:           30 * time.Second,
			TLSHandshake:        5 * time.Second,
			ResponseHeader:      10 * time.Second,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
		},
		Mirror: MirrorConfig{
			ChunkSize: 8192,
		},
	}
}
