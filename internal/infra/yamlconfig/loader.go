package yamlconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/J-Rios/boe-borme-downloader/internal/domain"
)

const defaultFileName = "boedl.yaml"

// Env override keys, applied after the file. A .env in the working
// directory is folded into the environment first.
const (
	envBaseURL   = "BOE_BASE_URL"
	envChunkSize = "BOE_CHUNK_SIZE"
)

// Load builds the run configuration: defaults, then the YAML file, then
// environment overrides. With path == "" the default file name is tried in
// the working directory and its absence is not an error.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultFileName
	}

	b, err := os.ReadFile(path)
	switch {
	case err != nil && explicit:
		return cfg, &domain.OpError{
			Op:   "yamlconfig.load",
			Kind: domain.KindInvalidInput,
			Path: path,
			Err:  err,
		}
	case err == nil:
		if err := apply(&cfg, b); err != nil {
			return cfg, &domain.OpError{
				Op:   "yamlconfig.load",
				Kind: domain.KindInvalidInput,
				Path: path,
				Err:  err,
			}
		}
	}

	_ = godotenv.Load()
	applyEnv(&cfg)

	return cfg, nil
}

func apply(cfg *domain.Config, b []byte) error {
	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return err
	}

	if y.BaseURL != "" {
		cfg.BaseURL = y.BaseURL
	}
	if y.Mirror.ChunkSize > 0 {
		cfg.Mirror.ChunkSize = y.Mirror.ChunkSize
	}

	durs := []struct {
		raw string
		dst *time.Duration
	}{
		{y.HTTP.DialTimeout, &cfg.HTTP.DialTimeout},
		{y.HTTP.KeepAlive, &cfg.HTTP.KeepAlive},
		{y.HTTP.TLSHandshake, &cfg.HTTP.TLSHandshake},
		{y.HTTP.ResponseHeader, &cfg.HTTP.ResponseHeader},
		{y.HTTP.IdleConnTimeout, &cfg.HTTP.IdleConnTimeout},
	}
	for _, d := range durs {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", d.raw, err)
		}
		*d.dst = v
	}

	if y.HTTP.MaxIdleConns > 0 {
		cfg.HTTP.MaxIdleConns = y.HTTP.MaxIdleConns
	}
	if y.HTTP.MaxIdleConnsPerHost > 0 {
		cfg.HTTP.MaxIdleConnsPerHost = y.HTTP.MaxIdleConnsPerHost
	}

	return nil
}

func applyEnv(cfg *domain.Config) {
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envChunkSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Mirror.ChunkSize = n
		}
	}
}

type yamlConfig struct {
	BaseURL string `yaml:"base_url"`

	HTTP struct {
		DialTimeout     string `yaml:"dial_timeout"`
		KeepAlive       string `yaml:"keep_alive"`
		TLSHandshake    string `yaml:"tls_handshake_timeout"`
		ResponseHeader  string `yaml:"response_header_timeout"`
		IdleConnTimeout string `yaml:"idle_conn_timeout"`

		MaxIdleConns        int `yaml:"max_idle_conns"`
		MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host"`
	} `yaml:"http"`

	Mirror struct {
		ChunkSize int `yaml:"chunk_size"`
	} `yaml:"mirror"`
}
