package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Classifier ClassifierConfig
	Ingest     IngestConfig
	List       ListConfig
	Cache      CacheConfig
	Metrics    MetricsConfig
	TLS        TLSConfig

	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"4M"`
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"3210"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"frauddb"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"16"`
}

type ClassifierConfig struct {
	URL              string        `env:"CLASSIFIER_URL" envDefault:"http://127.0.0.1:5000/predict"`
	Timeout          time.Duration `env:"CLASSIFIER_TIMEOUT" envDefault:"5s"`
	FallbackKeywords []string      `env:"CLASSIFIER_FALLBACK_KEYWORDS" envSeparator:"," envDefault:"win,free,prize,bonus,click,cash,lottery,offer,secure-login"`
}

// IngestConfig controls the bulk pipeline. ClassifyConcurrency of zero means
// one classifier call in flight per batch member.
type IngestConfig struct {
	BatchSize           int `env:"INGEST_BATCH_SIZE" envDefault:"100"`
	ClassifyConcurrency int `env:"INGEST_CLASSIFY_CONCURRENCY" envDefault:"0"`
	MaxBulkLinks        int `env:"INGEST_MAX_BULK_LINKS" envDefault:"10000"`
}

type ListConfig struct {
	DefaultLimit int `env:"LIST_DEFAULT_LIMIT" envDefault:"200"`
	MaxLimit     int `env:"LIST_MAX_LIMIT" envDefault:"500"`
}

type CacheConfig struct {
	Enabled     bool `env:"CACHE_ENABLED" envDefault:"true"`
	MaxSizePow2 int  `env:"CACHE_MAX_SIZE_POW2" envDefault:"20"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"4096"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"512"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"3443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

// LoaderConfig configures cmd/bulkload.
type LoaderConfig struct {
	BaseURL   string        `env:"LOADER_BASE_URL" envDefault:"http://localhost:3210"`
	ChunkSize int           `env:"LOADER_CHUNK_SIZE" envDefault:"500"`
	Workers   int           `env:"LOADER_WORKERS" envDefault:"4"`
	Timeout   time.Duration `env:"LOADER_TIMEOUT" envDefault:"60s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadLoader() (*LoaderConfig, error) {
	var cfg LoaderConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
