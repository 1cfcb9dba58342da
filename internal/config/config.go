package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Minio    MinioConfig
	NATS     NATSConfig
	Upload   UploadConfig
	Dedup    DedupConfig
	AI       AIConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY" required:"true"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
	// PublicBaseURL overrides the endpoint when building retrievable object URLs,
	// for deployments where clients reach storage through a different host.
	PublicBaseURL string `envconfig:"MINIO_PUBLIC_BASE_URL" default:""`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL" required:"true"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"RECORDINGS"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"transcriber"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"recordings.uploaded"`
	DeliverGroup string `envconfig:"NATS_DELIVER_GROUP" default:"transcribers"`
}

type UploadConfig struct {
	StagingDir   string        `envconfig:"UPLOAD_STAGING_DIR" default:"/tmp/med-voice"`
	MaxFileSize  int64         `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"52428800"` // 50MB
	SessionTTL   time.Duration `envconfig:"UPLOAD_SESSION_TTL" default:"30m"`
	CleanupEvery time.Duration `envconfig:"UPLOAD_CLEANUP_EVERY" default:"15m"`
}

type DedupConfig struct {
	FreshnessWindow time.Duration `envconfig:"DEDUP_FRESHNESS_WINDOW" default:"30s"`
	FallbackBucket  time.Duration `envconfig:"DEDUP_FALLBACK_BUCKET" default:"5s"`
	SweepEvery      time.Duration `envconfig:"DEDUP_SWEEP_EVERY" default:"1m"`
}

type AIConfig struct {
	APIKey string `envconfig:"GEMINI_API_KEY" required:"true"`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
