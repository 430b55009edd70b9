package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Remote   RemoteConfig
	Upload   UploadConfig
	Sweep    SweepConfig
	Minio    MinioConfig
	NATS     NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

// RemoteConfig points at the black-box upload endpoint.
type RemoteConfig struct {
	EndpointURL string        `envconfig:"REMOTE_ENDPOINT_URL" required:"true"`
	Folder      string        `envconfig:"REMOTE_FOLDER" default:"photo-share-albums"`
	Timeout     time.Duration `envconfig:"REMOTE_TIMEOUT" default:"60s"`
}

type UploadConfig struct {
	Concurrency      int           `envconfig:"UPLOAD_CONCURRENCY" default:"6"`
	MaxRetries       int           `envconfig:"UPLOAD_MAX_RETRIES" default:"3"`
	RetryBaseDelay   time.Duration `envconfig:"UPLOAD_RETRY_BASE_DELAY" default:"800ms"`
	InterUploadDelay time.Duration `envconfig:"UPLOAD_INTER_UPLOAD_DELAY" default:"200ms"`
	MaxFileSize      int64         `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"10485760"` // 10MB
	Retention        time.Duration `envconfig:"UPLOAD_RETENTION" default:"24h"`
	ShareOrigin      string        `envconfig:"SHARE_ORIGIN" default:"http://localhost:8080"`
}

type SweepConfig struct {
	SweepInterval   time.Duration `envconfig:"SWEEP_INTERVAL" default:"1h"`
	ReclaimInterval time.Duration `envconfig:"RECLAIM_INTERVAL" default:"24h"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY" required:"true"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL" required:"true"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"PHOTOS"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"payload-cleanup"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"photos.deleted"`
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

func Load() (*Config, error) {
	// local development convenience; absent .env is not an error
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
