package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	// Config -.
	Config struct {
		App       `yaml:"app"`
		Server    `yaml:"server"`
		Log       `yaml:"logger"`
		Recording `yaml:"recording"`
		Storage   `yaml:"storage"`
		OTEL      `yaml:"otel"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name"    env:"APP_NAME"`
		Version string `env-required:"true" yaml:"version" env:"APP_VERSION"`
	}

	// Server -.
	Server struct {
		Port string `env-required:"true" yaml:"port" env:"HTTP_PORT"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// Recording -.
	Recording struct {
		Dir        string `yaml:"dir"         env:"RECORDING_DIR"         env-default:"recordings"`
		SampleRate int    `yaml:"sample_rate" env:"RECORDING_SAMPLE_RATE" env-default:"16000"`
		Channels   int    `yaml:"channels"    env:"RECORDING_CHANNELS"    env-default:"1"`
		// QueueSize bounds the in-process job queue. A full queue rejects
		// new uploads with 503 instead of blocking the request path.
		QueueSize   int  `yaml:"queue_size"   env:"RECORDING_QUEUE_SIZE" env-default:"1024"`
		ArchiveFLAC bool `yaml:"archive_flac" env:"RECORDING_ARCHIVE_FLAC" env-default:"false"`
	}

	// Storage is the optional S3-compatible mirror for finished recordings.
	Storage struct {
		Enabled   bool   `yaml:"enabled"    env:"STORAGE_ENABLED" env-default:"false"`
		Endpoint  string `yaml:"endpoint"   env:"STORAGE_ENDPOINT"`
		Region    string `yaml:"region"     env:"STORAGE_REGION" env-default:"us-east-1"`
		Bucket    string `yaml:"bucket"     env:"STORAGE_BUCKET"`
		AccessKey string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
		SecretKey string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
	}

	// OTEL -.
	OTEL struct {
		Enabled      bool   `yaml:"enabled"       env:"OTEL_ENABLED" env-default:"false"`
		OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_OTLP_ENDPOINT" env-default:"localhost:4317"`
	}
)

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	cfg := &Config{}

	err := cleanenv.ReadConfig("./config/config.yml", cfg)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
