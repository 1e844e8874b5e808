package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strings"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"rodut/internal/infrastructure/broker"
	"rodut/internal/infrastructure/contenthost"
	"rodut/internal/infrastructure/database"
	"rodut/internal/infrastructure/grpcserver"
	"rodut/internal/infrastructure/minio"
)

// DefaultAllowedCaller is the single caller address the service was built for.
const DefaultAllowedCaller = "162.43.19.187"

// HTTPConfig configures the ingest gateway listener.
type HTTPConfig struct {
	Address string `yaml:"address"`
	// PostBodyLimit caps create-post bodies, in echo's size notation ("8M").
	PostBodyLimit string `yaml:"post_body_limit"`
	// ShutdownTimeout is how long in-flight requests get on shutdown.
	ShutdownTimeout int64 `yaml:"shutdown_timeout_in_ms"`
}

// IngestConfig holds the admission and validation rules.
type IngestConfig struct {
	AllowedCallers []string `yaml:"allowed_callers"`
	// AuthorID pins the author of created posts; 0 means the first administrator.
	AuthorID      int64    `yaml:"author_id"`
	MaxUploadSize int64    `yaml:"max_upload_size"`
	AllowedTypes  []string `yaml:"allowed_types"`

	// APIKeyHash and APIKeySalt are read from the environment only.
	APIKeyHash string `yaml:"-"`
	APIKeySalt string `yaml:"-"`
}

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTP            HTTPConfig             `yaml:"http"`
	Ingest          IngestConfig           `yaml:"ingest"`
	Site            contenthost.Config     `yaml:"site"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	MinIOReader     minio.ReaderConfig     `yaml:"minio_reader"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	GRPCServer      grpcserver.Config      `yaml:"grpc_server"`
	Logger          logger.Config          `yaml:"logger"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		// A missing .env is fine outside production; the environment may
		// already carry everything.
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.Ingest.APIKeyHash = os.Getenv("API_KEY_HASH")
	config.Ingest.APIKeySalt = os.Getenv("API_KEY_SALT")
	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	config.applyDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if len(c.Ingest.AllowedCallers) == 0 {
		c.Ingest.AllowedCallers = []string{DefaultAllowedCaller}
	}

	if c.HTTP.PostBodyLimit == "" {
		c.HTTP.PostBodyLimit = "8M"
	}

	if c.HTTP.ShutdownTimeout == 0 {
		c.HTTP.ShutdownTimeout = 10000
	}

	if len(c.Logger.Targets) == 0 {
		c.Logger.Targets = []string{"console"}
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address is required")
	}

	for _, caller := range c.Ingest.AllowedCallers {
		if _, err := netip.ParseAddr(strings.TrimSpace(caller)); err != nil {
			return fmt.Errorf("ingest.allowed_callers: %w", err)
		}
	}

	if c.Ingest.APIKeyHash != "" {
		if len(c.Ingest.APIKeyHash) != 64 {
			return errors.New("API_KEY_HASH must be 64 hex characters")
		}

		if _, err := hex.DecodeString(c.Ingest.APIKeyHash); err != nil {
			return fmt.Errorf("API_KEY_HASH: %w", err)
		}
	}

	if c.Ingest.MaxUploadSize < 0 {
		return errors.New("ingest.max_upload_size must not be negative")
	}

	return nil
}
