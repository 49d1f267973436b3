package config

import (
	"os"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultStorageDriver      = "postgres"
	defaultDeliveryWindow     = time.Hour
	defaultWorkerPort         = 8081
)

// HTTPTimeouts bounds each phase of a served request.
type HTTPTimeouts struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int          `json:"port" yaml:"port"`
		MaxRequestBodySize string       `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           HTTPTimeouts `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker is the push endpoint process. It shares the HTTP timeouts.
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth     *AuthConfig     `json:"auth" yaml:"auth"`
	Orders   *OrdersConfig   `json:"orders" yaml:"orders"`
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
	QRCode   *QRCodeConfig   `json:"qrcode" yaml:"qrcode"`
	PubSub   *PubSubConfig   `json:"pubsub" yaml:"pubsub"`
}

// StorageConfig selects the repositories. Driver is "postgres" or "memory".
type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	// AutoMigrate applies the embedded migrations on startup. Ignored by the memory driver.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

type OrdersConfig struct {
	// DefaultDeliveryWindow is added to the placement time when no delivery time is requested.
	DefaultDeliveryWindow time.Duration `json:"defaultDeliveryWindow" yaml:"defaultDeliveryWindow"`
	// RestockOnCancel is a pointer so an absent key keeps the default of true.
	RestockOnCancel *bool `json:"restockOnCancel" yaml:"restockOnCancel"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BaseURL prefixes the order ID in the encoded tracking link.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig picks where order events go. Which fields apply depends on Provider:
//
//	local:   LocalEndpoint, the worker push URL
//	google:  ProjectID and TopicID
//	gocloud: TopicURL, e.g. "mem://order-events"
type PubSubConfig struct {
	Provider      string `json:"provider" yaml:"provider"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
	TopicURL      string `json:"topicUrl" yaml:"topicUrl"`
}

func (c *Config) OrderDeliveryWindow() time.Duration {
	if c.Orders == nil || c.Orders.DefaultDeliveryWindow <= 0 {
		return defaultDeliveryWindow
	}

	return c.Orders.DefaultDeliveryWindow
}

func (c *Config) RestockOnCancel() bool {
	if c.Orders == nil || c.Orders.RestockOnCancel == nil {
		return true
	}

	return *c.Orders.RestockOnCancel
}

func (c *Config) WorkerPort() int {
	if c.Worker.Port <= 0 {
		return defaultWorkerPort
	}

	return c.Worker.Port
}

// New loads config.yaml, overlays the environment, fills defaults and validates the result.
func New() (*Config, error) {
	cfg, err := Load[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.LookupEnv)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(c.Storage.Driver) == "" {
		c.Storage.Driver = defaultStorageDriver
	}
}
