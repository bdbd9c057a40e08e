package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, storage backends,
// the breach provider, verification tuning, authentication, background jobs
// and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"breachcheck" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the optional shared store for rate limits and cached results.
	// When URL is empty an in-process store is used.
	Redis struct {
		// URL is a redis:// connection URL or a plain host:port address
		URL string `env:"REDIS_URL" env-default:"" yaml:"url"`
		// Password overrides the password of URL
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		// DB selects the logical database
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// Prefix is prepended to every key
		Prefix string `env:"REDIS_PREFIX" env-default:"breachcheck:" yaml:"prefix"`
	} `yaml:"redis"`

	// Provider configures the breach data provider client
	Provider struct {
		// BaseURL is the provider API root
		BaseURL string `env:"DEHASHED_BASE_URL" env-default:"https://api.dehashed.com" yaml:"baseUrl"`
		// APIKey authenticates against the provider, only the serve command requires it
		APIKey string `env:"DEHASHED_API_KEY" env-default:"" yaml:"apiKey"`
		// Timeout bounds a single provider call
		Timeout time.Duration `env:"DEHASHED_TIMEOUT" env-default:"20s" yaml:"timeout"`
		// PageSize is the number of records requested per search
		PageSize int `env:"DEHASHED_PAGE_SIZE" env-default:"100" yaml:"pageSize"`
	} `yaml:"provider"`

	// Verification tunes breach verification
	Verification struct {
		// RateLimit is the number of verifications a user may start per RateWindow
		RateLimit int `env:"VERIFICATION_RATE_LIMIT" env-default:"10" yaml:"rateLimit"`
		// RateWindow is the fixed rate limiting window
		RateWindow time.Duration `env:"VERIFICATION_RATE_WINDOW" env-default:"1m" yaml:"rateWindow"`
		// CacheTTL is how long a computed result is reused for identical searches
		CacheTTL time.Duration `env:"VERIFICATION_CACHE_TTL" env-default:"10m" yaml:"cacheTtl"`
		// HistoryLimit is the number of history rows returned to a user
		HistoryLimit uint `env:"VERIFICATION_HISTORY_LIMIT" env-default:"10" yaml:"historyLimit"`
		// PauseEvery is the number of passwords analyzed between pauses
		PauseEvery int `env:"VERIFICATION_PAUSE_EVERY" env-default:"5" yaml:"pauseEvery"`
		// Pause is the pause between password batches, zero disables pacing
		Pause time.Duration `env:"VERIFICATION_PAUSE" env-default:"100ms" yaml:"pause"`
		// PasswordPepper keys the digests stored for exposed passwords
		PasswordPepper string `env:"VERIFICATION_PASSWORD_PEPPER" env-default:"" yaml:"passwordPepper"`
	} `yaml:"verification"`

	// JWT holds the RSA keys used for bearer authentication
	JWT struct {
		// PublicKey is the PEM encoded key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey is the PEM encoded key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Worker configures background jobs
	Worker struct {
		// StaleAfter is how long a search may stay PROCESSING before it is failed
		StaleAfter time.Duration `env:"WORKER_STALE_AFTER" env-default:"15m" yaml:"staleAfter"`
		// MaxWorkers limits concurrently running jobs
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// defaultPauseEvery mirrors the analyzer default applied to a non-positive PauseEvery.
const defaultPauseEvery = 5

// PauseBudget is the longest time password analysis may spend pausing for a
// single search, which is bounded by the provider page size.
func (c *Config) PauseBudget() time.Duration {
	if c.Verification.Pause <= 0 || c.Provider.PageSize <= 1 {
		return 0
	}
	every := c.Verification.PauseEvery
	if every <= 0 {
		every = defaultPauseEvery
	}

	return time.Duration((c.Provider.PageSize-1)/every) * c.Verification.Pause
}

func (c *Config) validate() error {
	if c.HTTP.RequestTimeout <= 0 {
		return nil
	}
	if need := c.Provider.Timeout + c.PauseBudget(); c.HTTP.RequestTimeout < need {
		return fmt.Errorf("http request timeout %s is shorter than provider timeout plus pacing (%s)",
			c.HTTP.RequestTimeout, need)
	}

	return nil
}

// ValidateProvider reports whether the breach provider is configured.
func (c *Config) ValidateProvider() error {
	if c.Provider.APIKey == "" {
		return errors.New("DEHASHED_API_KEY is required")
	}

	return nil
}
