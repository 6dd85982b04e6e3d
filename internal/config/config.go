package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Every value can be set in the YAML file and overridden by the environment.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

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
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"myuser"     yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"mypassword" yaml:"password"`
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost"  yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"       yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"    yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"yelpcamp"   yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"         yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"8"          yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"         yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"         yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT configures session tokens. Sessions are RS256 signed; the private key
	// is only needed by processes that issue sessions.
	JWT struct {
		PrivateKey string        `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		PublicKey  string        `env:"JWT_PUBLIC_KEY"  yaml:"publicKey"`
		TTL        time.Duration `env:"JWT_TTL"         env-default:"24h" yaml:"ttl"`
	} `yaml:"jwt"`

	// AdminCode grants the admin flag to users who present it at registration.
	// Empty disables admin self-registration.
	AdminCode string `env:"ADMIN_CODE" yaml:"adminCode"`

	// PasswordReset configures the forgot-password flow.
	PasswordReset struct {
		// TokenTTL is how long an issued reset token stays usable.
		TokenTTL time.Duration `env:"PASSWORD_RESET_TOKEN_TTL" env-default:"1h" yaml:"tokenTTL"`
		// TokenBytes is the amount of random bytes in a token (hex encoded, 20 bytes = 160 bits).
		TokenBytes int `env:"PASSWORD_RESET_TOKEN_BYTES" env-default:"20" yaml:"tokenBytes"`
		// BaseURL is prepended to "/reset/<token>" in the mailed link.
		BaseURL string `env:"PASSWORD_RESET_BASE_URL" env-default:"http://localhost:8080" yaml:"baseURL"`
	} `yaml:"passwordReset"`

	// Mail configures the SMTP transport.
	Mail struct {
		Host     string        `env:"MAIL_HOST"     env-default:"localhost"             yaml:"host"`
		Port     int           `env:"MAIL_PORT"     env-default:"587"                   yaml:"port"`
		Username string        `env:"MAIL_USERNAME" yaml:"username"`
		Password string        `env:"MAIL_PASSWORD" yaml:"password"`
		From     string        `env:"MAIL_FROM"     env-default:"no-reply@yelpcamp.dev" yaml:"from"`
		Timeout  time.Duration `env:"MAIL_TIMEOUT"  env-default:"10s"                   yaml:"timeout"`
	} `yaml:"mail"`

	// Notifier configures the follower fan-out.
	Notifier struct {
		// Concurrency bounds concurrent follower writes; 1 writes sequentially.
		Concurrency int `env:"NOTIFIER_CONCURRENCY" env-default:"4" yaml:"concurrency"`
	} `yaml:"notifier"`

	// Redis backs the geocoding cache.
	Redis struct {
		Addr     string `env:"REDIS_ADDR"     env-default:"localhost:6379" yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		DB       int    `env:"REDIS_DB"       env-default:"0"              yaml:"db"`
	} `yaml:"redis"`

	// Geocoder configures the Google geocoding client. An empty APIKey
	// disables geocoding; campgrounds are then stored without coordinates.
	Geocoder struct {
		APIKey   string        `env:"GEOCODER_API_KEY"   yaml:"apiKey"`
		BaseURL  string        `env:"GEOCODER_BASE_URL"  yaml:"baseURL"`
		Timeout  time.Duration `env:"GEOCODER_TIMEOUT"   env-default:"8s"   yaml:"timeout"`
		CacheTTL time.Duration `env:"GEOCODER_CACHE_TTL" env-default:"720h" yaml:"cacheTTL"`
	} `yaml:"geocoder"`

	// S3 configures presigned image uploads.
	S3 struct {
		Region     string        `env:"S3_REGION"      env-default:"us-east-1" yaml:"region"`
		Endpoint   string        `env:"S3_ENDPOINT"    yaml:"endpoint"`
		AccessKey  string        `env:"S3_ACCESS_KEY"  yaml:"accessKey"`
		SecretKey  string        `env:"S3_SECRET_KEY"  yaml:"secretKey"`
		Bucket     string        `env:"S3_BUCKET"      env-default:"yelpcamp"  yaml:"bucket"`
		PresignTTL time.Duration `env:"S3_PRESIGN_TTL" env-default:"15m"       yaml:"presignTTL"`
	} `yaml:"s3"`

	// Campground configures campground listing.
	Campground struct {
		// PageSize is used when a listing request does not ask for a size.
		PageSize uint `env:"CAMPGROUND_PAGE_SIZE"     env-default:"20"  yaml:"pageSize"`
		// MaxPageSize caps the requested page size.
		MaxPageSize uint `env:"CAMPGROUND_MAX_PAGE_SIZE" env-default:"100" yaml:"maxPageSize"`
	} `yaml:"campground"`

	// Worker configures the river background workers.
	Worker struct {
		MaxWorkers      int `env:"WORKER_MAX_WORKERS"       env-default:"20" yaml:"maxWorkers"`
		MailMaxAttempts int `env:"WORKER_MAIL_MAX_ATTEMPTS" env-default:"3"  yaml:"mailMaxAttempts"`
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

	return &cfg, nil
}
