package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Redis     RedisConfig     `json:"redis"`
	Search    SearchConfig    `json:"search"`
	Stacks    StacksConfig    `json:"stacks"`
	Auth      AuthConfig      `json:"auth"`
	OAuth     OAuthConfig     `json:"oauth"`
	GenAI     GenAIConfig     `json:"genai"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Worker    WorkerConfig    `json:"worker"`
	Cache     CacheConfig     `json:"cache"`
	CDN       CDNConfig       `json:"cdn"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Logging   LoggingConfig   `json:"logging"`
	OTel      OTelConfig      `json:"otel"`
	Metrics   MetricsConfig   `json:"metrics"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	RequestTimeout  time.Duration `json:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" default:"45s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"20s"`
	AllowedOrigins  []string      `json:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" default:"*"`
	// Prefix prepended to dev API paths when purging the CDN.
	PublicBasePath string `json:"public_base_path" env:"SERVER_PUBLIC_BASE_PATH" default:""`
}

type DatabaseConfig struct {
	URL             string        `json:"-" env:"DATABASE_URL"`
	URLFile         string        `json:"-" env:"DATABASE_URL_FILE"`
	MaxConns        int           `json:"max_conns" env:"DB_MAX_CONNS" default:"20"`
	MinConns        int           `json:"min_conns" env:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `json:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME" default:"30m"`
	MaxConnIdleTime time.Duration `json:"max_conn_idle_time" env:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
	ConnectTimeout  time.Duration `json:"connect_timeout" env:"DB_CONNECT_TIMEOUT" default:"30s"`
	AutoMigrate     bool          `json:"auto_migrate" env:"DB_AUTO_MIGRATE" default:"true"`
}

// RedisConfig describes the redis endpoint of the default service stack.
type RedisConfig struct {
	URL     string `json:"-" env:"REDIS_URL" default:"redis://localhost:6379/0"`
	URLFile string `json:"-" env:"REDIS_URL_FILE"`
}

// SearchConfig describes the search endpoint of the default service stack.
type SearchConfig struct {
	Host        string        `json:"host" env:"MEILISEARCH_HOST" default:"http://localhost:7700"`
	APIKey      string        `json:"-" env:"MEILISEARCH_API_KEY"`
	APIKeyFile  string        `json:"-" env:"MEILISEARCH_API_KEY_FILE"`
	IndexPrefix string        `json:"index_prefix" env:"MEILISEARCH_INDEX_PREFIX" default:"gameshub"`
	TaskTimeout time.Duration `json:"task_timeout" env:"MEILISEARCH_TASK_TIMEOUT" default:"15s"`
}

type StacksConfig struct {
	File string `json:"file" env:"SERVICE_STACKS_FILE" default:""`
}

type AuthConfig struct {
	JWTSecret     string        `json:"-" env:"ADMIN_JWT_SECRET"`
	JWTSecretFile string        `json:"-" env:"ADMIN_JWT_SECRET_FILE"`
	Issuer        string        `json:"issuer" env:"ADMIN_JWT_ISSUER" default:"games-hub"`
	Audience      string        `json:"audience" env:"ADMIN_JWT_AUDIENCE" default:"games-hub-admin"`
	TokenTTL      time.Duration `json:"token_ttl" env:"ADMIN_TOKEN_TTL" default:"12h"`
	APIKeyTTL     time.Duration `json:"api_key_cache_ttl" env:"API_KEY_CACHE_TTL" default:"1m"`
	APIKeyCache   int           `json:"api_key_cache_size" env:"API_KEY_CACHE_SIZE" default:"1024"`
}

type OAuthConfig struct {
	RedirectBaseURL string         `json:"redirect_base_url" env:"OAUTH_REDIRECT_BASE_URL" default:"http://localhost:9000"`
	AllowedDomains  []string       `json:"allowed_domains" env:"OAUTH_ALLOWED_DOMAINS" default:""`
	StateTTL        time.Duration  `json:"state_ttl" env:"OAUTH_STATE_TTL" default:"10m"`
	Google          ProviderConfig `json:"google"`
	Keycloak        KeycloakConfig `json:"keycloak"`
}

type ProviderConfig struct {
	ClientID     string `json:"client_id" env:"OAUTH_GOOGLE_CLIENT_ID"`
	ClientSecret string `json:"-" env:"OAUTH_GOOGLE_CLIENT_SECRET"`
}

type KeycloakConfig struct {
	BaseURL      string `json:"base_url" env:"OAUTH_KEYCLOAK_BASE_URL"`
	Realm        string `json:"realm" env:"OAUTH_KEYCLOAK_REALM"`
	ClientID     string `json:"client_id" env:"OAUTH_KEYCLOAK_CLIENT_ID"`
	ClientSecret string `json:"-" env:"OAUTH_KEYCLOAK_CLIENT_SECRET"`
}

type GenAIConfig struct {
	Provider       string        `json:"provider" env:"GENAI_PROVIDER" default:"vertex"`
	Model          string        `json:"model" env:"GENAI_MODEL" default:"gemini-2.5-flash"`
	Temperature    float64       `json:"temperature" env:"GENAI_TEMPERATURE" default:"0.4"`
	Timeout        time.Duration `json:"timeout" env:"GENAI_TIMEOUT" default:"60s"`
	VertexProject  string        `json:"vertex_project" env:"GOOGLE_CLOUD_PROJECT"`
	VertexLocation string        `json:"vertex_location" env:"GOOGLE_CLOUD_LOCATION" default:"us-central1"`
	GeminiAPIKey   string        `json:"-" env:"GEMINI_API_KEY"`
	OpenAIBaseURL  string        `json:"openai_base_url" env:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	OpenAIAPIKey   string        `json:"-" env:"OPENAI_API_KEY"`
	OpenAIKeyFile  string        `json:"-" env:"OPENAI_API_KEY_FILE"`
	QuizQuestions  int           `json:"quiz_questions" env:"GENAI_QUIZ_QUESTIONS" default:"5"`
	HangmanWords   int           `json:"hangman_words" env:"GENAI_HANGMAN_WORDS" default:"3"`
	MaxInputChars  int           `json:"max_input_chars" env:"GENAI_MAX_INPUT_CHARS" default:"8000"`
	BreakerTimeout time.Duration `json:"breaker_timeout" env:"GENAI_BREAKER_TIMEOUT" default:"30s"`
	BreakerTrips   int           `json:"breaker_trips" env:"GENAI_BREAKER_TRIPS" default:"5"`
}

type SchedulerConfig struct {
	Enabled          bool          `json:"enabled" env:"SCHEDULER_ENABLED" default:"true"`
	DefaultInterval  time.Duration `json:"default_interval" env:"FEED_DEFAULT_INTERVAL" default:"30m"`
	MinInterval      time.Duration `json:"min_interval" env:"FEED_MIN_INTERVAL" default:"5m"`
	MaxInterval      time.Duration `json:"max_interval" env:"FEED_MAX_INTERVAL" default:"24h"`
	FetchTimeout     time.Duration `json:"fetch_timeout" env:"FEED_FETCH_TIMEOUT" default:"30s"`
	HostInterval     time.Duration `json:"host_interval" env:"FEED_HOST_INTERVAL" default:"2s"`
	UserAgent        string        `json:"user_agent" env:"FEED_USER_AGENT" default:"GamesHubBot/1.0 (+https://games-hub.example)"`
	AutoDisableAfter int           `json:"auto_disable_after" env:"FEED_AUTO_DISABLE_AFTER" default:"0"`
	ReconcileEvery   time.Duration `json:"reconcile_every" env:"SCHEDULER_RECONCILE_EVERY" default:"5m"`
}

type WorkerConfig struct {
	Enabled      bool          `json:"enabled" env:"GAME_WORKER_ENABLED" default:"true"`
	PollInterval time.Duration `json:"poll_interval" env:"GAME_WORKER_POLL_INTERVAL" default:"500ms"`
	MaxBackoff   time.Duration `json:"max_backoff" env:"GAME_WORKER_MAX_BACKOFF" default:"1m"`
	MaxAttempts  int           `json:"max_attempts" env:"GAME_WORKER_MAX_ATTEMPTS" default:"3"`
	Concurrency  int           `json:"concurrency" env:"GAME_WORKER_CONCURRENCY" default:"2"`
	StaleAfter   time.Duration `json:"stale_after" env:"GAME_WORKER_STALE_AFTER" default:"10m"`
	JobTimeout   time.Duration `json:"job_timeout" env:"GAME_WORKER_JOB_TIMEOUT" default:"2m"`
}

type CacheConfig struct {
	ConfigTTL time.Duration `json:"config_ttl" env:"CACHE_CONFIG_TTL" default:"10m"`
}

type CDNConfig struct {
	DistributionID string `json:"distribution_id" env:"CLOUDFRONT_DISTRIBUTION_ID"`
	Region         string `json:"region" env:"AWS_REGION" default:"us-east-1"`
}

type RateLimitConfig struct {
	DevRequestsPerSecond float64 `json:"dev_rps" env:"DEV_RATE_LIMIT_RPS" default:"20"`
	DevBurst             int     `json:"dev_burst" env:"DEV_RATE_LIMIT_BURST" default:"40"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type OTelConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"games-hub"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"0.0.0"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	Endpoint       string  `json:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"0.1"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" env:"METRICS_ENABLED" default:"true"`
	Path    string `json:"path" env:"METRICS_PATH" default:"/metrics"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	// Docker secrets
	readSecretFile(config.Database.URLFile, &config.Database.URL)
	readSecretFile(config.Redis.URLFile, &config.Redis.URL)
	readSecretFile(config.Search.APIKeyFile, &config.Search.APIKey)
	readSecretFile(config.Auth.JWTSecretFile, &config.Auth.JWTSecret)
	readSecretFile(config.GenAI.OpenAIKeyFile, &config.GenAI.OpenAIAPIKey)

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// readSecretFile overwrites target with the trimmed file content when path is set.
// A missing file keeps the env var value.
func readSecretFile(path string, target *string) {
	if path == "" {
		return
	}
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read secret file", "path", path, "error", err)
		return
	}
	*target = strings.TrimSpace(string(content))
}
