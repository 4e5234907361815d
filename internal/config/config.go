package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"1026"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Graph database
	Neo4j Neo4jConfig

	// Key-value store (users, rate-limit counters)
	Redis RedisConfig

	// Token issuance
	JWT JWTConfig

	// Outbound email
	Email EmailConfig

	// Admin-only operations
	Admin AdminConfig

	// Link-prediction model artifacts and inference service
	Model ModelConfig

	// Per-route rate limiting
	RateLimit RateLimitConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Neo4jConfig holds graph database connection settings
type Neo4jConfig struct {
	URI      string `env:"NEO4J_URI" envDefault:"bolt://localhost:7687"`
	Username string `env:"NEO4J_USERNAME" envDefault:"neo4j"`
	Password string `env:"NEO4J_PASSWORD" envDefault:""`
}

// RedisConfig holds key-value store connection settings
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Username string `env:"REDIS_USERNAME" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
}

// Addr returns the host:port address of the Redis server
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	SecretKey    string        `env:"JWT_SECRET_KEY" envDefault:""`
	AccessExpiry time.Duration `env:"JWT_ACCESS_TOKEN_EXPIRY" envDefault:"30m"`
}

// EmailConfig holds email service configuration
type EmailConfig struct {
	// Enabled determines if email sending is enabled
	Enabled bool `env:"EMAIL_ENABLED" envDefault:"false"`
	// MailgunDomain is the Mailgun domain
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	// MailgunAPIKey is the Mailgun API key
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	// FromEmail is the default from email address
	FromEmail string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@evo-kg.org"`
	// FromName is the default from name
	FromName string `env:"EMAIL_FROM_NAME" envDefault:"EvoKG"`
	// AdminEmail receives new-user notifications
	AdminEmail string `env:"EMAIL_ADMIN_ADDRESS" envDefault:""`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// AdminConfig holds the shared secret for admin-only routes
type AdminConfig struct {
	Password string `env:"ADMIN_PASSWORD" envDefault:""`
}

// ModelConfig holds link-prediction artifact paths and the inference endpoint
type ModelConfig struct {
	// RelationsPath points to the versioned relation->ID table (YAML),
	// tied to the trained model artifact. Empty selects the embedded default.
	RelationsPath string `env:"MODEL_RELATIONS_PATH" envDefault:""`
	// NodesPath points to the node<->ID mapping artifact (CSV: Node,MappedID)
	NodesPath string `env:"MODEL_NODES_PATH" envDefault:"data/node_id.csv"`
	// ScorerURL is the inference service endpoint scoring all tail candidates
	ScorerURL string `env:"MODEL_SCORER_URL" envDefault:"http://localhost:8501"`
	// ScorerTimeout bounds a single scoring call
	ScorerTimeout time.Duration `env:"MODEL_SCORER_TIMEOUT" envDefault:"30s"`
}

// RateLimitConfig holds the per-client fixed-window settings
type RateLimitConfig struct {
	Enabled  bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Requests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"10"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("neo4j_uri", cfg.Neo4j.URI),
		slog.String("redis_addr", cfg.Redis.Addr()),
	)

	return cfg, nil
}
