package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, bot token, etc.)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Bot    BotConfig
	API    APIConfig
	Events EventsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tashkent"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tashkent"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"18000"` // 5*60*60
}

type BotMode string

const (
	BotModeWebhook BotMode = "webhook"
	BotModePolling BotMode = "polling"
)

type BotConfig struct {
	Token         string        `envconfig:"BOT_TOKEN" required:"true"`
	Mode          BotMode       `envconfig:"BOT_MODE" default:"polling"`
	WebhookSecret string        `envconfig:"BOT_WEBHOOK_SECRET"`
	APIBaseURL    string        `envconfig:"BOT_API_BASE_URL" default:"https://api.telegram.org"`
	APITimeout    time.Duration `envconfig:"BOT_API_TIMEOUT" default:"10s"`
	APIRetries    int           `envconfig:"BOT_API_RETRIES" default:"2"`
	AdminIDs      []int64       `envconfig:"BOT_ADMIN_IDS" required:"true"`
	StaffChatID   int64         `envconfig:"BOT_STAFF_CHAT_ID" required:"true"`
	// Upper bound for a single inbound update, independent of the caller's connection.
	HandlerTimeout time.Duration `envconfig:"BOT_HANDLER_TIMEOUT" default:"20s"`
	PollTimeout    time.Duration `envconfig:"BOT_POLL_TIMEOUT" default:"30s"`
	PollWorkers    int           `envconfig:"BOT_POLL_WORKERS" default:"8"`
}

type APIConfig struct {
	StaffToken string `envconfig:"API_STAFF_TOKEN"`
}

type EventsConfig struct {
	AMQPURL  string `envconfig:"EVENTS_AMQP_URL"`
	Exchange string `envconfig:"EVENTS_EXCHANGE" default:"massfit.orders"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *BotConfig) IsAdmin(id int64) bool {
	for _, admin := range c.AdminIDs {
		if admin == id {
			return true
		}
	}
	return false
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments inject variables directly
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err.Error())
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Bot.Mode != BotModeWebhook && cfg.Bot.Mode != BotModePolling {
		return Config{}, fmt.Errorf("invalid BOT_MODE %q", cfg.Bot.Mode)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tashkent",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tashkent",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 18000,
		},
		Bot: BotConfig{
			Token:          "test-token",
			Mode:           BotModeWebhook,
			WebhookSecret:  "test-secret",
			APIBaseURL:     "http://127.0.0.1:0",
			APITimeout:     time.Second,
			APIRetries:     0,
			AdminIDs:       []int64{1000},
			StaffChatID:    -100500,
			HandlerTimeout: 5 * time.Second,
			PollTimeout:    time.Second,
			PollWorkers:    2,
		},
		API: APIConfig{
			StaffToken: "test-staff-token",
		},
		Events: EventsConfig{
			Exchange: "massfit.orders.test",
		},
	}
}
