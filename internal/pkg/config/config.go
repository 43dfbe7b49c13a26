package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (secrets, credentials)
// - default: Values common across all environments (timeouts, retry counts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	API     APIConfig
	Session SessionConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL        string        `envconfig:"SEVA_API_BASE_URL" default:"http://localhost:8000"`
	Timeout        time.Duration `envconfig:"SEVA_API_TIMEOUT" default:"30s"`
	RetryCount     int           `envconfig:"SEVA_API_RETRY_COUNT" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"SEVA_API_RETRY_BASE_DELAY" default:"1s"`
}

type SessionConfig struct {
	// empty means <user config dir>/seva-console/token
	TokenFile string `envconfig:"SEVA_TOKEN_FILE"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"text"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// StubConfig is only read by cmd/stubapi.
type StubConfig struct {
	Port         string        `envconfig:"STUB_PORT" default:"8000"`
	JWTSecret    string        `envconfig:"STUB_JWT_SECRET" required:"true"`
	JWTDuration  time.Duration `envconfig:"STUB_JWT_DURATION" default:"24h"`
	UserEmail    string        `envconfig:"STUB_USER_EMAIL" default:"admin@seva.local"`
	UserPassword string        `envconfig:"STUB_USER_PASSWORD" default:"secret1"`
	UserName     string        `envconfig:"STUB_USER_NAME" default:"Seva Admin"`
	OTPCode      string        `envconfig:"STUB_OTP_CODE" default:"123456"`
	Log          LogConfig
	CORS         CORSConfig
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadStubConfig() (StubConfig, error) {
	var cfg StubConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return StubConfig{}, fmt.Errorf("failed to process stub env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:        "http://localhost:18000",
			Timeout:        5 * time.Second,
			RetryCount:     3,
			RetryBaseDelay: 10 * time.Millisecond,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			Format:     "text",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}

func NewTestStubConfig() StubConfig {
	return StubConfig{
		Port:         "18000",
		JWTSecret:    "test-secret",
		JWTDuration:  time.Hour,
		UserEmail:    "a@b.com",
		UserPassword: "secret1",
		UserName:     "Test Admin",
		OTPCode:      "123456",
		Log: LogConfig{
			Level:      "error",
			Format:     "text",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:       time.Hour,
		},
	}
}
