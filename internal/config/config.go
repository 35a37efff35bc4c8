package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported credentials store backends.
const (
	UserStoreMemory  = "memory"
	UserStoreSurreal = "surreal"
)

// ErrMissingConfig is returned by Load when a required variable is unset.
var ErrMissingConfig = errors.New("missing required configuration")

// Provider is the read-only view of the configuration that the rest of the
// application depends on. Handlers and stores take a Provider so tests can
// substitute a small mock.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetSessionMaxAge() time.Duration
	GetSessionSecure() bool
	GetUserStore() string
	GetDBURL() string
	GetDBUser() string
	GetDBPass() string
	GetDBNs() string
	GetDBDb() string
	GetDemoEmail() string
	GetDemoPassword() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string
	AppBaseURL    string
	SessionSecret string
	SessionMaxAge time.Duration
	SessionSecure bool
	UserStore     string
	DBUrl         string
	DBUser        string
	DBPass        string
	DBNs          string
	DBDb          string
	DemoEmail     string
	DemoPassword  string
}

// Load reads the optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppAddr:       getEnv("APP_ADDR", ":8080"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionMaxAge: 30 * 24 * time.Hour,
		UserStore:     strings.ToLower(getEnv("USER_STORE", UserStoreMemory)),
		DBUrl:         os.Getenv("SURREAL_URL"),
		DBUser:        os.Getenv("SURREAL_USER"),
		DBPass:        os.Getenv("SURREAL_PASS"),
		DBNs:          os.Getenv("SURREAL_NS"),
		DBDb:          os.Getenv("SURREAL_DB"),
		DemoEmail:     os.Getenv("DEMO_EMAIL"),
		DemoPassword:  os.Getenv("DEMO_PASSWORD"),
	}

	if v := os.Getenv("SESSION_MAX_AGE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_MAX_AGE %q: %w", v, err)
		}
		cfg.SessionMaxAge = d
	}
	if v := os.Getenv("SESSION_SECURE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_SECURE %q: %w", v, err)
		}
		cfg.SessionSecure = b
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.SessionSecret) < 32 {
		return fmt.Errorf("%w: SESSION_SECRET must be at least 32 bytes", ErrMissingConfig)
	}
	switch c.UserStore {
	case UserStoreMemory:
	case UserStoreSurreal:
		if c.DBUrl == "" || c.DBNs == "" || c.DBDb == "" {
			return fmt.Errorf("%w: SURREAL_URL, SURREAL_NS and SURREAL_DB are required when USER_STORE=surreal", ErrMissingConfig)
		}
	default:
		return fmt.Errorf("unknown USER_STORE %q", c.UserStore)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAppAddr() string              { return c.AppAddr }
func (c *Config) GetAppBaseURL() string           { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string        { return c.SessionSecret }
func (c *Config) GetSessionMaxAge() time.Duration { return c.SessionMaxAge }
func (c *Config) GetSessionSecure() bool          { return c.SessionSecure }
func (c *Config) GetUserStore() string            { return c.UserStore }
func (c *Config) GetDBURL() string                { return c.DBUrl }
func (c *Config) GetDBUser() string               { return c.DBUser }
func (c *Config) GetDBPass() string               { return c.DBPass }
func (c *Config) GetDBNs() string                 { return c.DBNs }
func (c *Config) GetDBDb() string                 { return c.DBDb }
func (c *Config) GetDemoEmail() string            { return c.DemoEmail }
func (c *Config) GetDemoPassword() string         { return c.DemoPassword }
