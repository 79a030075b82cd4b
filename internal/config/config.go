// Package config handles runtime configuration for the guestbook server:
// defaults, an optional .env file, environment variables, and command-line
// flags, each layer overriding the previous one.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lehrcode/guestbook/internal/guestbook"
)

// Config holds runtime settings for the guestbook server.
type Config struct {
	Port            int
	DatabaseURL     string
	EntriesPerPage  int
	ShutdownTimeout time.Duration
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Port = 8080
	c.DatabaseURL = "postgres://postgres:@localhost:5432/postgres?sslmode=disable"
	c.EntriesPerPage = guestbook.DefaultPageSize
	c.ShutdownTimeout = 10 * time.Second
}

// Load builds a Config by applying defaults, then overlaying values from an
// optional .env file, the environment, and finally the given command-line
// arguments (normally os.Args[1:]).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	// A missing .env file is not an error; present values never override
	// the existing environment.
	_ = godotenv.Load()

	if err := cfg.parseEnv(); err != nil {
		return nil, err
	}
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parseEnv() error {
	if v, ok := os.LookupEnv("PORT"); ok {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = p
	}
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		c.DatabaseURL = v
	}
	if v, ok := os.LookupEnv("ENTRIES_PER_PAGE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ENTRIES_PER_PAGE %q: %w", v, err)
		}
		c.EntriesPerPage = n
	}
	if v, ok := os.LookupEnv("SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("guestbook", flag.ContinueOnError)
	fs.IntVar(&c.Port, "port", c.Port, "HTTP server port")
	fs.StringVar(&c.DatabaseURL, "database-url", c.DatabaseURL, "Database URL")
	fs.IntVar(&c.EntriesPerPage, "entries-per-page", c.EntriesPerPage, "Entries shown per listing page")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "Graceful shutdown timeout")
	return fs.Parse(args)
}
