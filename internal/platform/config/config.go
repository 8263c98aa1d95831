// Package config loads runtime settings from an optional dotenv file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("invalid configuration")

const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 5000
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config is the server's runtime configuration.
type Config struct {
	Host            string
	Port            int
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate reports the first invalid setting, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: PORT %d out of range 1-65535", ErrInvalid, c.Port)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL %q: %v", ErrInvalid, c.LogLevel, err)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: SHUTDOWN_TIMEOUT must be positive, got %s", ErrInvalid, c.ShutdownTimeout)
	}
	return nil
}

// Load reads envFile (when it exists) into the environment without
// overriding variables that are already set, then resolves HOST, PORT,
// LOG_LEVEL and SHUTDOWN_TIMEOUT with their defaults.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("HOST", DefaultHost)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)
	v.SetDefault("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout.String())
	v.AutomaticEnv()

	port, err := strconv.Atoi(v.GetString("PORT"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: PORT %q is not an integer", ErrInvalid, v.GetString("PORT"))
	}
	timeout, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: SHUTDOWN_TIMEOUT %q: %v", ErrInvalid, v.GetString("SHUTDOWN_TIMEOUT"), err)
	}

	cfg := Config{
		Host:            v.GetString("HOST"),
		Port:            port,
		LogLevel:        v.GetString("LOG_LEVEL"),
		ShutdownTimeout: timeout,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
