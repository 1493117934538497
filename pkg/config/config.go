// Package config provides secure configuration management for the cuesplit application.
//
// This package handles loading configuration from environment variables and .env files
// with built-in security measures to prevent path traversal attacks. It uses the
// github.com/caarlos0/env library for environment variable parsing and
// github.com/joho/godotenv for .env file loading.
//
// The configuration loading follows a priority order:
//  1. Command-line flags (applied by cmd/cuesplit, highest priority)
//  2. Environment variables
//  3. .env file in current working directory
//  4. Default values
//
// Example usage:
//
//	import "github.com/toozej/cuesplit/pkg/config"
//
//	func main() {
//		conf := config.GetEnvVars()
//		fmt.Printf("Output directory: %s\n", conf.Output.Dir)
//	}
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable read by the application.
const EnvPrefix = "CUESPLIT_"

// Config represents the main application configuration with nested service configurations.
type Config struct {
	FFmpeg FFmpegConfig `envPrefix:"FFMPEG_"`
	Output OutputConfig `envPrefix:"OUTPUT_"`
}

// FFmpegConfig represents the configuration for invoking the external ffmpeg binary.
type FFmpegConfig struct {
	// Path is an explicit ffmpeg binary. When empty the binary is discovered
	// from conventional install locations and PATH.
	Path string `env:"PATH"`

	// Timeout is the per-track extraction timeout in seconds.
	Timeout int `env:"TIMEOUT" envDefault:"3600"`

	// CompressionLevel is the FLAC compression level (0-12).
	CompressionLevel int `env:"COMPRESSION_LEVEL" envDefault:"8"`
}

// OutputConfig represents where and how split tracks are written.
type OutputConfig struct {
	// Dir is the directory split tracks are written to. It is created if absent.
	Dir string `env:"DIR" envDefault:"output"`

	// SkipExisting leaves tracks whose output file already exists untouched.
	SkipExisting bool `env:"SKIP_EXISTING" envDefault:"false"`
}

// TimeoutDuration returns the per-track timeout as a time.Duration
func (f FFmpegConfig) TimeoutDuration() time.Duration {
	return time.Duration(f.Timeout) * time.Second
}

// Load reads the .env file in the current working directory, if any, and
// parses the CUESPLIT_ environment variables into a validated Config.
func Load() (Config, error) {
	// Get current working directory for secure file operations
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("error getting current working directory: %w", err)
	}

	// Construct secure path for .env file within current directory
	envPath := filepath.Join(cwd, ".env")

	// Ensure the path is within our expected directory (prevent traversal)
	cleanEnvPath, err := filepath.Abs(envPath)
	if err != nil {
		return Config{}, fmt.Errorf("error resolving .env file path: %w", err)
	}
	cleanCwd, err := filepath.Abs(cwd)
	if err != nil {
		return Config{}, fmt.Errorf("error resolving current directory: %w", err)
	}
	relPath, err := filepath.Rel(cleanCwd, cleanEnvPath)
	if err != nil || strings.Contains(relPath, "..") {
		return Config{}, ErrEnvPathTraversal
	}

	// Load .env file if it exists
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return Config{}, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Parse environment variables into config struct
	var conf Config
	if err := env.ParseWithOptions(&conf, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("error parsing configuration from environment: %w", err)
	}

	if err := validateConfig(&conf); err != nil {
		return Config{}, err
	}

	return conf, nil
}

// GetEnvVars loads and returns the application configuration from environment
// variables and .env files.
//
// The function will terminate the program with os.Exit(1) if the configuration
// cannot be loaded or fails validation.
//
// Example:
//
//	conf := config.GetEnvVars()
//	fmt.Printf("ffmpeg timeout: %s\n", conf.FFmpeg.TimeoutDuration())
func GetEnvVars() Config {
	conf, err := Load()
	if err != nil {
		fmt.Printf("Configuration error: %s\n", err)
		fmt.Println("Please check your configuration and try again.")
		os.Exit(1)
	}
	return conf
}

// validateConfig validates the configuration
func validateConfig(conf *Config) error {
	var errors []string

	if conf.FFmpeg.Timeout <= 0 {
		errors = append(errors, ErrInvalidTimeout.Error())
	}
	if conf.FFmpeg.CompressionLevel < 0 || conf.FFmpeg.CompressionLevel > 12 {
		errors = append(errors, ErrInvalidCompressionLevel.Error())
	}
	if strings.TrimSpace(conf.Output.Dir) == "" {
		errors = append(errors, ErrMissingOutputDir.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}
