// Package config provides error definitions for configuration-related errors.
package config

import "errors"

// Configuration validation errors
var (
	// ErrEnvPathTraversal is returned when the .env file resolves outside the working directory
	ErrEnvPathTraversal = errors.New(".env file path traversal detected")

	// ErrInvalidTimeout is returned when the ffmpeg timeout is not positive
	ErrInvalidTimeout = errors.New("ffmpeg timeout must be greater than 0")

	// ErrInvalidCompressionLevel is returned when the FLAC compression level is outside 0-12
	ErrInvalidCompressionLevel = errors.New("FLAC compression level must be between 0 and 12")

	// ErrMissingOutputDir is returned when the output directory is empty
	ErrMissingOutputDir = errors.New("output directory is required")
)
