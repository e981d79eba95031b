// Package config holds the fixed program configuration for taskmenu.
package config

import log "github.com/sirupsen/logrus"

// DefaultDataFile is the task file, relative to the working directory.
const DefaultDataFile = "tasks.json"

// Config defines the program configuration. Nothing here is read from flags,
// files, or the environment.
type Config struct {
	// DataFile is the path of the task file.
	DataFile string
	// LogLevel is the threshold for diagnostic output on stderr.
	LogLevel log.Level
}

// DefaultConfig returns the configuration used by the taskmenu binary.
func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		LogLevel: log.WarnLevel,
	}
}

// NewLogger returns a logger writing text lines at the configured level.
// Callers set its output; it defaults to stderr.
func (c *Config) NewLogger() *log.Logger {
	logger := log.New()
	logger.SetLevel(c.LogLevel)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return logger
}
