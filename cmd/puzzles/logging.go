package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// newLogger builds the per-invocation logger writing to out.
func newLogger(config *Config, out io.Writer) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(out)

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	switch config.LogFormat {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{DisableColors: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format: %q", config.LogFormat)
	}

	return logger, nil
}
