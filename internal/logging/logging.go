// Package logging configures the package-level logrus logger.
package logging

import (
	"io"
	"strings"

	"scryfall/client/internal/config"

	log "github.com/sirupsen/logrus"
)

// Setup applies the configured level and formatter. An unknown level falls
// back to info.
func Setup(cfg config.LogConfig, out io.Writer) {
	if out != nil {
		log.SetOutput(out)
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
