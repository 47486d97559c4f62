// Package logger configures the process-wide logrus logger.
package logger

import (
	"os"
	"strings"

	"ats-api/config"

	"github.com/sirupsen/logrus"
)

// Setup applies the level and formatter from cfg. An unknown level falls
// back to info.
func Setup(cfg config.LogConfig) {
	logrus.SetOutput(os.Stdout)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.WithField("level", cfg.Level).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
