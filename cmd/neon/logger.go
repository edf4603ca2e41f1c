package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/s-o-l-ar/Neon/internal/config"
)

func newLogger(w io.Writer) *logrus.Logger {
	return &logrus.Logger{
		Out:       w,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.WarnLevel,
	}
}

// setupLogger applies the level and format from cfg.
func setupLogger(logger *logrus.Logger, cfg config.Config, colors bool) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{ForceColors: colors, DisableColors: !colors})
	}
	logger.Debugf("logger format: %s", cfg.LogFormat)
	return nil
}
