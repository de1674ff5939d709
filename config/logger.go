// SPDX-License-Identifier: MIT

package config

import (
	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger with the given level and format ("text" or
// "json"). Unknown levels fall back to info.
func NewLogger(l Log) *logrus.Logger {
	logger := logrus.New()
	if l.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
