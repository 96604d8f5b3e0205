package void

import (
	applogger "fry.org/qft/trail/internal/application/logger"
)

type logger struct {
}

func (l logger) SetLevel(lvl applogger.LoggerLeveler) error { return nil }

func (l logger) GetLevel() applogger.LoggerLeveler {

	return applogger.LoggerLevelInfo
}

func (l logger) Debug(v ...interface{}) {}

func (l logger) Debugf(format string, v ...interface{}) {}

func (l logger) Log(v ...interface{}) {}

func (l logger) Logf(format string, v ...interface{}) {}

// NewLogger creates a logger that discards everything.
func NewLogger() applogger.Logger {

	return logger{}
}
