package logrimp

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// NewZapLogger returns a new zap logger
func NewZapLogger(logger *zap.Logger) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return zapr.NewLogger(logger)
}

// NewDevelopmentZapLogger returns a logr logger backed by zap's development configuration.
func NewDevelopmentZapLogger() (logr.Logger, error) {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return NewNoopLogger(), err
	}
	return NewZapLogger(zl), nil
}
