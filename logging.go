package gofocus

import (
	"go.uber.org/zap"
)

const (
	// Service is the name of this service.
	Service = "gofocus"
)

// nopLogger is used when a game is created without WithLogger.
func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
