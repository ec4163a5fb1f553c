package validate_checkout

import "context"

type CartGate interface {
	CheckAccess(ctx context.Context, sessionID string, requireItems bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
