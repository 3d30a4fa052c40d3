// Package logger provides a zap-based application logger.
package logger

import "go.uber.org/zap"

// New builds a production zap logger named for the given service. The
// returned logger is passed to component constructors rather than kept in a
// package-level variable, so tests can substitute zap.NewNop.
func New(service string) (*zap.Logger, error) {
	log, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return log.Named(service), nil
}
