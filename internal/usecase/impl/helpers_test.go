package impl

import (
	"errors"
	"io"
	"log/slog"
)

// errTestInfra stands in for an unexpected storage or transport failure.
var errTestInfra = errors.New("infra failure")

// newTestLogger returns a logger that discards everything, keeping test
// output clean.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
