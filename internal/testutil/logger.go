package testutil

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/dtroode/stellar-wallet-server/internal/logger"
)

// MakeNoopLogger returns a logger that drops every record.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}

// MakeCaptureLogger returns a debug-level JSON logger writing to the
// returned buffer, for asserting on log output.
func MakeCaptureLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.NewWithFormat(int(slog.LevelDebug), "json", &buf), &buf
}
