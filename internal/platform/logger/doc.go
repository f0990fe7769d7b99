// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. When a log file is configured, output is tee'd to a
// size-rotated file managed by lumberjack.
package logger
