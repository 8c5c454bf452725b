// Package logger provides structured logging for keyval.
//
// It builds log/slog loggers:
//
//   - logger.go: handler construction and the process-wide level
//   - context.go: request ID propagation through context.Context
//   - redact.go: sensitive data redaction
//
// Features:
//
//   - JSON (default) and text output formats
//   - Log level adjustable at runtime with SetLevel
//   - Secrets are replaced and stored values are reduced to their length
//   - Request IDs carried in the context are added to every record
package logger
