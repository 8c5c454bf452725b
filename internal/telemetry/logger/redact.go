package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Sensitive key patterns that should be redacted.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"encryption_key",
	"api_key",
	"token",
	"credential",
}

// payloadKeys name attributes that carry stored values. They are logged as
// a length only.
var payloadKeys = map[string]struct{}{
	"value": {},
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive rewrites string attributes that carry secrets or stored
// values. slog calls it for every leaf attribute, including those in groups.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindString {
		return a
	}
	if _, ok := payloadKeys[a.Key]; ok {
		return slog.String(a.Key, fmt.Sprintf("[%d bytes]", len(a.Value.String())))
	}
	if a.Value.String() != "" && IsSensitiveKey(a.Key) {
		return slog.String(a.Key, redactedValue)
	}
	return a
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
