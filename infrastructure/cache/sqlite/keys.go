// ABOUTME: Key and value validation for the SQLite cache
// ABOUTME: Rejects oversized or malformed entries before they reach the database

package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ipierette/catbytes-portfolio/core/interfaces"
)

const (
	// MaxKeyLength bounds cache keys; search keys embed the full query text
	MaxKeyLength = 512

	// MaxValueLength bounds a single cached page of hits
	MaxValueLength = 1 << 20
)

// suspicious key fragments are logged but accepted, every statement is parameterized
var suspiciousKeyPatterns = []string{"--", "/*", "*/", ";", "'", "\"", "\\"}

// ValidateKey rejects empty, oversized and NUL-containing keys
func ValidateKey(key string, logger interfaces.Logger) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > MaxKeyLength {
		return fmt.Errorf("key too long: max %d characters", MaxKeyLength)
	}
	if strings.ContainsRune(key, 0) {
		return errors.New("key cannot contain null bytes")
	}

	for _, pattern := range suspiciousKeyPatterns {
		if strings.Contains(key, pattern) {
			interfaces.LoggerOrNop(logger).Debug("Unusual pattern in cache key", map[string]interface{}{
				"pattern":     pattern,
				"key_preview": truncateKey(key),
			})
			break
		}
	}
	return nil
}

// ValidateValue rejects empty and oversized values
func ValidateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}
	if len(value) > MaxValueLength {
		return fmt.Errorf("value too large: max %d bytes", MaxValueLength)
	}
	return nil
}

func truncateKey(key string) string {
	const maxPreview = 50
	if len(key) <= maxPreview {
		return key
	}
	return key[:maxPreview] + "..."
}
