package sqlite

import (
	"strings"
	"testing"
)

type recordingLogger struct {
	debugs []string
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.debugs = append(l.debugs, msg) }
func (l *recordingLogger) Info(string, map[string]interface{})        {}
func (l *recordingLogger) Warn(string, map[string]interface{})        {}
func (l *recordingLogger) Error(string, map[string]interface{})       {}

func TestValidateKey_LogsUnusualPatternsOnce(t *testing.T) {
	logger := &recordingLogger{}

	if err := ValidateKey("a'; -- /* */", logger); err != nil {
		t.Fatalf("ValidateKey returned error: %v", err)
	}
	if len(logger.debugs) != 1 {
		t.Errorf("logged %d messages, want 1", len(logger.debugs))
	}
}

func TestValidateKey_PlainKeyNotLogged(t *testing.T) {
	logger := &recordingLogger{}

	if err := ValidateKey("search:serp:gato para adoção preto", logger); err != nil {
		t.Fatalf("ValidateKey returned error: %v", err)
	}
	if len(logger.debugs) != 0 {
		t.Errorf("logged %v, want nothing", logger.debugs)
	}
}

func TestValidateKey_NilLogger(t *testing.T) {
	if err := ValidateKey("a;b", nil); err != nil {
		t.Errorf("ValidateKey returned error: %v", err)
	}
}

func TestTruncateKey(t *testing.T) {
	long := strings.Repeat("x", 80)

	got := truncateKey(long)

	if len(got) != 53 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncateKey returned %q", got)
	}
	if truncateKey("short") != "short" {
		t.Error("short keys should be returned unchanged")
	}
}
