package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitialize_WritesDebugLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")

	if err := Initialize(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Logger.Printf("hello from test")
	if err := Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("expected debug.log: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("expected message in log, got %q", string(data))
	}
}

func TestInitialize_EmptyDirIsNoop(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Initialize("."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
