package app

import (
	"testing"

	"github.com/pitchside/fantasy-core/internal/config"
	"github.com/pitchside/fantasy-core/internal/platform/logging"
)

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := config.Config{StorageDriver: config.StorageMemory}

	_, cleanup, err := NewHTTPServer(cfg, logging.NewNop())
	if err == nil {
		t.Fatal("expected error for empty http addr")
	}
	if cleanup != nil {
		t.Fatal("expected no cleanup when wiring fails")
	}
}

func TestNewHTTPServer_MemoryDriver(t *testing.T) {
	cfg := config.Config{
		StorageDriver: config.StorageMemory,
		HTTPAddr:      ":0",
	}

	server, cleanup, err := NewHTTPServer(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("wiring failed: %v", err)
	}
	if server.Handler == nil {
		t.Fatal("expected router attached to server")
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
}
