package daemon_test

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/config"
	"scribe/internal/daemon"
	"scribe/internal/logging"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Server.Bind = "127.0.0.1:0"
	cfg.Logging.Dir = filepath.Join(base, "logs")
	return &cfg
}

func TestDaemonStartServesHealth(t *testing.T) {
	d, err := daemon.New(testConfig(t), logging.NewNop(), "test")
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := d.Start(ctx); err != nil {
		t.Fatalf("start daemon: %v", err)
	}
	defer d.Stop()

	resp, err := http.Get("http://" + d.Addr() + "/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}
}

func TestDaemonRejectsSecondInstance(t *testing.T) {
	cfg := testConfig(t)

	first, err := daemon.New(cfg, logging.NewNop(), "test")
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := first.Start(ctx); err != nil {
		t.Fatalf("start first daemon: %v", err)
	}
	defer first.Stop()

	second, err := daemon.New(cfg, logging.NewNop(), "test")
	if err != nil {
		t.Fatalf("new second daemon: %v", err)
	}
	err = second.Start(ctx)
	if err == nil {
		second.Stop()
		t.Fatal("expected second instance to be rejected")
	}
	if !strings.Contains(err.Error(), "already running") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDaemonStopReleasesLock(t *testing.T) {
	cfg := testConfig(t)

	first, err := daemon.New(cfg, logging.NewNop(), "test")
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := first.Start(ctx); err != nil {
		t.Fatalf("start daemon: %v", err)
	}
	first.Stop()

	second, err := daemon.New(cfg, logging.NewNop(), "test")
	if err != nil {
		t.Fatalf("new second daemon: %v", err)
	}
	if err := second.Start(ctx); err != nil {
		t.Fatalf("start after release: %v", err)
	}
	second.Stop()
}

func TestDaemonStopWithoutStartIsNoop(t *testing.T) {
	d, err := daemon.New(testConfig(t), logging.NewNop(), "test")
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	d.Stop()
}
