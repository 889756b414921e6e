package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	stdout, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("output should mention %s:\n%s", target, stdout)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	for _, section := range []string{"[server]", "[youtube]", "[logging]"} {
		if !strings.Contains(string(data), section) {
			t.Fatalf("sample missing %s section", section)
		}
	}
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	_, _, err := runCLI(t, "config", "init", "--path", target)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
}

func TestConfigValidateReportsPath(t *testing.T) {
	server := newFakeYouTube(t)
	configPath := writeTestConfig(t, server.URL)

	stdout, _, err := runCLI(t, "--config", configPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(stdout, configPath) {
		t.Fatalf("output should mention %s:\n%s", configPath, stdout)
	}
	if !strings.Contains(stdout, "Configuration valid") {
		t.Fatalf("missing validation verdict:\n%s", stdout)
	}
}

func TestConfigShowEmitsTOML(t *testing.T) {
	server := newFakeYouTube(t)
	configPath := writeTestConfig(t, server.URL)

	stdout, _, err := runCLI(t, "--config", configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(stdout, "bind = '127.0.0.1:0'") && !strings.Contains(stdout, `bind = "127.0.0.1:0"`) {
		t.Fatalf("missing bind in output:\n%s", stdout)
	}
}
