package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDecodeConfigMissing(t *testing.T) {
	config, err := decodeConfig(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("decodeConfig failed: %v", err)
	}
	if config.StatusFile != defaultStatusFile {
		t.Errorf("expected default status file, got %s", config.StatusFile)
	}
	if config.Output != "yaml" {
		t.Errorf("expected yaml output, got %s", config.Output)
	}
}

func TestDecodeConfig(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"debtag.yaml", "status_file: /tmp/status\nkeyring: /etc/apt/keyring.asc\noutput: json\n"},
		{"debtag.toml", "status_file = \"/tmp/status\"\nkeyring = \"/etc/apt/keyring.asc\"\noutput = \"json\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := decodeConfig(writeFile(t, dir, tt.name, tt.content))
			if err != nil {
				t.Fatalf("decodeConfig failed: %v", err)
			}
			if config.StatusFile != "/tmp/status" {
				t.Errorf("expected /tmp/status, got %s", config.StatusFile)
			}
			if config.Keyring != "/etc/apt/keyring.asc" {
				t.Errorf("unexpected keyring %s", config.Keyring)
			}
			if config.Output != "json" {
				t.Errorf("expected json, got %s", config.Output)
			}
		})
	}
}

func TestDecodeConfigPartial(t *testing.T) {
	config, err := decodeConfig(writeFile(t, t.TempDir(), "debtag.yaml", "keyring: k.asc\n"))
	if err != nil {
		t.Fatalf("decodeConfig failed: %v", err)
	}
	if config.StatusFile != defaultStatusFile || config.Output != defaultOutput {
		t.Errorf("defaults not applied: %+v", config)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"bad.yaml", "status_file: [unclosed\n"},
		{"bad.toml", "status_file = \n"},
		{"format.yaml", "output: xml\n"},
	}
	for _, tt := range tests {
		if _, err := decodeConfig(writeFile(t, dir, tt.name, tt.content)); err == nil {
			t.Errorf("expected error for %s", tt.name)
		}
	}
}
