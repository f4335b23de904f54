package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/debtag/deb"
	"github.com/etnz/debtag/tagfile"
	"go.yaml.in/yaml/v3"
)

func TestEncodeSectionsYAML(t *testing.T) {
	sections, err := tagfile.Parse("Package: b\nEssential: yes\nDescription: short\n long\n\nPackage: a\nVersion: 1.0\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var buf bytes.Buffer
	if err := encodeSections(&buf, "yaml", sections); err != nil {
		t.Fatalf("encodeSections failed: %v", err)
	}

	// Field order is kept.
	out := buf.String()
	if strings.Index(out, "Package") > strings.Index(out, "Essential") {
		t.Errorf("field order lost:\n%s", out)
	}

	var got []map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(got))
	}
	if got[0]["Essential"] != "yes" {
		t.Errorf("expected Essential yes, got %q", got[0]["Essential"])
	}
	if got[0]["Description"] != "short\n long" {
		t.Errorf("unexpected Description %q", got[0]["Description"])
	}
	if got[1]["Version"] != "1.0" {
		t.Errorf("expected Version 1.0, got %q", got[1]["Version"])
	}
}

func TestEncodeSectionsJSON(t *testing.T) {
	sections, err := tagfile.Parse("Package: a\nVersion: 1.0\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var buf bytes.Buffer
	if err := encodeSections(&buf, "json", sections); err != nil {
		t.Fatalf("encodeSections failed: %v", err)
	}
	var got []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0]["Package"] != "a" {
		t.Errorf("unexpected output %v", got)
	}

	if err := encodeSections(&buf, "xml", sections); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestEncodeRelease(t *testing.T) {
	r, err := deb.ParseRelease("Origin: Debian\nSuite: stable\nSHA256:\n abcd 10 main/binary-amd64/Packages\n")
	if err != nil {
		t.Fatalf("ParseRelease failed: %v", err)
	}

	var buf bytes.Buffer
	if err := encodeRelease(&buf, r); err != nil {
		t.Fatalf("encodeRelease failed: %v", err)
	}
	var dto releaseDTO
	if err := yaml.Unmarshal(buf.Bytes(), &dto); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if dto.Origin != "Debian" || dto.Suite != "stable" {
		t.Errorf("unexpected release %+v", dto)
	}
	if len(dto.Files["SHA256"]) != 1 || dto.Files["SHA256"][0].Size != 10 {
		t.Errorf("unexpected files %+v", dto.Files)
	}
}

func TestEncodeReleaseFlags(t *testing.T) {
	r, err := deb.ParseRelease("Suite: experimental\nNotAutomatic: yes\nButAutomaticUpgrades: yes\nAcquire-By-Hash: yes\n")
	if err != nil {
		t.Fatalf("ParseRelease failed: %v", err)
	}

	var buf bytes.Buffer
	if err := encodeRelease(&buf, r); err != nil {
		t.Fatalf("encodeRelease failed: %v", err)
	}
	var dto releaseDTO
	if err := yaml.Unmarshal(buf.Bytes(), &dto); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if dto.NotAutomatic != "yes" || dto.ButAutomaticUpgrades != "yes" || dto.AcquireByHash != "yes" {
		t.Errorf("archive flags not printed: %s", buf.String())
	}
}

func TestLoadRelease(t *testing.T) {
	dir := t.TempDir()
	content := "Origin: Debian\nSuite: stable\n"

	r, err := loadRelease(filepath.Join(dir, "Release"), content, "")
	if err != nil {
		t.Fatalf("loadRelease failed: %v", err)
	}
	if r.Origin != "Debian" {
		t.Errorf("expected Origin Debian, got %s", r.Origin)
	}

	// An InRelease file must be clearsigned.
	if _, err := loadRelease(filepath.Join(dir, "InRelease"), content, ""); err == nil {
		t.Error("expected error for unsigned InRelease")
	}

	if _, err := loadRelease(filepath.Join(dir, "InRelease"), "-----BEGIN PGP SIGNED MESSAGE-----\n", filepath.Join(dir, "missing.asc")); err == nil {
		t.Error("expected error for missing keyring")
	}
}
