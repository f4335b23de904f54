package deb

import (
	"bytes"
	"compress/gzip"
	"errors"
	"testing"

	"github.com/etnz/debtag/tagfile"
	"github.com/ulikunitz/xz"
)

const packagesIndex = `Package: pkg1
Version: 1.0
Architecture: amd64
Filename: pool/main/p/pkg1/pkg1.deb
Size: 1024
MD5sum: 0123456789abcdef0123456789abcdef
SHA256: hash1
Description: first package
 with a longer description

Package: pkg2
Version: 2.0
Architecture: all
Filename: http://example.com/pkg2.deb
`

func TestParsePackagesIndex(t *testing.T) {
	entries, err := ParsePackagesIndex(packagesIndex)
	if err != nil {
		t.Fatalf("ParsePackagesIndex failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(entries))
	}

	e := entries[0]
	if e.Metadata.Package != "pkg1" {
		t.Errorf("expected pkg1, got %s", e.Metadata.Package)
	}
	if e.Filename != "pool/main/p/pkg1/pkg1.deb" {
		t.Errorf("unexpected Filename %s", e.Filename)
	}
	if e.Size != 1024 {
		t.Errorf("expected Size 1024, got %d", e.Size)
	}
	// Index-only fields must not leak into ExtraFields.
	for _, f := range []string{"Filename", "Size", "SHA256", "MD5sum"} {
		if _, ok := e.Metadata.ExtraFields[f]; ok {
			t.Errorf("%s field should be removed from ExtraFields", f)
		}
	}
	if e.Metadata.Synopsis() != "first package" {
		t.Errorf("unexpected synopsis %q", e.Metadata.Synopsis())
	}
	if entries[1].Size != 0 {
		t.Errorf("expected no size for pkg2, got %d", entries[1].Size)
	}
}

func TestIndexEntryHash(t *testing.T) {
	e := &IndexEntry{MD5sum: "m", SHA256: "s256"}
	tests := []struct {
		kind HashKind
		want string
		ok   bool
	}{
		{HashMD5, "m", true},
		{HashSHA256, "s256", true},
		{HashSHA1, "", false},
		{HashSHA512, "", false},
		{HashKind("CRC32"), "", false},
	}
	for _, tt := range tests {
		got, ok := e.Hash(tt.kind)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Hash(%s) = %q, %v, want %q, %v", tt.kind, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParsePackagesIndexErrors(t *testing.T) {
	_, err := ParsePackagesIndex("Package: a\n\nPackage: b\nbroken\n")
	var perr *tagfile.ParserError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *tagfile.ParserError, got %v", err)
	}
	if perr.Line != 4 {
		t.Errorf("expected line 4, got %d", perr.Line)
	}

	if _, err := ParsePackagesIndex("Package: a\nSize: big\n"); err == nil {
		t.Error("expected error for invalid Size")
	}
}

func TestReadPackagesIndexCompressed(t *testing.T) {
	var gzBuf bytes.Buffer
	gw := gzip.NewWriter(&gzBuf)
	gw.Write([]byte(packagesIndex))
	gw.Close()

	var xzBuf bytes.Buffer
	xw, err := xz.NewWriter(&xzBuf)
	if err != nil {
		t.Fatalf("xz.NewWriter failed: %v", err)
	}
	xw.Write([]byte(packagesIndex))
	xw.Close()

	tests := []struct {
		name string
		data []byte
	}{
		{"Packages", []byte(packagesIndex)},
		{"Packages.gz", gzBuf.Bytes()},
		{"Packages.xz", xzBuf.Bytes()},
	}
	for _, tt := range tests {
		entries, err := ReadPackagesIndex(bytes.NewReader(tt.data), tt.name)
		if err != nil {
			t.Fatalf("ReadPackagesIndex(%s) failed: %v", tt.name, err)
		}
		if len(entries) != 2 {
			t.Errorf("%s: expected 2 packages, got %d", tt.name, len(entries))
		}
	}
}

func TestDecompressInvalid(t *testing.T) {
	if _, err := Decompress(bytes.NewReader([]byte("not gzip")), "Packages.gz"); err == nil {
		t.Error("expected error for invalid gzip stream")
	}
	if _, err := Decompress(bytes.NewReader([]byte("not xz")), "Packages.xz"); err == nil {
		t.Error("expected error for invalid xz stream")
	}
}
