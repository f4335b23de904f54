package deb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/debtag/tagfile"
)

// SourceEntry is one paragraph of a Sources index.
//
// Reference: https://wiki.debian.org/DebianRepository/Format#A.22Sources.22_Indices
type SourceEntry struct {
	// Package is the source package name.
	Package    string
	Version    string
	Maintainer string
	Section    string
	Priority   string
	// Directory is where the source files live, relative to the archive root.
	Directory string
	// Binaries lists the binary packages built from this source.
	Binaries []string
	// Files lists the MD5 checksums of the source files.
	Files []ReleaseFileEntry
	// ChecksumsSha256 lists the SHA256 checksums of the source files.
	ChecksumsSha256 []ReleaseFileEntry
	// ExtraFields holds every other field verbatim.
	ExtraFields map[string]string
}

// ParseSourcesIndex parses the content of a Sources index file.
func ParseSourcesIndex(content string) ([]*SourceEntry, error) {
	sections, err := tagfile.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing Sources: %w", err)
	}

	entries := make([]*SourceEntry, 0, len(sections))
	for _, s := range sections {
		e := &SourceEntry{ExtraFields: make(map[string]string)}
		for _, key := range s.Keys() {
			raw, _ := s.Get(key)
			val := strings.TrimSpace(raw)
			switch ControlField(key) {
			case FieldPackage:
				e.Package = val
			case FieldVersion:
				e.Version = val
			case FieldMaintainer:
				e.Maintainer = val
			case FieldSection:
				e.Section = val
			case FieldPriority:
				e.Priority = val
			case FieldDirectory:
				e.Directory = val
			case FieldBinary:
				e.Binaries = splitList(val)
			case FieldFiles:
				e.Files, err = parseChecksums(val)
			case FieldChecksumsSha256:
				e.ChecksumsSha256, err = parseChecksums(val)
			default:
				e.ExtraFields[key] = raw
			}
			if err != nil {
				return nil, fmt.Errorf("source %s: field %s: %w", e.Package, key, err)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// parseChecksums parses a table of "<hash> <size> <path>" lines, as found
// in Release files and Sources indices.
func parseChecksums(value string) ([]ReleaseFileEntry, error) {
	var entries []ReleaseFileEntry
	for _, line := range strings.Split(value, "\n") {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed checksum line %q", line)
		}
		size, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size in %q: %w", line, err)
		}
		entries = append(entries, ReleaseFileEntry{Hash: parts[0], Size: size, Path: parts[2]})
	}
	return entries, nil
}
