package deb

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/clearsign"
	"github.com/etnz/debtag/tagfile"
)

// ArchiveInfo holds metadata about a repository, as written in its
// 'Release' file.
//
// Reference: https://wiki.debian.org/DebianRepository/Format#Release_file
type ArchiveInfo struct {
	Origin        string
	Label         string
	Suite         string
	Version       string
	Codename      string
	Date          string
	ValidUntil    string
	Architectures string
	Components    string
	Description   string

	NotAutomatic         string
	ButAutomaticUpgrades string
	AcquireByHash        string
}

// ReleaseFileEntry is one line of a checksum table: an index file path
// with its size and hash.
type ReleaseFileEntry struct {
	Path string
	Size int64
	Hash string
}

// Release is a parsed Release file.
type Release struct {
	ArchiveInfo

	// Files maps each checksum kind present in the file to its table.
	Files map[HashKind][]ReleaseFileEntry
}

// Lookup returns the checksum entry of path for the given hash kind.
func (r *Release) Lookup(kind HashKind, path string) (ReleaseFileEntry, bool) {
	for _, e := range r.Files[kind] {
		if e.Path == path {
			return e, true
		}
	}
	return ReleaseFileEntry{}, false
}

// ParseRelease parses the content of a Release file. The file must hold
// exactly one paragraph.
func ParseRelease(content string) (*Release, error) {
	sections, err := tagfile.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing Release: %w", err)
	}
	if len(sections) != 1 {
		return nil, fmt.Errorf("parsing Release: expected one paragraph, found %d", len(sections))
	}
	s := sections[0]

	r := &Release{Files: make(map[HashKind][]ReleaseFileEntry)}
	info := &r.ArchiveInfo
	for _, key := range s.Keys() {
		raw, _ := s.Get(key)
		val := strings.TrimSpace(raw)

		switch ReleaseField(key) {
		case RelOrigin:
			info.Origin = val
		case RelLabel:
			info.Label = val
		case RelSuite:
			info.Suite = val
		case RelVersion:
			info.Version = val
		case RelCodename:
			info.Codename = val
		case RelDate:
			info.Date = val
		case RelValidUntil:
			info.ValidUntil = val
		case RelArchitectures:
			info.Architectures = val
		case RelComponents:
			info.Components = val
		case RelDescription:
			info.Description = val
		case RelNotAutomatic:
			info.NotAutomatic = val
		case RelButAutomaticUpgrades:
			info.ButAutomaticUpgrades = val
		case RelAcquireByHash:
			info.AcquireByHash = val
		case RelMD5Sum, RelSHA1, RelSHA256, RelSHA512:
			entries, err := parseChecksums(val)
			if err != nil {
				return nil, fmt.Errorf("parsing Release: field %s: %w", key, err)
			}
			r.Files[HashKind(key)] = entries
		}
	}
	return r, nil
}

// ParseInRelease parses a clearsigned InRelease file. When keyring holds
// one or more ASCII-armored public keys, the signature must verify against
// one of them; an empty keyring skips verification.
func ParseInRelease(signed []byte, keyring string) (*Release, error) {
	block, _ := clearsign.Decode(signed)
	if block == nil {
		return nil, fmt.Errorf("parsing InRelease: no clearsigned message found")
	}

	if keyring != "" {
		kr, err := openpgp.ReadArmoredKeyRing(strings.NewReader(keyring))
		if err != nil {
			return nil, fmt.Errorf("reading keyring: %w", err)
		}
		if _, err := openpgp.CheckDetachedSignature(kr, bytes.NewReader(block.Bytes), block.ArmoredSignature.Body, nil); err != nil {
			return nil, fmt.Errorf("verifying InRelease signature: %w", err)
		}
	}

	return ParseRelease(string(block.Plaintext))
}
