package deb

import (
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/debtag/tagfile"
	"github.com/ulikunitz/xz"
)

// IndexEntry is one paragraph of a Packages index: the package control
// metadata plus the repository fields telling apt where to download the
// .deb and how to check it.
type IndexEntry struct {
	Metadata Metadata

	// Filename is the path of the .deb relative to the repository root.
	Filename string
	Size     int64
	MD5sum   string
	SHA1     string
	SHA256   string
	SHA512   string
}

// Hash returns the checksum of the given kind, if the index carries it.
func (e *IndexEntry) Hash(kind HashKind) (string, bool) {
	var h string
	switch kind {
	case HashMD5:
		h = e.MD5sum
	case HashSHA1:
		h = e.SHA1
	case HashSHA256:
		h = e.SHA256
	case HashSHA512:
		h = e.SHA512
	}
	return h, h != ""
}

// ParsePackagesIndex parses the content of a Packages index file.
// Index-only fields (Filename, Size and checksums) are moved out of
// Metadata.ExtraFields into the entry itself.
func ParsePackagesIndex(content string) ([]*IndexEntry, error) {
	sections, err := tagfile.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing Packages: %w", err)
	}

	entries := make([]*IndexEntry, 0, len(sections))
	for _, s := range sections {
		e := &IndexEntry{Metadata: MetadataFromSection(s)}
		extra := e.Metadata.ExtraFields

		take := func(field ControlField) string {
			v := strings.TrimSpace(extra[string(field)])
			delete(extra, string(field))
			return v
		}
		e.Filename = take(FieldFilename)
		e.MD5sum = take(FieldMD5sum)
		e.SHA1 = take(FieldSHA1)
		e.SHA256 = take(FieldSHA256)
		e.SHA512 = take(FieldSHA512)
		if size := take(FieldSize); size != "" {
			e.Size, err = strconv.ParseInt(size, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("package %s: invalid Size %q: %w", e.Metadata.Package, size, err)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Decompress wraps r with a decompressor chosen from the extension of
// name: ".gz" for gzip and ".xz" for xz. Other names are returned as is.
func Decompress(r io.Reader, name string) (io.Reader, error) {
	switch filepath.Ext(name) {
	case ".gz":
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		return gzr, nil
	case ".xz":
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		return xzr, nil
	}
	return r, nil
}

// ReadPackagesIndex reads a Packages, Packages.gz or Packages.xz stream.
func ReadPackagesIndex(r io.Reader, name string) ([]*IndexEntry, error) {
	content, err := readAll(r, name)
	if err != nil {
		return nil, err
	}
	return ParsePackagesIndex(content)
}

func readAll(r io.Reader, name string) (string, error) {
	dr, err := Decompress(r, name)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(dr)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}
