package deb

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/ulikunitz/xz"
)

// ExtractControl reads a .deb archive and returns the content of the
// 'control' file found in its control.tar, control.tar.gz or
// control.tar.xz member.
func ExtractControl(r io.Reader) (string, error) {
	return ExtractControlFile(r, FileControl)
}

// ExtractControlFile is like ExtractControl for any file of the control
// archive, such as md5sums or conffiles.
func ExtractControlFile(r io.Reader, file ControlFile) (string, error) {
	arR := ar.NewReader(r)
	for {
		header, err := arR.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading ar header: %w", err)
		}

		name := strings.TrimSuffix(header.Name, "/")
		if !strings.HasPrefix(name, string(PkgControlTar)) {
			continue
		}

		var tr *tar.Reader
		switch PackageFile(name) {
		case PkgControlTarGz:
			gzr, err := gzip.NewReader(arR)
			if err != nil {
				return "", fmt.Errorf("opening %s: %w", name, err)
			}
			defer gzr.Close()
			tr = tar.NewReader(gzr)
		case PkgControlTarXz:
			xzr, err := xz.NewReader(arR)
			if err != nil {
				return "", fmt.Errorf("opening %s: %w", name, err)
			}
			tr = tar.NewReader(xzr)
		case PkgControlTar:
			tr = tar.NewReader(arR)
		default:
			return "", fmt.Errorf("unsupported compression: %s", name)
		}

		for {
			th, err := tr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return "", fmt.Errorf("reading control tar header: %w", err)
			}
			if ControlFile(filepath.Base(th.Name)) == file {
				var buf bytes.Buffer
				if _, err := io.Copy(&buf, tr); err != nil {
					return "", fmt.Errorf("reading %s: %w", file, err)
				}
				return buf.String(), nil
			}
		}
	}
	return "", fmt.Errorf("%s file not found", file)
}

// ReadDebMetadata extracts and parses the control metadata of a .deb.
func ReadDebMetadata(r io.Reader) (Metadata, error) {
	control, err := ExtractControl(r)
	if err != nil {
		return Metadata{}, err
	}
	return ParseControl(control)
}
