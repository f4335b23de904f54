package deb

import (
	"fmt"
	"strings"

	"github.com/etnz/debtag/tagfile"
)

// PackageStatus is the "want flag state" triple of the dpkg Status field,
// e.g. "install ok installed".
//
// Reference: dpkg-query(1), "Package status".
type PackageStatus struct {
	// Want is the selection state: unknown, install, hold, deinstall or purge.
	Want string
	// Flag is ok or reinstreq.
	Flag string
	// State is the package state: not-installed, config-files,
	// half-installed, unpacked, half-configured, triggers-awaited,
	// triggers-pending or installed.
	State string
}

// Installed reports whether the package is fully installed.
func (s PackageStatus) Installed() bool { return s.State == "installed" }

func (s PackageStatus) String() string {
	return s.Want + " " + s.Flag + " " + s.State
}

// ParsePackageStatus parses the value of a Status field.
func ParsePackageStatus(value string) (PackageStatus, error) {
	parts := strings.Fields(value)
	if len(parts) != 3 {
		return PackageStatus{}, fmt.Errorf("invalid status %q: expected want, flag and state", value)
	}
	return PackageStatus{Want: parts[0], Flag: parts[1], State: parts[2]}, nil
}

// Conffile is a configuration file recorded in the status database, with
// the MD5 of the version shipped by the package.
type Conffile struct {
	Path string
	MD5  string
}

// InstalledPackage is one paragraph of the dpkg status database.
type InstalledPackage struct {
	Metadata  Metadata
	Status    PackageStatus
	Conffiles []Conffile
}

// ParseStatus parses the content of a dpkg status file
// (/var/lib/dpkg/status). Every paragraph must carry a valid Status field.
func ParseStatus(content string) ([]*InstalledPackage, error) {
	sections, err := tagfile.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing status: %w", err)
	}

	pkgs := make([]*InstalledPackage, 0, len(sections))
	for _, s := range sections {
		p, err := installedPackageFromSection(s)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, nil
}

func installedPackageFromSection(s *tagfile.Section) (*InstalledPackage, error) {
	p := &InstalledPackage{Metadata: MetadataFromSection(s)}
	extra := p.Metadata.ExtraFields

	status, ok := extra[string(FieldStatus)]
	if !ok {
		return nil, fmt.Errorf("package %s: missing %s field", p.Metadata.Package, FieldStatus)
	}
	st, err := ParsePackageStatus(status)
	if err != nil {
		return nil, fmt.Errorf("package %s: %w", p.Metadata.Package, err)
	}
	p.Status = st
	delete(extra, string(FieldStatus))

	if conf, ok := extra[string(FieldConffiles)]; ok {
		for _, line := range strings.Split(conf, "\n") {
			parts := strings.Fields(line)
			if len(parts) < 2 {
				continue
			}
			// A third "obsolete" or "remove-on-upgrade" marker may follow.
			p.Conffiles = append(p.Conffiles, Conffile{Path: parts[0], MD5: parts[1]})
		}
		delete(extra, string(FieldConffiles))
	}
	return p, nil
}

// Installed filters pkgs down to the fully installed ones.
func Installed(pkgs []*InstalledPackage) []*InstalledPackage {
	var res []*InstalledPackage
	for _, p := range pkgs {
		if p.Status.Installed() {
			res = append(res, p)
		}
	}
	return res
}
