package deb

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/etnz/debtag/tagfile"
)

// Metadata maps the fields of a binary package control paragraph.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#binary-package-control-files-debian-control
type Metadata struct {
	Package      string
	Version      string
	Architecture string
	Maintainer   string

	// Description holds the synopsis on its first line followed by the
	// extended description, one continuation line per line, as found in
	// the control file (leading space included).
	//
	// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#s-f-description
	Description string

	Section   string
	Priority  string
	Homepage  string
	Essential bool

	// Relationship fields, split on commas.
	//
	// Reference: https://www.debian.org/doc/debian-policy/ch-relationships.html
	Depends    []string
	PreDepends []string
	Recommends []string
	Suggests   []string
	Enhances   []string
	Conflicts  []string
	Breaks     []string
	Replaces   []string
	Provides   []string

	BuiltUsing string
	Source     string

	// InstalledSize is the Installed-Size field, in kibibytes. Zero when
	// the field is absent or not a number; a value that is not a number is
	// kept verbatim in ExtraFields.
	InstalledSize int64

	// ExtraFields holds every field not mapped above, with its raw value.
	ExtraFields map[string]string
}

// ParseControl parses a single control paragraph. Trailing blank lines are
// ignored.
func ParseControl(content string) (Metadata, error) {
	s, err := tagfile.NewSection(strings.TrimRight(content, "\r\n"))
	if err != nil {
		return Metadata{}, fmt.Errorf("parsing control file: %w", err)
	}
	return MetadataFromSection(s), nil
}

// MetadataFromSection maps the fields of s onto a Metadata.
// Known fields are trimmed of surrounding whitespace, unknown fields are
// stored verbatim in ExtraFields. Description keeps its line structure, so
// an empty synopsis followed by an extended description survives.
func MetadataFromSection(s *tagfile.Section) Metadata {
	m := Metadata{ExtraFields: make(map[string]string)}
	for _, key := range s.Keys() {
		raw, _ := s.Get(key)
		val := strings.TrimSpace(raw)
		switch ControlField(key) {
		case FieldPackage:
			m.Package = val
		case FieldVersion:
			m.Version = val
		case FieldArchitecture:
			m.Architecture = val
		case FieldMaintainer:
			m.Maintainer = val
		case FieldDescription:
			m.Description = strings.TrimLeft(strings.TrimRight(raw, " \t\n"), " \t")
		case FieldSection:
			m.Section = val
		case FieldPriority:
			m.Priority = val
		case FieldHomepage:
			m.Homepage = val
		case FieldEssential:
			m.Essential = (val == "yes")
		case FieldDepends:
			m.Depends = splitList(val)
		case FieldPreDepends:
			m.PreDepends = splitList(val)
		case FieldRecommends:
			m.Recommends = splitList(val)
		case FieldSuggests:
			m.Suggests = splitList(val)
		case FieldEnhances:
			m.Enhances = splitList(val)
		case FieldConflicts:
			m.Conflicts = splitList(val)
		case FieldBreaks:
			m.Breaks = splitList(val)
		case FieldReplaces:
			m.Replaces = splitList(val)
		case FieldProvides:
			m.Provides = splitList(val)
		case FieldBuiltUsing:
			m.BuiltUsing = val
		case FieldSource:
			m.Source = val
		case FieldInstalledSize:
			size, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				m.ExtraFields[key] = raw
				continue
			}
			m.InstalledSize = size
		default:
			m.ExtraFields[key] = raw
		}
	}
	return m
}

// Synopsis returns the first line of the description.
func (m Metadata) Synopsis() string {
	synopsis, _, _ := strings.Cut(m.Description, "\n")
	return synopsis
}

// LongDescription returns the extended description with the leading space
// of each line removed and " ." paragraph separators turned into empty
// lines.
func (m Metadata) LongDescription() string {
	_, rest, found := strings.Cut(m.Description, "\n")
	if !found {
		return ""
	}
	lines := strings.Split(rest, "\n")
	for i, line := range lines {
		line = strings.TrimPrefix(line, " ")
		if line == "." {
			line = ""
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// String renders m as a control paragraph. Parsing the result with
// ParseControl yields m back, except for whitespace-only description lines
// which are written as " .".
func (m Metadata) String() string {
	var b strings.Builder

	writeField := func(field ControlField, value string) {
		if value != "" {
			writeFolded(&b, string(field), value)
		}
	}

	writeField(FieldPackage, m.Package)
	writeField(FieldVersion, m.Version)
	writeField(FieldArchitecture, m.Architecture)
	writeField(FieldMaintainer, m.Maintainer)
	if m.InstalledSize > 0 {
		writeField(FieldInstalledSize, strconv.FormatInt(m.InstalledSize, 10))
	}

	writeField(FieldSection, m.Section)
	writeField(FieldPriority, m.Priority)
	writeField(FieldHomepage, m.Homepage)
	if m.Essential {
		writeField(FieldEssential, "yes")
	}

	writeRel := func(field ControlField, items []string) {
		if len(items) > 0 {
			writeField(field, strings.Join(items, ", "))
		}
	}
	writeRel(FieldDepends, m.Depends)
	writeRel(FieldPreDepends, m.PreDepends)
	writeRel(FieldRecommends, m.Recommends)
	writeRel(FieldSuggests, m.Suggests)
	writeRel(FieldEnhances, m.Enhances)
	writeRel(FieldConflicts, m.Conflicts)
	writeRel(FieldBreaks, m.Breaks)
	writeRel(FieldReplaces, m.Replaces)
	writeRel(FieldProvides, m.Provides)

	writeField(FieldBuiltUsing, m.BuiltUsing)
	writeField(FieldSource, m.Source)

	keys := make([]string, 0, len(m.ExtraFields))
	for k := range m.ExtraFields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeField(ControlField(k), m.ExtraFields[k])
	}

	writeField(FieldDescription, m.Description)
	return b.String()
}

// writeFolded writes a field whose value may span several lines. Lines
// after the first are indented with a space unless they already are, and
// empty ones become " ." so they do not end the paragraph.
func writeFolded(b *strings.Builder, key, value string) {
	if value == "\n" {
		fmt.Fprintf(b, "%s:\n", key)
		return
	}
	lines := strings.Split(value, "\n")
	if lines[0] == "" {
		fmt.Fprintf(b, "%s:\n", key)
	} else {
		fmt.Fprintf(b, "%s: %s\n", key, lines[0])
	}
	for _, line := range lines[1:] {
		switch {
		case strings.TrimSpace(line) == "":
			b.WriteString(" .\n")
		case strings.HasPrefix(line, " "), strings.HasPrefix(line, "\t"):
			b.WriteString(line + "\n")
		default:
			b.WriteString(" " + line + "\n")
		}
	}
}

// splitList splits a comma-separated string into a slice of strings, trimming whitespace from each element.
// It returns nil if the input string is empty.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var res []string
	for _, p := range parts {
		res = append(res, strings.TrimSpace(p))
	}
	return res
}
