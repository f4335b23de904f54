package tagfile

import (
	"strings"
)

// Section is one paragraph of a tag file: a set of fields indexed by their
// case-sensitive name. A Section is immutable once built.
type Section struct {
	fields map[string]string
	// keys lists field names in the order they first appeared.
	keys []string
}

// field is the field being accumulated while scanning a paragraph. A nil
// *field means no field is active.
type field struct {
	name     string
	segments []string
}

func (f *field) value() string {
	if len(f.segments) == 1 && f.segments[0] == "" {
		// Key line with no value and nothing following it.
		return "\n"
	}
	return strings.Join(f.segments, "\n")
}

// NewSection parses exactly one paragraph.
//
// It fails with ErrMultipleSections if the input contains a blank line, and
// with ErrEmptySection if the input is empty. Line numbers in the returned
// *ParserError are relative to the first line of paragraph.
func NewSection(paragraph string) (*Section, error) {
	s, err := parseSection(paragraph)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func parseSection(paragraph string) (*Section, *ParserError) {
	paragraph = strings.ReplaceAll(paragraph, "\r\n", "\n")
	if strings.Contains(paragraph, "\n\n") {
		return nil, parserError(ErrMultipleSections, 0)
	}
	if paragraph == "" {
		return nil, parserError(ErrEmptySection, 0)
	}

	s := &Section{fields: make(map[string]string)}
	lines := splitLines(paragraph)

	var active *field
	for i, line := range lines {
		num := i + 1

		switch {
		case isComment(line):
			continue
		case isContinuation(line):
			if active == nil {
				return nil, parserError(ErrNoKey, num)
			}
			active.segments = append(active.segments, line)
		default:
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				return nil, parserError(ErrMissingSeparator, num)
			}
			active = &field{
				name:     name,
				segments: []string{strings.TrimPrefix(value, " ")},
			}
		}

		if !continues(lines, i) {
			s.set(active.name, active.value())
			active = nil
		}
	}
	return s, nil
}

// splitLines splits s into lines, dropping the terminator of the last line
// and any trailing '\r'.
func splitLines(s string) []string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

func isContinuation(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// continues reports whether the next non-comment line after lines[i]
// extends the current field.
func continues(lines []string, i int) bool {
	for _, next := range lines[i+1:] {
		if isComment(next) {
			continue
		}
		return isContinuation(next)
	}
	return false
}

func (s *Section) set(name, value string) {
	if _, exists := s.fields[name]; !exists {
		s.keys = append(s.keys, name)
	}
	s.fields[name] = value
}

// Get returns the value of the named field.
func (s *Section) Get(name string) (string, bool) {
	v, ok := s.fields[name]
	return v, ok
}

// GetDefault returns the value of the named field, or def if it is absent.
func (s *Section) GetDefault(name, def string) string {
	if v, ok := s.fields[name]; ok {
		return v
	}
	return def
}

// Fields returns a copy of the name to value mapping.
func (s *Section) Fields() map[string]string {
	m := make(map[string]string, len(s.fields))
	for k, v := range s.fields {
		m[k] = v
	}
	return m
}

// Keys returns the field names in order of first appearance.
func (s *Section) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of fields.
func (s *Section) Len() int { return len(s.fields) }

// String renders the section back to tag file syntax, one "Name: value"
// line per field followed by its continuation lines. The output parses back
// to the same field values.
func (s *Section) String() string {
	var b strings.Builder
	for _, k := range s.keys {
		v := s.fields[k]
		if v == "\n" {
			b.WriteString(k + ":\n")
			continue
		}
		segments := strings.Split(v, "\n")
		b.WriteString(k + ":")
		if segments[0] != "" {
			b.WriteString(" " + segments[0])
		}
		b.WriteString("\n")
		for _, seg := range segments[1:] {
			b.WriteString(seg + "\n")
		}
	}
	return b.String()
}
