package tagfile

import (
	"strings"
)

// Parse parses every paragraph of a tag file, such as a control file, a
// Packages index or the dpkg status database.
//
// Paragraphs are separated by a blank line. Parsing stops at the first
// paragraph that is empty or made only of line terminators, so trailing
// blank lines are not an error. CRLF line endings are accepted.
//
// The first malformed paragraph aborts parsing; the returned *ParserError
// carries a line number relative to the start of content.
func Parse(content string) ([]*Section, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var sections []*Section
	offset := 0 // lines consumed by previous paragraphs and separators
	for _, paragraph := range strings.Split(content, "\n\n") {
		if strings.Trim(paragraph, "\r\n") == "" {
			break
		}
		s, err := parseSection(paragraph)
		if err != nil {
			if err.Line > 0 {
				err.Line += offset
			}
			return nil, err
		}
		sections = append(sections, s)
		offset += len(splitLines(paragraph)) + 1
	}
	return sections, nil
}
