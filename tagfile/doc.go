// Package tagfile parses Debian-style RFC 822 tag files.
//
// A tag file is a sequence of paragraphs separated by a blank line. Each
// paragraph maps field names to values; a value may be folded over several
// physical lines, each continuation line starting with a space or a tab.
// Control files, Packages and Sources indices, Release files and the dpkg
// status database all share this format.
//
// The package works purely in memory: callers hand it the text and get back
// []*Section values. Reading files, decompressing indices and interpreting
// individual fields is left to higher layers (see package deb).
//
// Parsing follows these rules:
//   - Lines starting with '#' are comments. They are ignored and do not
//     interrupt a field spanning several lines.
//   - A line not starting with a space or tab is a key line and must contain
//     a ':' separator. At most one space after the separator is stripped.
//   - A key line with an empty value starts a multi-line field; its value
//     begins with "\n".
//   - Continuation lines are kept verbatim, indentation included, and joined
//     with "\n".
//   - If a paragraph repeats a field name, the last occurrence wins.
//
// Errors are reported as *ParserError values carrying a 1-based line number
// relative to the whole input given to Parse.
package tagfile
