// Package deb gives typed access to the Debian files built on the tag file
// format: binary package control files, Packages and Sources indices,
// Release and InRelease files, and the dpkg status database.
//
// # Design Philosophy
//
// Parsing is delegated to package tagfile, which turns text into sections.
// This package only interprets fields: it maps well-known names to struct
// fields, splits relationship lists and checksum tables, and keeps anything
// it does not know about in ExtraFields. Functions take strings or
// io.Readers and never touch the file system, so they are usable on data
// coming from anywhere (HTTP responses, tarballs, test fixtures).
//
// # Features
//
//   - Control metadata from a control paragraph or straight from a .deb
//     (control.tar, control.tar.gz or control.tar.xz members).
//   - Packages and Sources index entries with hash lookup.
//   - Release files, with OpenPGP verification of clearsigned InRelease.
//   - dpkg status entries with their want/flag/state triple.
//   - Transparent decompression of .gz and .xz indices.
//
// Errors from the parser keep their file-relative line numbers and can be
// inspected with errors.As and a *tagfile.ParserError.
package deb
