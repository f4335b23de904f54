package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/etnz/debtag/tagfile"
	"github.com/fsnotify/fsnotify"
)

// lintFile parses the tag file at path and reports the outcome to
// listener. It returns false if the file could not be read or parsed.
func lintFile(path string, listener Listener) bool {
	content, err := readInput(path)
	if err != nil {
		listener(EventParseFailure{Path: path, Error: err.Error()})
		return false
	}

	sections, err := tagfile.Parse(content)
	if err != nil {
		ev := EventParseFailure{Path: path, Error: err.Error()}
		var perr *tagfile.ParserError
		if errors.As(err, &perr) {
			ev.Line = perr.Line
			ev.Error = perr.Err.Error()
		}
		listener(ev)
		return false
	}

	listener(EventParseSuccess{Path: path, Sections: len(sections)})
	return true
}

// watchFiles lints paths again every time one of them is written or
// replaced, until ctx is done or the watcher fails. Parent directories are
// watched so that files replaced by a rename, as dpkg does with its status
// file, are still followed.
func watchFiles(ctx context.Context, paths []string, listener Listener) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	targets := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		targets[p] = true
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			path := filepath.Clean(ev.Name)
			if !targets[path] || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			listener(EventFileChanged{Path: path})
			lintFile(path, listener)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Printf("Warning: watch error: %v\n", err)
		}
	}
}
