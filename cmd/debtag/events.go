package main

import (
	"encoding/json"
	"fmt"
)

// Listener is a callback function that receives events while files are
// parsed.
type Listener func(fmt.Stringer)

func jsonString(v interface{}) string {
	b, _ := json.Marshal(map[string]interface{}{
		fmt.Sprintf("%T", v): v,
	})
	return string(b)
}

// EventParseSuccess is emitted when a file parses without error.
type EventParseSuccess struct {
	Path     string `json:"path,omitempty"`
	Sections int    `json:"sections"`
}

func (e EventParseSuccess) String() string { return jsonString(e) }

// EventParseFailure is emitted when a file is malformed or unreadable.
type EventParseFailure struct {
	Path  string `json:"path,omitempty"`
	Line  int    `json:"line,omitempty"`
	Error string `json:"error,omitempty"`
}

func (e EventParseFailure) String() string { return jsonString(e) }

// EventFileChanged is emitted when a watched file is written.
type EventFileChanged struct {
	Path string `json:"path,omitempty"`
}

func (e EventFileChanged) String() string { return jsonString(e) }
