package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/debtag/deb"
	"github.com/etnz/debtag/tagfile"
	"go.yaml.in/yaml/v3"
)

// readInput returns the content of path, decompressing .gz and .xz files.
// The path "-" reads standard input.
func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	dr, err := deb.Decompress(r, path)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if _, err := io.Copy(&b, dr); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return b.String(), nil
}

// encodeSections writes sections to w as a YAML or JSON list of mappings.
// YAML output keeps the field order of the input.
func encodeSections(w io.Writer, format string, sections []*tagfile.Section) error {
	switch format {
	case "json":
		list := make([]map[string]string, 0, len(sections))
		for _, s := range sections {
			list = append(list, s.Fields())
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "yaml":
		doc := &yaml.Node{Kind: yaml.SequenceNode}
		for _, s := range sections {
			m := &yaml.Node{Kind: yaml.MappingNode}
			for _, k := range s.Keys() {
				v, _ := s.Get(k)
				m.Content = append(m.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
					&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
				)
			}
			doc.Content = append(doc.Content, m)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

// releaseDTO is the YAML view of a parsed Release file.
type releaseDTO struct {
	Origin               string               `yaml:"origin,omitempty"`
	Label                string               `yaml:"label,omitempty"`
	Suite                string               `yaml:"suite,omitempty"`
	Version              string               `yaml:"version,omitempty"`
	Codename             string               `yaml:"codename,omitempty"`
	Date                 string               `yaml:"date,omitempty"`
	ValidUntil           string               `yaml:"valid_until,omitempty"`
	Architectures        string               `yaml:"architectures,omitempty"`
	Components           string               `yaml:"components,omitempty"`
	Description          string               `yaml:"description,omitempty"`
	NotAutomatic         string               `yaml:"not_automatic,omitempty"`
	ButAutomaticUpgrades string               `yaml:"but_automatic_upgrades,omitempty"`
	AcquireByHash        string               `yaml:"acquire_by_hash,omitempty"`
	Files                map[string][]fileDTO `yaml:"files,omitempty"`
}

type fileDTO struct {
	Path string `yaml:"path"`
	Size int64  `yaml:"size"`
	Hash string `yaml:"hash"`
}

func encodeRelease(w io.Writer, r *deb.Release) error {
	dto := releaseDTO{
		Origin:               r.Origin,
		Label:                r.Label,
		Suite:                r.Suite,
		Version:              r.Version,
		Codename:             r.Codename,
		Date:                 r.Date,
		ValidUntil:           r.ValidUntil,
		Architectures:        r.Architectures,
		Components:           r.Components,
		Description:          r.Description,
		NotAutomatic:         r.NotAutomatic,
		ButAutomaticUpgrades: r.ButAutomaticUpgrades,
		AcquireByHash:        r.AcquireByHash,
		Files:                make(map[string][]fileDTO, len(r.Files)),
	}
	for kind, entries := range r.Files {
		for _, e := range entries {
			dto.Files[string(kind)] = append(dto.Files[string(kind)], fileDTO{Path: e.Path, Size: e.Size, Hash: e.Hash})
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dto); err != nil {
		return err
	}
	return enc.Close()
}
