package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	SourceKindSheet = "csv"
	SourceKindBoard = "board"
)

// SourceEntry describes one extra listing source from the sources manifest.
// Board entries may override the section header and the age-column
// expectation. A nil Age defers to the run-wide setting.
type SourceEntry struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	URL     string `yaml:"url"`
	Section string `yaml:"section,omitempty"`
	Age     *bool  `yaml:"age,omitempty"`
}

type sourcesFile struct {
	Sources []SourceEntry `yaml:"sources"`
}

const sourcesTemplate = `# Extra listing sources, fetched after the sheet and before the main board.
# kind is "csv" (spreadsheet export) or "board" (markdown document with an
# embedded HTML table; optional "section" overrides the section header and
# optional "age" overrides whether rows carry an age column).
sources: []
`

// LoadSources reads a YAML manifest of extra sources. An empty path means no
// extra sources.
func LoadSources(path string) ([]SourceEntry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest sourcesFile
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse sources manifest %q: %w", path, err)
	}

	for idx := range manifest.Sources {
		entry := &manifest.Sources[idx]
		if strings.TrimSpace(entry.URL) == "" {
			return nil, fmt.Errorf("invalid sources manifest %q: sources[%d] is missing url", path, idx)
		}
		switch entry.Kind {
		case SourceKindSheet, SourceKindBoard:
		case "":
			entry.Kind = SourceKindSheet
		default:
			return nil, fmt.Errorf("invalid sources manifest %q: sources[%d] has unknown kind %q", path, idx, entry.Kind)
		}
		if strings.TrimSpace(entry.Name) == "" {
			entry.Name = fmt.Sprintf("extra-%d", idx+1)
		}
	}

	return manifest.Sources, nil
}
