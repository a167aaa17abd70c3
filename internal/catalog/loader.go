package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sifa-tools/gbu/internal/safefile"
)

// Error definitions for the catalog loader
var (
	// ErrUnsupportedFormat is returned for catalog files that are neither
	// TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported catalog file format")

	// ErrEmptyCatalog is returned when a catalog file defines no industries.
	ErrEmptyCatalog = errors.New("catalog file defines no industries")

	// ErrMissingName is returned when an industry or area has no name.
	ErrMissingName = errors.New("catalog entry is missing a name")

	// ErrMissingHazard is returned when an item carries no hazard text.
	ErrMissingHazard = errors.New("catalog item is missing hazard text")
)

// File-schema types. Measures are decoded untyped because catalog authors
// may write either a bare title string or a structured record.
type fileCatalog struct {
	Industries []fileIndustry `toml:"industry" yaml:"industries"`
}

type fileIndustry struct {
	Name  string     `toml:"name" yaml:"name"`
	Areas []fileArea `toml:"area" yaml:"areas"`
}

type fileArea struct {
	Name  string     `toml:"name"  yaml:"name"`
	Items []fileItem `toml:"items" yaml:"items"`
}

type fileItem struct {
	Activity         string   `toml:"activity"          yaml:"activity"`
	Hazard           string   `toml:"hazard"            yaml:"hazard"`
	Sources          []string `toml:"sources"           yaml:"sources"`
	ExistingControls []string `toml:"existing_controls" yaml:"existing_controls"`
	Measures         []any    `toml:"measures"          yaml:"measures"`
}

// LoadFile reads a catalog file in TOML (.toml) or YAML (.yaml/.yml) form,
// validates it, and returns it as a Library. The result is typically merged
// over the built-in library via Library.Merge.
func LoadFile(path string) (Library, error) {
	data, err := safefile.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes catalog data in the format indicated by ext (".toml",
// ".yaml", or ".yml").
func Parse(data []byte, ext string) (Library, error) {
	var fc fileCatalog
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML catalog: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return fc.toLibrary()
}

func (fc fileCatalog) toLibrary() (Library, error) {
	if len(fc.Industries) == 0 {
		return nil, ErrEmptyCatalog
	}

	lib := make(Library, len(fc.Industries))
	for _, ind := range fc.Industries {
		if strings.TrimSpace(ind.Name) == "" {
			return nil, fmt.Errorf("%w: industry", ErrMissingName)
		}
		tmpl := Template{}
		for _, area := range ind.Areas {
			if strings.TrimSpace(area.Name) == "" {
				return nil, fmt.Errorf("%w: area in industry %q", ErrMissingName, ind.Name)
			}
			a := Area{Name: area.Name}
			for _, item := range area.Items {
				if strings.TrimSpace(item.Hazard) == "" {
					return nil, fmt.Errorf("%w: activity %q in area %q", ErrMissingHazard, item.Activity, area.Name)
				}
				a.Items = append(a.Items, Item{
					Activity:         item.Activity,
					Hazard:           item.Hazard,
					Sources:          item.Sources,
					ExistingControls: item.ExistingControls,
					Measures:         decodeMeasures(item.Measures),
				})
			}
			tmpl.Areas = append(tmpl.Areas, a)
		}
		lib[ind.Name] = tmpl
	}
	return lib, nil
}

// decodeMeasures accepts bare title strings and structured records side by
// side. Unusable entries are dropped; a blank title drops the measure later
// during merge normalization either way.
func decodeMeasures(raw []any) []MeasureTemplate {
	var out []MeasureTemplate
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			out = append(out, MeasureTemplate{Title: v})
		case map[string]any:
			out = append(out, MeasureTemplate{
				Title:     stringField(v, "title"),
				StopLevel: stringField(v, "stop_level"),
				Notes:     stringField(v, "notes"),
			})
		}
	}
	return out
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
