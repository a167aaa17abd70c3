// Package catalog holds the industry template library and the merge engine
// that seeds or extends an assessment from it. Templates are ordered
// structures: iteration order of areas and items is stable and matches the
// catalog author's ordering.
package catalog

// MeasureTemplate is a mitigation measure carried by a catalog item. An
// empty StopLevel means the default organizational level.
type MeasureTemplate struct {
	Title     string `toml:"title"      yaml:"title"`
	StopLevel string `toml:"stop_level" yaml:"stop_level"`
	Notes     string `toml:"notes"      yaml:"notes"`
}

// Item is one catalog entry: an activity with a (possibly composite) hazard
// phrase, its sources, existing controls, and suggested measures.
type Item struct {
	Activity         string            `toml:"activity"          yaml:"activity"`
	Hazard           string            `toml:"hazard"            yaml:"hazard"`
	Sources          []string          `toml:"sources"           yaml:"sources"`
	ExistingControls []string          `toml:"existing_controls" yaml:"existing_controls"`
	Measures         []MeasureTemplate `toml:"measures"          yaml:"measures"`
}

// Area groups the items of one workplace area.
type Area struct {
	Name  string `toml:"name"  yaml:"name"`
	Items []Item `toml:"items" yaml:"items"`
}

// Template is the ordered list of areas for one industry.
type Template struct {
	Areas []Area
}

// Empty reports whether the template contains no items.
func (t Template) Empty() bool {
	for _, area := range t.Areas {
		if len(area.Items) > 0 {
			return false
		}
	}
	return true
}

// Library maps industry names to their templates.
type Library map[string]Template

// Template returns the template for an industry. Unknown industries yield
// an empty template, mirroring the permissive lookup callers expect when a
// custom industry label is in play.
func (l Library) Template(industry string) Template {
	return l[industry]
}

// Merge overlays other onto the library. Industries present in both are
// replaced wholesale by the incoming template.
func (l Library) Merge(other Library) {
	for industry, tmpl := range other {
		l[industry] = tmpl
	}
}
