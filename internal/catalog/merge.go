package catalog

import (
	"strings"

	"github.com/sifa-tools/gbu/internal/assessment"
	"github.com/sifa-tools/gbu/internal/hazardtext"
)

// ApplyOptions controls how template items are merged into an assessment.
type ApplyOptions struct {
	// SelectedKeys restricts the merge to items whose ItemKey is listed.
	// nil means "apply every item"; an empty non-nil slice applies none.
	SelectedKeys []string

	// IndustryName is used for key derivation. When empty, the
	// assessment's current industry is used.
	IndustryName string

	// SplitMulti expands composite hazard phrases into one Hazard per
	// atomic phrase.
	SplitMulti bool
}

// Apply merges template items into the assessment and returns the number of
// hazards created. One Hazard is created per atomic hazard phrase,
// inheriting the item's area, activity, sources, and existing controls,
// with a freshly generated id. Measure templates are normalized (default
// STOP level, blank titles discarded) and appended to every expanded
// hazard.
//
// Apply never deduplicates against hazards already present: "append" is
// additive and caller-responsible, "replace" (see Preload) is the
// idempotent operation.
func Apply(a *assessment.Assessment, tmpl Template, opts ApplyOptions) int {
	industry := opts.IndustryName
	if industry == "" {
		industry = a.Industry
	}

	var selected map[string]struct{}
	if opts.SelectedKeys != nil {
		selected = make(map[string]struct{}, len(opts.SelectedKeys))
		for _, k := range opts.SelectedKeys {
			selected[k] = struct{}{}
		}
	}

	added := 0
	for _, area := range tmpl.Areas {
		for _, item := range area.Items {
			if selected != nil {
				if _, ok := selected[ItemKey(industry, area.Name, item)]; !ok {
					continue
				}
			}

			phrases := []string{item.Hazard}
			if opts.SplitMulti {
				phrases = hazardtext.Split(item.Hazard)
			}

			for _, phrase := range phrases {
				h := assessment.NewHazard(area.Name, item.Activity, phrase,
					item.Sources, item.ExistingControls, a.Thresholds())
				for _, mt := range item.Measures {
					if m, ok := normalizeMeasure(mt); ok {
						h.AddMeasure(m)
					}
				}
				a.AddHazard(h)
				added++
			}
		}
	}
	return added
}

// Preload sets the assessment's industry and applies the full template for
// it from the library. With replace, existing hazards are cleared first,
// making the operation idempotent up to hazard ids.
func Preload(a *assessment.Assessment, lib Library, industry string, replace, splitMulti bool) int {
	a.Industry = industry
	if replace {
		a.Hazards = []assessment.Hazard{}
	}
	return Apply(a, lib.Template(industry), ApplyOptions{
		IndustryName: industry,
		SplitMulti:   splitMulti,
	})
}

// normalizeMeasure converts a measure template into a domain measure. A
// blank title after trimming discards the measure.
func normalizeMeasure(mt MeasureTemplate) (assessment.Measure, bool) {
	title := strings.TrimSpace(mt.Title)
	if title == "" {
		return assessment.Measure{}, false
	}
	m := assessment.NewMeasure(title, mt.StopLevel)
	m.Notes = mt.Notes
	return m, true
}
