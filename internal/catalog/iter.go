package catalog

import (
	"slices"
)

// Industries returns the library's industry names, sorted.
func (l Library) Industries() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ItemRef points at one template item together with its area and selection
// key. Used by callers that present catalog content for selection.
type ItemRef struct {
	Area string
	Item Item
	Key  string
}

// IterItems lists every item of an industry in catalog order.
func (l Library) IterItems(industry string) []ItemRef {
	tmpl := l.Template(industry)
	var out []ItemRef
	for _, area := range tmpl.Areas {
		for _, item := range area.Items {
			out = append(out, ItemRef{
				Area: area.Name,
				Item: item,
				Key:  ItemKey(industry, area.Name, item),
			})
		}
	}
	return out
}
