package catalog

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifa-tools/gbu/internal/assessment"
)

func TestBuiltinLibraryIntegrity(t *testing.T) {
	lib := BuiltinLibrary()
	require.NotEmpty(t, lib)

	for industry, tmpl := range lib {
		assert.False(t, tmpl.Empty(), "industry %q has no items", industry)
		for _, area := range tmpl.Areas {
			assert.NotEmpty(t, area.Name)
			for _, item := range area.Items {
				assert.NotEmpty(t, item.Activity, "area %q", area.Name)
				assert.NotEmpty(t, item.Hazard, "activity %q", item.Activity)
				for _, m := range item.Measures {
					assert.NotEmpty(t, m.Title)
					if m.StopLevel != "" {
						assert.Contains(t, assessment.StopLevels, m.StopLevel,
							"measure %q carries unknown STOP level %q", m.Title, m.StopLevel)
					}
				}
			}
		}
	}
}

func TestBuiltinLibraryKeysUnique(t *testing.T) {
	lib := BuiltinLibrary()
	for _, industry := range lib.Industries() {
		seen := make(map[string]struct{})
		for _, ref := range lib.IterItems(industry) {
			_, dup := seen[ref.Key]
			require.False(t, dup, "duplicate key %q in industry %q", ref.Key, industry)
			seen[ref.Key] = struct{}{}
		}
	}
}

func TestIndustriesSorted(t *testing.T) {
	lib := BuiltinLibrary()
	names := lib.Industries()
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, IndustryHospitality)
	assert.Contains(t, names, IndustryBakery)
	assert.Contains(t, names, IndustryButchery)
	assert.Contains(t, names, IndustryCatering)
	assert.Contains(t, names, IndustryLaundry)
}

func TestIterItemsOrder(t *testing.T) {
	lib := BuiltinLibrary()
	refs := lib.IterItems(IndustryHospitality)
	require.NotEmpty(t, refs)

	// items appear in catalog order: all Kitchen items precede Housekeeping
	areas := make([]string, 0, len(refs))
	for _, ref := range refs {
		if len(areas) == 0 || areas[len(areas)-1] != ref.Area {
			areas = append(areas, ref.Area)
		}
	}
	assert.Equal(t, []string{"Kitchen", "Housekeeping", "Service"}, areas)
}

func TestIterItemsUnknownIndustry(t *testing.T) {
	lib := BuiltinLibrary()
	assert.Empty(t, lib.IterItems("does-not-exist"))
}
