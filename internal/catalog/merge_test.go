package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifa-tools/gbu/internal/assessment"
)

func testTemplate() Template {
	return Template{Areas: []Area{
		{Name: "Kitchen", Items: []Item{
			{
				Activity:         "Frying",
				Hazard:           "grease splashes, burns",
				Sources:          []string{"pans"},
				ExistingControls: []string{"extraction hood"},
				Measures: []MeasureTemplate{
					{Title: "Fit splash screens", StopLevel: assessment.StopTechnical},
					{Title: "  "}, // blank after trim, must be discarded
					{Title: "Clean the hood"},
				},
			},
			{
				Activity: "Knife work",
				Hazard:   "cuts",
			},
		}},
		{Name: "Service", Items: []Item{
			{
				Activity: "Carrying plates",
				Hazard:   "burns and slips",
			},
		}},
	}}
}

func newTestAssessment() *assessment.Assessment {
	return assessment.New("c", "l", "2026-09-01", "by")
}

func TestApplyAllItemsWithSplit(t *testing.T) {
	a := newTestAssessment()
	added := Apply(a, testTemplate(), ApplyOptions{SplitMulti: true})

	// 2 + 1 + 2 atomic phrases
	assert.Equal(t, 5, added)
	require.Len(t, a.Hazards, 5)

	assert.Equal(t, "grease splashes", a.Hazards[0].Hazard)
	assert.Equal(t, "burns", a.Hazards[1].Hazard)
	assert.Equal(t, "cuts", a.Hazards[2].Hazard)
	assert.Equal(t, "burns", a.Hazards[3].Hazard)
	assert.Equal(t, "slips", a.Hazards[4].Hazard)

	// both expansions of the first item inherit its fields and measures
	for _, h := range a.Hazards[:2] {
		assert.Equal(t, "Kitchen", h.Area)
		assert.Equal(t, "Frying", h.Activity)
		assert.Equal(t, []string{"pans"}, h.Sources)
		assert.Equal(t, []string{"extraction hood"}, h.ExistingControls)
		require.Len(t, h.AdditionalMeasures, 2, "blank measure title must be discarded")
		assert.Equal(t, "Fit splash screens", h.AdditionalMeasures[0].Title)
		assert.Equal(t, assessment.StopTechnical, h.AdditionalMeasures[0].StopLevel)
		assert.Equal(t, assessment.DefaultStopLevel, h.AdditionalMeasures[1].StopLevel)
	}

	// every hazard gets its own id
	ids := make(map[string]struct{})
	for _, h := range a.Hazards {
		ids[h.ID] = struct{}{}
	}
	assert.Len(t, ids, 5)
}

func TestApplyWithoutSplitKeepsComposite(t *testing.T) {
	a := newTestAssessment()
	added := Apply(a, testTemplate(), ApplyOptions{SplitMulti: false})

	assert.Equal(t, 3, added)
	require.Len(t, a.Hazards, 3)
	assert.Equal(t, "grease splashes, burns", a.Hazards[0].Hazard)
}

func TestApplySelectedKeys(t *testing.T) {
	tmpl := testTemplate()
	knifeKey := ItemKey("hospitality", "Kitchen", tmpl.Areas[0].Items[1])

	a := newTestAssessment()
	added := Apply(a, tmpl, ApplyOptions{
		SelectedKeys: []string{knifeKey},
		IndustryName: "hospitality",
		SplitMulti:   true,
	})

	assert.Equal(t, 1, added)
	require.Len(t, a.Hazards, 1)
	assert.Equal(t, "Knife work", a.Hazards[0].Activity)
}

func TestApplyEmptySelectionAppliesNothing(t *testing.T) {
	a := newTestAssessment()
	added := Apply(a, testTemplate(), ApplyOptions{
		SelectedKeys: []string{},
		SplitMulti:   true,
	})
	assert.Zero(t, added)
	assert.Empty(t, a.Hazards)
}

func TestApplyAppendDoesNotDeduplicate(t *testing.T) {
	a := newTestAssessment()
	first := Apply(a, testTemplate(), ApplyOptions{SplitMulti: true})
	second := Apply(a, testTemplate(), ApplyOptions{SplitMulti: true})

	assert.Equal(t, first, second)
	assert.Len(t, a.Hazards, first+second)
}

func TestPreloadReplaceIsIdempotent(t *testing.T) {
	lib := Library{"hospitality": testTemplate()}

	a := newTestAssessment()
	n1 := Preload(a, lib, "hospitality", true, true)
	firstHazards := make([]string, len(a.Hazards))
	for i, h := range a.Hazards {
		firstHazards[i] = h.Hazard
	}

	n2 := Preload(a, lib, "hospitality", true, true)
	secondHazards := make([]string, len(a.Hazards))
	for i, h := range a.Hazards {
		secondHazards[i] = h.Hazard
	}

	assert.Equal(t, n1, n2)
	assert.Equal(t, firstHazards, secondHazards)
	assert.Equal(t, "hospitality", a.Industry)
}

func TestPreloadUnknownIndustry(t *testing.T) {
	a := newTestAssessment()
	n := Preload(a, Library{}, "custom shop", true, true)
	assert.Zero(t, n)
	assert.Empty(t, a.Hazards)
	assert.Equal(t, "custom shop", a.Industry)
}

func TestApplyUsesAssessmentThresholds(t *testing.T) {
	a := newTestAssessment()
	require.NoError(t, a.SetThresholds(assessment.Thresholds{2, 4, 8}))
	Apply(a, testTemplate(), ApplyOptions{SplitMulti: true})

	// default prob/sev 3x3 = 9, very high under the strict matrix
	require.NotEmpty(t, a.Hazards)
	assert.Equal(t, 9, a.Hazards[0].RiskValue)
	assert.Equal(t, assessment.LevelVeryHigh, a.Hazards[0].RiskLevel)
}
