package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sifa-tools/gbu/internal/assessment"
	"github.com/sifa-tools/gbu/internal/catalog"
)

var sheetOrder = []string{
	SheetMasterData,
	SheetHazards,
	SheetMeasures,
	SheetPlan,
	SheetEffectiveness,
	SheetDocumentation,
	SheetNextReview,
	SheetConfiguration,
}

func newExportAssessment(t *testing.T) *assessment.Assessment {
	t.Helper()
	a := assessment.New("Example Hotel Ltd", "Sample City", "2026-09-01", "HSE")
	n := catalog.Preload(a, catalog.BuiltinLibrary(), catalog.IndustryHospitality, true, true)
	require.Positive(t, n)
	return a
}

func TestWorkbookSheetOrder(t *testing.T) {
	f, err := Workbook(newExportAssessment(t))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, sheetOrder, f.GetSheetList())
}

func TestWorkbookSheetOrderEmptyAssessment(t *testing.T) {
	// all 8 sheets must exist even with zero hazards
	a := assessment.New("c", "l", "2026-09-01", "by")
	f, err := Workbook(a)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, sheetOrder, f.GetSheetList())

	rows, err := f.GetRows(SheetHazards)
	require.NoError(t, err)
	require.Len(t, rows, 1, "hazards sheet carries only the header row")
}

func TestWorkbookMasterData(t *testing.T) {
	a := newExportAssessment(t)
	a.ScopeNote = "kitchen and service"
	f, err := Workbook(a)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetMasterData)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"Field", "Value"}, rows[0])
	assert.Equal(t, []string{"Company", "Example Hotel Ltd"}, rows[1])
	assert.Equal(t, []string{"Industry", "hospitality"}, rows[5])
	assert.Equal(t, []string{"Scope", "kitchen and service"}, rows[6])
}

func TestWorkbookHazardRows(t *testing.T) {
	a := newExportAssessment(t)
	f, err := Workbook(a)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetHazards)
	require.NoError(t, err)
	require.Len(t, rows, len(a.Hazards)+1)

	// list fields are joined with the semicolon-space separator
	first := a.Hazards[0]
	assert.Equal(t, first.ID, rows[1][0])
	assert.Equal(t, "stoves; kettles; pots", rows[1][4])
}

func TestWorkbookPlanCarriesRisk(t *testing.T) {
	a := newExportAssessment(t)
	f, err := Workbook(a)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetPlan)
	require.NoError(t, err)
	require.Greater(t, len(rows), 1)

	header := rows[0]
	assert.Contains(t, header, "Risk Score")
	assert.Contains(t, header, "Risk Level")
	assert.Contains(t, header, "Status")
	// every plan row is one (hazard, measure) pair
	assert.Equal(t, "9", rows[1][4])
	assert.Equal(t, assessment.LevelMedium, rows[1][5])
}

func TestWorkbookStatusDropdown(t *testing.T) {
	f, err := Workbook(newExportAssessment(t))
	require.NoError(t, err)
	defer f.Close()

	dvs, err := f.GetDataValidations(SheetPlan)
	require.NoError(t, err)
	require.Len(t, dvs, 1)
	// status is column K on the plan sheet
	assert.Equal(t, "K2:K1048576", dvs[0].Sqref)
}

func TestWorkbookConfigurationSheet(t *testing.T) {
	a := newExportAssessment(t)
	require.NoError(t, a.SetThresholds(assessment.Thresholds{4, 9, 15}))
	f, err := Workbook(a)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetConfiguration)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Low threshold (<=)", "4"}, rows[1])
	assert.Equal(t, []string{"Medium threshold (<=)", "9"}, rows[2])
	assert.Equal(t, []string{"High threshold (<=)", "15"}, rows[3])
}

func TestBytesProducesWorkbook(t *testing.T) {
	data, err := Bytes(newExportAssessment(t))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, sheetOrder, f.GetSheetList())
}

func TestColorScaleSkippedWithoutRiskColumn(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	def := sheetDef{name: "Sheet1", headers: []string{"A", "B"}, rows: [][]any{{1, 2}}}
	err := addRiskColorScale(f, def, assessment.DefaultThresholds())
	assert.NoError(t, err, "missing risk column must be skipped silently")

	err = addStatusDropdown(f, def)
	assert.NoError(t, err, "missing status column must be skipped silently")
}

func TestExportEndToEnd(t *testing.T) {
	a := assessment.New("Example Hotel Ltd", "Sample City", "2026-09-01", "HSE")
	require.NoError(t, a.SetThresholds(assessment.Thresholds{6, 12, 16}))

	h1 := assessment.NewHazard("Kitchen", "Frying", "grease fire", nil, nil, a.Thresholds())
	require.NoError(t, h1.SetRisk(3, 3, a.Thresholds()))
	a.AddHazard(h1)

	h2 := assessment.NewHazard("Kitchen", "Gas appliances", "explosion", nil, nil, a.Thresholds())
	require.NoError(t, h2.SetRisk(5, 5, a.Thresholds()))
	a.AddHazard(h2)

	assert.Equal(t, 9, a.Hazards[0].RiskValue)
	assert.Equal(t, assessment.LevelMedium, a.Hazards[0].RiskLevel)
	assert.Equal(t, 25, a.Hazards[1].RiskValue)
	assert.Equal(t, assessment.LevelVeryHigh, a.Hazards[1].RiskLevel)

	f, err := Workbook(a)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetHazards)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "9", rows[1][8])
	assert.Equal(t, "25", rows[2][8])

	// the color scale references the configured thresholds
	opts, err := f.GetConditionalFormats(SheetHazards)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	for _, rules := range opts {
		require.Len(t, rules, 1)
		assert.Equal(t, "3_color_scale", rules[0].Type)
		assert.Equal(t, "12", rules[0].MidValue)
		assert.Equal(t, "17", rules[0].MaxValue)
	}
}
