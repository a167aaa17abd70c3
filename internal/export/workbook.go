package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sifa-tools/gbu/internal/assessment"
)

// lastSheetRow is the bottom of the validated status column range.
const lastSheetRow = 1048576

// Workbook renders the assessment into an xlsx workbook with the 8 fixed
// sheets. The caller owns the returned file and should Close it.
func Workbook(a *assessment.Assessment) (*excelize.File, error) {
	sheets := buildSheets(a)

	f := excelize.NewFile()
	// the default sheet becomes the first of ours
	if err := f.SetSheetName(f.GetSheetName(0), sheets[0].name); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, def := range sheets[1:] {
		if _, err := f.NewSheet(def.name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", def.name, err)
		}
	}

	for _, def := range sheets {
		if err := writeSheet(f, def); err != nil {
			return nil, err
		}
	}

	styles, err := newStyleSet(f)
	if err != nil {
		return nil, err
	}
	for _, def := range sheets {
		if err := applySheetStyle(f, def, styles); err != nil {
			return nil, err
		}
	}

	if err := addStatusDropdown(f, findSheet(sheets, SheetPlan)); err != nil {
		return nil, err
	}
	if err := addRiskColorScale(f, findSheet(sheets, SheetHazards), a.Thresholds()); err != nil {
		return nil, err
	}

	fitWidth, fitHeight := 1, 0 // one page wide, any number of pages tall
	for _, def := range sheets {
		if err := f.SetPageLayout(def.name, &excelize.PageLayoutOptions{
			FitToWidth:  &fitWidth,
			FitToHeight: &fitHeight,
		}); err != nil {
			return nil, fmt.Errorf("failed to set page layout for %s: %w", def.name, err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Bytes renders the assessment workbook into its binary form.
func Bytes(a *assessment.Assessment) ([]byte, error) {
	f, err := Workbook(a)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, def sheetDef) error {
	header := make([]any, len(def.headers))
	for i, h := range def.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(def.name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", def.name, err)
	}
	for i, row := range def.rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(def.name, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, def.name, err)
		}
	}
	return nil
}

func findSheet(sheets []sheetDef, name string) sheetDef {
	for _, def := range sheets {
		if def.name == name {
			return def
		}
	}
	return sheetDef{name: name}
}

// findColumn locates a column by trimmed header text. Returns 0 when the
// header is absent; the dependent formatting step is then skipped so the
// export still succeeds.
func findColumn(def sheetDef, header string) int {
	for i, h := range def.headers {
		if strings.TrimSpace(h) == header {
			return i + 1
		}
	}
	return 0
}

// addStatusDropdown constrains the plan sheet's status column to the fixed
// status set via a dropdown list validation over the full column.
func addStatusDropdown(f *excelize.File, plan sheetDef) error {
	col := findColumn(plan, headerStatus)
	if col == 0 {
		return nil
	}
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return fmt.Errorf("failed to resolve status column: %w", err)
	}

	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("%s2:%s%d", name, name, lastSheetRow)
	dv.AllowBlank = true
	if err := dv.SetDropList(assessment.Statuses); err != nil {
		return fmt.Errorf("failed to build status drop list: %w", err)
	}
	if err := f.AddDataValidation(plan.name, dv); err != nil {
		return fmt.Errorf("failed to add status validation: %w", err)
	}
	return nil
}

// addRiskColorScale puts a 3-point color scale on the hazards sheet's risk
// score column: green at the minimum score, yellow at the medium threshold,
// red at one above the high threshold. The traffic light tracks the
// configured matrix, independent of the discrete level label.
func addRiskColorScale(f *excelize.File, hazards sheetDef, t assessment.Thresholds) error {
	col := findColumn(hazards, headerRiskScore)
	if col == 0 || len(hazards.rows) == 0 {
		return nil
	}
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return fmt.Errorf("failed to resolve risk score column: %w", err)
	}

	mid := t.Mid()
	if mid < 2 {
		mid = 2
	}
	high := t.High() + 1
	if high < 3 {
		high = 3
	}

	rng := fmt.Sprintf("%s2:%s%d", name, name, len(hazards.rows)+1)
	err = f.SetConditionalFormat(hazards.name, rng, []excelize.ConditionalFormatOptions{
		{
			Type:     "3_color_scale",
			Criteria: "=",
			MinType:  "num",
			MinValue: "1",
			MinColor: "#" + colorScaleLow,
			MidType:  "num",
			MidValue: strconv.Itoa(mid),
			MidColor: "#" + colorScaleMid,
			MaxType:  "num",
			MaxValue: strconv.Itoa(high),
			MaxColor: "#" + colorScaleHigh,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to add risk color scale: %w", err)
	}
	return nil
}
