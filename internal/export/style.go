package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook colors (ARGB without alpha).
const (
	colorHeaderFill = "E6EEF8"
	colorBorder     = "DDDDDD"
	colorScaleLow   = "C6EFCE" // green
	colorScaleMid   = "FFEB9C" // yellow
	colorScaleHigh  = "F8CBAD" // red
)

// Column sizing bounds.
const (
	minColWidth   = 8
	maxColWidth   = 60
	colPadding    = 2
	widthScanRows = 200 // bounded-cost scan for large sheets
)

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: colorBorder, Style: 1}
	}
	return borders
}

// styleSet holds the style ids registered on one workbook.
type styleSet struct {
	header int
	body   int
	plain  int
}

func newStyleSet(f *excelize.File) (styleSet, error) {
	var s styleSet
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorHeaderFill}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorder(),
	})
	if err != nil {
		return s, fmt.Errorf("failed to register header style: %w", err)
	}

	s.body, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "top",
			WrapText:   true,
		},
		Border: thinBorder(),
	})
	if err != nil {
		return s, fmt.Errorf("failed to register body style: %w", err)
	}

	s.plain, err = f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return s, fmt.Errorf("failed to register plain style: %w", err)
	}

	return s, nil
}

// applySheetStyle formats one sheet: header row, data rows, column widths,
// and the frozen first row.
func applySheetStyle(f *excelize.File, def sheetDef, styles styleSet) error {
	cols := len(def.headers)
	lastRow := len(def.rows) + 1

	lastColName, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return fmt.Errorf("failed to resolve last column: %w", err)
	}

	if err := f.SetCellStyle(def.name, "A1", lastColName+"1", styles.header); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	if lastRow >= 2 {
		bodyStyle := styles.body
		if !def.wrap {
			bodyStyle = styles.plain
		}
		if err := f.SetCellStyle(def.name, "A2", fmt.Sprintf("%s%d", lastColName, lastRow), bodyStyle); err != nil {
			return fmt.Errorf("failed to style data rows: %w", err)
		}
	}

	if err := setColumnWidths(f, def); err != nil {
		return err
	}

	if lastRow >= 2 {
		if err := f.SetPanes(def.name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("failed to freeze header row: %w", err)
		}
	}

	return nil
}

// setColumnWidths sizes each column to its longest stringified value over
// the first widthScanRows rows, within the configured bounds.
func setColumnWidths(f *excelize.File, def sheetDef) error {
	scanRows := len(def.rows)
	if scanRows > widthScanRows-1 {
		scanRows = widthScanRows - 1
	}

	for col := range def.headers {
		maxLen := minColWidth
		if l := len(def.headers[col]); l > maxLen {
			maxLen = l
		}
		for row := 0; row < scanRows; row++ {
			if col >= len(def.rows[row]) {
				continue
			}
			if l := len(fmt.Sprint(def.rows[row][col])); l > maxLen {
				maxLen = l
			}
		}

		width := float64(maxLen + colPadding)
		if width > maxColWidth {
			width = maxColWidth
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column %d: %w", col+1, err)
		}
		if err := f.SetColWidth(def.name, name, name, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}
