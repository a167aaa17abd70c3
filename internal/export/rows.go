// Package export renders an assessment into a styled multi-sheet xlsx
// workbook for audit and compliance workflows. Sheet names carry numeric
// prefixes so consuming tools preserve their order.
package export

import (
	"github.com/sifa-tools/gbu/internal/assessment"
	"github.com/sifa-tools/gbu/internal/common"
)

// Sheet names, in workbook order.
const (
	SheetMasterData    = "01_Master_Data"
	SheetHazards       = "10_Hazards"
	SheetMeasures      = "20_Measures"
	SheetPlan          = "30_Plan"
	SheetEffectiveness = "40_Effectiveness"
	SheetDocumentation = "50_Documentation"
	SheetNextReview    = "60_Next_Review"
	SheetConfiguration = "90_Configuration"
)

// Header labels the special formatting steps look up by text.
const (
	headerStatus    = "Status"
	headerRiskScore = "Risk Score"
)

// sheetDef is one sheet's tabular content before styling.
type sheetDef struct {
	name    string
	headers []string
	rows    [][]any
	wrap    bool // wrap data cells (off for the key/value sheets)
}

func hazardRow(h assessment.Hazard) []any {
	return []any{
		h.ID,
		h.Area,
		h.Activity,
		h.Hazard,
		common.JoinList(h.Sources),
		common.JoinList(h.ExistingControls),
		h.Prob,
		h.Sev,
		h.RiskValue,
		h.RiskLevel,
		h.LastReview,
		h.Reviewer,
		h.DocumentationNote,
	}
}

func measureRow(h assessment.Hazard, m assessment.Measure) []any {
	return []any{
		h.ID,
		h.Area,
		h.Hazard,
		m.Title,
		m.StopLevel,
		m.Responsible,
		m.DueDate,
		m.Status,
		m.Notes,
	}
}

func planRow(h assessment.Hazard, m assessment.Measure) []any {
	return []any{
		h.ID,
		h.Area,
		h.Activity,
		h.Hazard,
		h.RiskValue,
		h.RiskLevel,
		m.Title,
		m.StopLevel,
		m.Responsible,
		m.DueDate,
		m.Status,
		m.Notes,
	}
}

func reviewRow(h assessment.Hazard) []any {
	return []any{
		h.ID,
		h.Area,
		h.Activity,
		h.Hazard,
		h.LastReview,
		h.Reviewer,
		h.DocumentationNote,
	}
}

// buildSheets flattens the assessment into the 8 fixed sheets.
func buildSheets(a *assessment.Assessment) []sheetDef {
	hazards := sheetDef{
		name: SheetHazards,
		headers: []string{
			"ID", "Area", "Activity", "Hazard", "Sources", "Existing Controls",
			"Probability (1-5)", "Severity (1-5)", headerRiskScore, "Risk Level",
			"Last Review", "Reviewer", "Documentation Note",
		},
		wrap: true,
	}
	measures := sheetDef{
		name: SheetMeasures,
		headers: []string{
			"Hazard ID", "Area", "Hazard", "Measure", "STOP(+Q)",
			"Responsible", "Due Date", headerStatus, "Notes",
		},
		wrap: true,
	}
	plan := sheetDef{
		name: SheetPlan,
		headers: []string{
			"Hazard ID", "Area", "Activity", "Hazard", headerRiskScore, "Risk Level",
			"Measure", "STOP(+Q)", "Responsible", "Due Date", headerStatus, "Notes",
		},
		wrap: true,
	}
	review := sheetDef{
		name: SheetEffectiveness,
		headers: []string{
			"Hazard ID", "Area", "Activity", "Hazard",
			"Last Review", "Reviewer", "Documentation Note",
		},
		wrap: true,
	}

	for _, h := range a.Hazards {
		hazards.rows = append(hazards.rows, hazardRow(h))
		review.rows = append(review.rows, reviewRow(h))
		for _, m := range h.AdditionalMeasures {
			measures.rows = append(measures.rows, measureRow(h, m))
			plan.rows = append(plan.rows, planRow(h, m))
		}
	}

	thr := a.Thresholds()
	return []sheetDef{
		{
			name:    SheetMasterData,
			headers: []string{"Field", "Value"},
			rows: [][]any{
				{"Company", a.Company},
				{"Location", a.Location},
				{"Created At", a.CreatedAt},
				{"Created By", a.CreatedBy},
				{"Industry", a.Industry},
				{"Scope", a.ScopeNote},
			},
		},
		hazards,
		measures,
		plan,
		review,
		{
			name:    SheetDocumentation,
			headers: []string{"Documentation Note"},
			rows:    [][]any{{a.DocumentationNote}},
			wrap:    true,
		},
		{
			name:    SheetNextReview,
			headers: []string{"Next Review Triggers"},
			rows:    [][]any{{a.NextReviewHint}},
			wrap:    true,
		},
		{
			name:    SheetConfiguration,
			headers: []string{"Setting", "Value"},
			rows: [][]any{
				{"Low threshold (<=)", thr.Low()},
				{"Medium threshold (<=)", thr.Mid()},
				{"High threshold (<=)", thr.High()},
			},
		},
	}
}
