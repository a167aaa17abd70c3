// Package serialize converts assessments to and from their portable JSON
// form. Encoding is a direct structural dump; decoding is tolerant of
// partial and legacy field sets, filling documented defaults instead of
// failing, so files written by earlier versions of the tool keep loading.
package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/sifa-tools/gbu/internal/assessment"
	"github.com/sifa-tools/gbu/internal/common"
)

// Marshal renders the assessment as indented JSON.
func Marshal(a *assessment.Assessment) ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode assessment: %w", err)
	}
	return data, nil
}

// Decoding documents. Pointer fields distinguish "absent" from zero values
// so defaults only fill genuinely missing fields.

type measureDoc struct {
	Title       string `json:"title"`
	StopLevel   string `json:"stop_level"`
	Responsible string `json:"responsible"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

type hazardDoc struct {
	ID               string   `json:"id"`
	Area             string   `json:"area"`
	Activity         string   `json:"activity"`
	Hazard           string   `json:"hazard"`
	Sources          []string `json:"sources"`
	ExistingControls []string `json:"existing_controls"`
	// Legacy files stored existing controls under "existing".
	Existing          []string     `json:"existing"`
	Prob              *int         `json:"prob"`
	Sev               *int         `json:"sev"`
	Measures          []measureDoc `json:"additional_measures"`
	LastReview        string       `json:"last_review"`
	Reviewer          string       `json:"reviewer"`
	DocumentationNote string       `json:"documentation_note"`
}

type matrixDoc struct {
	Thresholds []int `json:"thresholds"`
}

type assessmentDoc struct {
	Company           string      `json:"company"`
	Location          string      `json:"location"`
	CreatedAt         string      `json:"created_at"`
	CreatedBy         string      `json:"created_by"`
	Industry          string      `json:"industry"`
	ScopeNote         string      `json:"scope_note"`
	RiskMatrix        *matrixDoc  `json:"risk_matrix_thresholds"`
	Hazards           []hazardDoc `json:"hazards"`
	MeasuresPlanNote  string      `json:"measures_plan_note"`
	DocumentationNote string      `json:"documentation_note"`
	NextReviewHint    string      `json:"next_review_hint"`
}

// Unmarshal parses the JSON form of an assessment. Missing fields are
// resolved to documented defaults; hazards without an id get a fresh one;
// risk value and level are recomputed from prob, sev, and thresholds so
// stale derived fields in the file cannot survive a load. Malformed JSON is
// returned as an error wrapping the cause.
func Unmarshal(data []byte) (*assessment.Assessment, error) {
	var doc assessmentDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse assessment: %w", err)
	}

	a := &assessment.Assessment{
		Company:           doc.Company,
		Location:          doc.Location,
		CreatedAt:         doc.CreatedAt,
		CreatedBy:         doc.CreatedBy,
		Industry:          doc.Industry,
		ScopeNote:         doc.ScopeNote,
		RiskMatrix:        assessment.MatrixConfig{Thresholds: decodeThresholds(doc.RiskMatrix)},
		Hazards:           []assessment.Hazard{},
		MeasuresPlanNote:  doc.MeasuresPlanNote,
		DocumentationNote: doc.DocumentationNote,
		NextReviewHint:    doc.NextReviewHint,
	}
	if a.Industry == "" {
		a.Industry = assessment.DefaultIndustry
	}

	for _, hd := range doc.Hazards {
		a.Hazards = append(a.Hazards, decodeHazard(hd))
	}
	a.Reassess()
	return a, nil
}

func decodeThresholds(m *matrixDoc) assessment.Thresholds {
	if m == nil || len(m.Thresholds) != 3 {
		return assessment.DefaultThresholds()
	}
	t := assessment.Thresholds{m.Thresholds[0], m.Thresholds[1], m.Thresholds[2]}
	if t.Validate() != nil {
		return assessment.DefaultThresholds()
	}
	return t
}

func decodeHazard(hd hazardDoc) assessment.Hazard {
	h := assessment.Hazard{
		ID:                 hd.ID,
		Area:               hd.Area,
		Activity:           hd.Activity,
		Hazard:             hd.Hazard,
		Sources:            common.CloneOrEmpty(hd.Sources),
		ExistingControls:   common.CloneOrEmpty(hd.ExistingControls),
		Prob:               ratingOrDefault(hd.Prob, assessment.DefaultProb),
		Sev:                ratingOrDefault(hd.Sev, assessment.DefaultSev),
		AdditionalMeasures: []assessment.Measure{},
		LastReview:         hd.LastReview,
		Reviewer:           hd.Reviewer,
		DocumentationNote:  hd.DocumentationNote,
	}
	if h.ID == "" {
		h.ID = assessment.NewID()
	}
	if hd.ExistingControls == nil && hd.Existing != nil {
		h.ExistingControls = common.CloneOrEmpty(hd.Existing)
	}
	for _, md := range hd.Measures {
		m := assessment.Measure{
			Title:       md.Title,
			StopLevel:   md.StopLevel,
			Responsible: md.Responsible,
			DueDate:     md.DueDate,
			Status:      md.Status,
			Notes:       md.Notes,
		}
		if m.StopLevel == "" {
			m.StopLevel = assessment.DefaultStopLevel
		}
		if m.Status == "" {
			m.Status = assessment.StatusOpen
		}
		h.AdditionalMeasures = append(h.AdditionalMeasures, m)
	}
	// RiskValue and RiskLevel are filled by the caller's Reassess pass.
	return h
}

// ratingOrDefault fills missing ratings and clamps out-of-range values into
// the 5x5 matrix bounds.
func ratingOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	if *v < assessment.MinRating {
		return assessment.MinRating
	}
	if *v > assessment.MaxRating {
		return assessment.MaxRating
	}
	return *v
}
