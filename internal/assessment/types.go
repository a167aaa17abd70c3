// Package assessment defines the risk-assessment domain model: mitigation
// measures, atomic hazards, and the assessment aggregate that owns them,
// together with the probability x severity scoring rules.
package assessment

import (
	"slices"

	"github.com/sifa-tools/gbu/internal/common"
)

// STOP+Q hierarchy of mitigation levels, ordered by priority.
const (
	StopSubstitution   = "S (Substitution)"
	StopTechnical      = "T (Technical)"
	StopOrganizational = "O (Organizational)"
	StopPPE            = "P (PPE)"
	StopQualification  = "Q (Qualification/Training)"
)

// StopLevels lists the STOP+Q hierarchy in priority order.
var StopLevels = []string{
	StopSubstitution,
	StopTechnical,
	StopOrganizational,
	StopPPE,
	StopQualification,
}

// DefaultStopLevel is assigned to measures that do not specify a level.
const DefaultStopLevel = StopOrganizational

// Measure implementation statuses.
const (
	StatusOpen         = "open"
	StatusInProgress   = "in progress"
	StatusEffective    = "effective"
	StatusNotEffective = "not effective"
	StatusRetired      = "retired"
)

// Statuses lists the valid measure statuses in lifecycle order.
var Statuses = []string{
	StatusOpen,
	StatusInProgress,
	StatusEffective,
	StatusNotEffective,
	StatusRetired,
}

// DefaultIndustry is used when an assessment does not name one.
const DefaultIndustry = "hospitality"

// Default probability and severity for newly identified hazards.
const (
	DefaultProb = 3
	DefaultSev  = 3
)

// Measure is a single mitigation action owned by its parent Hazard. It is
// never persisted on its own.
type Measure struct {
	Title       string `json:"title"`
	StopLevel   string `json:"stop_level"`
	Responsible string `json:"responsible"`
	DueDate     string `json:"due_date,omitempty"` // ISO date, not validated
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// NewMeasure creates a measure with the default status and, if level is
// empty, the default STOP level.
func NewMeasure(title, level string) Measure {
	if level == "" {
		level = DefaultStopLevel
	}
	return Measure{
		Title:     title,
		StopLevel: level,
		Status:    StatusOpen,
	}
}

// Hazard is one atomic hazard tied to one activity in one area. The Hazard
// field holds exactly one hazard concept; composite descriptions must be
// split (see hazardtext) before construction.
type Hazard struct {
	ID                 string    `json:"id"`
	Area               string    `json:"area"`
	Activity           string    `json:"activity"`
	Hazard             string    `json:"hazard"`
	Sources            []string  `json:"sources"`
	ExistingControls   []string  `json:"existing_controls"`
	Prob               int       `json:"prob"`
	Sev                int       `json:"sev"`
	RiskValue          int       `json:"risk_value"`
	RiskLevel          string    `json:"risk_level"`
	AdditionalMeasures []Measure `json:"additional_measures"`
	LastReview         string    `json:"last_review,omitempty"` // ISO date
	Reviewer           string    `json:"reviewer"`
	DocumentationNote  string    `json:"documentation_note"`
}

// MatrixConfig wraps the risk matrix thresholds. The nesting mirrors the
// serialized form ({"thresholds": [low, mid, high]}).
type MatrixConfig struct {
	Thresholds Thresholds `json:"thresholds"`
}

// Assessment is the aggregate root: one live instance per working session.
// Hazard order is insertion order and is semantically significant.
type Assessment struct {
	Company           string       `json:"company"`
	Location          string       `json:"location"`
	CreatedAt         string       `json:"created_at"` // ISO date
	CreatedBy         string       `json:"created_by"`
	Industry          string       `json:"industry"`
	ScopeNote         string       `json:"scope_note"`
	RiskMatrix        MatrixConfig `json:"risk_matrix_thresholds"`
	Hazards           []Hazard     `json:"hazards"`
	MeasuresPlanNote  string       `json:"measures_plan_note"`
	DocumentationNote string       `json:"documentation_note"`
	NextReviewHint    string       `json:"next_review_hint"`
}

// New creates an assessment with default thresholds and industry. createdAt
// is an ISO date string supplied by the caller (the core never reads the
// clock for document fields).
func New(company, location, createdAt, createdBy string) *Assessment {
	return &Assessment{
		Company:    company,
		Location:   location,
		CreatedAt:  createdAt,
		CreatedBy:  createdBy,
		Industry:   DefaultIndustry,
		RiskMatrix: MatrixConfig{Thresholds: DefaultThresholds()},
		Hazards:    []Hazard{},
	}
}

// NewHazard creates a hazard with a fresh id, default probability and
// severity, and risk fields computed against the given thresholds.
func NewHazard(area, activity, hazard string, sources, existing []string, t Thresholds) Hazard {
	h := Hazard{
		ID:                 NewID(),
		Area:               area,
		Activity:           activity,
		Hazard:             hazard,
		Sources:            common.CloneOrEmpty(sources),
		ExistingControls:   common.CloneOrEmpty(existing),
		Prob:               DefaultProb,
		Sev:                DefaultSev,
		AdditionalMeasures: []Measure{},
	}
	h.RiskValue, h.RiskLevel = ComputeRisk(h.Prob, h.Sev, t)
	return h
}

// AddHazard appends h to the assessment, preserving insertion order.
func (a *Assessment) AddHazard(h Hazard) {
	a.Hazards = append(a.Hazards, h)
}

// FindHazard returns a pointer to the hazard with the given id, or nil.
func (a *Assessment) FindHazard(id string) *Hazard {
	for i := range a.Hazards {
		if a.Hazards[i].ID == id {
			return &a.Hazards[i]
		}
	}
	return nil
}

// RemoveHazard deletes the hazard with the given id. It reports whether a
// hazard was removed.
func (a *Assessment) RemoveHazard(id string) bool {
	for i := range a.Hazards {
		if a.Hazards[i].ID == id {
			a.Hazards = slices.Delete(a.Hazards, i, i+1)
			return true
		}
	}
	return false
}

// Thresholds returns the active risk matrix thresholds.
func (a *Assessment) Thresholds() Thresholds {
	return a.RiskMatrix.Thresholds
}

// SetThresholds replaces the risk matrix thresholds and recomputes the
// derived risk fields of every hazard. Invalid triples are rejected before
// any mutation takes place.
func (a *Assessment) SetThresholds(t Thresholds) error {
	if err := t.Validate(); err != nil {
		return err
	}
	a.RiskMatrix.Thresholds = t
	a.Reassess()
	return nil
}

// Reassess recomputes risk value and level for every hazard from its current
// probability and severity. Called after any threshold change; derived risk
// fields must never go stale.
func (a *Assessment) Reassess() {
	t := a.RiskMatrix.Thresholds
	for i := range a.Hazards {
		h := &a.Hazards[i]
		h.RiskValue, h.RiskLevel = ComputeRisk(h.Prob, h.Sev, t)
	}
}

// Duplicate stamps the assessment as a copy: company gains a "(copy)"
// suffix and created_at is replaced with the supplied date. Hazards and
// their ids are kept as-is.
func (a *Assessment) Duplicate(createdAt string) {
	a.Company += " (copy)"
	a.CreatedAt = createdAt
}

// SetRisk updates probability and severity and recomputes the derived risk
// fields in the same step. Values outside 1..5 are rejected.
func (h *Hazard) SetRisk(prob, sev int, t Thresholds) error {
	if prob < MinRating || prob > MaxRating {
		return &RatingError{Field: "prob", Value: prob}
	}
	if sev < MinRating || sev > MaxRating {
		return &RatingError{Field: "sev", Value: sev}
	}
	h.Prob = prob
	h.Sev = sev
	h.RiskValue, h.RiskLevel = ComputeRisk(prob, sev, t)
	return nil
}

// AddMeasure appends a measure to the hazard. Measures with a blank title
// are ignored.
func (h *Hazard) AddMeasure(m Measure) {
	if m.Title == "" {
		return
	}
	if m.StopLevel == "" {
		m.StopLevel = DefaultStopLevel
	}
	if m.Status == "" {
		m.Status = StatusOpen
	}
	h.AdditionalMeasures = append(h.AdditionalMeasures, m)
}
