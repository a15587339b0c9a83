package types

import (
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
)

// Skill is a keyword matched in a job description, tagged with its category.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// PlanDay is one day of the seven-day preparation plan.
type PlanDay struct {
	Day   int      `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// ChecklistRound is one interview round with its preparation items.
type ChecklistRound struct {
	Round string   `json:"round"`
	Items []string `json:"items"`
}

// Question is a likely interview question.
type Question struct {
	Category string `json:"category"`
	Question string `json:"question"`
}

// AnalysisResult is the full output of one job description analysis.
// It is created once and never mutated afterwards.
type AnalysisResult struct {
	ID              string           `json:"id"`
	CreatedAt       time.Time        `json:"createdAt"`
	Company         string           `json:"company"`
	Role            string           `json:"role"`
	JDText          string           `json:"jdText"`
	ExtractedSkills []Skill          `json:"extractedSkills"`
	Plan            []PlanDay        `json:"plan"`
	Checklist       []ChecklistRound `json:"checklist"`
	Questions       []Question       `json:"questions"`
	ReadinessScore  int              `json:"readinessScore"`
}

// Clone returns a deep copy of r that shares no slices with it.
func (r AnalysisResult) Clone() AnalysisResult {
	out := r
	out.ExtractedSkills = slices.Clone(r.ExtractedSkills)
	out.Questions = slices.Clone(r.Questions)
	if r.Plan != nil {
		out.Plan = make([]PlanDay, len(r.Plan))
		for i, d := range r.Plan {
			d.Tasks = slices.Clone(d.Tasks)
			out.Plan[i] = d
		}
	}
	if r.Checklist != nil {
		out.Checklist = make([]ChecklistRound, len(r.Checklist))
		for i, c := range r.Checklist {
			c.Items = slices.Clone(c.Items)
			out.Checklist[i] = c
		}
	}
	return out
}

// AnalyzeRequest is the user input for an analysis. Blank JDText is rejected by the caller,
// not by the tags, so the caller can report it distinctly.
type AnalyzeRequest struct {
	JDText  string `json:"jdText"`
	Company string `json:"company" validate:"max=200"`
	Role    string `json:"role" validate:"max=200"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
