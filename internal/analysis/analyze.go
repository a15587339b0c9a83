// Package analysis turns a job description into a readiness report: matched skills,
// a readiness score, a seven-day plan, an interview checklist and likely questions.
package analysis

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonathan/placement-prep/internal/skills"
	"github.com/jonathan/placement-prep/internal/types"
)

// Score weights.
const (
	baseScore         = 35
	perCategoryBonus  = 5
	maxCategoryBonus  = 30
	companyBonus      = 10
	roleBonus         = 10
	lengthBonus       = 10
	lengthThreshold   = 800
	maxReadinessScore = 100
)

// Analyze runs the full heuristic. It never fails and performs no validation; callers
// reject blank text before calling it.
func Analyze(jdText, company, role string) *types.AnalysisResult {
	extracted, found := skills.Extract(jdText)

	return &types.AnalysisResult{
		ID:              newID(),
		CreatedAt:       time.Now().UTC(),
		Company:         company,
		Role:            role,
		JDText:          jdText,
		ExtractedSkills: extracted,
		Plan:            BuildPlan(found),
		Checklist:       BuildChecklist(found),
		Questions:       BuildQuestions(found),
		ReadinessScore:  Score(found, jdText, company, role),
	}
}

// Score computes the readiness score in [0, 100].
func Score(found skills.CategorySet, jdText, company, role string) int {
	score := baseScore
	score += min(perCategoryBonus*found.Len(), maxCategoryBonus)
	if strings.TrimSpace(company) != "" {
		score += companyBonus
	}
	if strings.TrimSpace(role) != "" {
		score += roleBonus
	}
	if utf8.RuneCountInString(jdText) > lengthThreshold {
		score += lengthBonus
	}
	return max(0, min(score, maxReadinessScore))
}

// newID returns a time-ordered identifier.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
