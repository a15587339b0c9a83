package analysis

import (
	"testing"

	"github.com/jonathan/placement-prep/internal/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChecklist_Variants(t *testing.T) {
	t.Run("nothing found", func(t *testing.T) {
		rounds := BuildChecklist(skills.NewCategorySet())
		require.Len(t, rounds, 4)

		assert.Equal(t, "General programming logic", rounds[1].Items[3])
		assert.Equal(t, "Basic Data storage concepts", rounds[1].Items[4])
		assert.Equal(t, "Explain architecture of your Major project", rounds[2].Items[1])
		assert.Equal(t, "Code walk-through", rounds[2].Items[2])
		assert.Equal(t, "Version control (Git) workflow", rounds[2].Items[3])
	})

	t.Run("everything found", func(t *testing.T) {
		rounds := BuildChecklist(skills.NewCategorySet(skills.Categories()...))

		assert.Equal(t, "OOP Concepts (Polymorphism, Inheritance)", rounds[1].Items[3])
		assert.Equal(t, "SQL Queries (Joins, Group By)", rounds[1].Items[4])
		assert.Equal(t, "Explain architecture of your Web project", rounds[2].Items[1])
		assert.Equal(t, "React/Node.js specific lifecycle questions", rounds[2].Items[2])
		assert.Equal(t, "Deployment & CI/CD pipeline discussion", rounds[2].Items[3])
	})

	t.Run("shape", func(t *testing.T) {
		rounds := BuildChecklist(skills.NewCategorySet(skills.CategoryWeb))
		assert.Equal(t, "Round 1: Aptitude & Basics", rounds[0].Round)
		assert.Equal(t, "Round 4: Managerial & HR", rounds[3].Round)
		for _, r := range rounds {
			assert.Len(t, r.Items, 5)
		}
	})
}

func TestBuildPlan_Day5(t *testing.T) {
	plan := BuildPlan(skills.NewCategorySet(skills.CategoryWeb))
	require.Len(t, plan, 7)
	assert.Equal(t, "Revise React/Node interview Qs", plan[4].Tasks[1])

	plan = BuildPlan(skills.NewCategorySet(skills.CategoryData))
	assert.Equal(t, "Revise Language interview Qs", plan[4].Tasks[1])

	for i, day := range plan {
		assert.Equal(t, i+1, day.Day)
		assert.NotEmpty(t, day.Focus)
		assert.Len(t, day.Tasks, 3)
	}
}

func TestBuildQuestions_PriorityOrder(t *testing.T) {
	qs := BuildQuestions(skills.NewCategorySet(skills.CategoryWeb, skills.CategoryData))
	require.Len(t, qs, MaxQuestions)

	assert.Equal(t, "Data", qs[0].Category)
	assert.Equal(t, "Data", qs[1].Category)
	assert.Equal(t, "Web", qs[2].Category)
	assert.Equal(t, "Web", qs[3].Category)
	assert.Equal(t, genericPool[0], qs[4])
	assert.Equal(t, genericPool[5], qs[9])
}

func TestBuildQuestions_TruncatesToTen(t *testing.T) {
	qs := BuildQuestions(skills.NewCategorySet(skills.Categories()...))
	require.Len(t, qs, MaxQuestions)

	// Eleven category questions exist; the last testing question is dropped.
	assert.Equal(t, "Testing", qs[9].Category)
	for _, q := range qs {
		assert.NotEqual(t, "Behavioral", q.Category)
	}
}

func TestBuildQuestions_NoCategories(t *testing.T) {
	qs := BuildQuestions(skills.NewCategorySet())
	assert.Equal(t, genericPool, qs)
}

func TestGenericPool_FillsEmptyList(t *testing.T) {
	assert.GreaterOrEqual(t, len(genericPool), MaxQuestions)
}
