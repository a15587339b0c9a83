// Package skills provides keyword-based skill extraction from job descriptions.
package skills

// Category is one of the fixed skill groupings.
type Category string

// Skill categories, in table order.
const (
	CategoryCoreCS    Category = "Core CS"
	CategoryLanguages Category = "Languages"
	CategoryWeb       Category = "Web"
	CategoryData      Category = "Data"
	CategoryCloud     Category = "Cloud/DevOps"
	CategoryTesting   Category = "Testing"
)

// Group is a category and its ordered keywords.
type Group struct {
	Category Category
	Keywords []string
}

// keywordTable is read-only after init. Order matters: it fixes the output order of
// extracted skills.
var keywordTable = []Group{
	{
		Category: CategoryCoreCS,
		Keywords: []string{
			"DSA", "Data Structures", "Algorithms", "OOP", "Object Oriented",
			"DBMS", "Database Management", "OS", "Operating Systems",
			"Networks", "Computer Networks", "System Design",
		},
	},
	{
		Category: CategoryLanguages,
		Keywords: []string{
			"Java", "Python", "JavaScript", "TypeScript", "C++", "C#",
			"Golang", "Go", "Ruby", "Swift", "Kotlin", "Rust",
		},
	},
	{
		Category: CategoryWeb,
		Keywords: []string{
			"React", "Next.js", "Node", "Node.js", "Express", "REST", "API",
			"GraphQL", "HTML", "CSS", "Tailwind", "Frontend", "Backend", "Fullstack",
		},
	},
	{
		Category: CategoryData,
		Keywords: []string{
			"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "NoSQL",
			"Data Modeling", "Schema",
		},
	},
	{
		Category: CategoryCloud,
		Keywords: []string{
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD",
			"DevOps", "Linux", "Git", "GitHub",
		},
	},
	{
		Category: CategoryTesting,
		Keywords: []string{
			"Selenium", "Cypress", "Playwright", "Jest", "JUnit", "PyTest",
			"Testing", "QA",
		},
	},
}

// Categories returns all categories in table order.
func Categories() []Category {
	out := make([]Category, 0, len(keywordTable))
	for _, g := range keywordTable {
		out = append(out, g.Category)
	}
	return out
}

// Table returns a copy of the keyword table.
func Table() []Group {
	out := make([]Group, len(keywordTable))
	for i, g := range keywordTable {
		out[i] = Group{
			Category: g.Category,
			Keywords: append([]string(nil), g.Keywords...),
		}
	}
	return out
}
