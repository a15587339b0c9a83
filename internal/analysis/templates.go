package analysis

import (
	"github.com/jonathan/placement-prep/internal/skills"
	"github.com/jonathan/placement-prep/internal/types"
)

// MaxQuestions caps the question list.
const MaxQuestions = 10

// BuildChecklist returns the four interview rounds. Five items are fixed per round; four
// of them depend on which categories were found.
func BuildChecklist(found skills.CategorySet) []types.ChecklistRound {
	projectKind := "Major"
	if found.Has(skills.CategoryWeb) {
		projectKind = "Web"
	}

	return []types.ChecklistRound{
		{
			Round: "Round 1: Aptitude & Basics",
			Items: []string{
				"Quantitative Aptitude (Time, Work, Speed, Distance)",
				"Logical Reasoning & Puzzles",
				"Verbal Ability & Communication check",
				"Resume walkthrough preparation",
				"Basic behavioral questions (Tell me about yourself)",
			},
		},
		{
			Round: "Round 2: Technical (DSA & Core)",
			Items: []string{
				"Array & String manipulation problems",
				"HashMaps & Two Pointer techniques",
				"Basic Recursion & Sorting algorithms",
				pick(found.Has(skills.CategoryCoreCS), "OOP Concepts (Polymorphism, Inheritance)", "General programming logic"),
				pick(found.Has(skills.CategoryData), "SQL Queries (Joins, Group By)", "Basic Data storage concepts"),
			},
		},
		{
			Round: "Round 3: Technical (Stack & Projects)",
			Items: []string{
				"Deep dive into Resume Projects",
				"Explain architecture of your " + projectKind + " project",
				pick(found.Has(skills.CategoryWeb), "React/Node.js specific lifecycle questions", "Code walk-through"),
				pick(found.Has(skills.CategoryCloud), "Deployment & CI/CD pipeline discussion", "Version control (Git) workflow"),
				"System Design basics (Scalability, Caching)",
			},
		},
		{
			Round: "Round 4: Managerial & HR",
			Items: []string{
				"Why this company/role?",
				"Handling conflict in teams",
				"Strengths & Weaknesses",
				"Future career goals (5 year plan)",
				"Questions for the interviewer",
			},
		},
	}
}

// BuildPlan returns the seven-day plan. Only day 5 varies, on the Web category.
func BuildPlan(found skills.CategorySet) []types.PlanDay {
	stack := "Language"
	if found.Has(skills.CategoryWeb) {
		stack = "React/Node"
	}

	return []types.PlanDay{
		{Day: 1, Focus: "Basics & Aptitude", Tasks: []string{"Practice 20 Aptitude Qs", "Revise Resume", "Research Company"}},
		{Day: 2, Focus: "Core CS Concepts", Tasks: []string{"Revise OOPs", "DBMS Normalization", "OS Basics (Processes, Threads)"}},
		{Day: 3, Focus: "Data Structures", Tasks: []string{"Solve 3 Array problems", "Solve 2 Linked List problems", "Stack/Queue implementation"}},
		{Day: 4, Focus: "Algorithms", Tasks: []string{"Binary Search practice", "Sorting Algorithms analysis", "Basic DP/Greedy problems"}},
		{Day: 5, Focus: "Project & Stack", Tasks: []string{"Review Project Codebase", "Revise " + stack + " interview Qs", "System Design basics"}},
		{Day: 6, Focus: "Mock Interviews", Tasks: []string{"Peer Mock Interview", "Behavioral Qs rehearsal", "Whiteboard coding practice"}},
		{Day: 7, Focus: "Revision", Tasks: []string{"Review weak areas", "Rest & Mental prep", "Final Resume Polish"}},
	}
}

type categoryQuestions struct {
	category  skills.Category
	questions []string
}

// questionBank is walked in priority order.
var questionBank = []categoryQuestions{
	{
		category: skills.CategoryData,
		questions: []string{
			"Explain the difference between clustered and non-clustered indexes.",
			"Write a SQL query to find the second highest salary.",
		},
	},
	{
		category: skills.CategoryWeb,
		questions: []string{
			"Explain the Virtual DOM and how reconciliation works.",
			"What is the difference between specific and universal selectors in CSS?",
		},
	},
	{
		category: skills.CategoryCoreCS,
		questions: []string{
			"Explain the 4 pillars of Object Oriented Programming with examples.",
			"What is the difference between a Process and a Thread?",
		},
	},
	{
		category: skills.CategoryLanguages,
		questions: []string{
			"Explain memory management and garbage collection in your primary language.",
		},
	},
	{
		category: skills.CategoryCloud,
		questions: []string{
			"Walk through how you would containerize and deploy a service.",
			"What happens in a CI/CD pipeline between a commit and a production release?",
		},
	},
	{
		category: skills.CategoryTesting,
		questions: []string{
			"How do unit, integration, and end-to-end tests differ?",
			"How would you decide what to automate in a test suite?",
		},
	},
}

// genericPool pads the list up to MaxQuestions. It is long enough to fill an empty list.
var genericPool = []types.Question{
	{Category: "Behavioral", Question: "Describe a challenging bug you fixed and how you approached it."},
	{Category: "General", Question: "How do you keep yourself updated with the latest technology trends?"},
	{Category: "General Technical", Question: "Explain a technical concept you learned recently to a 5-year old."},
	{Category: "Behavioral", Question: "Tell me about a time you disagreed with a teammate and how it was resolved."},
	{Category: "Behavioral", Question: "Describe a project you are proud of and your role in it."},
	{Category: "General", Question: "Why do you want to work at this company?"},
	{Category: "General Technical", Question: "How would you design a URL shortener?"},
	{Category: "General Technical", Question: "What is the time complexity of searching in a balanced binary search tree?"},
	{Category: "Behavioral", Question: "Tell me about a time you had to learn something quickly."},
	{Category: "General", Question: "Where do you see yourself in five years?"},
}

// BuildQuestions returns category questions in priority order, padded from the generic
// pool and capped at MaxQuestions.
func BuildQuestions(found skills.CategorySet) []types.Question {
	out := make([]types.Question, 0, MaxQuestions)
	for _, cq := range questionBank {
		if !found.Has(cq.category) {
			continue
		}
		for _, q := range cq.questions {
			out = append(out, types.Question{Category: string(cq.category), Question: q})
		}
	}

	for i := 0; len(out) < MaxQuestions && i < len(genericPool); i++ {
		out = append(out, genericPool[i])
	}

	if len(out) > MaxQuestions {
		out = out[:MaxQuestions]
	}
	return out
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
