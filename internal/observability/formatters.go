// Package observability renders analysis results and history for the terminal.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/placement-prep/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxSkillsInHistory is how many skills a history entry lists before "+N more"
	maxSkillsInHistory = 5

	resultDateLayout  = "January 2, 2006 at 3:04 PM"
	historyDateLayout = "Jan 2, 2006"
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Long lines wrap.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, part := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %s │\n", pad(part, inner))
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintNotice prints a short titled message, used for user-facing errors.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintNotice(title, message string) {
	fmt.Fprintf(p.out, "%s: %s\n", title, message)
}

// PrintResult outputs the full results view of one analysis.
func (p *Printer) PrintResult(r *types.AnalysisResult) {
	if r == nil {
		return
	}

	var sb strings.Builder
	if company := singleLine(r.Company); company != "" {
		sb.WriteString(fmt.Sprintf("@ %s\n", company))
	}
	sb.WriteString(fmt.Sprintf("Analyzed on %s\n", r.CreatedAt.Local().Format(resultDateLayout)))
	sb.WriteString(fmt.Sprintf("Readiness score: %d/100\n", r.ReadinessScore))
	sb.WriteString(fmt.Sprintf("ID: %s", r.ID))

	title := singleLine(r.Role)
	if title == "" {
		title = "Analysis Results"
	}
	p.printBox(strings.ToUpper(title), sb.String())

	p.printSkills(r.ExtractedSkills)
	p.printPlan(r.Plan)
	p.printChecklist(r.Checklist)
	p.printQuestions(r.Questions)
}

func (p *Printer) printSkills(skills []types.Skill) {
	if len(skills) == 0 {
		p.printBox("EXTRACTED SKILLS PROFILE", "No specific skills detected. Showing general preparation.")
		return
	}

	var order []string
	byCategory := make(map[string][]string)
	for _, s := range skills {
		if _, seen := byCategory[s.Category]; !seen {
			order = append(order, s.Category)
		}
		byCategory[s.Category] = append(byCategory[s.Category], s.Name)
	}

	var sb strings.Builder
	for _, cat := range order {
		sb.WriteString(fmt.Sprintf("%s: %s\n", cat, strings.Join(byCategory[cat], ", ")))
	}
	p.printBox("EXTRACTED SKILLS PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printPlan(plan []types.PlanDay) {
	if len(plan) == 0 {
		return
	}
	var sb strings.Builder
	for i, day := range plan {
		sb.WriteString(fmt.Sprintf("Day %d  %s\n", day.Day, day.Focus))
		for _, task := range day.Tasks {
			sb.WriteString(fmt.Sprintf("  • %s\n", task))
		}
		if i < len(plan)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("7-DAY PREPARATION PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printChecklist(rounds []types.ChecklistRound) {
	if len(rounds) == 0 {
		return
	}
	var sb strings.Builder
	for i, round := range rounds {
		sb.WriteString(round.Round + "\n")
		for _, item := range round.Items {
			sb.WriteString(fmt.Sprintf("  [ ] %s\n", item))
		}
		if i < len(rounds)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("INTERVIEW CHECKLIST", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printQuestions(questions []types.Question) {
	if len(questions) == 0 {
		return
	}
	var sb strings.Builder
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, q.Category, q.Question))
	}
	p.printBox("LIKELY INTERVIEW QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHistory outputs the history list, newest first as given.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHistory(results []types.AnalysisResult) {
	if len(results) == 0 {
		p.printBox("ANALYSIS HISTORY", "No analyses yet\nRun `placement analyze` to analyze a job description.")
		return
	}

	var sb strings.Builder
	for i, r := range results {
		header := r.CreatedAt.Local().Format(historyDateLayout)
		if company := singleLine(r.Company); company != "" {
			header += "  " + company
		}
		sb.WriteString(header + "\n")
		sb.WriteString(fmt.Sprintf("%s  (score %d)\n", RoleTitle(singleLine(r.Role)), r.ReadinessScore))
		if skills := SkillSummary(r.ExtractedSkills); skills != "" {
			sb.WriteString(skills + "\n")
		}
		sb.WriteString(fmt.Sprintf("id: %s\n", r.ID))
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("ANALYSIS HISTORY (%d)", len(results)), strings.TrimSuffix(sb.String(), "\n"))
}

// RoleTitle is the role, or a generic label when none was given.
func RoleTitle(role string) string {
	if role == "" {
		return "General Role Analysis"
	}
	return role
}

// SkillSummary lists the first few skill names and counts the rest.
func SkillSummary(skills []types.Skill) string {
	if len(skills) == 0 {
		return ""
	}
	count := min(len(skills), maxSkillsInHistory)
	names := make([]string, 0, count)
	for _, s := range skills[:count] {
		names = append(names, s.Name)
	}
	out := strings.Join(names, ", ")
	if len(skills) > maxSkillsInHistory {
		out += fmt.Sprintf(" +%d more", len(skills)-maxSkillsInHistory)
	}
	return out
}

// singleLine collapses whitespace runs, newlines included, to single spaces.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// wrap splits line on spaces so no part exceeds width runes. Words longer than width
// are cut. Leading spaces are kept on every part unless they take half the width or more.
func wrap(line string, width int) []string {
	if width < 1 {
		width = 1
	}
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	if len(indent) >= width/2 {
		indent = ""
	}
	var parts []string
	var cur []rune
	for _, word := range strings.Fields(line) {
		w := []rune(word)
		for len(w) > width-len(indent) {
			if len(cur) > 0 {
				parts = append(parts, string(cur))
				cur = nil
			}
			cut := width - len(indent)
			parts = append(parts, indent+string(w[:cut]))
			w = w[cut:]
		}
		switch {
		case len(cur) == 0:
			cur = append([]rune(indent), w...)
		case len(cur)+1+len(w) <= width:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			parts = append(parts, string(cur))
			cur = append([]rune(indent), w...)
		}
	}
	if len(cur) > 0 {
		parts = append(parts, string(cur))
	}
	return parts
}
