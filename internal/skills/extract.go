package skills

import (
	"regexp"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// Token characters are letters, digits, '+' and '#'. A keyword only matches when it is
// not glued to another token character on either side, so "go" never matches inside
// "google" and a bare "c" never matches inside "c++".
const (
	boundaryBefore = `(?:^|[^\p{L}\p{N}+#])`
	boundaryAfter  = `(?:[^\p{L}\p{N}+#]|$)`
)

type matcher struct {
	name     string
	category Category
	re       *regexp.Regexp
}

var matchers = compileMatchers(keywordTable)

func compileMatchers(table []Group) []matcher {
	var out []matcher
	for _, g := range table {
		for _, kw := range g.Keywords {
			out = append(out, matcher{
				name:     kw,
				category: g.Category,
				re:       regexp.MustCompile(boundaryBefore + regexp.QuoteMeta(strings.ToLower(kw)) + boundaryAfter),
			})
		}
	}
	return out
}

// CategorySet records which categories had at least one keyword match.
type CategorySet map[Category]bool

// NewCategorySet builds a set from the given categories.
func NewCategorySet(categories ...Category) CategorySet {
	s := make(CategorySet, len(categories))
	for _, c := range categories {
		s[c] = true
	}
	return s
}

// Has reports whether c was found.
func (s CategorySet) Has(c Category) bool {
	return s[c]
}

// Len returns the number of found categories.
func (s CategorySet) Len() int {
	return len(s)
}

// Extract scans text for every keyword in table order and returns the matched skills
// (deduplicated by name, in table order) together with the set of found categories.
func Extract(text string) ([]types.Skill, CategorySet) {
	lower := strings.ToLower(text)
	found := make(CategorySet)
	seen := make(map[string]bool)
	skills := make([]types.Skill, 0)

	for _, m := range matchers {
		if seen[m.name] {
			continue
		}
		if !m.re.MatchString(lower) {
			continue
		}
		seen[m.name] = true
		found[m.category] = true
		skills = append(skills, types.Skill{
			Name:     m.name,
			Category: string(m.category),
		})
	}

	return skills, found
}
