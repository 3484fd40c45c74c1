package extract

import (
	_ "embed"
	"regexp"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed data/titles.yaml
var titlesYAML []byte

// Gazetteer holds the known role titles used to anchor extraction patterns
// and to confirm captured role phrases.
type Gazetteer struct {
	Exact  []string `yaml:"exact"`
	Prefix []string `yaml:"prefix"`
}

// chiefOfficerRe matches "Chief <Word> Officer" forms (Chief Revenue Officer,
// Chief People Officer, ...) without enumerating them.
var chiefOfficerRe = regexp.MustCompile(`(?i)\bchief\s+[a-z]+\s+officer\b`)

// LoadGazetteer parses the embedded titles file.
func LoadGazetteer() (*Gazetteer, error) {
	var g Gazetteer
	if err := yaml.Unmarshal(titlesYAML, &g); err != nil {
		return nil, eris.Wrap(err, "extract: parse titles gazetteer")
	}
	if len(g.Exact) == 0 {
		return nil, eris.New("extract: titles gazetteer is empty")
	}
	return &g, nil
}

// Contains reports whether phrase mentions a known role title.
// Case-insensitive substring check; used to confirm free-text captures
// from the "is/serves as" and bolded-name patterns.
func (g *Gazetteer) Contains(phrase string) bool {
	lower := strings.ToLower(phrase)
	for _, t := range g.Exact {
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	for _, p := range g.Prefix {
		if strings.Contains(lower, strings.ToLower(p)+" ") {
			return true
		}
	}
	return chiefOfficerRe.MatchString(phrase)
}

// alternation builds the regex alternation for anchored patterns.
// Longest entries first so "Marketing Manager" wins over "Manager" and
// "Co-Founder" over "Founder" under leftmost-first matching.
func (g *Gazetteer) alternation() string {
	entries := make([]string, 0, len(g.Exact)+len(g.Prefix)+1)
	for _, t := range g.Exact {
		entries = append(entries, regexp.QuoteMeta(t))
	}
	sort.Slice(entries, func(i, j int) bool { return len(entries[i]) > len(entries[j]) })

	// Open-ended forms go in front of the exact list: they are longer than
	// any literal they overlap with.
	open := []string{`Chief \p{Lu}[\p{L}]+ Officer`}
	for _, p := range g.Prefix {
		open = append(open, regexp.QuoteMeta(p)+` \p{Lu}[\p{L}]+(?: \p{Lu}[\p{L}]+)?`)
	}

	// Exact titles match case-insensitively ("John Smith, founder of");
	// the open-ended forms stay case-sensitive so their capitalized
	// continuation keeps filtering prose.
	return `(?:` + strings.Join(open, `|`) + `|(?i:` + strings.Join(entries, `|`) + `))`
}
