package extract

import (
	"regexp"
	"strings"
)

// Name fragments require 2-4 capitalized tokens. Repetition is bounded on
// every pattern so no matcher can backtrack over an unbounded word class.
const (
	nameToken = `\p{Lu}[\p{L}'’-]+`
	// nameLazy stops at the fewest tokens that let the rest of the pattern
	// match; used when a separator or title anchors the right edge.
	nameLazy = nameToken + `(?:[ \t]` + nameToken + `){1,3}?`
	// nameGreedy absorbs up to four tokens; used when the name ends the match.
	nameGreedy = nameToken + `(?:[ \t]` + nameToken + `){1,3}`
	// honorific optionally precedes a name and is stripped before validation.
	honorific = `(?:(?:Mr|Mrs|Ms|Dr|Prof)\.[ \t]+)?`
)

// rawMatch is one (name, title) pair pulled from text before validation.
type rawMatch struct {
	name    string
	title   string
	pattern string
	// confirm requires the title phrase to mention a gazetteer role before
	// the match is accepted.
	confirm bool
}

// matcher is one independent extraction pattern. Each encodes a common
// English phrasing that ties a person's name to a role.
type matcher struct {
	name  string
	re    *regexp.Regexp
	apply func(groups []string) []rawMatch
}

// implicitFounderTitle is assigned by the founded-by pattern, which carries
// no explicit role text.
const implicitFounderTitle = "Founder"

func buildMatchers(style Style, gaz *Gazetteer) []matcher {
	titleAlt := gaz.alternation()

	matchers := []matcher{
		{
			// "Jane Doe, CEO" and "Jane Doe CEO".
			name: "name_title",
			re:   regexp.MustCompile(`\b(` + honorific + nameLazy + `),?[ \t]+(` + titleAlt + `)\b`),
			apply: func(g []string) []rawMatch {
				return []rawMatch{{name: g[1], title: g[2], pattern: "name_title"}}
			},
		},
		{
			// "CEO: Jane Doe" and "CEO - Jane Doe".
			name: "title_name",
			re:   regexp.MustCompile(`\b(` + titleAlt + `)[ \t]*[:\-–—][ \t]*(` + honorific + nameGreedy + `)\b`),
			apply: func(g []string) []rawMatch {
				return []rawMatch{{name: g[2], title: g[1], pattern: "title_name"}}
			},
		},
		{
			// "Jane Doe is the CEO", "Jane Doe serves as Head of Sales".
			// The trailing phrase is free text; the gazetteer contains
			// check decides whether it is actually a role.
			name: "is_serves_as",
			re:   regexp.MustCompile(`\b(` + honorific + nameLazy + `)[ \t]+(?:is|serves[ \t]+as)[ \t]+(?:(?i:the|a|an|our)[ \t]+)?([\p{L}][\p{L} &/\-]{1,50})`),
			apply: func(g []string) []rawMatch {
				return []rawMatch{{name: g[1], title: g[2], pattern: "is_serves_as", confirm: true}}
			},
		},
		{
			// "founded by Jane Doe and John Smith"; title is implicitly
			// Founder, with support for a two-person "and" list.
			name: "founded_by",
			re:   regexp.MustCompile(`\b(?i:founded|started|created|established)[ \t]+(?i:by)[ \t]+(` + honorific + nameGreedy + `)(?:,?[ \t]+(?i:and)[ \t]+(` + honorific + nameGreedy + `))?`),
			apply: func(g []string) []rawMatch {
				out := []rawMatch{{name: g[1], title: implicitFounderTitle, pattern: "founded_by"}}
				if g[2] != "" {
					out = append(out, rawMatch{name: g[2], title: implicitFounderTitle, pattern: "founded_by"})
				}
				return out
			},
		},
	}

	if style == StyleMarkdown {
		matchers = append(matchers, matcher{
			// "**Jane Doe** - CEO" in formatted page content. The bold
			// markers isolate the name; the rest of the line must still
			// mention a known role.
			name: "bold_name",
			re:   regexp.MustCompile(`\*\*(` + honorific + nameLazy + `)\*\*[ \t]*[:\-–—][ \t]*([^\n*]{2,60})`),
			apply: func(g []string) []rawMatch {
				return []rawMatch{{name: g[1], title: g[2], pattern: "bold_name", confirm: true}}
			},
		})
	}

	return matchers
}

// honorifics are dropped from matched names before validation.
var honorifics = map[string]struct{}{
	"Mr": {}, "Mr.": {}, "Mrs": {}, "Mrs.": {}, "Ms": {}, "Ms.": {},
	"Dr": {}, "Dr.": {}, "Prof": {}, "Prof.": {},
}

// cleanName strips honorific tokens and normalizes inner whitespace.
func cleanName(raw string) string {
	tokens := strings.Fields(raw)
	kept := tokens[:0]
	for _, tok := range tokens {
		if _, ok := honorifics[tok]; ok {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// cleanTitle trims stray punctuation and collapses whitespace around a
// captured role phrase.
func cleanTitle(raw string) string {
	title := strings.Join(strings.Fields(raw), " ")
	return strings.Trim(title, " .,;:-–—")
}
