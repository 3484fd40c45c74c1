// Package extract pulls candidate person/title pairs out of noisy free text.
package extract

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Hobotnika/gmaps-lead-scraper/internal/names"
)

// Style selects the pattern battery tuned for the text source.
type Style int

const (
	// StyleSnippet targets search-result prose (titles and snippets).
	StyleSnippet Style = iota
	// StyleMarkdown targets scraped page content and additionally matches
	// bolded names.
	StyleMarkdown
)

// Candidate is an unconfirmed person/title pair extracted from text.
// The first name is verified against the name set at construction time.
type Candidate struct {
	FullName  string
	FirstName string
	LastName  string
	Title     string
}

// Extractor runs an ordered battery of independent patterns over a block of
// text. The regexes are a cheap pre-filter; the name validator is the
// authoritative one. Matches may overlap across patterns; deduplication is
// the caller's concern.
type Extractor struct {
	validator *names.Validator
	gaz       *Gazetteer
	matchers  []matcher
	log       *zap.Logger
}

// NewExtractor creates an Extractor for the given text style.
func NewExtractor(style Style, v *names.Validator, gaz *Gazetteer, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{
		validator: v,
		gaz:       gaz,
		matchers:  buildMatchers(style, gaz),
		log:       log,
	}
}

// Extract scans text and returns all validated candidates in pattern order.
// The business-name hint shapes upstream queries only; it is never used to
// filter matches. Malformed or empty text yields an empty list.
func (e *Extractor) Extract(text, businessNameHint string) []Candidate {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []Candidate
	for _, m := range e.matchers {
		for _, groups := range m.re.FindAllStringSubmatch(text, -1) {
			for _, raw := range m.apply(groups) {
				if c, ok := e.build(raw, businessNameHint); ok {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

// build validates a raw match and shapes it into a Candidate.
// Rejections are silent: logged at debug, never surfaced as errors.
func (e *Extractor) build(raw rawMatch, hint string) (Candidate, bool) {
	title := cleanTitle(raw.title)
	if raw.confirm && !e.gaz.Contains(title) {
		e.log.Debug("extract: phrase is not a role",
			zap.String("pattern", raw.pattern),
			zap.String("phrase", title),
			zap.String("business", hint),
		)
		return Candidate{}, false
	}

	full := cleanName(raw.name)
	tokens := strings.Fields(full)
	if len(tokens) < 2 || !e.validator.IsPlausibleName(full) {
		e.log.Debug("extract: name rejected",
			zap.String("pattern", raw.pattern),
			zap.String("name", raw.name),
			zap.String("business", hint),
		)
		return Candidate{}, false
	}

	return Candidate{
		FullName:  full,
		FirstName: tokens[0],
		LastName:  tokens[len(tokens)-1],
		Title:     title,
	}, true
}
