package names

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	minTokens     = 2
	maxTokens     = 4
	minSurnameLen = 2
)

// Validator applies the name-plausibility policy to candidate strings.
// All checks short-circuit; a failing candidate is silently rejected,
// never an error.
type Validator struct {
	set *Set
	log *zap.Logger
}

// NewValidator creates a Validator backed by the given name set.
func NewValidator(set *Set, log *zap.Logger) *Validator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Validator{set: set, log: log}
}

// IsPlausibleName reports whether text looks like a real person's full name.
//
// Policy, in order:
//  1. 2-4 whitespace-separated tokens.
//  2. First token is a known first name (case-sensitive exact match). This
//     is the primary noise filter: sentence fragments caught by the regex
//     pre-filter almost never lead with a dictionary first name.
//  3. Every token starts with an uppercase letter.
//  4. The surname (last token) is at least 2 characters.
//
// Hyphenated and accented names are single tokens and must still pass the
// leading-token membership test; compound first names missing from the
// dictionary are an accepted false negative.
func (v *Validator) IsPlausibleName(text string) bool {
	tokens := strings.Fields(text)
	if len(tokens) < minTokens || len(tokens) > maxTokens {
		v.log.Debug("name rejected: token count", zap.String("text", text), zap.Int("tokens", len(tokens)))
		return false
	}

	if !v.set.Contains(tokens[0]) {
		v.log.Debug("name rejected: unknown first name", zap.String("text", text), zap.String("first", tokens[0]))
		return false
	}

	for _, tok := range tokens {
		r, _ := utf8.DecodeRuneInString(tok)
		if !unicode.IsUpper(r) {
			v.log.Debug("name rejected: lowercase token", zap.String("text", text), zap.String("token", tok))
			return false
		}
	}

	if utf8.RuneCountInString(tokens[len(tokens)-1]) < minSurnameLen {
		v.log.Debug("name rejected: short surname", zap.String("text", text))
		return false
	}

	return true
}
