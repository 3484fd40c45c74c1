// Package emailgen synthesizes plausible email addresses from a contact's
// name and a business domain. Generation is pure and deterministic so that
// "variation #1" is a stable, testable concept for the caller.
package emailgen

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented letters and drops the combining marks, so
// "José" becomes "Jose" before lower-casing.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Candidates returns the fixed set of plausible address forms for a name at
// a domain, in a stable order with duplicates collapsed:
//
//	first@  last@  first.last@  firstlast@  flast@  firstl@  f.last@  first_last@
//
// The caller picks one (conventionally the first) and may validate it
// externally; no deliverability checking happens here.
func Candidates(firstName, lastName, domain string) []string {
	first := localPart(firstName)
	last := localPart(lastName)
	host := NormalizeDomain(domain)
	if first == "" || last == "" || host == "" {
		return nil
	}

	fi := first[:1]
	li := last[:1]

	forms := []string{
		first,
		last,
		first + "." + last,
		first + last,
		fi + last,
		first + li,
		fi + "." + last,
		first + "_" + last,
	}

	out := make([]string, 0, len(forms))
	seen := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		addr := f + "@" + host
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	return out
}

// NormalizeDomain strips the protocol prefix, a leading "www.", and any path
// suffix from a website value, returning a bare lower-cased host.
func NormalizeDomain(raw string) string {
	d := strings.TrimSpace(raw)
	if i := strings.Index(d, "://"); i >= 0 {
		d = d[i+3:]
	}
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	d = strings.ToLower(d)
	d = strings.TrimPrefix(d, "www.")
	return d
}

// localPart folds a name part to a lower-case ASCII local-part fragment,
// keeping letters and digits only.
func localPart(name string) string {
	folded, _, err := transform.String(asciiFold, strings.TrimSpace(name))
	if err != nil {
		folded = name
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
