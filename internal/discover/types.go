package discover

import "github.com/Hobotnika/gmaps-lead-scraper/internal/extract"

// Source identifies which adapter produced a contact.
type Source string

const (
	// SourceSearch marks contacts extracted from search-result snippets.
	SourceSearch Source = "search"
	// SourcePage marks contacts extracted from scraped page content.
	SourcePage Source = "page"
)

// Lead is the canonical lead identity at the engine boundary. Callers adapt
// their own row or API shapes into this type before invoking discovery.
type Lead struct {
	BusinessName string
	Address      string
	Website      string
}

// Contact is a validated, source-tagged person/title pair for one lead.
type Contact struct {
	FullName  string
	FirstName string
	LastName  string
	Title     string
	Source    Source
}

// Result is the discovery outcome for one lead: the deduplicated, capped
// contact list plus whether the page source was skipped on empty credits.
type Result struct {
	Contacts            []Contact
	PageSourceExhausted bool
}

// LeadResult pairs a lead with its outcome during bulk discovery.
type LeadResult struct {
	Lead   Lead
	Result *Result
	Err    error
}

func contactFrom(c extract.Candidate, src Source) Contact {
	return Contact{
		FullName:  c.FullName,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Title:     c.Title,
		Source:    src,
	}
}
