package main

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Hobotnika/gmaps-lead-scraper/internal/discover"
	"github.com/Hobotnika/gmaps-lead-scraper/internal/emailgen"
	"github.com/Hobotnika/gmaps-lead-scraper/internal/extract"
	"github.com/Hobotnika/gmaps-lead-scraper/internal/names"
	"github.com/Hobotnika/gmaps-lead-scraper/pkg/firecrawl"
	"github.com/Hobotnika/gmaps-lead-scraper/pkg/serper"
)

// contactOutput is the per-contact shape the commands print: the validated
// person plus the ordered candidate emails synthesized from the lead's
// website domain.
type contactOutput struct {
	FullName  string   `json:"full_name"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Title     string   `json:"title,omitempty"`
	Source    string   `json:"source"`
	Emails    []string `json:"emails,omitempty"`
}

type leadOutput struct {
	BusinessName        string          `json:"business_name"`
	Website             string          `json:"website,omitempty"`
	Contacts            []contactOutput `json:"contacts"`
	PageSourceExhausted bool            `json:"page_source_exhausted,omitempty"`
	Error               string          `json:"error,omitempty"`
}

// newEngine wires the discovery engine from configuration. The page-content
// client is optional; without a key the engine runs on search snippets only.
func newEngine() (*discover.Discoverer, error) {
	var set *names.Set
	var err error
	if cfg.Names.File != "" {
		set, err = names.LoadSetFromFile(cfg.Names.File)
	} else {
		set, err = names.LoadEmbeddedSet()
	}
	if err != nil {
		return nil, eris.Wrap(err, "load first-name set")
	}

	gaz, err := extract.LoadGazetteer()
	if err != nil {
		return nil, eris.Wrap(err, "load title gazetteer")
	}

	validator := names.NewValidator(set, zap.L())
	snippetEx := extract.NewExtractor(extract.StyleSnippet, validator, gaz, zap.L())
	pageEx := extract.NewExtractor(extract.StyleMarkdown, validator, gaz, zap.L())

	searchClient := serper.NewClient(cfg.Serper.Key, serper.WithBaseURL(cfg.Serper.BaseURL))

	var pageClient firecrawl.Client
	if cfg.Firecrawl.Key != "" {
		pageClient = firecrawl.NewClient(cfg.Firecrawl.Key, firecrawl.WithBaseURL(cfg.Firecrawl.BaseURL))
	} else {
		zap.L().Warn("no firecrawl key configured, running search-only discovery")
	}

	return discover.NewDiscoverer(searchClient, pageClient, snippetEx, pageEx, &cfg.Discovery, zap.L()), nil
}

func buildLeadOutput(lead discover.Lead, res *discover.Result, runErr error) leadOutput {
	out := leadOutput{
		BusinessName: lead.BusinessName,
		Website:      lead.Website,
		Contacts:     []contactOutput{},
	}
	if runErr != nil {
		out.Error = runErr.Error()
		return out
	}

	domain := emailgen.NormalizeDomain(lead.Website)
	out.PageSourceExhausted = res.PageSourceExhausted
	for _, c := range res.Contacts {
		oc := contactOutput{
			FullName:  c.FullName,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Title:     c.Title,
			Source:    string(c.Source),
		}
		if domain != "" {
			oc.Emails = emailgen.Candidates(c.FirstName, c.LastName, domain)
		}
		out.Contacts = append(out.Contacts, oc)
	}
	return out
}
