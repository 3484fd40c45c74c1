// Package discover drives contact discovery for leads: a search-snippet
// pass and a page-content pass feed the extractors, and the results are
// merged with search-over-page priority.
package discover

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Hobotnika/gmaps-lead-scraper/internal/config"
	"github.com/Hobotnika/gmaps-lead-scraper/internal/extract"
	"github.com/Hobotnika/gmaps-lead-scraper/internal/resilience"
	"github.com/Hobotnika/gmaps-lead-scraper/pkg/firecrawl"
	"github.com/Hobotnika/gmaps-lead-scraper/pkg/serper"
)

const defaultMaxContacts = 15

// Discoverer runs contact discovery for one lead at a time. All provider
// failures degrade to "this source produced nothing"; the only condition
// that suppresses a whole pass up front is a missing website or an
// exhausted page-source quota.
type Discoverer struct {
	search    serper.Client
	pages     firecrawl.Client // nil disables the page pass
	snippetEx *extract.Extractor
	pageEx    *extract.Extractor
	cfg       *config.DiscoveryConfig

	queryPacer *resilience.Pacer
	pathPacer  *resilience.Pacer
	leadPacer  *resilience.Pacer

	log *zap.Logger
}

// NewDiscoverer creates a Discoverer with the given sources and extractors.
// The pages client may be nil when no page-content provider is configured.
func NewDiscoverer(search serper.Client, pages firecrawl.Client, snippetEx, pageEx *extract.Extractor, cfg *config.DiscoveryConfig, log *zap.Logger) *Discoverer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Discoverer{
		search:     search,
		pages:      pages,
		snippetEx:  snippetEx,
		pageEx:     pageEx,
		cfg:        cfg,
		queryPacer: resilience.NewPacer(cfg.QueryInterval),
		pathPacer:  resilience.NewPacer(cfg.PathInterval),
		leadPacer:  resilience.NewPacer(cfg.LeadInterval),
		log:        log,
	}
}

// Discover finds decision-maker contacts for a single lead.
func (d *Discoverer) Discover(ctx context.Context, lead Lead) (*Result, error) {
	if strings.TrimSpace(lead.BusinessName) == "" {
		return nil, eris.New("discover: business name is required")
	}

	log := d.log.With(
		zap.String("run_id", uuid.NewString()[:8]),
		zap.String("business", lead.BusinessName),
	)

	searchContacts := d.searchPass(ctx, log, lead)
	pageContacts, exhausted := d.pagePass(ctx, log, lead)

	merged := mergeContacts(searchContacts, pageContacts, d.maxContacts())

	log.Info("discovery complete",
		zap.Int("search_candidates", len(searchContacts)),
		zap.Int("page_candidates", len(pageContacts)),
		zap.Int("contacts", len(merged)),
		zap.Bool("page_source_exhausted", exhausted),
	)

	return &Result{Contacts: merged, PageSourceExhausted: exhausted}, nil
}

// DiscoverAll runs discovery for many leads strictly sequentially with an
// inter-lead pause, trading throughput for predictable quota consumption.
// A failing lead never aborts the rest; stopping early requires cancelling
// the context.
func (d *Discoverer) DiscoverAll(ctx context.Context, leads []Lead) []LeadResult {
	results := make([]LeadResult, 0, len(leads))
	for i, lead := range leads {
		if ctx.Err() != nil {
			break
		}
		if i > 0 {
			if err := d.leadPacer.Wait(ctx); err != nil {
				break
			}
		}

		res, err := d.Discover(ctx, lead)
		if err != nil {
			d.log.Warn("lead discovery failed",
				zap.String("business", lead.BusinessName),
				zap.Error(err),
			)
		}
		results = append(results, LeadResult{Lead: lead, Result: res, Err: err})
	}
	return results
}

// searchPass issues the fixed query set and extracts contacts from each
// organic result and the knowledge panel, when present.
func (d *Discoverer) searchPass(ctx context.Context, log *zap.Logger, lead Lead) []Contact {
	retryCfg := resilience.RetryConfig{MaxAttempts: d.cfg.SearchRetries + 1}

	var contacts []Contact
	for _, query := range buildQueries(lead) {
		if ctx.Err() != nil {
			break
		}
		if err := d.queryPacer.Wait(ctx); err != nil {
			break
		}

		resp, err := resilience.DoVal(ctx, retryCfg, func(ctx context.Context) (*serper.SearchResponse, error) {
			return d.search.Search(ctx, query)
		})
		if err != nil {
			log.Warn("search query failed", zap.String("query", query), zap.Error(err))
			continue
		}

		for _, org := range resp.Organic {
			text := strings.TrimSpace(org.Title + ". " + org.Snippet)
			for _, c := range d.snippetEx.Extract(text, lead.BusinessName) {
				contacts = append(contacts, contactFrom(c, SourceSearch))
			}
		}
		if kg := resp.KnowledgeGraph; kg != nil && kg.Description != "" {
			for _, c := range d.snippetEx.Extract(kg.Description, lead.BusinessName) {
				contacts = append(contacts, contactFrom(c, SourceSearch))
			}
		}
	}
	return contacts
}

// pagePass scrapes conventional team-page paths on the lead's website.
// It checks the provider's credit balance first and stops at the first path
// that produces a contact, so a productive page costs exactly one scrape.
func (d *Discoverer) pagePass(ctx context.Context, log *zap.Logger, lead Lead) (contacts []Contact, exhausted bool) {
	if d.pages == nil || strings.TrimSpace(lead.Website) == "" {
		return nil, false
	}

	bal, err := d.pages.AccountBalance(ctx)
	switch {
	case err != nil:
		// A failed probe is not a verdict; proceed.
		log.Warn("balance probe failed, proceeding with page pass", zap.Error(err))
	case bal.Data.RemainingCredits != nil && *bal.Data.RemainingCredits == 0:
		log.Warn("page source exhausted, skipping page pass")
		return nil, true
	}

	paths := d.cfg.PagePaths
	if len(paths) == 0 {
		paths = defaultPagePaths
	}

	for _, suffix := range paths {
		if ctx.Err() != nil {
			break
		}
		if err := d.pathPacer.Wait(ctx); err != nil {
			break
		}

		target, err := pageURL(lead.Website, suffix)
		if err != nil {
			log.Warn("unusable website, skipping page pass", zap.Error(err))
			return contacts, false
		}

		resp, err := d.pages.Scrape(ctx, firecrawl.ScrapeRequest{
			URL:     target,
			Formats: []string{"markdown"},
			Timeout: d.pageTimeout(),
		})
		if err != nil {
			if resilience.IsRateLimited(err) {
				log.Warn("page source rate limited, abandoning remaining paths", zap.String("url", target))
				break
			}
			if resilience.IsTimeout(err) {
				log.Debug("page fetch timed out, trying next path", zap.String("url", target))
				continue
			}
			log.Debug("page fetch failed, trying next path", zap.String("url", target), zap.Error(err))
			continue
		}

		found := d.pageEx.Extract(resp.Data.Markdown, lead.BusinessName)
		if len(found) == 0 {
			continue
		}

		for _, c := range found {
			contacts = append(contacts, contactFrom(c, SourcePage))
		}
		// First productive path wins; further fetches would pay for
		// signal we already have.
		log.Debug("page path productive, stopping page pass",
			zap.String("url", target),
			zap.Int("candidates", len(found)),
		)
		break
	}

	return contacts, false
}

func (d *Discoverer) maxContacts() int {
	if d.cfg.MaxContacts > 0 {
		return d.cfg.MaxContacts
	}
	return defaultMaxContacts
}

// pageTimeout converts the configured page timeout to provider milliseconds.
func (d *Discoverer) pageTimeout() int {
	if d.cfg.PageTimeoutSecs <= 0 {
		return 0
	}
	return d.cfg.PageTimeoutSecs * 1000
}
