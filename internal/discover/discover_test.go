package discover

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hobotnika/gmaps-lead-scraper/internal/config"
	"github.com/Hobotnika/gmaps-lead-scraper/internal/extract"
	"github.com/Hobotnika/gmaps-lead-scraper/internal/names"
	"github.com/Hobotnika/gmaps-lead-scraper/pkg/firecrawl"
	"github.com/Hobotnika/gmaps-lead-scraper/pkg/serper"
)

func testLead() Lead {
	return Lead{
		BusinessName: "Acme Plumbing",
		Address:      "Austin, TX",
		Website:      "acme.com",
	}
}

func newTestDiscoverer(t *testing.T, search serper.Client, pages firecrawl.Client) *Discoverer {
	t.Helper()

	set := names.NewSet([]string{"John", "Jane", "Mary", "Sarah"})
	validator := names.NewValidator(set, nil)

	gaz, err := extract.LoadGazetteer()
	require.NoError(t, err)

	snippetEx := extract.NewExtractor(extract.StyleSnippet, validator, gaz, nil)
	pageEx := extract.NewExtractor(extract.StyleMarkdown, validator, gaz, nil)

	// Zero intervals disable pacing so tests run without sleeping.
	cfg := &config.DiscoveryConfig{
		MaxContacts:     15,
		PageTimeoutSecs: 20,
	}
	return NewDiscoverer(search, pages, snippetEx, pageEx, cfg, nil)
}

func searchRespWithSnippet(snippet string) *serper.SearchResponse {
	return &serper.SearchResponse{
		Organic: []serper.OrganicResult{
			{Title: "Acme Plumbing", Link: "https://acme.com", Snippet: snippet, Position: 1},
		},
	}
}

func TestDiscover_BothSources(t *testing.T) {
	search := &mockSearchClient{responses: map[string]*serper.SearchResponse{
		"Acme Plumbing Austin, TX CEO founder": searchRespWithSnippet("John Smith, CEO of Acme Plumbing, announced the expansion."),
	}}
	pages := &mockPageClient{
		pages:   map[string]string{"https://acme.com/about": "**Jane Doe** - CEO"},
		credits: intPtr(100),
	}

	d := newTestDiscoverer(t, search, pages)
	res, err := d.Discover(context.Background(), testLead())
	require.NoError(t, err)

	require.Len(t, res.Contacts, 2)
	assert.Equal(t, "John Smith", res.Contacts[0].FullName)
	assert.Equal(t, SourceSearch, res.Contacts[0].Source)
	assert.Equal(t, "Jane Doe", res.Contacts[1].FullName)
	assert.Equal(t, SourcePage, res.Contacts[1].Source)
	assert.False(t, res.PageSourceExhausted)

	assert.Equal(t, 3, search.queryCount())
	// First path was productive, so no further scrapes.
	assert.Equal(t, 1, pages.scrapeCount())
}

func TestDiscover_SearchEntryWinsOverPage(t *testing.T) {
	search := &mockSearchClient{responses: map[string]*serper.SearchResponse{
		"who are the founders of Acme Plumbing in Austin, TX": searchRespWithSnippet("Jane Doe, CEO of Acme Plumbing."),
	}}
	pages := &mockPageClient{
		pages:   map[string]string{"https://acme.com/about": "**Jane Doe** - Founder"},
		credits: intPtr(100),
	}

	d := newTestDiscoverer(t, search, pages)
	res, err := d.Discover(context.Background(), testLead())
	require.NoError(t, err)

	require.Len(t, res.Contacts, 1)
	assert.Equal(t, "Jane Doe", res.Contacts[0].FullName)
	assert.Equal(t, "CEO", res.Contacts[0].Title)
	assert.Equal(t, SourceSearch, res.Contacts[0].Source)
}

func TestDiscover_PageQuotaExhausted(t *testing.T) {
	search := &mockSearchClient{responses: map[string]*serper.SearchResponse{
		"Acme Plumbing Austin, TX CEO founder": searchRespWithSnippet("John Smith, CEO of Acme Plumbing."),
	}}
	pages := &mockPageClient{credits: intPtr(0)}

	d := newTestDiscoverer(t, search, pages)
	res, err := d.Discover(context.Background(), testLead())
	require.NoError(t, err)

	assert.True(t, res.PageSourceExhausted)
	assert.Equal(t, 0, pages.scrapeCount())
	// The search pass is unaffected by page-source quota.
	assert.Equal(t, 3, search.queryCount())
	require.Len(t, res.Contacts, 1)
	assert.Equal(t, SourceSearch, res.Contacts[0].Source)
}

func TestDiscover_BalanceProbeFailureProceeds(t *testing.T) {
	search := &mockSearchClient{}
	pages := &mockPageClient{
		pages:      map[string]string{"https://acme.com/about": "**Jane Doe** - CEO"},
		balanceErr: eris.New("probe down"),
	}

	d := newTestDiscoverer(t, search, pages)
	res, err := d.Discover(context.Background(), testLead())
	require.NoError(t, err)

	assert.False(t, res.PageSourceExhausted)
	require.Len(t, res.Contacts, 1)
	assert.Equal(t, "Jane Doe", res.Contacts[0].FullName)
}

func TestDiscover_RateLimitAbandonsRemainingPaths(t *testing.T) {
	search := &mockSearchClient{}
	pages := &mockPageClient{
		scrapeErrs: map[string]error{
			"https://acme.com/about": &firecrawl.APIError{StatusCode: 429, Body: "rate limited"},
		},
		pages:   map[string]string{"https://acme.com/team": "**Jane Doe** - CEO"},
		credits: intPtr(100),
	}

	d := newTestDiscoverer(t, search, pages)
	res, err := d.Discover(context.Background(), testLead())
	require.NoError(t, err)

	// The productive /team page is never reached.
	assert.Equal(t, 1, pages.scrapeCount())
	assert.Empty(t, res.Contacts)
	assert.False(t, res.PageSourceExhausted)
}

func TestDiscover_TimeoutSkipsToNextPath(t *testing.T) {
	search := &mockSearchClient{}
	pages := &mockPageClient{
		scrapeErrs: map[string]error{
			"https://acme.com/about": context.DeadlineExceeded,
		},
		pages:   map[string]string{"https://acme.com/team": "**Jane Doe** - CEO"},
		credits: intPtr(100),
	}

	d := newTestDiscoverer(t, search, pages)
	res, err := d.Discover(context.Background(), testLead())
	require.NoError(t, err)

	assert.Equal(t, 2, pages.scrapeCount())
	require.Len(t, res.Contacts, 1)
	assert.Equal(t, "Jane Doe", res.Contacts[0].FullName)
	assert.Equal(t, SourcePage, res.Contacts[0].Source)
}

func TestDiscover_NoWebsiteSkipsPagePass(t *testing.T) {
	search := &mockSearchClient{}
	pages := &mockPageClient{credits: intPtr(100)}

	d := newTestDiscoverer(t, search, pages)
	lead := testLead()
	lead.Website = ""
	res, err := d.Discover(context.Background(), lead)
	require.NoError(t, err)

	assert.Equal(t, 0, pages.scrapeCount())
	assert.False(t, res.PageSourceExhausted)
}

func TestDiscover_NilPageClient(t *testing.T) {
	search := &mockSearchClient{responses: map[string]*serper.SearchResponse{
		"Acme Plumbing Austin, TX CEO founder": searchRespWithSnippet("John Smith, CEO of Acme Plumbing."),
	}}

	d := newTestDiscoverer(t, search, nil)
	res, err := d.Discover(context.Background(), testLead())
	require.NoError(t, err)

	require.Len(t, res.Contacts, 1)
	assert.False(t, res.PageSourceExhausted)
}

func TestDiscover_RequiresBusinessName(t *testing.T) {
	d := newTestDiscoverer(t, &mockSearchClient{}, nil)
	_, err := d.Discover(context.Background(), Lead{Website: "acme.com"})
	require.Error(t, err)
}

func TestDiscover_SearchFailureDegrades(t *testing.T) {
	search := &mockSearchClient{err: eris.New("search down")}
	pages := &mockPageClient{
		pages:   map[string]string{"https://acme.com/about": "**Jane Doe** - CEO"},
		credits: intPtr(100),
	}

	d := newTestDiscoverer(t, search, pages)
	res, err := d.Discover(context.Background(), testLead())
	require.NoError(t, err)

	require.Len(t, res.Contacts, 1)
	assert.Equal(t, SourcePage, res.Contacts[0].Source)
}

func TestDiscoverAll_Sequential(t *testing.T) {
	search := &mockSearchClient{}
	d := newTestDiscoverer(t, search, nil)

	leads := []Lead{
		{BusinessName: "Acme Plumbing"},
		{BusinessName: ""},
		{BusinessName: "Bluebird Bakery"},
	}
	results := d.DiscoverAll(context.Background(), leads)

	require.Len(t, results, 3)
	assert.Equal(t, "Acme Plumbing", results[0].Lead.BusinessName)
	require.NoError(t, results[0].Err)
	require.NotNil(t, results[0].Result)

	// The empty lead fails but never halts the batch.
	require.Error(t, results[1].Err)
	assert.Nil(t, results[1].Result)

	require.NoError(t, results[2].Err)
}

func TestDiscoverAll_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := newTestDiscoverer(t, &mockSearchClient{}, nil)
	results := d.DiscoverAll(ctx, []Lead{{BusinessName: "Acme Plumbing"}})
	assert.Empty(t, results)
}
