package discover

import (
	"context"
	"sync"

	"github.com/Hobotnika/gmaps-lead-scraper/pkg/firecrawl"
	"github.com/Hobotnika/gmaps-lead-scraper/pkg/serper"
)

// mockSearchClient records queries and replays canned responses.
type mockSearchClient struct {
	mu        sync.Mutex
	queries   []string
	responses map[string]*serper.SearchResponse
	err       error
}

func (m *mockSearchClient) Search(_ context.Context, query string) (*serper.SearchResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	if resp, ok := m.responses[query]; ok {
		return resp, nil
	}
	return &serper.SearchResponse{}, nil
}

func (m *mockSearchClient) queryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}

// mockPageClient records scraped URLs and replays canned pages keyed by URL.
// scrapeErrs takes priority over pages for a given URL; balanceErr makes the
// credit probe fail while scraping still works.
type mockPageClient struct {
	mu         sync.Mutex
	scraped    []string
	pages      map[string]string
	scrapeErrs map[string]error
	credits    *int
	balanceErr error
}

func (m *mockPageClient) Scrape(_ context.Context, req firecrawl.ScrapeRequest) (*firecrawl.ScrapeResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scraped = append(m.scraped, req.URL)
	if err, ok := m.scrapeErrs[req.URL]; ok {
		return nil, err
	}
	md, ok := m.pages[req.URL]
	if !ok {
		return &firecrawl.ScrapeResponse{Success: true, Data: firecrawl.PageData{URL: req.URL, StatusCode: 404}}, nil
	}
	return &firecrawl.ScrapeResponse{
		Success: true,
		Data:    firecrawl.PageData{URL: req.URL, Markdown: md, StatusCode: 200},
	}, nil
}

func (m *mockPageClient) AccountBalance(_ context.Context) (*firecrawl.BalanceResponse, error) {
	if m.balanceErr != nil {
		return nil, m.balanceErr
	}
	return &firecrawl.BalanceResponse{
		Success: true,
		Data:    firecrawl.BalanceData{RemainingCredits: m.credits},
	}, nil
}

func (m *mockPageClient) scrapeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.scraped)
}

func intPtr(v int) *int { return &v }
