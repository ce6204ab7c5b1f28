package supadata

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// WebService groups scrape, map and crawl operations.
type WebService struct {
	client *Client
}

// Scrape is the extracted content of a single web page.
type Scrape struct {
	URL             string   `json:"url"`
	Content         string   `json:"content"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	OgURL           string   `json:"og_url,omitempty"`
	CountCharacters int      `json:"count_characters"`
	URLs            []string `json:"urls"`
}

// Map is a site map of discovered URLs.
type Map struct {
	URLs []string `json:"urls"`
}

// CrawlJob identifies a started crawl job.
type CrawlJob struct {
	JobID string `json:"job_id"`
}

// CrawlPage is one crawled page.
type CrawlPage struct {
	URL             string `json:"url"`
	Content         string `json:"content"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	OgURL           string `json:"og_url,omitempty"`
	CountCharacters int    `json:"count_characters"`
}

// CrawlStatus is the lifecycle state of a crawl job. Scraping is the only
// non-terminal state; completed carries pages, failed and cancelled carry
// nothing.
type CrawlStatus string

const (
	CrawlStatusScraping  CrawlStatus = "scraping"
	CrawlStatusCompleted CrawlStatus = "completed"
	CrawlStatusFailed    CrawlStatus = "failed"
	CrawlStatusCancelled CrawlStatus = "cancelled"
)

// Terminal reports whether the status is final.
func (s CrawlStatus) Terminal() bool { return s != CrawlStatusScraping }

// CrawlResponse is one page of a crawl job's state. Pages is only
// populated when the job completed; Next is an opaque cursor that is
// non-empty while the job endpoint has further pages to return, empty on
// the last one.
type CrawlResponse struct {
	Status CrawlStatus `json:"status"`
	Pages  []CrawlPage `json:"pages,omitempty"`
	Next   string      `json:"next,omitempty"`
}

// CrawlParams configures a crawl job.
type CrawlParams struct {
	// URL is the starting point of the crawl.
	URL string
	// Limit caps the number of pages to crawl, when positive.
	Limit int
}

// Scrape extracts the content of a web page as Markdown.
func (s *WebService) Scrape(ctx context.Context, pageURL string) (*Scrape, error) {
	q := url.Values{}
	q.Set("url", pageURL)

	incrWebRequests()
	m, err := s.client.do(ctx, http.MethodGet, "/web/scrape", q, nil)
	if err != nil {
		return nil, err
	}
	return &Scrape{
		URL:             getString(m, "url"),
		Content:         getString(m, "content"),
		Name:            getString(m, "name"),
		Description:     getString(m, "description"),
		OgURL:           getString(m, "og_url"),
		CountCharacters: getInt(m, "count_characters"),
		URLs:            getStringSlice(m, "urls"),
	}, nil
}

// Map generates a site map for a website.
func (s *WebService) Map(ctx context.Context, siteURL string) (*Map, error) {
	q := url.Values{}
	q.Set("url", siteURL)

	incrWebRequests()
	m, err := s.client.do(ctx, http.MethodGet, "/web/map", q, nil)
	if err != nil {
		return nil, err
	}
	return &Map{URLs: getStringSlice(m, "urls")}, nil
}

// Crawl starts a crawl job.
func (s *WebService) Crawl(ctx context.Context, p CrawlParams) (*CrawlJob, error) {
	body := map[string]any{"url": p.URL}
	if p.Limit > 0 {
		body["limit"] = p.Limit
	}

	incrWebRequests()
	m, err := s.client.do(ctx, http.MethodPost, "/web/crawl", nil, body)
	if err != nil {
		return nil, err
	}
	return &CrawlJob{JobID: getString(m, "job_id")}, nil
}

// GetCrawl fetches one page of a crawl job's state without polling or
// following pagination. Use GetCrawlResults to collect everything.
func (s *WebService) GetCrawl(ctx context.Context, jobID string) (*CrawlResponse, error) {
	return s.getCrawlPage(ctx, "/web/crawl/"+jobID)
}

func (s *WebService) getCrawlPage(ctx context.Context, path string) (*CrawlResponse, error) {
	incrWebRequests()
	m, err := s.client.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	resp := &CrawlResponse{
		Status: CrawlStatus(getString(m, "status")),
		Next:   getString(m, "next"),
	}
	for _, pm := range getMapSlice(m, "pages") {
		resp.Pages = append(resp.Pages, CrawlPage{
			URL:             getString(pm, "url"),
			Content:         getString(pm, "content"),
			Name:            getString(pm, "name"),
			Description:     getString(pm, "description"),
			OgURL:           getString(pm, "og_url"),
			CountCharacters: getInt(pm, "count_characters"),
		})
	}
	return resp, nil
}

// crawlPollInterval is how often GetCrawlResults re-checks a job that is
// still scraping.
var crawlPollInterval = 3 * time.Second

var errCrawlInProgress = errors.New("crawl still in progress")

// GetCrawlResults waits for a crawl job to finish and collects every page,
// polling while the job is still scraping and re-requesting the job
// endpoint while a next cursor is present. The cursor's value is opaque:
// it only signals that the endpoint has more pages to hand out, each
// request yielding the following batch. A failed or cancelled job is
// reported as an error, never as an empty result. Cancellation is the
// caller's ctx.
func (s *WebService) GetCrawlResults(ctx context.Context, jobID string) ([]CrawlPage, error) {
	path := "/web/crawl/" + jobID
	var pages []CrawlPage

	for {
		resp, err := backoff.Retry(ctx, func() (*CrawlResponse, error) {
			r, err := s.getCrawlPage(ctx, path)
			if err != nil {
				return nil, backoff.Permanent(err)
			}
			if !r.Status.Terminal() {
				return nil, errCrawlInProgress
			}
			return r, nil
		}, backoff.WithBackOff(backoff.NewConstantBackOff(crawlPollInterval)))
		if err != nil {
			return nil, err
		}

		switch resp.Status {
		case CrawlStatusFailed:
			return nil, &Error{Code: "crawl-failed", Title: "Crawl job failed", Description: "Crawl job failed."}
		case CrawlStatusCancelled:
			return nil, &Error{Code: "crawl-cancelled", Title: "Crawl job cancelled", Description: "Crawl job was cancelled before completion."}
		}

		pages = append(pages, resp.Pages...)
		if resp.Next == "" {
			return pages, nil
		}
	}
}
