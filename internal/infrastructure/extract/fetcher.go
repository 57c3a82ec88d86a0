package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ecolens/backend/internal/domain"
)

// Fetcher is the server-side fallback extractor used when the extension
// could not supply enough page text. It does a single GET and pulls visible
// text; no claim is made about matching specific page structures.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a new page fetcher
func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// amazonTitleSelectors and flipkartTitleSelectors are tried in order before
// falling back to the document title
var (
	amazonTitleSelectors   = []string{"#productTitle", "h1"}
	flipkartTitleSelectors = []string{`span[data-test-id="title"]`, ".B_NuCI", "h1"}
)

// FetchProductText fetches the product page and extracts a best-effort
// ProductText. Any failure maps to ErrPageFetchFailure; the caller proceeds
// with whatever text it already has.
func (f *Fetcher) FetchProductText(ctx context.Context, pageURL string) (*domain.ProductText, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("%w: invalid url", domain.ErrPageFetchFailure)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPageFetchFailure, err)
	}
	req.Header.Set("User-Agent", "EcoLens/1.0")
	req.Header.Set("Accept", "text/html")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPageFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrPageFetchFailure, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPageFetchFailure, err)
	}

	platform := platformFromHost(parsed.Host)

	doc.Find("script, style, noscript").Remove()

	name := extractTitle(doc, platform)
	body := strings.TrimSpace(doc.Find("body").Text())

	return &domain.ProductText{
		Name:        name,
		Description: body,
		URL:         pageURL,
		Platform:    platform,
	}, nil
}

// extractTitle tries platform-specific selectors before the document title
func extractTitle(doc *goquery.Document, platform domain.Platform) string {
	var selectors []string
	switch platform {
	case domain.PlatformAmazon:
		selectors = amazonTitleSelectors
	case domain.PlatformFlipkart:
		selectors = flipkartTitleSelectors
	default:
		selectors = []string{"h1"}
	}

	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); len(text) > 5 {
			return text
		}
	}

	// Page titles carry site suffixes after "|" or "-"
	title := doc.Find("title").First().Text()
	title = strings.SplitN(title, "|", 2)[0]
	title = strings.SplitN(title, " - ", 2)[0]
	return strings.TrimSpace(title)
}

// platformFromHost infers the platform from the page host
func platformFromHost(host string) domain.Platform {
	host = strings.ToLower(host)
	switch {
	case strings.Contains(host, "amazon"):
		return domain.PlatformAmazon
	case strings.Contains(host, "flipkart"):
		return domain.PlatformFlipkart
	default:
		return domain.PlatformUnknown
	}
}
