package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolens/backend/internal/domain"
)

const samplePage = `<html>
<head><title>Bamboo Cutlery Set - MegaShop Online</title></head>
<body>
<script>var tracking = "noise";</script>
<style>.hidden { display: none; }</style>
<h1>Bamboo Cutlery Travel Set</h1>
<p>Reusable bamboo cutlery with organic cotton pouch. Plastic-free packaging.</p>
</body>
</html>`

func TestFetchProductText(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	f := NewFetcher()
	product, err := f.FetchProductText(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Bamboo Cutlery Travel Set", product.Name)
	assert.Contains(t, product.Description, "organic cotton pouch")
	assert.NotContains(t, product.Description, "tracking", "script content must be stripped")
	assert.NotContains(t, product.Description, "display: none", "style content must be stripped")
	assert.Equal(t, server.URL, product.URL)
	assert.Equal(t, domain.PlatformUnknown, product.Platform)
	assert.Equal(t, "EcoLens/1.0", gotUA)
}

func TestFetchProductTextInvalidURL(t *testing.T) {
	f := NewFetcher()
	_, err := f.FetchProductText(context.Background(), "not a url")
	assert.ErrorIs(t, err, domain.ErrPageFetchFailure)
}

func TestFetchProductTextHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := NewFetcher()
	_, err := f.FetchProductText(context.Background(), server.URL)
	assert.ErrorIs(t, err, domain.ErrPageFetchFailure)
}

func TestFetchProductTextUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	f := NewFetcher()
	_, err := f.FetchProductText(context.Background(), server.URL)
	assert.ErrorIs(t, err, domain.ErrPageFetchFailure)
}

func TestExtractTitle(t *testing.T) {
	parse := func(html string) *goquery.Document {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		require.NoError(t, err)
		return doc
	}

	t.Run("amazon product title selector", func(t *testing.T) {
		doc := parse(`<html><body><span id="productTitle">  Organic Cotton Bedsheet Queen Size  </span><h1>Other heading</h1></body></html>`)
		assert.Equal(t, "Organic Cotton Bedsheet Queen Size", extractTitle(doc, domain.PlatformAmazon))
	})

	t.Run("flipkart title selector", func(t *testing.T) {
		doc := parse(`<html><body><span data-test-id="title">Hemp Yoga Mat Natural</span></body></html>`)
		assert.Equal(t, "Hemp Yoga Mat Natural", extractTitle(doc, domain.PlatformFlipkart))
	})

	t.Run("falls back to h1 for unknown platform", func(t *testing.T) {
		doc := parse(`<html><body><h1>Jute Storage Basket</h1></body></html>`)
		assert.Equal(t, "Jute Storage Basket", extractTitle(doc, domain.PlatformUnknown))
	})

	t.Run("falls back to document title and strips site suffix", func(t *testing.T) {
		doc := parse(`<html><head><title>Cork Coasters Set of 6 | ShopSite</title></head><body></body></html>`)
		assert.Equal(t, "Cork Coasters Set of 6", extractTitle(doc, domain.PlatformAmazon))
	})

	t.Run("strips dash separated suffix", func(t *testing.T) {
		doc := parse(`<html><head><title>Linen Napkins - Buy Online</title></head><body></body></html>`)
		assert.Equal(t, "Linen Napkins", extractTitle(doc, domain.PlatformUnknown))
	})

	t.Run("skips too-short selector matches", func(t *testing.T) {
		doc := parse(`<html><head><title>Full Product Name Here</title></head><body><h1>Hi</h1></body></html>`)
		assert.Equal(t, "Full Product Name Here", extractTitle(doc, domain.PlatformUnknown))
	})
}

func TestPlatformFromHost(t *testing.T) {
	tests := []struct {
		host string
		want domain.Platform
	}{
		{"www.amazon.in", domain.PlatformAmazon},
		{"Amazon.com", domain.PlatformAmazon},
		{"www.flipkart.com", domain.PlatformFlipkart},
		{"shop.example.com", domain.PlatformUnknown},
	}

	for _, tt := range tests {
		if got := platformFromHost(tt.host); got != tt.want {
			t.Errorf("platformFromHost(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}
