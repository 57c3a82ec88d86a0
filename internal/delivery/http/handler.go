package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/ecolens/backend/internal/domain"
	"github.com/ecolens/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Descriptions below this length trigger the server-side fallback fetch,
// matching the extension's own "not enough text" threshold
const minBrowserTextLength = 100

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scoringService *usecase.ScoringService
	fetcher        domain.PageFetcher
}

// NewHandler creates a new HTTP handler. fetcher may be nil to disable the
// server-side fallback extraction.
func NewHandler(scoringService *usecase.ScoringService, fetcher domain.PageFetcher) *Handler {
	return &Handler{
		scoringService: scoringService,
		fetcher:        fetcher,
	}
}

// analyzeRequest is the payload sent by the extension. Every field is
// optional on its own; the handler rejects only fully empty requests.
type analyzeRequest struct {
	Name           string `json:"name"`
	Brand          string `json:"brand"`
	Description    string `json:"description"`
	Specifications string `json:"specifications"`
	URL            string `json:"url"`
	Platform       string `json:"platform"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ecolens-backend",
		"version": "1.0.0",
	})
}

// AnalyzeProduct handles eco-score analysis requests
func (h *Handler) AnalyzeProduct(c *gin.Context) {
	if h.scoringService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Eco-score analysis not configured",
		})
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	if req.Name == "" && req.Description == "" && req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "at least one of name, description or url is required",
		})
		return
	}

	product := &domain.ProductText{
		Name:           req.Name,
		Brand:          req.Brand,
		Description:    req.Description,
		Specifications: req.Specifications,
		URL:            req.URL,
		Platform:       domain.ParsePlatform(req.Platform),
	}

	// The extension sometimes sends almost no text (blocked selectors,
	// unrendered page). Fall back to fetching the page server-side.
	if len(req.Description) < minBrowserTextLength && req.URL != "" && h.fetcher != nil {
		fetched, err := h.fetcher.FetchProductText(c.Request.Context(), req.URL)
		if err != nil {
			log.Printf("[HTTP] Fallback fetch failed for %s: %v", req.URL, err)
		} else {
			if product.Name == "" {
				product.Name = fetched.Name
			}
			if len(fetched.Description) > len(product.Description) {
				product.Description = fetched.Description
			}
			if product.Platform == domain.PlatformUnknown {
				product.Platform = fetched.Platform
			}
		}
	}

	record, err := h.scoringService.AnalyzeProduct(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[HTTP] Scoring failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, record)
}
