package capability

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	scrapeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	scrapeMaxChars  = 8000
)

// Scraper fetches a URL and extracts its visible text, stripping chrome
// like navigation, headers, and footers.
type Scraper struct {
	client   *http.Client
	maxChars int
}

// NewScraper returns the page scraping capability.
func NewScraper() *Scraper {
	return &Scraper{
		client:   &http.Client{Timeout: 15 * time.Second},
		maxChars: scrapeMaxChars,
	}
}

func (s *Scraper) Name() string {
	return "scrape_content"
}

func (s *Scraper) Description() string {
	return "Use this when you ALREADY HAVE a URL (from user or from a previous search) and you need the actual article/page text to extract facts or numbers.\n" +
		"Typical pattern:\n" +
		"- search_internet -> get URL in observation\n" +
		"- scrape_content -> get full text from that URL\n" +
		"Example:\n" +
		"Action: scrape_content: https://example.com/article-about-AI"
}

func (s *Scraper) Call(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSpace(url), nil)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("connecting to URL: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("retrieving content: HTTP status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	text := extractText(doc)
	if len(text) > s.maxChars {
		text = text[:s.maxChars]
	}
	return text, nil
}

// skippedElements are containers whose text is page chrome, not content.
var skippedElements = map[string]bool{
	"script": true,
	"style":  true,
	"header": true,
	"footer": true,
	"nav":    true,
}

// extractText walks the parsed tree collecting visible text nodes, joined
// with single spaces.
func extractText(root *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
				parts = append(parts, t)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return strings.Join(parts, " ")
}
