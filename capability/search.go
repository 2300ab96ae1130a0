package capability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultSerperURL = "https://google.serper.dev/search"

// Search queries the Serper.dev API and formats the top organic results
// for model consumption.
type Search struct {
	apiKey     string
	baseURL    string
	numResults int
	client     *http.Client
}

// NewSearch returns the web search capability. The API key may be empty;
// Call reports the missing key as an observation so the model can fall
// back to another action.
func NewSearch(apiKey string) *Search {
	return &Search{
		apiKey:     apiKey,
		baseURL:    defaultSerperURL,
		numResults: 5,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *Search) Name() string {
	return "search_internet"
}

func (s *Search) Description() string {
	return "Search the internet for information.\n" +
		"Use this to FIND sources or URLs.\n" +
		"Example:\n" +
		"Action: search_internet: current inflation rate in Vietnam 2025"
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic"`
}

func (s *Search) Call(ctx context.Context, query string) (string, error) {
	if s.apiKey == "" {
		return "Error: SERPER_API_KEY not found in environment variables", nil
	}

	body, err := json.Marshal(serperRequest{Query: query, Num: s.numResults})
	if err != nil {
		return "", fmt.Errorf("encoding search request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting search results: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var result serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding search response: %w", err)
	}
	if len(result.Organic) == 0 {
		return "No relevant information or search results found.", nil
	}

	lines := make([]string, 0, len(result.Organic))
	for _, r := range result.Organic {
		title := r.Title
		if title == "" {
			title = "No title"
		}
		snippet := r.Snippet
		if snippet == "" {
			snippet = "No description"
		}
		link := r.Link
		if link == "" {
			link = "#"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s <%s>", title, snippet, link))
	}
	return strings.Join(lines, "\n"), nil
}
