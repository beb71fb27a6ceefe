package news

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed/rss"
)

const (
	defaultFeedURL = "https://news.google.com/rss/search"
	feedTimeout    = 5 * time.Second
)

// Entry is one raw feed entry before normalization. Publisher comes from the
// RSS <source> element and may be empty; PublishedAt is nil when the feed
// carries no parsable timestamp.
type Entry struct {
	Title       string
	Summary     string
	Link        string
	Publisher   string
	PublishedAt *time.Time
}

type GoogleNewsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewGoogleNewsClient() *GoogleNewsClient {
	return &GoogleNewsClient{
		baseURL:    defaultFeedURL,
		httpClient: &http.Client{Timeout: feedTimeout},
	}
}

// Fetch retrieves the Google News search feed for query, localized to the
// Indian English edition.
func (c *GoogleNewsClient) Fetch(query string) ([]Entry, error) {
	feedURL := fmt.Sprintf("%s?q=%s&hl=en-IN&gl=IN&ceid=IN:en", c.baseURL, url.QueryEscape(query))

	resp, err := c.httpClient.Get(feedURL)
	if err != nil {
		return nil, fmt.Errorf("news feed fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news feed error (status %d)", resp.StatusCode)
	}

	// The universal gofeed translator drops the RSS <source> element, so
	// parse at the RSS level to keep the publisher label.
	parser := &rss.Parser{}
	feed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("news feed parse: %w", err)
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}

		entry := Entry{
			Title:       item.Title,
			Summary:     item.Description,
			Link:        item.Link,
			PublishedAt: item.PubDateParsed,
		}
		if item.Source != nil {
			entry.Publisher = item.Source.Title
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
