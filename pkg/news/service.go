// Package news turns an agricultural news feed into the card list the
// frontend renders, degrading through a fixed fallback ladder when the feed
// is unreachable or empty.
package news

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"agroworld/internal/model"
)

const (
	DefaultQuery = "agriculture OR farming india"

	maxItems               = 6
	descriptionLimit       = 150
	placeholderDescription = "Read more about this agricultural update..."
	defaultPublisher       = "Agriculture News"
	liveCategory           = "Live Updates"
)

var imagePool = []string{
	"https://images.unsplash.com/photo-1592982537447-7440770cbfc9?auto=format&fit=crop&w=400",
	"https://images.unsplash.com/photo-1523348837708-15d4a09cfac2?auto=format&fit=crop&w=400",
	"https://images.unsplash.com/photo-1560493676-04071c5f467b?auto=format&fit=crop&w=400",
	"https://images.unsplash.com/photo-1495107334309-fcf20504a5ab?auto=format&fit=crop&w=400",
	"https://images.unsplash.com/photo-1605000797499-95a51c5269ae?auto=format&fit=crop&w=400",
}

// Origin tags which rung of the fallback ladder produced a Result.
type Origin int

const (
	OriginLive Origin = iota
	OriginFallback
	OriginUnavailable
)

func (o Origin) String() string {
	switch o {
	case OriginLive:
		return "live"
	case OriginFallback:
		return "fallback"
	default:
		return "unavailable"
	}
}

type Result struct {
	Origin Origin
	Items  []model.NewsItem
}

type feedClient interface {
	Fetch(query string) ([]Entry, error)
}

type Service struct {
	feed      feedClient
	sanitizer *bluemonday.Policy
	now       func() time.Time

	// fallback builds the mock card set when the live feed yields nothing.
	// Injectable so the last ladder rung is reachable in tests.
	fallback func(query string) ([]model.NewsItem, error)
}

func NewService(feed feedClient) *Service {
	return &Service{
		feed:      feed,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
		fallback:  mockHeadlines,
	}
}

// Headlines fetches and normalizes up to six cards for query. Ladder: live
// entries, then query-interpolated mock cards, then a single system-alert
// card. It never returns an error.
func (s *Service) Headlines(query string) Result {
	entries, err := s.feed.Fetch(query)
	if err == nil && len(entries) > 0 {
		items := make([]model.NewsItem, 0, maxItems)
		for i, entry := range entries {
			if i >= maxItems {
				break
			}
			items = append(items, s.newsItem(entry, i))
		}
		return Result{Origin: OriginLive, Items: items}
	}

	items, err := s.fallback(query)
	if err != nil {
		return Result{Origin: OriginUnavailable, Items: []model.NewsItem{systemAlertItem()}}
	}

	return Result{Origin: OriginFallback, Items: items}
}

func (s *Service) newsItem(entry Entry, position int) model.NewsItem {
	publisher := entry.Publisher
	if publisher == "" {
		publisher = defaultPublisher
	}

	return model.NewsItem{
		Title:       entry.Title,
		Description: s.description(entry.Summary),
		Publisher:   publisher,
		Category:    liveCategory,
		TimeAgo:     s.timeAgo(entry.PublishedAt),
		ImageURL:    imagePool[position%len(imagePool)],
		Link:        entry.Link,
	}
}

// description strips HTML from a feed summary and truncates it for the card.
func (s *Service) description(summary string) string {
	text := strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(summary)))
	if text == "" {
		return placeholderDescription
	}

	runes := []rune(text)
	if len(runes) > descriptionLimit {
		text = string(runes[:descriptionLimit])
	}
	return text + "..."
}

func (s *Service) timeAgo(published *time.Time) string {
	if published == nil || published.IsZero() {
		return "Recently"
	}

	elapsed := s.now().Sub(*published)
	switch {
	case elapsed >= 24*time.Hour:
		return fmt.Sprintf("%d days ago", int(elapsed.Hours()/24))
	case elapsed >= time.Hour:
		return fmt.Sprintf("%d hours ago", int(elapsed.Hours()))
	default:
		minutes := int(elapsed.Minutes())
		if minutes < 0 {
			minutes = 0
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	}
}

// mockHeadlines interpolates the search topic into a static card set used
// when the feed is down, blocked or empty.
func mockHeadlines(query string) ([]model.NewsItem, error) {
	topic := strings.TrimSpace(strings.ReplaceAll(query, "OR farming india", ""))

	subsidyTopic := topic
	if subsidyTopic == "" {
		subsidyTopic = "Agriculture"
	}
	seedTopic := topic
	if seedTopic == "" {
		seedTopic = "Wheat"
	}

	return []model.NewsItem{
		{
			Title:       fmt.Sprintf("Government announces new subsidies for %s farmers", subsidyTopic),
			Description: "The Ministry of Agriculture has outlined a new set of comprehensive financial subsidies aimed at boosting technology adoption in rural farming subsectors...",
			Publisher:   "Agri Business News",
			Category:    "Policy",
			TimeAgo:     "2 hours ago",
			ImageURL:    imagePool[0],
			Link:        "https://krishijagran.com/news/",
		},
		{
			Title:       fmt.Sprintf("New hybrid seed variants of %s yield 20%% more output", seedTopic),
			Description: "Agricultural research institutes have successfully completed trials on a new strain that is both drought-resistant and significantly more productive...",
			Publisher:   "Science Daily",
			Category:    "Innovation",
			TimeAgo:     "5 hours ago",
			ImageURL:    imagePool[1],
			Link:        "https://www.scidev.net/asia-pacific/agriculture/",
		},
		{
			Title:       "Monsoon forecast looks promising for the upcoming Kharif season",
			Description: "Meteorologists predict a normal to above-normal monsoon this year, bringing relief to millions of farmers relying on rain-fed agriculture...",
			Publisher:   "Weather Today",
			Category:    "Live Updates",
			TimeAgo:     "12 hours ago",
			ImageURL:    imagePool[2],
			Link:        "https://pib.gov.in/indexd.aspx",
		},
	}, nil
}

func systemAlertItem() model.NewsItem {
	return model.NewsItem{
		Title:       "Unable to fetch live news at the moment due to network issues",
		Description: "Please check your internet connection or try searching again later. The server might be rate-limited by the news provider.",
		Publisher:   "System Alert",
		Category:    "System Alert",
		TimeAgo:     "Just now",
		ImageURL:    imagePool[0],
		Link:        "https://krishijagran.com/",
	}
}
