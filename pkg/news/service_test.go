package news

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"agroworld/internal/model"
)

type fakeFeed struct {
	entries []Entry
	err     error
}

func (f *fakeFeed) Fetch(query string) ([]Entry, error) {
	return f.entries, f.err
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func entryAt(published time.Time) Entry {
	return Entry{
		Title:       "Wheat prices rally",
		Summary:     "Prices rose sharply this week.",
		Link:        "https://example.com/wheat",
		PublishedAt: &published,
	}
}

func newTestService(feed feedClient) *Service {
	s := NewService(feed)
	s.now = fixedNow
	return s
}

func TestHeadlines_Live(t *testing.T) {
	published := fixedNow().Add(-30 * time.Minute)
	feed := &fakeFeed{entries: []Entry{
		{
			Title:       "Monsoon arrives early",
			Summary:     "<p>The monsoon reached <b>Kerala</b> ahead of schedule.</p>",
			Link:        "https://example.com/monsoon",
			Publisher:   "The Hindu",
			PublishedAt: &published,
		},
	}}

	s := newTestService(feed)
	result := s.Headlines(DefaultQuery)

	assert.Equal(t, OriginLive, result.Origin)
	assert.Equal(t, 1, len(result.Items))

	item := result.Items[0]
	assert.Equal(t, "Monsoon arrives early", item.Title)
	assert.Equal(t, "The monsoon reached Kerala ahead of schedule....", item.Description)
	assert.Equal(t, "The Hindu", item.Publisher)
	assert.Equal(t, "Live Updates", item.Category)
	assert.Equal(t, "30 minutes ago", item.TimeAgo)
	assert.Equal(t, imagePool[0], item.ImageURL)
	assert.Equal(t, "https://example.com/monsoon", item.Link)
}

func TestHeadlines_CapsAtSixAndCyclesImages(t *testing.T) {
	published := fixedNow().Add(-2 * time.Hour)
	var entries []Entry
	for i := 0; i < 9; i++ {
		entries = append(entries, entryAt(published))
	}

	s := newTestService(&fakeFeed{entries: entries})
	result := s.Headlines(DefaultQuery)

	assert.Equal(t, OriginLive, result.Origin)
	assert.Equal(t, 6, len(result.Items))
	for i, item := range result.Items {
		assert.Equal(t, imagePool[i%len(imagePool)], item.ImageURL)
	}
	// Sixth card wraps back to the first image.
	assert.Equal(t, imagePool[0], result.Items[5].ImageURL)
}

func TestDescription_Truncation(t *testing.T) {
	s := newTestService(&fakeFeed{})

	long := strings.Repeat("a", 400)
	got := s.description(long)
	assert.Equal(t, 153, len(got))
	assert.Equal(t, strings.Repeat("a", 150)+"...", got)

	short := "Brief update."
	assert.Equal(t, "Brief update....", s.description(short))

	assert.Equal(t, placeholderDescription, s.description(""))
	assert.Equal(t, placeholderDescription, s.description("<div><img src='x'/></div>"))
}

func TestHeadlines_MissingPublisherDefaults(t *testing.T) {
	published := fixedNow().Add(-2 * time.Hour)
	s := newTestService(&fakeFeed{entries: []Entry{entryAt(published)}})

	result := s.Headlines(DefaultQuery)

	assert.Equal(t, "Agriculture News", result.Items[0].Publisher)
}

func TestTimeAgo(t *testing.T) {
	s := newTestService(&fakeFeed{})

	for _, tc := range []struct {
		elapsed time.Duration
		want    string
	}{
		{49 * time.Hour, "2 days ago"},
		{24 * time.Hour, "1 days ago"},
		{5 * time.Hour, "5 hours ago"},
		{time.Hour, "1 hours ago"},
		{30 * time.Minute, "30 minutes ago"},
		{10 * time.Second, "0 minutes ago"},
	} {
		published := fixedNow().Add(-tc.elapsed)
		assert.Equal(t, tc.want, s.timeAgo(&published))
	}

	assert.Equal(t, "Recently", s.timeAgo(nil))

	zero := time.Time{}
	assert.Equal(t, "Recently", s.timeAgo(&zero))
}

func TestHeadlines_FallbackOnFetchError(t *testing.T) {
	s := newTestService(&fakeFeed{err: errors.New("feed blocked")})

	result := s.Headlines("mango OR farming india")

	assert.Equal(t, OriginFallback, result.Origin)
	assert.Equal(t, 3, len(result.Items))
	assert.Equal(t, "Government announces new subsidies for mango farmers", result.Items[0].Title)
	assert.Equal(t, "New hybrid seed variants of mango yield 20% more output", result.Items[1].Title)
	assert.Equal(t, "Monsoon forecast looks promising for the upcoming Kharif season", result.Items[2].Title)
	assert.Equal(t, "Policy", result.Items[0].Category)
	assert.Equal(t, "2 hours ago", result.Items[0].TimeAgo)
}

func TestHeadlines_FallbackOnEmptyFeed(t *testing.T) {
	s := newTestService(&fakeFeed{entries: nil})

	result := s.Headlines(DefaultQuery)

	assert.Equal(t, OriginFallback, result.Origin)
	assert.Equal(t, 3, len(result.Items))
	// Default query interpolates its own topic.
	assert.Equal(t, "Government announces new subsidies for agriculture farmers", result.Items[0].Title)
}

func TestHeadlines_SystemAlertWhenFallbackFails(t *testing.T) {
	s := newTestService(&fakeFeed{err: errors.New("feed blocked")})
	s.fallback = func(query string) ([]model.NewsItem, error) {
		return nil, errors.New("mock construction failed")
	}

	result := s.Headlines(DefaultQuery)

	assert.Equal(t, OriginUnavailable, result.Origin)
	assert.Equal(t, 1, len(result.Items))
	assert.Equal(t, "Unable to fetch live news at the moment due to network issues", result.Items[0].Title)
	assert.Equal(t, "System Alert", result.Items[0].Publisher)
	assert.Equal(t, "Just now", result.Items[0].TimeAgo)
}

func TestOriginString(t *testing.T) {
	assert.Equal(t, "live", OriginLive.String())
	assert.Equal(t, "fallback", OriginFallback.String())
	assert.Equal(t, "unavailable", OriginUnavailable.String())
}
