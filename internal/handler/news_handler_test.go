package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"agroworld/internal/model"
	"agroworld/pkg/news"
)

type fakeNewsService struct {
	result    news.Result
	lastQuery string
}

func (f *fakeNewsService) Headlines(query string) news.Result {
	f.lastQuery = query
	return f.result
}

func newNewsRouter(service NewsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/news", NewNewsHandler(service).GetNews)
	return r
}

func TestGetNews(t *testing.T) {
	service := &fakeNewsService{result: news.Result{
		Origin: news.OriginLive,
		Items: []model.NewsItem{
			{
				Title:       "Monsoon arrives early",
				Description: "The monsoon reached Kerala...",
				Publisher:   "The Hindu",
				Category:    "Live Updates",
				TimeAgo:     "2 hours ago",
				ImageURL:    "https://images.example.com/1",
				Link:        "https://example.com/monsoon",
			},
		},
	}}

	r := newNewsRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?q=monsoon", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "monsoon", service.lastQuery)

	var res NewsFeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "live", res.Origin)
	assert.Equal(t, "monsoon", res.Query)
	assert.Equal(t, 1, len(res.News))
	assert.Equal(t, "Monsoon arrives early", res.News[0].Title)
	assert.Equal(t, "The Hindu", res.News[0].Publisher)
	assert.Equal(t, "2 hours ago", res.News[0].Time)
}

func TestGetNews_DefaultQuery(t *testing.T) {
	service := &fakeNewsService{result: news.Result{Origin: news.OriginFallback}}
	r := newNewsRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, news.DefaultQuery, service.lastQuery)

	var res NewsFeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "fallback", res.Origin)
	assert.Equal(t, 0, len(res.News))
}
