package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agroworld/pkg/news"
)

type NewsService interface {
	Headlines(query string) news.Result
}

type NewsHandler struct {
	service NewsService
}

func NewNewsHandler(service NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

// GetNews serves the news card list. The service degrades through its
// fallback ladder internally, so this always answers 200 with the origin tag.
func (h *NewsHandler) GetNews(c *gin.Context) {
	query := c.DefaultQuery("q", news.DefaultQuery)

	result := h.service.Headlines(query)

	items := make([]NewsItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, NewsItemResponse{
			Title:     item.Title,
			Desc:      item.Description,
			Publisher: item.Publisher,
			Category:  item.Category,
			Time:      item.TimeAgo,
			Img:       item.ImageURL,
			Link:      item.Link,
		})
	}

	c.JSON(http.StatusOK, NewsFeedResponse{
		News:   items,
		Query:  query,
		Origin: result.Origin.String(),
	})
}
