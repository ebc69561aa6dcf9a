package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urielfortunato123-del/verdade-legal-br/internal/model"
)

// NewsAggregator merges the configured feeds of a category. It never fails;
// unreachable feeds simply contribute nothing.
type NewsAggregator interface {
	Fetch(ctx context.Context, category string) ([]model.NewsItem, string)
}

type NewsHandler struct {
	aggregator NewsAggregator
}

func NewNewsHandler(aggregator NewsAggregator) *NewsHandler {
	return &NewsHandler{aggregator: aggregator}
}

// FetchNews handles POST /fetch-news. The body is optional; a missing or
// unknown category falls back to the general feed list.
func (h *NewsHandler) FetchNews(c *gin.Context) {
	var req FetchNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Category = ""
	}

	news, category := h.aggregator.Fetch(c.Request.Context(), req.Category)
	slog.Info("news fetched", "category", category, "count", len(news))

	c.JSON(http.StatusOK, FetchNewsResponse{
		Success:  true,
		News:     news,
		Category: category,
	})
}
