package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) sentimentAnalytics(c *gin.Context) {
	counts, err := s.store.SentimentAnalytics(c.Request.Context())
	if shouldInterupt(err, c, errorAnalyticsPOI) {
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (s *Server) categoryAnalytics(c *gin.Context) {
	counts, err := s.store.CategoryAnalytics(c.Request.Context())
	if shouldInterupt(err, c, errorAnalyticsPOI) {
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (s *Server) emotionAnalytics(c *gin.Context) {
	averages, err := s.store.EmotionAnalytics(c.Request.Context())
	if shouldInterupt(err, c, errorAnalyticsPOI) {
		return
	}

	c.JSON(http.StatusOK, averages)
}
