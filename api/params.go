package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/poimap/poi-api/schema"
)

// positiveInt parses a query value, falling back when it is missing, malformed or below 1
func positiveInt(value string, fallback int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// pageParams reads page and limit, a page too far to address falls back to the first page
func pageParams(c *gin.Context) (page, limit int64) {
	page = positiveInt(c.Query("page"), schema.DefaultPage)
	limit = positiveInt(c.Query("limit"), schema.DefaultLimit)
	if !schema.PageInRange(page, limit) {
		page = schema.DefaultPage
	}
	return
}

func poiQuery(c *gin.Context) schema.POIQuery {
	page, limit := pageParams(c)
	return schema.POIQuery{
		Page:      page,
		Limit:     limit,
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		Sentiment: c.Query("sentiment"),
	}
}

func geoQuery(c *gin.Context) schema.GeoQuery {
	return schema.GeoQuery{
		Category:  c.Query("category"),
		Sentiment: c.Query("sentiment"),
	}
}

func searchQuery(c *gin.Context) schema.SearchQuery {
	page, limit := pageParams(c)
	text := c.Query("q")
	if text == "" {
		text = c.Query("query")
	}
	return schema.SearchQuery{
		Query:    strings.TrimSpace(text),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}
}
