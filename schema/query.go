package schema

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 50

	// GeoQueryLimit caps the number of map markers returned by a geo query
	GeoQueryLimit = 1000

	// CategoryAll is the category filter value meaning no filter
	CategoryAll = "all"
)

// POIQuery is a paginated list query against the primary store
type POIQuery struct {
	Page      int64
	Limit     int64
	Category  string
	Search    string
	Sentiment string
}

// Offset returns the number of records to skip for the requested page
func (q POIQuery) Offset() int64 {
	return PageOffset(q.Page, q.Limit)
}

type GeoQuery struct {
	Category  string
	Sentiment string
}

// SearchQuery is a free text query against the search index
type SearchQuery struct {
	Query    string
	Category string
	Page     int64
	Limit    int64
}

func (q SearchQuery) Offset() int64 {
	return PageOffset(q.Page, q.Limit)
}

// CategoryFilter reports the category to filter on, treating "all" and empty as no filter
func CategoryFilter(category string) (string, bool) {
	if category == "" || category == CategoryAll {
		return "", false
	}
	return category, true
}

// PageInRange reports whether the page and limit address an offset representable as int64
func PageInRange(page, limit int64) bool {
	if page < 1 || limit < 1 {
		return false
	}
	return page <= math.MaxInt64/limit
}

// PageOffset returns (page-1)*limit, saturating at math.MaxInt64
func PageOffset(page, limit int64) int64 {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return (page - 1) * limit
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

// NewPagination derives the page count and hasMore flag from a match total
func NewPagination(total, page, limit int64) Pagination {
	p := Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
	}
	if limit > 0 && total > 0 {
		p.TotalPages = (total-1)/limit + 1
	}
	// page*limit < total, without the product
	p.HasMore = page < p.TotalPages
	return p
}

type POIPage struct {
	Data       []POI      `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type SentimentCount struct {
	Label string `bson:"_id" json:"label"`
	Count int64  `bson:"count" json:"count"`
}

type CategoryCount struct {
	Category string `bson:"_id" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}

// EmotionAverages holds the mean intensity of each emotion across the catalog
type EmotionAverages struct {
	AvgJoy     float64 `bson:"avgJoy" json:"avgJoy"`
	AvgSadness float64 `bson:"avgSadness" json:"avgSadness"`
	AvgFear    float64 `bson:"avgFear" json:"avgFear"`
	AvgDisgust float64 `bson:"avgDisgust" json:"avgDisgust"`
	AvgAnger   float64 `bson:"avgAnger" json:"avgAnger"`
	AvgHappy   float64 `bson:"avgHappy" json:"avgHappy"`
	AvgCalm    float64 `bson:"avgCalm" json:"avgCalm"`
	AvgNone    float64 `bson:"avgNone" json:"avgNone"`
}
