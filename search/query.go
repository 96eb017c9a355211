package search

import (
	"bytes"
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/poimap/poi-api/schema"
)

const (
	fuzzinessAuto = "AUTO"
	nameBoost     = 2

	// MaxResultWindow is the cluster default bound on from+size
	MaxResultWindow = 10000
)

type matchQuery struct {
	Query     string  `json:"query"`
	Fuzziness string  `json:"fuzziness,omitempty"`
	Operator  string  `json:"operator,omitempty"`
	Boost     float64 `json:"boost,omitempty"`
}

type queryClause struct {
	Match map[string]matchQuery `json:"match"`
}

type boolQuery struct {
	Must               []queryClause `json:"must"`
	Should             []queryClause `json:"should"`
	MinimumShouldMatch int           `json:"minimum_should_match"`
}

type searchQuery struct {
	Bool boolQuery `json:"bool"`
}

type searchRequest struct {
	From           int64               `json:"from"`
	Size           int64               `json:"size"`
	Query          searchQuery         `json:"query"`
	Sort           []map[string]string `json:"sort"`
	TrackTotalHits bool                `json:"track_total_hits"`
}

type searchHit struct {
	ID     string   `json:"_id"`
	Score  *float64 `json:"_score"`
	Source Document `json:"_source"`
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
}

func match(field string, q matchQuery) queryClause {
	return queryClause{Match: map[string]matchQuery{field: q}}
}

// buildQuery combines an exact category filter with fuzzy, name boosted text matching
func buildQuery(text, category string) searchQuery {
	b := boolQuery{
		Must:   []queryClause{},
		Should: []queryClause{},
	}

	if c, ok := schema.CategoryFilter(category); ok {
		b.Must = append(b.Must, match("category", matchQuery{
			Query:    c,
			Operator: "and",
		}))
	}

	if text != "" {
		b.Should = append(b.Should,
			match("name", matchQuery{
				Query:     text,
				Fuzziness: fuzzinessAuto,
				Boost:     nameBoost,
			}),
			match("category", matchQuery{
				Query:     text,
				Fuzziness: fuzzinessAuto,
			}),
		)
		b.MinimumShouldMatch = 1
	}

	return searchQuery{Bool: b}
}

// buildSearchRequest ranks by relevance, breaking ties with the newest timestamp
// Pages past MaxResultWindow only count the matches, a page crossing it is cut short.
func buildSearchRequest(q schema.SearchQuery) searchRequest {
	from, size := q.Offset(), q.Limit
	if from >= MaxResultWindow {
		from, size = 0, 0
	} else if size > MaxResultWindow-from {
		size = MaxResultWindow - from
	}

	return searchRequest{
		From:  from,
		Size:  size,
		Query: buildQuery(q.Query, q.Category),
		Sort: []map[string]string{
			{"_score": "desc"},
			{"timestamp": "desc"},
		},
		TrackTotalHits: true,
	}
}

// translateResponse maps hits back to canonical POIs with the list query pagination contract
func translateResponse(resp searchResponse, q schema.SearchQuery) (*schema.POIPage, error) {
	pois := make([]schema.POI, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		poi, err := hit.Source.POI(hit.ID)
		if err != nil {
			return nil, err
		}
		pois = append(pois, poi)
	}

	return &schema.POIPage{
		Data:       pois,
		Pagination: schema.NewPagination(resp.Hits.Total.Value, q.Page, q.Limit),
	}, nil
}

// SearchPOI runs a hybrid category filter and fuzzy text query. Failures are returned to the caller.
func (e *elasticIndex) SearchPOI(ctx context.Context, q schema.SearchQuery) (*schema.POIPage, error) {
	l := log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"query":    q.Query,
		"category": q.Category,
	})

	body, err := json.Marshal(buildSearchRequest(q))
	if err != nil {
		return nil, err
	}

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		searchRequests.WithLabelValues(resultFailed).Inc()
		l.WithError(err).Error("search poi")
		return nil, err
	}
	defer res.Body.Close()

	if err := responseError(res); err != nil {
		searchRequests.WithLabelValues(resultFailed).Inc()
		l.WithError(err).Error("search poi")
		return nil, err
	}

	var resp searchResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		searchRequests.WithLabelValues(resultFailed).Inc()
		l.WithError(err).Error("decode search response")
		return nil, err
	}

	page, err := translateResponse(resp, q)
	if err != nil {
		searchRequests.WithLabelValues(resultFailed).Inc()
		l.WithError(err).Error("translate search hits")
		return nil, err
	}

	searchRequests.WithLabelValues(resultOK).Inc()
	l.Debugf("search poi gets %d of %d hits", len(page.Data), page.Pagination.Total)

	return page, nil
}
