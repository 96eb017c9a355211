package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/poimap/poi-api/schema"
)

const (
	indexAlreadyExists = "resource_already_exists_exception"
	indexNotFound      = "index_not_found_exception"

	matchAllQuery = `{"query":{"match_all":{}}}`
)

type fieldMapping struct {
	Type       string                  `json:"type,omitempty"`
	Properties map[string]fieldMapping `json:"properties,omitempty"`
}

func typed(t string) fieldMapping {
	return fieldMapping{Type: t}
}

// indexMapping is the fixed field mapping of the POI index
func indexMapping() map[string]interface{} {
	emotions := make(map[string]fieldMapping)
	for _, key := range schema.EmotionKeys {
		emotions[key] = typed("float")
	}

	return map[string]interface{}{
		"mappings": fieldMapping{
			Properties: map[string]fieldMapping{
				"name":     typed("text"),
				"category": typed("keyword"),
				"location": typed("geo_point"),
				"sentiment": {
					Properties: map[string]fieldMapping{
						"label": typed("keyword"),
						"score": typed("float"),
					},
				},
				"emotions": {
					Properties: emotions,
				},
				"timestamp": typed("date"),
			},
		},
	}
}

// EnsureIndex creates the index with its mapping unless it already exists
func (e *elasticIndex) EnsureIndex(ctx context.Context) error {
	res, err := e.client.Indices.Exists(
		[]string{e.index},
		e.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		log.WithField("prefix", logPrefix).Debugf("index %s exists", e.index)
		return nil
	case http.StatusNotFound:
	default:
		return &ResponseError{Status: res.StatusCode, Reason: "check index existence"}
	}

	body, err := json.Marshal(indexMapping())
	if err != nil {
		return err
	}

	res, err = e.client.Indices.Create(
		e.index,
		e.client.Indices.Create.WithBody(bytes.NewReader(body)),
		e.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if err := responseError(res); err != nil {
		var re *ResponseError
		if errors.As(err, &re) && re.Type == indexAlreadyExists {
			return nil
		}
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"index":  e.index,
			"error":  err,
		}).Error("create index")
		return err
	}

	log.WithField("prefix", logPrefix).Infof("created index %s", e.index)
	return nil
}

// ClearIndex removes every document from the index, keeping its mapping.
// A missing index is already clear.
func (e *elasticIndex) ClearIndex(ctx context.Context) error {
	res, err := e.client.DeleteByQuery(
		[]string{e.index},
		strings.NewReader(matchAllQuery),
		e.client.DeleteByQuery.WithContext(ctx),
		e.client.DeleteByQuery.WithConflicts("proceed"),
		e.client.DeleteByQuery.WithRefresh(true),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if err := responseError(res); err != nil {
		var re *ResponseError
		if errors.As(err, &re) && re.Type == indexNotFound {
			return nil
		}
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"index":  e.index,
			"error":  err,
		}).Error("clear index")
		return err
	}

	var body struct {
		Deleted int64 `json:"deleted"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		log.WithField("prefix", logPrefix).Infof("cleared %d documents from index %s", body.Deleted, e.index)
	}
	return nil
}
