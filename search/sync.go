package search

import (
	"bytes"
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/poimap/poi-api/schema"
)

// BulkResult summarizes one bulk indexing request
type BulkResult struct {
	Indexed   int
	Failed    int
	Skipped   int
	FailedIDs []string
}

type bulkAction struct {
	Index bulkTarget `json:"index"`
}

type bulkTarget struct {
	Index string `json:"_index"`
	ID    string `json:"_id"`
}

type bulkResponse struct {
	Errors bool                  `json:"errors"`
	Items  []map[string]bulkItem `json:"items"`
}

type bulkItem struct {
	ID     string `json:"_id"`
	Status int    `json:"status"`
	Error  *struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error,omitempty"`
}

// IndexPOI upserts one POI by its store id. Failures are logged, never returned.
func (e *elasticIndex) IndexPOI(ctx context.Context, poi schema.POI) {
	l := log.WithFields(log.Fields{
		"prefix": logPrefix,
		"poi ID": poi.ID.Hex(),
	})

	doc, err := NewDocument(poi)
	if err != nil {
		indexedDocuments.WithLabelValues(resultSkipped).Inc()
		l.WithError(err).Error("project poi into index document")
		return
	}

	body, err := json.Marshal(doc)
	if err != nil {
		indexedDocuments.WithLabelValues(resultSkipped).Inc()
		l.WithError(err).Error("encode index document")
		return
	}

	res, err := e.client.Index(
		e.index,
		bytes.NewReader(body),
		e.client.Index.WithDocumentID(poi.ID.Hex()),
		e.client.Index.WithContext(ctx),
	)
	if err != nil {
		indexedDocuments.WithLabelValues(resultFailed).Inc()
		l.WithError(err).Error("index poi")
		return
	}
	defer res.Body.Close()

	if err := responseError(res); err != nil {
		indexedDocuments.WithLabelValues(resultFailed).Inc()
		l.WithError(err).Error("index poi")
		return
	}

	indexedDocuments.WithLabelValues(resultIndexed).Inc()
}

// bulkBody encodes one index action per projectable POI as NDJSON.
// POIs that cannot be projected are returned as skipped.
func (e *elasticIndex) bulkBody(pois []schema.POI) (*bytes.Buffer, int, []string) {
	var (
		buf     bytes.Buffer
		count   int
		skipped []string
	)

	enc := json.NewEncoder(&buf)
	for _, poi := range pois {
		id := poi.ID.Hex()

		doc, err := NewDocument(poi)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"poi ID": id,
				"error":  err,
			}).Error("skip poi in bulk index")
			skipped = append(skipped, id)
			continue
		}

		// Encode terminates each line with '\n'
		if err := enc.Encode(bulkAction{Index: bulkTarget{Index: e.index, ID: id}}); err != nil {
			skipped = append(skipped, id)
			continue
		}
		if err := enc.Encode(doc); err != nil {
			skipped = append(skipped, id)
			continue
		}
		count++
	}

	return &buf, count, skipped
}

// BulkIndexPOIs upserts all POIs in a single batch request.
// Per item failures are logged and counted, partial success is accepted.
func (e *elasticIndex) BulkIndexPOIs(ctx context.Context, pois []schema.POI) BulkResult {
	body, count, skipped := e.bulkBody(pois)

	result := BulkResult{
		Skipped:   len(skipped),
		FailedIDs: skipped,
	}
	indexedDocuments.WithLabelValues(resultSkipped).Add(float64(len(skipped)))

	if count == 0 {
		return result
	}

	fail := func(err error) BulkResult {
		log.WithFields(log.Fields{
			"prefix":    logPrefix,
			"documents": count,
			"error":     err,
		}).Error("bulk index poi")
		result.Failed = count
		indexedDocuments.WithLabelValues(resultFailed).Add(float64(count))
		return result
	}

	res, err := e.client.Bulk(
		body,
		e.client.Bulk.WithIndex(e.index),
		e.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return fail(err)
	}
	defer res.Body.Close()

	if err := responseError(res); err != nil {
		return fail(err)
	}

	var br bulkResponse
	if err := json.NewDecoder(res.Body).Decode(&br); err != nil {
		return fail(err)
	}

	failedItems := make([]bulkItem, 0)
	for _, item := range br.Items {
		for _, r := range item {
			if r.Error != nil || r.Status >= 300 {
				failedItems = append(failedItems, r)
				result.FailedIDs = append(result.FailedIDs, r.ID)
				continue
			}
			result.Indexed++
		}
	}
	result.Failed = len(failedItems)

	if br.Errors || len(failedItems) > 0 {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"failed": len(failedItems),
			"items":  failedItems,
		}).Error("bulk indexing had errors")
	}

	indexedDocuments.WithLabelValues(resultIndexed).Add(float64(result.Indexed))
	indexedDocuments.WithLabelValues(resultFailed).Add(float64(result.Failed))

	log.WithField("prefix", logPrefix).Infof("bulk indexed %d documents, %d failed, %d skipped",
		result.Indexed, result.Failed, result.Skipped)

	return result
}
