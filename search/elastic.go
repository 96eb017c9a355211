package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	log "github.com/sirupsen/logrus"

	"github.com/poimap/poi-api/schema"
)

const (
	logPrefix = "elasticsearch"

	DefaultIndexName = "pois"
)

var (
	ErrRequestFailed = fmt.Errorf("search index request failed")
)

// Engine is the secondary, best-effort search index over the POI catalog.
// Indexing never fails the caller; searching does.
type Engine interface {
	Ping(ctx context.Context) error
	EnsureIndex(ctx context.Context) error
	ClearIndex(ctx context.Context) error
	IndexPOI(ctx context.Context, poi schema.POI)
	BulkIndexPOIs(ctx context.Context, pois []schema.POI) BulkResult
	SearchPOI(ctx context.Context, q schema.SearchQuery) (*schema.POIPage, error)
}

type Config struct {
	Addresses []string
	CloudID   string
	APIKey    string
	Index     string
}

type elasticIndex struct {
	client *elasticsearch.Client
	index  string
}

// New - connect an Engine to an elasticsearch cluster
func New(cfg Config) (Engine, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		CloudID:   cfg.CloudID,
		APIKey:    cfg.APIKey,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("create elasticsearch client")
		return nil, err
	}

	return NewWithClient(client, cfg.Index), nil
}

func NewWithClient(client *elasticsearch.Client, index string) Engine {
	if index == "" {
		index = DefaultIndexName
	}
	return &elasticIndex{
		client: client,
		index:  index,
	}
}

// Ping - check the cluster is reachable
func (e *elasticIndex) Ping(ctx context.Context) error {
	res, err := e.client.Ping(e.client.Ping.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return responseError(res)
}

// ResponseError is an error response returned by the cluster
type ResponseError struct {
	Status int
	Type   string
	Reason string
}

func (e *ResponseError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: [%d] %s", ErrRequestFailed, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s: [%d] %s: %s", ErrRequestFailed, e.Status, e.Type, e.Reason)
}

func (e *ResponseError) Unwrap() error {
	return ErrRequestFailed
}

// responseError reads an error response into a *ResponseError, nil for a successful response
func responseError(res *esapi.Response) error {
	if !res.IsError() {
		return nil
	}

	raw, _ := io.ReadAll(res.Body)

	var body struct {
		Error struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Type != "" {
		return &ResponseError{
			Status: res.StatusCode,
			Type:   body.Error.Type,
			Reason: body.Error.Reason,
		}
	}

	return &ResponseError{
		Status: res.StatusCode,
		Reason: string(raw),
	}
}
