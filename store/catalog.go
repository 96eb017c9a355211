package store

import (
	"context"
	"fmt"

	"github.com/poimap/poi-api/schema"
	"github.com/poimap/poi-api/search"
)

// CatalogCore - the read facade over the POI catalog
type CatalogCore interface {
	Ping(ctx context.Context) error

	// Primary store
	ListPOI(ctx context.Context, q schema.POIQuery) (*schema.POIPage, error)
	GeoPOI(ctx context.Context, q schema.GeoQuery) ([]schema.GeoPOI, error)

	// Analytics
	SentimentAnalytics(ctx context.Context) ([]schema.SentimentCount, error)
	CategoryAnalytics(ctx context.Context) ([]schema.CategoryCount, error)
	EmotionAnalytics(ctx context.Context) (*schema.EmotionAverages, error)

	// Search index
	SearchPOI(ctx context.Context, q schema.SearchQuery) (*schema.POIPage, error)
}

// CatalogStore is an implementation of CatalogCore.
// The mongo store is authoritative, the search index is an eventually consistent projection of it.
type CatalogStore struct {
	mongo MongoStore
	index search.Engine
}

func NewCatalogStore(mongo MongoStore, index search.Engine) *CatalogStore {
	return &CatalogStore{
		mongo: mongo,
		index: index,
	}
}

// Ping is to check both stores are reachable
func (s *CatalogStore) Ping(ctx context.Context) error {
	if err := s.mongo.Ping(ctx); err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	if err := s.index.Ping(ctx); err != nil {
		return fmt.Errorf("search index: %w", err)
	}
	return nil
}

func (s *CatalogStore) ListPOI(ctx context.Context, q schema.POIQuery) (*schema.POIPage, error) {
	return s.mongo.ListPOI(ctx, q)
}

func (s *CatalogStore) GeoPOI(ctx context.Context, q schema.GeoQuery) ([]schema.GeoPOI, error) {
	return s.mongo.GeoPOI(ctx, q)
}

func (s *CatalogStore) SentimentAnalytics(ctx context.Context) ([]schema.SentimentCount, error) {
	return s.mongo.SentimentAnalytics(ctx)
}

func (s *CatalogStore) CategoryAnalytics(ctx context.Context) ([]schema.CategoryCount, error) {
	return s.mongo.CategoryAnalytics(ctx)
}

func (s *CatalogStore) EmotionAnalytics(ctx context.Context) (*schema.EmotionAverages, error) {
	return s.mongo.EmotionAnalytics(ctx)
}

func (s *CatalogStore) SearchPOI(ctx context.Context, q schema.SearchQuery) (*schema.POIPage, error) {
	return s.index.SearchPOI(ctx, q)
}
