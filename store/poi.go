package store

import (
	"context"
	"regexp"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/poimap/poi-api/schema"
)

type POI interface {
	ListPOI(ctx context.Context, q schema.POIQuery) (*schema.POIPage, error)
	GeoPOI(ctx context.Context, q schema.GeoQuery) ([]schema.GeoPOI, error)
}

var (
	poiListProjection = bson.M{
		"name":      1,
		"category":  1,
		"location":  1,
		"sentiment": 1,
		"emotions":  1,
		"timestamp": 1,
	}

	poiGeoProjection = bson.M{
		"name":      1,
		"category":  1,
		"location":  1,
		"sentiment": 1,
	}

	latestFirst = bson.D{
		{Key: "timestamp", Value: -1},
		{Key: "_id", Value: -1},
	}
)

// poiFilter builds the conjunctive category and sentiment filter shared by list and geo queries
func poiFilter(category, sentiment string) bson.M {
	filter := bson.M{}
	if c, ok := schema.CategoryFilter(category); ok {
		filter["category"] = c
	}
	if sentiment != "" {
		filter["sentiment.label"] = sentiment
	}
	return filter
}

// poiListFilter extends poiFilter with a case-insensitive substring match on name
func poiListFilter(q schema.POIQuery) bson.M {
	filter := poiFilter(q.Category, q.Sentiment)
	if q.Search != "" {
		filter["name"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(q.Search),
			Options: "i",
		}
	}
	return filter
}

// concurrently starts every read at once and waits for all of them.
// The first failure cancels the context of the others and is returned.
func concurrently(ctx context.Context, reads ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, read := range reads {
		read := read
		g.Go(func() error {
			return read(gctx)
		})
	}
	return g.Wait()
}

// ListPOI returns one page of matching POIs, newest first.
// The page fetch and the total count run concurrently.
func (m *mongoDB) ListPOI(ctx context.Context, q schema.POIQuery) (*schema.POIPage, error) {
	c := m.poiCollection()
	filter := poiListFilter(q)

	var (
		pois  = make([]schema.POI, 0)
		total int64
	)

	fetchPage := func(ctx context.Context) error {
		opts := options.Find().
			SetProjection(poiListProjection).
			SetSort(latestFirst).
			SetSkip(q.Offset()).
			SetLimit(q.Limit)

		cur, err := c.Find(ctx, filter, opts)
		if err != nil {
			return err
		}
		return cur.All(ctx, &pois)
	}
	countTotal := func(ctx context.Context) error {
		n, err := c.CountDocuments(ctx, filter)
		if err != nil {
			return err
		}
		total = n
		return nil
	}

	if err := concurrently(ctx, fetchPage, countTotal); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"filter": filter,
			"error":  err,
		}).Error("list poi")
		return nil, err
	}

	if pois == nil {
		pois = []schema.POI{}
	}
	for i := range pois {
		pois[i].ApplyDefaults()
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("list poi page %d gets %d of %d records", q.Page, len(pois), total)

	return &schema.POIPage{
		Data:       pois,
		Pagination: schema.NewPagination(total, q.Page, q.Limit),
	}, nil
}

// GeoPOI returns at most schema.GeoQueryLimit matching POIs for map rendering
func (m *mongoDB) GeoPOI(ctx context.Context, q schema.GeoQuery) ([]schema.GeoPOI, error) {
	filter := poiFilter(q.Category, q.Sentiment)
	opts := options.Find().
		SetProjection(poiGeoProjection).
		SetLimit(schema.GeoQueryLimit)

	cur, err := m.poiCollection().Find(ctx, filter, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query geo poi with error: %s", err)
		return nil, err
	}

	pois := make([]schema.GeoPOI, 0)
	if err := cur.All(ctx, &pois); err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("decode geo poi with error: %s", err)
		return nil, err
	}
	if pois == nil {
		pois = []schema.GeoPOI{}
	}
	for i := range pois {
		pois[i].ApplyDefaults()
	}

	return pois, nil
}
