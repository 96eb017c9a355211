package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/poimap/poi-api/schema"
	"github.com/poimap/poi-api/search"
)

const logPrefix = "importer"

var ErrNoValidRecords = fmt.Errorf("no valid poi records")

// Collection is the part of a mongo collection the importer writes through
type Collection interface {
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
}

// Summary reports the outcome of an import
type Summary struct {
	Read     int
	Skipped  int
	Inserted int
	Index    search.BulkResult
}

// Importer replaces the POI catalog with the content of a raw export
type Importer struct {
	collection Collection
	index      search.Engine
	now        func() time.Time
}

func New(collection Collection, index search.Engine) *Importer {
	return &Importer{
		collection: collection,
		index:      index,
		now:        time.Now,
	}
}

// NewFromClient - an Importer writing to the POI collection of the given database
func NewFromClient(client *mongo.Client, dbName string, index search.Engine) *Importer {
	return New(client.Database(dbName).Collection(schema.POICollection), index)
}

func ReadRecords(file string) ([]Record, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return records, nil
}

func (i *Importer) ImportFile(ctx context.Context, file string) (*Summary, error) {
	records, err := ReadRecords(file)
	if err != nil {
		return nil, err
	}
	return i.Import(ctx, records)
}

// Import clears the catalog, inserts every valid record and re-indexes them.
// The catalog is left untouched when no record is valid.
func (i *Importer) Import(ctx context.Context, records []Record) (*Summary, error) {
	summary := &Summary{Read: len(records)}

	now := i.now().UTC()
	pois := make([]schema.POI, 0, len(records))
	for n, r := range records {
		poi, err := r.POI(now)
		if err != nil {
			summary.Skipped++
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"row":    n,
				"name":   r.Name,
				"error":  err,
			}).Warn("skip record")
			continue
		}
		pois = append(pois, poi)
	}

	if len(pois) == 0 {
		return summary, ErrNoValidRecords
	}

	deleted, err := i.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return summary, fmt.Errorf("clear poi collection: %w", err)
	}
	log.WithField("prefix", logPrefix).Infof("cleared %d existing records", deleted.DeletedCount)

	docs := make([]interface{}, 0, len(pois))
	for _, p := range pois {
		docs = append(docs, p)
	}

	inserted, err := i.collection.InsertMany(ctx, docs)
	if err != nil {
		return summary, fmt.Errorf("insert pois: %w", err)
	}
	summary.Inserted = len(inserted.InsertedIDs)
	log.WithField("prefix", logPrefix).Infof("inserted %d records", summary.Inserted)

	summary.Index = i.reindex(ctx, pois)
	return summary, nil
}

// reindex rebuilds the search index from the imported records.
// Index failures are logged only, the primary store already holds the data.
func (i *Importer) reindex(ctx context.Context, pois []schema.POI) search.BulkResult {
	l := log.WithField("prefix", logPrefix)

	if err := i.index.EnsureIndex(ctx); err != nil {
		l.WithError(err).Error("ensure search index")
		return search.BulkResult{Failed: len(pois)}
	}

	if err := i.index.ClearIndex(ctx); err != nil {
		l.WithError(err).Error("clear search index")
	}

	result := i.index.BulkIndexPOIs(ctx, pois)
	l.WithFields(log.Fields{
		"indexed": result.Indexed,
		"failed":  result.Failed,
		"skipped": result.Skipped,
	}).Info("search index rebuilt")
	return result
}
