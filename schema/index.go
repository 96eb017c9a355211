package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBIndexer struct {
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(ctx context.Context, collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(ctx, index)
	return err
}

func (m *MongoDBIndexer) IndexAll(ctx context.Context) error {
	return m.IndexPOICollection(ctx)
}

// IndexPOICollection creates the geospatial index and the indexes backing list filters and sort
func (m *MongoDBIndexer) IndexPOICollection(ctx context.Context) error {
	if err := m.createIndex(ctx, POICollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(ctx, POICollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "timestamp", Value: -1},
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(ctx, POICollection, mongo.IndexModel{
		Keys: bson.M{
			"sentiment.label": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ctx, POICollection, mongo.IndexModel{
		Keys: bson.M{
			"timestamp": -1,
		},
	})
}
