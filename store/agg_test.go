package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/poimap/poi-api/schema"
)

func TestPOIFilterAllCategory(t *testing.T) {
	assert.Equal(t, bson.M{}, poiFilter("all", ""))
	assert.Equal(t, bson.M{}, poiFilter("", ""))
	assert.Equal(t, bson.M{"category": "cafe"}, poiFilter("cafe", ""))
	assert.Equal(t, bson.M{"category": "cafe", "sentiment.label": "positive"}, poiFilter("cafe", "positive"))
	assert.Equal(t, bson.M{"sentiment.label": "negative"}, poiFilter("all", "negative"))
}

func TestPOIListFilterSearch(t *testing.T) {
	filter := poiListFilter(schema.POIQuery{Search: "St. Mark's (old)", Category: "all"})

	assert.Equal(t, bson.M{
		"name": primitive.Regex{Pattern: `St\. Mark's \(old\)`, Options: "i"},
	}, filter)
}

func TestSentimentPipeline(t *testing.T) {
	assert.Equal(t, []bson.M{
		{"$group": bson.M{
			"_id":   bson.M{"$ifNull": bson.A{"$sentiment.label", "neutral"}},
			"count": bson.M{"$sum": 1},
		}},
	}, sentimentPipeline())
}

func TestCategoryPipelineSortsAscending(t *testing.T) {
	assert.Equal(t, []bson.M{
		{"$group": bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}, categoryPipeline())
}

func TestEmotionPipeline(t *testing.T) {
	pipeline := emotionPipeline()
	assert.Len(t, pipeline, 2)

	group := pipeline[0]["$group"].(bson.M)
	assert.Nil(t, group["_id"])
	assert.Len(t, group, len(schema.EmotionKeys)+1)
	assert.Equal(t, bson.M{"$avg": bson.M{"$ifNull": bson.A{"$emotions.joy", 0}}}, group["avgJoy"])
	assert.Equal(t, bson.M{"$avg": bson.M{"$ifNull": bson.A{"$emotions.none", 0}}}, group["avgNone"])

	project := pipeline[1]["$project"].(bson.M)
	assert.Equal(t, 0, project["_id"])
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$avgCalm", 0}}, project["avgCalm"])
	assert.Len(t, project, len(schema.EmotionKeys)+1)
}
