package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/poimap/poi-api/schema"
)

// Analytics - aggregate distributions over the whole catalog
type Analytics interface {
	SentimentAnalytics(ctx context.Context) ([]schema.SentimentCount, error)
	CategoryAnalytics(ctx context.Context) ([]schema.CategoryCount, error)
	EmotionAnalytics(ctx context.Context) (*schema.EmotionAverages, error)
}

var emotionAverageFields = []averagedField{
	{source: "emotions.joy", result: "avgJoy"},
	{source: "emotions.sadness", result: "avgSadness"},
	{source: "emotions.fear", result: "avgFear"},
	{source: "emotions.disgust", result: "avgDisgust"},
	{source: "emotions.anger", result: "avgAnger"},
	{source: "emotions.happy", result: "avgHappy"},
	{source: "emotions.calm", result: "avgCalm"},
	{source: "emotions.none", result: "avgNone"},
}

func sentimentPipeline() []bson.M {
	return []bson.M{
		aggStageGroupCount(fieldOrDefault("sentiment.label", schema.DefaultSentimentLabel)),
	}
}

func categoryPipeline() []bson.M {
	return []bson.M{
		aggStageGroupCount(specifyField("category")),
		aggStageSortByGroupKey(1),
	}
}

func emotionPipeline() []bson.M {
	results := make([]string, 0, len(emotionAverageFields))
	for _, f := range emotionAverageFields {
		results = append(results, f.result)
	}

	return []bson.M{
		aggStageAverageValues(emotionAverageFields),
		aggStagePreventNullValues(results...),
	}
}

// SentimentAnalytics counts records per sentiment label
func (m *mongoDB) SentimentAnalytics(ctx context.Context) ([]schema.SentimentCount, error) {
	cur, err := m.poiCollection().Aggregate(ctx, sentimentPipeline())
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("aggregate sentiment analytics")
		return nil, err
	}

	results := make([]schema.SentimentCount, 0)
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []schema.SentimentCount{}
	}

	return results, nil
}

// CategoryAnalytics counts records per category, sorted by category ascending
func (m *mongoDB) CategoryAnalytics(ctx context.Context) ([]schema.CategoryCount, error) {
	cur, err := m.poiCollection().Aggregate(ctx, categoryPipeline())
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("aggregate category analytics")
		return nil, err
	}

	results := make([]schema.CategoryCount, 0)
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []schema.CategoryCount{}
	}

	return results, nil
}

// EmotionAnalytics averages every emotion field. An empty catalog yields all zeros.
func (m *mongoDB) EmotionAnalytics(ctx context.Context) (*schema.EmotionAverages, error) {
	cur, err := m.poiCollection().Aggregate(ctx, emotionPipeline())
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("aggregate emotion analytics")
		return nil, err
	}

	var results []schema.EmotionAverages
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return &schema.EmotionAverages{}, nil
	}

	return &results[0], nil
}
