package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// aggStageGroupCount counts documents per distinct value of groupBy.
/*
{
	$group: {
		_id: groupBy,
		count: { $sum: 1 }
	}
}
*/
func aggStageGroupCount(groupBy interface{}) bson.M {
	return bson.M{
		"$group": bson.M{
			"_id":   groupBy,
			"count": bson.M{"$sum": 1},
		},
	}
}

func aggStageSortByGroupKey(order int) bson.M {
	return bson.M{
		"$sort": bson.M{"_id": order},
	}
}

type averagedField struct {
	source string
	result string
}

// aggStageAverageValues averages each source field over the whole collection,
// counting a missing field as zero.
/*
{
	$group: {
		_id: null,
		result: { $avg: { $ifNull: ["$source", 0] } },
		...
	}
}
*/
func aggStageAverageValues(fields []averagedField) bson.M {
	group := bson.M{"_id": nil}
	for _, f := range fields {
		group[f.result] = bson.M{"$avg": fieldOrDefault(f.source, 0)}
	}
	return bson.M{"$group": group}
}

// aggStagePreventNullValues projects the given fields, replacing null with zero
func aggStagePreventNullValues(fields ...string) bson.M {
	targets := bson.M{"_id": 0}
	for _, field := range fields {
		targets[field] = fieldOrDefault(field, 0)
	}
	return bson.M{"$project": targets}
}

func fieldOrDefault(field string, value interface{}) bson.M {
	return bson.M{"$ifNull": bson.A{specifyField(field), value}}
}

func specifyField(fieldName string) string {
	return fmt.Sprintf("$%s", fieldName)
}
