package importer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/poimap/poi-api/schema"
)

var ErrMissingField = fmt.Errorf("missing required field")

var reviewDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// number is a JSON value holding a number or a numeric string
type number struct {
	value *float64
}

// UnmarshalJSON leaves the number unset for null, empty or non-numeric values
func (n *number) UnmarshalJSON(b []byte) error {
	raw := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if raw == "" || raw == "null" {
		return nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	n.value = &v
	return nil
}

// Record is one row of the raw POI export
type Record struct {
	Name       string `json:"POI Name"`
	Category   string `json:"Category"`
	Longitude  number `json:"Longitude"`
	Latitude   number `json:"Latitude"`
	Sentiment  string `json:"Sentiment"`
	StarRating number `json:"Star Rating"`
	Emotion    string `json:"Emotion"`
	ReviewDate string `json:"Review Date"`
}

// POI maps the record into a canonical POI with a fresh id
func (r Record) POI(now time.Time) (schema.POI, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return schema.POI{}, fmt.Errorf("%w: POI Name", ErrMissingField)
	}
	category := strings.TrimSpace(r.Category)
	if category == "" {
		return schema.POI{}, fmt.Errorf("%w: Category", ErrMissingField)
	}

	if r.Longitude.value == nil || r.Latitude.value == nil {
		return schema.POI{}, schema.ErrInvalidCoordinates
	}

	location, err := schema.NewPoint(*r.Longitude.value, *r.Latitude.value)
	if err != nil {
		return schema.POI{}, err
	}

	label := strings.TrimSpace(r.Sentiment)
	if label == "" {
		label = schema.DefaultSentimentLabel
	}

	// a zero rating is treated as unrated
	rating := r.StarRating.value
	if rating != nil && *rating == 0 {
		rating = nil
	}

	emotions := schema.ParseEmotion(r.Emotion).Vector()

	return schema.POI{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Category: category,
		Location: location,
		Sentiment: &schema.Sentiment{
			Label: label,
			Score: schema.SentimentScore(rating),
		},
		Emotions:  &emotions,
		Timestamp: reviewDate(r.ReviewDate, now),
	}, nil
}

// reviewDate parses the review date in any of the known layouts, falling back to now
func reviewDate(value string, now time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return now
	}

	for _, layout := range reviewDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return now
}
