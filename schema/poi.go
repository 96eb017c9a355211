package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	POICollection = "poi"

	DefaultSentimentLabel = "neutral"
	DefaultSentimentScore = 0.5

	// ratings in the raw data are given on a 0-5 scale
	maxStarRating = 5
)

var ErrInvalidCoordinates = fmt.Errorf("invalid wgs84 coordinates")

// GeoJSON is a point stored as [longitude, latitude]
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewPoint returns a validated GeoJSON point in [lon, lat] order
func NewPoint(lon, lat float64) (*GeoJSON, error) {
	p := geom.NewPointFlat(geom.XY, []float64{lon, lat})
	if err := ValidatePoint(p); err != nil {
		return nil, err
	}

	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{p.X(), p.Y()},
	}, nil
}

// Point converts the stored coordinate pair into a geom point, X is longitude and Y is latitude.
func (g *GeoJSON) Point() (*geom.Point, error) {
	if g == nil || len(g.Coordinates) != 2 {
		return nil, ErrInvalidCoordinates
	}

	p := geom.NewPointFlat(geom.XY, []float64{g.Coordinates[0], g.Coordinates[1]})
	if err := ValidatePoint(p); err != nil {
		return nil, err
	}
	return p, nil
}

// MarshalJSON encodes a valid point through the geojson encoder.
// A stored pair that is not a valid point is written out as is.
func (g GeoJSON) MarshalJSON() ([]byte, error) {
	p, err := g.Point()
	if err != nil {
		type plain GeoJSON
		return json.Marshal(plain(g))
	}
	return geojson.Marshal(p)
}

// UnmarshalJSON accepts only a geojson Point within the WGS84 bounds
func (g *GeoJSON) UnmarshalJSON(data []byte) error {
	var t geom.T
	if err := geojson.Unmarshal(data, &t); err != nil {
		return err
	}

	p, ok := t.(*geom.Point)
	if !ok || p.Empty() || p.Layout() != geom.XY {
		return fmt.Errorf("%w: expected a 2d Point geometry", ErrInvalidCoordinates)
	}
	if err := ValidatePoint(p); err != nil {
		return err
	}

	g.Type = "Point"
	g.Coordinates = []float64{p.X(), p.Y()}
	return nil
}

// ValidatePoint checks a point lies within the WGS84 bounds
func ValidatePoint(p *geom.Point) error {
	lon, lat := p.X(), p.Y()
	if math.IsNaN(lon) || math.IsNaN(lat) ||
		lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidCoordinates, lon, lat)
	}
	return nil
}

type Sentiment struct {
	Label string  `bson:"label" json:"label"`
	Score float64 `bson:"score" json:"score"`
}

// SentimentScore normalizes a 0-5 star rating into [0, 1].
// A missing rating yields DefaultSentimentScore.
func SentimentScore(rating *float64) float64 {
	if rating == nil || math.IsNaN(*rating) {
		return DefaultSentimentScore
	}
	return math.Min(1, math.Max(0, *rating/maxStarRating))
}

type Emotions struct {
	Joy     float64 `bson:"joy" json:"joy"`
	Sadness float64 `bson:"sadness" json:"sadness"`
	Fear    float64 `bson:"fear" json:"fear"`
	Disgust float64 `bson:"disgust" json:"disgust"`
	Anger   float64 `bson:"anger" json:"anger"`
	Happy   float64 `bson:"happy" json:"happy"`
	Calm    float64 `bson:"calm" json:"calm"`
	None    float64 `bson:"none" json:"none"`
}

// POI is the canonical point of interest record
type POI struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"`
	Location  *GeoJSON           `bson:"location" json:"location"`
	Sentiment *Sentiment         `bson:"sentiment,omitempty" json:"sentiment"`
	Emotions  *Emotions          `bson:"emotions,omitempty" json:"emotions"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// ApplyDefaults fills the optional fields a stored record may lack
func (p *POI) ApplyDefaults() {
	if p.Sentiment == nil {
		p.Sentiment = defaultSentiment()
	}
	if p.Emotions == nil {
		p.Emotions = &Emotions{}
	}
}

// GeoPOI is the reduced POI shape used for map markers
type GeoPOI struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"`
	Location  *GeoJSON           `bson:"location" json:"location"`
	Sentiment *Sentiment         `bson:"sentiment,omitempty" json:"sentiment"`
}

func (p *GeoPOI) ApplyDefaults() {
	if p.Sentiment == nil {
		p.Sentiment = defaultSentiment()
	}
}

func defaultSentiment() *Sentiment {
	return &Sentiment{
		Label: DefaultSentimentLabel,
		Score: DefaultSentimentScore,
	}
}
