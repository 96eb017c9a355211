package search

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/poimap/poi-api/schema"
)

// GeoPoint is the index representation of a location
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ToGeoPoint flattens a stored [lon, lat] pair into an index {lat, lon} point
func ToGeoPoint(loc *schema.GeoJSON) (GeoPoint, error) {
	p, err := loc.Point()
	if err != nil {
		return GeoPoint{}, err
	}

	return GeoPoint{
		Lat: p.Y(),
		Lon: p.X(),
	}, nil
}

// FromGeoPoint reassembles an index {lat, lon} point into a stored [lon, lat] pair
func FromGeoPoint(g GeoPoint) *schema.GeoJSON {
	return &schema.GeoJSON{
		Type:        "Point",
		Coordinates: []float64{g.Lon, g.Lat},
	}
}

// Document is the shape of a POI inside the search index
type Document struct {
	Name      string            `json:"name"`
	Category  string            `json:"category"`
	Location  GeoPoint          `json:"location"`
	Sentiment *schema.Sentiment `json:"sentiment,omitempty"`
	Emotions  *schema.Emotions  `json:"emotions,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewDocument projects a stored POI into its index document
func NewDocument(poi schema.POI) (Document, error) {
	loc, err := ToGeoPoint(poi.Location)
	if err != nil {
		return Document{}, fmt.Errorf("poi %s: %w", poi.ID.Hex(), err)
	}

	return Document{
		Name:      poi.Name,
		Category:  poi.Category,
		Location:  loc,
		Sentiment: poi.Sentiment,
		Emotions:  poi.Emotions,
		Timestamp: poi.Timestamp,
	}, nil
}

// POI translates an indexed document back into the canonical record
func (d Document) POI(id string) (schema.POI, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return schema.POI{}, fmt.Errorf("invalid document id %q: %w", id, err)
	}

	poi := schema.POI{
		ID:        oid,
		Name:      d.Name,
		Category:  d.Category,
		Location:  FromGeoPoint(d.Location),
		Sentiment: d.Sentiment,
		Emotions:  d.Emotions,
		Timestamp: d.Timestamp,
	}
	poi.ApplyDefaults()

	return poi, nil
}
