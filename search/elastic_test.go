package search

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/poimap/poi-api/schema"
)

func testPOI(name, category string, lon, lat float64, ts time.Time) schema.POI {
	return schema.POI{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Category:  category,
		Location:  &schema.GeoJSON{Type: "Point", Coordinates: []float64{lon, lat}},
		Sentiment: &schema.Sentiment{Label: "positive", Score: 0.8},
		Emotions:  &schema.Emotions{Happy: 1},
		Timestamp: ts,
	}
}

type EngineTestSuite struct {
	suite.Suite
	cluster *fakeCluster
	engine  Engine
	ctx     context.Context
}

func (s *EngineTestSuite) SetupTest() {
	s.cluster = newFakeCluster(s.T())
	s.engine = s.cluster.engine(s.T())
	s.ctx = context.Background()
}

func (s *EngineTestSuite) TestPing() {
	s.NoError(s.engine.Ping(s.ctx))
}

// TestEnsureIndexCreatesMapping tests the index is created once with the fixed mapping
func (s *EngineTestSuite) TestEnsureIndexCreatesMapping() {
	s.NoError(s.engine.EnsureIndex(s.ctx))
	s.NoError(s.engine.EnsureIndex(s.ctx))

	s.Require().Len(s.cluster.createBodies, 1)

	var body struct {
		Mappings struct {
			Properties map[string]struct {
				Type       string                       `json:"type"`
				Properties map[string]map[string]string `json:"properties"`
			} `json:"properties"`
		} `json:"mappings"`
	}
	s.Require().NoError(json.Unmarshal([]byte(s.cluster.createBodies[0]), &body))

	props := body.Mappings.Properties
	s.Equal("text", props["name"].Type)
	s.Equal("keyword", props["category"].Type)
	s.Equal("geo_point", props["location"].Type)
	s.Equal("date", props["timestamp"].Type)
	s.Equal("keyword", props["sentiment"].Properties["label"]["type"])
	s.Equal("float", props["sentiment"].Properties["score"]["type"])

	s.Len(props["emotions"].Properties, len(schema.EmotionKeys))
	for _, key := range schema.EmotionKeys {
		s.Equal("float", props["emotions"].Properties[key]["type"], key)
	}
}

// TestEnsureIndexAlreadyCreatedConcurrently tests a create racing another provisioner is not an error
func (s *EngineTestSuite) TestEnsureIndexAlreadyCreatedConcurrently() {
	s.cluster.indexExists = true
	e := s.engine.(*elasticIndex)

	res, err := e.client.Indices.Create("pois")
	s.Require().NoError(err)
	defer res.Body.Close()

	err = responseError(res)
	var re *ResponseError
	s.Require().ErrorAs(err, &re)
	s.Equal(indexAlreadyExists, re.Type)
	s.ErrorIs(err, ErrRequestFailed)

	s.NoError(s.engine.EnsureIndex(s.ctx))
}

func (s *EngineTestSuite) TestClearIndex() {
	s.Require().NoError(s.engine.EnsureIndex(s.ctx))
	s.engine.IndexPOI(s.ctx, testPOI("Central Cafe", "cafe", -73.9857, 40.7484, time.Now().UTC()))
	s.Len(s.cluster.docs, 1)

	s.NoError(s.engine.ClearIndex(s.ctx))
	s.Empty(s.cluster.docs)
	s.True(s.cluster.indexExists)
}

func (s *EngineTestSuite) TestClearMissingIndex() {
	s.NoError(s.engine.ClearIndex(s.ctx))
}

func (s *EngineTestSuite) TestClearIndexFailure() {
	s.cluster.failStatus = http.StatusServiceUnavailable
	s.ErrorIs(s.engine.ClearIndex(s.ctx), ErrRequestFailed)
}

func (s *EngineTestSuite) TestIndexPOIIsIdempotentByID() {
	poi := testPOI("Central Cafe", "cafe", -73.9857, 40.7484, time.Now().UTC())

	s.engine.IndexPOI(s.ctx, poi)
	poi.Name = "Central Cafe & Bakery"
	s.engine.IndexPOI(s.ctx, poi)

	s.Len(s.cluster.docs, 1)

	var doc Document
	s.Require().NoError(json.Unmarshal(s.cluster.docs[poi.ID.Hex()], &doc))
	s.Equal("Central Cafe & Bakery", doc.Name)
	s.Equal(GeoPoint{Lat: 40.7484, Lon: -73.9857}, doc.Location)
}

// TestIndexPOIFailureIsSwallowed tests indexing errors never reach the caller
func (s *EngineTestSuite) TestIndexPOIFailureIsSwallowed() {
	malformed := testPOI("Broken", "cafe", 0, 0, time.Now())
	malformed.Location = &schema.GeoJSON{Type: "Point", Coordinates: []float64{1}}

	rejected := testPOI("Rejected", "cafe", 1, 1, time.Now())
	s.cluster.rejectIDs[rejected.ID.Hex()] = true

	s.NotPanics(func() {
		s.engine.IndexPOI(s.ctx, malformed)
		s.engine.IndexPOI(s.ctx, rejected)
	})
	s.Empty(s.cluster.docs)
}

// TestBulkIndexPartialSuccess tests a malformed and a rejected document do not stop the rest of the batch
func (s *EngineTestSuite) TestBulkIndexPartialSuccess() {
	now := time.Now().UTC()
	first := testPOI("Central Cafe", "cafe", -73.98, 40.74, now)
	malformed := testPOI("No Location", "cafe", 0, 0, now)
	malformed.Location = nil
	rejected := testPOI("Rejected", "park", 10, 10, now)
	last := testPOI("City Park", "park", -73.96, 40.78, now)

	s.cluster.rejectIDs[rejected.ID.Hex()] = true

	result := s.engine.BulkIndexPOIs(s.ctx, []schema.POI{first, malformed, rejected, last})

	s.Equal(1, s.cluster.bulkRequests)
	s.Equal(2, result.Indexed)
	s.Equal(1, result.Failed)
	s.Equal(1, result.Skipped)
	s.ElementsMatch([]string{malformed.ID.Hex(), rejected.ID.Hex()}, result.FailedIDs)

	s.Contains(s.cluster.docs, first.ID.Hex())
	s.Contains(s.cluster.docs, last.ID.Hex())
	s.NotContains(s.cluster.docs, rejected.ID.Hex())
}

func (s *EngineTestSuite) TestBulkIndexNothingToSend() {
	result := s.engine.BulkIndexPOIs(s.ctx, nil)
	s.Equal(BulkResult{}, result)
	s.Equal(0, s.cluster.bulkRequests)
}

func (s *EngineTestSuite) TestBulkIndexClusterFailureIsSwallowed() {
	s.cluster.failStatus = http.StatusServiceUnavailable

	pois := []schema.POI{
		testPOI("A", "cafe", 1, 1, time.Now()),
		testPOI("B", "cafe", 2, 2, time.Now()),
	}

	var result BulkResult
	s.NotPanics(func() {
		result = s.engine.BulkIndexPOIs(s.ctx, pois)
	})
	s.Equal(2, result.Failed)
	s.Equal(0, result.Indexed)
}

// TestSearchRoundTripLocation tests coordinates survive the index flatten and search reassembly
func (s *EngineTestSuite) TestSearchRoundTripLocation() {
	poi := testPOI("Central Cafe", "cafe", 121.5654, 25.0330, time.Now().UTC().Truncate(time.Second))
	s.engine.IndexPOI(s.ctx, poi)

	page, err := s.engine.SearchPOI(s.ctx, schema.SearchQuery{Page: 1, Limit: 50})
	s.Require().NoError(err)
	s.Require().Len(page.Data, 1)

	found := page.Data[0]
	s.Equal(poi.ID, found.ID)
	s.Equal(poi.Location.Coordinates, found.Location.Coordinates)
	s.Equal(poi.Sentiment, found.Sentiment)
	s.Equal(poi.Emotions, found.Emotions)
	s.True(poi.Timestamp.Equal(found.Timestamp))
	s.Equal(schema.Pagination{Total: 1, Page: 1, Limit: 50, TotalPages: 1}, page.Pagination)
}

func (s *EngineTestSuite) TestSearchSendsHybridQuery() {
	_, err := s.engine.SearchPOI(s.ctx, schema.SearchQuery{Query: "centrl", Category: "cafe", Page: 2, Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(s.cluster.searchBodies, 1)

	var req searchRequest
	s.Require().NoError(json.Unmarshal([]byte(s.cluster.searchBodies[0]), &req))
	s.Equal(buildSearchRequest(schema.SearchQuery{Query: "centrl", Category: "cafe", Page: 2, Limit: 10}), req)
	s.Equal(int64(10), req.From)
}

// TestSearchFailureIsPropagated tests search errors reach the caller, unlike indexing
func (s *EngineTestSuite) TestSearchFailureIsPropagated() {
	s.cluster.failStatus = http.StatusServiceUnavailable

	page, err := s.engine.SearchPOI(s.ctx, schema.SearchQuery{Query: "cafe", Page: 1, Limit: 50})
	s.Nil(page)
	s.ErrorIs(err, ErrRequestFailed)
	s.Contains(err.Error(), "index unavailable")
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func TestResponseErrorMessage(t *testing.T) {
	err := &ResponseError{Status: 404, Type: "index_not_found_exception", Reason: "no such index [pois]"}
	assert.Equal(t, "search index request failed: [404] index_not_found_exception: no such index [pois]", err.Error())

	err = &ResponseError{Status: 502, Reason: "bad gateway"}
	assert.Equal(t, "search index request failed: [502] bad gateway", err.Error())
	require.ErrorIs(t, err, ErrRequestFailed)
}
