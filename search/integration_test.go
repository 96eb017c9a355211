package search

import (
	"context"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/poimap/poi-api/schema"
)

// ClusterTestSuite runs the hybrid query against a real cluster given by POI_TEST_ELASTICSEARCH_URL
type ClusterTestSuite struct {
	suite.Suite
	url    string
	index  string
	engine Engine
	client *elasticsearch.Client

	cafe schema.POI
	park schema.POI
}

func (s *ClusterTestSuite) SetupSuite() {
	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{s.url}})
	s.Require().NoError(err)

	s.client = client
	s.index = "test-pois-" + uuid.New().String()
	s.engine = NewWithClient(client, s.index)

	ctx := context.Background()
	s.Require().NoError(s.engine.EnsureIndex(ctx))

	now := time.Now().UTC()
	s.cafe = testPOI("Central Cafe", "cafe", -73.9857, 40.7484, now.Add(-time.Hour))
	s.park = testPOI("City Park", "park", -73.9654, 40.7829, now)
	s.park.Sentiment = &schema.Sentiment{Label: "neutral", Score: 0.6}

	result := s.engine.BulkIndexPOIs(ctx, []schema.POI{s.cafe, s.park})
	s.Require().Equal(2, result.Indexed)

	res, err := client.Indices.Refresh(client.Indices.Refresh.WithIndex(s.index))
	s.Require().NoError(err)
	res.Body.Close()
}

func (s *ClusterTestSuite) TearDownSuite() {
	res, err := s.client.Indices.Delete([]string{s.index})
	if err == nil {
		res.Body.Close()
	}
}

// TestFuzzyNameRanksFirst tests a misspelled query still ranks the boosted name match first
func (s *ClusterTestSuite) TestFuzzyNameRanksFirst() {
	page, err := s.engine.SearchPOI(context.Background(), schema.SearchQuery{Query: "centrl", Page: 1, Limit: 50})
	s.Require().NoError(err)
	s.Require().NotEmpty(page.Data)
	s.Equal("Central Cafe", page.Data[0].Name)
}

func (s *ClusterTestSuite) TestAllCategoryIsNoFilter() {
	ctx := context.Background()

	all, err := s.engine.SearchPOI(ctx, schema.SearchQuery{Category: "all", Page: 1, Limit: 50})
	s.Require().NoError(err)
	none, err := s.engine.SearchPOI(ctx, schema.SearchQuery{Page: 1, Limit: 50})
	s.Require().NoError(err)

	s.Equal(int64(2), all.Pagination.Total)
	s.Equal(none.Data, all.Data)
}

func (s *ClusterTestSuite) TestCategoryFilter() {
	page, err := s.engine.SearchPOI(context.Background(), schema.SearchQuery{Category: "park", Page: 1, Limit: 50})
	s.Require().NoError(err)
	s.Require().Len(page.Data, 1)
	s.Equal(s.park.ID, page.Data[0].ID)
	s.Equal(s.park.Location.Coordinates, page.Data[0].Location.Coordinates)
}

func TestClusterTestSuite(t *testing.T) {
	url := os.Getenv("POI_TEST_ELASTICSEARCH_URL")
	if url == "" {
		t.Skip("POI_TEST_ELASTICSEARCH_URL not set")
	}
	if res, err := http.Get(strings.TrimRight(url, "/")); err != nil {
		t.Skipf("elasticsearch unreachable: %s", err)
	} else {
		res.Body.Close()
	}

	suite.Run(t, &ClusterTestSuite{url: url})
}
