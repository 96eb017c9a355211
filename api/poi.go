package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listPOI(c *gin.Context) {
	page, err := s.store.ListPOI(c.Request.Context(), poiQuery(c))
	if shouldInterupt(err, c, errorQueryPOI) {
		return
	}

	c.JSON(http.StatusOK, page)
}

// geoPOI returns map markers for every matching POI
func (s *Server) geoPOI(c *gin.Context) {
	pois, err := s.store.GeoPOI(c.Request.Context(), geoQuery(c))
	if shouldInterupt(err, c, errorQueryPOI) {
		return
	}

	c.JSON(http.StatusOK, pois)
}

func (s *Server) searchPOI(c *gin.Context) {
	page, err := s.store.SearchPOI(c.Request.Context(), searchQuery(c))
	if shouldInterupt(err, c, errorSearchPOI) {
		return
	}

	c.JSON(http.StatusOK, page)
}
