package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/poimap/poi-api/logmodule"
	"github.com/poimap/poi-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// POI catalog over the primary store and the search index
	store store.CatalogCore
}

// NewServer new instance of server
func NewServer(catalog store.CatalogCore) *Server {
	return &Server{
		store: catalog,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(requestMetrics())

	r.NoRoute(func(c *gin.Context) {
		abortWithEncoding(c, http.StatusNotFound, errorNotFound)
	})

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", logmodule.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", logmodule.RequestIDHeader},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))

	// analytics share the poi routes
	for _, prefix := range []string{"/pois", "/analytics"} {
		poiRoute := apiRoute.Group(prefix)
		{
			poiRoute.GET("", s.listPOI)
			poiRoute.GET("/sentiment", s.sentimentAnalytics)
			poiRoute.GET("/categories", s.categoryAnalytics)
			poiRoute.GET("/emotions", s.emotionAnalytics)
			poiRoute.GET("/geo", s.geoPOI)
			poiRoute.GET("/search", s.searchPOI)
		}
	}

	r.GET("/healthz", s.healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context, resp ErrorResponse) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, resp.withCause(err), err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db and search index
	err := s.store.Ping(c.Request.Context())
	if shouldInterupt(err, c, errorInternalServer) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
