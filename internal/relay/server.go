// Package relay serves the summarize endpoint that forwards text to an LLM.
package relay

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/csheth/tldr/internal/llm"
)

// Options wires the relay's collaborators.
type Options struct {
	Client   llm.Client
	Mode     llm.Mode
	Logger   *zap.Logger
	Registry *prometheus.Registry
}

// Server owns the gin engine for the relay.
type Server struct {
	client  llm.Client
	mode    llm.Mode
	logger  *zap.Logger
	metrics *metrics
	router  *gin.Engine
}

// New builds the router. A nil Registry gets a private one so tests and
// multiple servers never collide on metric registration.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
	}))

	s := &Server{
		client:  opts.Client,
		mode:    opts.Mode,
		logger:  logger,
		metrics: newMetrics(registry),
		router:  router,
	}
	router.GET("/", s.handleRoot)
	router.POST("/summarize", s.handleSummarize)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	return s
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler { return s.router }
