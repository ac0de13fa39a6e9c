package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/leadarch/scout/internal/agent"
	"github.com/leadarch/scout/internal/config"
	"github.com/leadarch/scout/internal/core"
	"github.com/leadarch/scout/internal/core/model"
	"github.com/leadarch/scout/internal/core/query"
	"github.com/leadarch/scout/internal/core/rank"
	"github.com/leadarch/scout/internal/core/sample"
	"github.com/leadarch/scout/internal/pipeline"
	"github.com/leadarch/scout/internal/store"
)

var trackedTotal = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "scout_tracked_events_total",
	Help: "Events added to the outreach pipeline",
})

func init() {
	prometheus.MustRegister(trackedTotal)
}

type Server struct {
	Scout    *core.Scout
	Pipeline *pipeline.Store
	logger   *zap.Logger
}

// New assembles a server from already wired components. Tests use this with
// mock agents and in-memory slots.
func New(scout *core.Scout, pl *pipeline.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{Scout: scout, Pipeline: pl, logger: logger}
}

// NewServer wires the full service from config/config.toml plus environment
// overrides: storage slot, agent client, discovery core, pipeline.
func NewServer(logger *zap.Logger) *Server {
	cfg := config.Default()
	if loaded, err := config.Load(configPath()); err != nil {
		logger.Warn("no config file loaded, using defaults", zap.Error(err))
	} else {
		cfg = loaded
	}
	cfg.ApplyEnv()

	slot, err := store.NewSQLiteSlot(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}

	agentClient, err := agent.NewClient(context.Background(), cfg.Agent)
	if err != nil {
		logger.Fatal("failed to initialize agent client", zap.Error(err))
	}

	pl := pipeline.NewStore(slot, logger)
	pl.Load()
	logger.Info("pipeline restored", zap.Int("entries", pl.Len()))

	scout := core.NewScout(agentClient, cfg.Prompts.Discover, logger)

	return New(scout, pl, logger)
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/discover", s.Discover)
	r.GET("/events/past", s.PastEvents)
	r.GET("/events/sample", s.SampleEvents)

	r.GET("/pipeline", s.GetPipeline)
	r.GET("/pipeline/organizations", s.PipelineOrganizations)
	r.POST("/pipeline/track", s.TrackEvent)
	r.POST("/pipeline/status", s.SetStatus)

	r.GET("/healthz", s.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func (s *Server) Discover(c *gin.Context) {
	var criteria model.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	outcome, err := s.Scout.Discover(c.Request.Context(), criteria)
	if err != nil {
		var agentErr *core.AgentError
		switch {
		case errors.Is(err, query.ErrNoCriteria):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, core.ErrSearchInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.As(err, &agentErr):
			// The agent's own failure message is surfaced verbatim.
			c.JSON(http.StatusBadGateway, gin.H{"error": agentErr.Message})
		default:
			s.logger.Error("discovery failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Network error. Please check your connection and try again."})
		}
		return
	}

	if c.Query("sort") == string(rank.ByDate) {
		outcome.Events = rank.Sort(outcome.Events, rank.ByDate, rank.Ascending)
	}
	c.JSON(http.StatusOK, outcome)
}

func (s *Server) PastEvents(c *gin.Context) {
	by := rank.SortKey(c.DefaultQuery("sort", string(rank.ByDate)))
	events := s.Scout.PastEvents(by)
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

func (s *Server) SampleEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"events":      sample.Events,
		"past_events": sample.PastEvents,
		"summary":     sample.Summary,
	})
}

func (s *Server) TrackEvent(c *gin.Context) {
	var event model.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	tracked := s.Pipeline.Track(event)
	if tracked {
		trackedTotal.Inc()
	}
	c.JSON(http.StatusOK, gin.H{
		"tracked": tracked,
		"count":   s.Pipeline.Len(),
	})
}

type statusRequest struct {
	Index  *int                 `json:"index"`
	Title  string               `json:"title"`
	Date   string               `json:"date"`
	Status model.PipelineStatus `json:"status"`
}

func (s *Server) SetStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !model.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pipeline status"})
		return
	}

	var updated bool
	if req.Index != nil {
		updated = s.Pipeline.SetStatus(*req.Index, req.Status)
	} else {
		updated = s.Pipeline.SetStatusByKey(model.Key{Title: req.Title, Date: req.Date}, req.Status)
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (s *Server) GetPipeline(c *gin.Context) {
	entries := s.Pipeline.FilterByOrganization(c.Query("organization"))
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"columns": s.Pipeline.Columns(),
		"count":   s.Pipeline.Len(),
	})
}

func (s *Server) PipelineOrganizations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"organizations": s.Pipeline.Organizations()})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "searching": s.Scout.Searching()})
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config/config.toml"
}
