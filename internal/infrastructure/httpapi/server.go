package httpapi

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"NewsRanker/internal/domain"
	"NewsRanker/internal/usecase"
)

// Server exposes the assembled homepage and the classification engine over
// HTTP. It is glue: all decision logic stays in the engine packages.
type Server struct {
	assembler *usecase.Assembler
	accessLog *log.Logger
}

// NewServer wires the assembler behind the HTTP surface.
func NewServer(assembler *usecase.Assembler, accessLog *log.Logger) *Server {
	return &Server{assembler: assembler, accessLog: accessLog}
}

// Router constructs a Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	if s.accessLog != nil {
		r.Use(s.logRequests())
	}

	r.GET("/healthz", s.handleHealth)

	v1 := r.Group("/api/v1")
	v1.GET("/homepage", s.handleHomepage)
	v1.GET("/placements/:name", s.handlePlacement)
	v1.POST("/classify", s.handleClassify)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleHomepage(c *gin.Context) {
	homepage, err := s.assembler.Assemble(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, homepage)
}

func (s *Server) handlePlacement(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	placement := domain.Placement(c.Param("name"))
	if !knownPlacement(placement) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown placement: " + c.Param("name")})
		return
	}

	articles, err := s.assembler.Placement(c.Request.Context(), placement, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"placement": placement,
		"articles":  articles,
	})
}

// classifyRequest is the inbound article payload for ad-hoc classification.
type classifyRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Summary     string   `json:"summary"`
	Author      string   `json:"author"`
	SourceName  string   `json:"source"`
	Credibility float64  `json:"credibility"`
	Verified    bool     `json:"verified"`
	PublishedAt string   `json:"published_at"`
	ImageURL    string   `json:"image_url"`
	Breaking    bool     `json:"breaking"`
	Tags        []string `json:"tags"`
}

func (s *Server) handleClassify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var publishedAt time.Time
	if parsed, err := time.Parse(time.RFC3339, req.PublishedAt); err == nil {
		publishedAt = parsed
	}

	result := s.assembler.Classify(domain.Article{
		ID:          req.ID,
		Title:       req.Title,
		Body:        req.Body,
		Summary:     req.Summary,
		Author:      req.Author,
		Source:      domain.Source{Name: req.SourceName, Credibility: req.Credibility, Verified: req.Verified},
		PublishedAt: publishedAt,
		ImageURL:    req.ImageURL,
		Breaking:    req.Breaking,
		Tags:        req.Tags,
	})

	c.JSON(http.StatusOK, gin.H{
		"primary":      result.Primary,
		"subcategory":  result.Subcategory,
		"confidence":   result.Confidence,
		"alternatives": result.Alternatives,
		"breaking":     result.Breaking,
		"priority":     result.Priority,
	})
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.accessLog.Printf("%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func knownPlacement(p domain.Placement) bool {
	for _, known := range domain.Placements() {
		if known == p {
			return true
		}
	}
	return false
}
