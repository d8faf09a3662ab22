package analyzer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghoststack/bizboost/internal/model"
)

// Transport handles HTTP requests for competitive analysis.
type Transport struct {
	service *Service
	log     *zap.Logger
}

// NewTransport creates an HTTP transport backed by the given service.
func NewTransport(service *Service, log *zap.Logger) *Transport {
	return &Transport{service: service, log: log}
}

// RegisterRoutes attaches the transport's handlers to the given router.
func (t *Transport) RegisterRoutes(r gin.IRouter) {
	r.POST("/analyze", t.handleAnalyze)
}

type analyzeRequest struct {
	model.BusinessProfile
	WebsiteURL     string   `json:"website_url"`
	CompetitorURLs []string `json:"competitor_urls" binding:"required"`
}

func (t *Transport) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:      http.StatusText(http.StatusBadRequest),
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body: " + err.Error(),
		})
		return
	}

	resp := t.service.Analyze(c.Request.Context(), req.BusinessProfile, req.CompetitorURLs, req.WebsiteURL)
	c.JSON(http.StatusOK, resp)
}
