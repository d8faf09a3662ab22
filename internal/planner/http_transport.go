package planner

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghoststack/bizboost/internal/model"
)

// Transport handles HTTP requests for plan generation.
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
	r.POST("/generate/one-page", t.handleGenerate)
}

type generateRequest struct {
	model.BusinessProfile
	TargetAudience string `json:"target_audience" binding:"required"`
	Tone           string `json:"tone"            binding:"required"`
	PrimaryGoal    string `json:"primary_goal"    binding:"required"`
}

func (t *Transport) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:      http.StatusText(http.StatusBadRequest),
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body: " + err.Error(),
		})
		return
	}

	plan := t.service.Generate(req.BusinessProfile, req.TargetAudience, req.Tone, req.PrimaryGoal)
	c.JSON(http.StatusOK, plan)
}
