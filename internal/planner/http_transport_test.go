package planner

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ghoststack/bizboost/internal/model"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	transport := NewTransport(newTestService(), zap.NewNop())

	router := gin.New()
	transport.RegisterRoutes(router)
	return router
}

func postGenerate(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/generate/one-page", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate_Success(t *testing.T) {
	router := newTestRouter()

	body := `{
		"business_name": "Joe's Lawn Care",
		"location": "Fort Worth, TX",
		"industry": "Lawn Care",
		"main_service": "lawn mowing",
		"target_audience": "busy homeowners",
		"tone": "friendly",
		"primary_goal": "get more calls"
	}`
	rec := postGenerate(t, router, body)

	require.Equal(t, http.StatusOK, rec.Code)

	var plan model.OnePagePlan
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&plan))

	assert.Equal(t, "lawn mowing in Fort Worth, TX for busy homeowners", plan.HeroHeadline)
	assert.Len(t, plan.AboutBullets, 3)
	assert.Len(t, plan.Sections, 6)
}

func TestHandleGenerate_MissingRequiredField(t *testing.T) {
	router := newTestRouter()

	// tone missing.
	body := `{
		"business_name": "Joe's Lawn Care",
		"location": "Fort Worth, TX",
		"industry": "Lawn Care",
		"main_service": "lawn mowing",
		"target_audience": "busy homeowners",
		"primary_goal": "get more calls"
	}`
	rec := postGenerate(t, router, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp model.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Contains(t, errResp.Message, "Tone")
}
