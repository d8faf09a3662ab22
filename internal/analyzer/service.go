package analyzer

import (
	"context"

	"go.uber.org/zap"

	"github.com/ghoststack/bizboost/internal/model"
	"github.com/ghoststack/bizboost/internal/platform/metrics"
	"github.com/ghoststack/bizboost/internal/platform/requestid"
)

// Service scans competitor sites and derives improvement recommendations for
// the client's business.
type Service struct {
	scanner SiteScanner
	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewService creates a Service backed by the given scanner.
func NewService(scanner SiteScanner, log *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{scanner: scanner, log: log, metrics: m}
}

// Analyze scans every competitor URL, and the client's own site when a
// website URL is given, then aggregates the results into recommendations.
// All scans run through one bounded pool; a failed scan surfaces as a
// per-URL error on its result and never aborts the batch.
func (s *Service) Analyze(ctx context.Context, profile model.BusinessProfile, competitorURLs []string, websiteURL string) *model.AnalyzeResponse {
	log := s.log.With(
		zap.String("business", profile.BusinessName),
		zap.String("request_id", requestid.FromContext(ctx)),
	)

	urls := competitorURLs
	if websiteURL != "" {
		// The own site rides along at the end of the batch so a single
		// pool bounds every outbound fetch for this request.
		urls = append(append([]string{}, competitorURLs...), websiteURL)
	}

	results := s.scanner.ScanAll(ctx, urls, profile.MainService)

	var ownResult *model.ScanResult
	competitors := results
	if websiteURL != "" {
		ownResult = &results[len(results)-1]
		competitors = results[:len(results)-1]
	}

	failed := 0
	for _, r := range competitors {
		if r.Failed() {
			failed++
		}
	}

	s.metrics.IncAnalyses()
	log.Info("competitive analysis complete",
		zap.Int("competitors", len(competitors)),
		zap.Int("failed_scans", failed),
		zap.Bool("own_site_scanned", ownResult != nil && !ownResult.Failed()),
	)

	return &model.AnalyzeResponse{
		Competitors:     competitors,
		YourSite:        ownResult,
		Recommendations: buildRecommendations(profile.MainService, competitors, ownResult),
	}
}
