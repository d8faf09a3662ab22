package scanner

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ghoststack/bizboost/internal/model"
	"github.com/ghoststack/bizboost/internal/platform/errs"
	"github.com/ghoststack/bizboost/internal/platform/metrics"
)

// Scanner fetches marketing pages and scores them against the feature
// checklist. It never returns an error: failures become the failure variant
// of model.ScanResult so one bad URL cannot abort a batch.
type Scanner struct {
	fetcher     Fetcher
	log         *zap.Logger
	metrics     *metrics.Metrics
	concurrency int
}

// New returns a Scanner backed by the given Fetcher. The concurrency
// parameter bounds the worker pool used by ScanAll.
func New(fetcher Fetcher, log *zap.Logger, m *metrics.Metrics, concurrency int) *Scanner {
	return &Scanner{
		fetcher:     fetcher,
		log:         log,
		metrics:     m,
		concurrency: concurrency,
	}
}

// Scan fetches one URL and extracts its title, meta description, feature
// flags, and the number of times targetPhrase appears in its visible text.
func (s *Scanner) Scan(ctx context.Context, targetURL, targetPhrase string) model.ScanResult {
	start := time.Now()

	result, err := s.scan(ctx, targetURL, targetPhrase)
	if err != nil {
		s.metrics.ObserveScan(metrics.OutcomeError, time.Since(start))
		s.log.Warn("site scan failed", zap.String("url", targetURL), zap.Error(err))

		var appErr *errs.AppError
		if errors.As(err, &appErr) {
			return model.ScanResult{URL: targetURL, Error: appErr.Message}
		}
		return model.ScanResult{URL: targetURL, Error: err.Error()}
	}

	s.metrics.ObserveScan(metrics.OutcomeOK, time.Since(start))
	return result
}

func (s *Scanner) scan(ctx context.Context, targetURL, targetPhrase string) (model.ScanResult, error) {
	if err := validateURL(targetURL); err != nil {
		return model.ScanResult{}, err
	}

	body, statusCode, err := s.fetcher.Fetch(ctx, targetURL)
	if err != nil {
		return model.ScanResult{}, classifyFetchError(err)
	}
	defer func() { _ = body.Close() }()

	if statusCode >= 400 {
		return model.ScanResult{}, &errs.AppError{
			Kind:           errs.Unreachable,
			UpstreamStatus: statusCode,
			Message:        "The site returned an error status.",
		}
	}

	page, err := Parse(body)
	if err != nil {
		return model.ScanResult{}, &errs.AppError{
			Kind:    errs.ParsingFailed,
			Message: "Failed to parse the HTML content.",
			Cause:   err,
		}
	}

	return model.ScanResult{
		URL:             targetURL,
		Title:           page.Title,
		MetaDescription: page.MetaDescription,
		HasTestimonials: containsAny(page.Text, testimonialKeywords),
		HasGallery:      containsAny(page.Text, galleryKeywords),
		HasFAQ:          containsAny(page.Text, faqKeywords),
		HasClearCTA:     containsAny(page.Text, ctaKeywords),
		ServiceMentions: countMentions(page.Text, targetPhrase),
	}, nil
}

func validateURL(targetURL string) error {
	parsed, err := url.Parse(targetURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Invalid URL format. Please ensure you entered a valid URL (e.g., https://example.com).",
			Cause:   err,
		}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Only http and https URLs are supported.",
		}
	}
	return nil
}

func classifyFetchError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &errs.AppError{
			Kind:    errs.Timeout,
			Message: "The site took too long to respond.",
			Cause:   err,
		}
	}
	return &errs.AppError{
		Kind:    errs.Unreachable,
		Message: "The site could not be reached. Check the address.",
		Cause:   err,
	}
}

// countMentions counts non-overlapping occurrences of phrase in text.
// Both sides are matched case-insensitively; an empty phrase counts as zero.
func countMentions(text, phrase string) int {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return 0
	}
	return strings.Count(text, phrase)
}
