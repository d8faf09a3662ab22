package analyzer

import (
	"context"

	"github.com/ghoststack/bizboost/internal/model"
)

// SiteScanner defines the contract for the scanning engine used by the
// analyzer.
type SiteScanner interface {
	ScanAll(ctx context.Context, urls []string, targetPhrase string) []model.ScanResult
}
