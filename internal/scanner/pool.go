package scanner

import (
	"context"
	"sync"

	"github.com/ghoststack/bizboost/internal/model"
)

const maxURLs = 100

type scanJob struct {
	idx int
	url string
}

// ScanAll scans a list of URLs concurrently using a pool of worker goroutines
// sized by the configured concurrency. Results are returned in input order
// regardless of completion order, and a failed scan never cancels its
// siblings. At most 100 URLs are fetched; any beyond that come back as
// failure variants so the result list always matches the input.
func (s *Scanner) ScanAll(ctx context.Context, urls []string, targetPhrase string) []model.ScanResult {
	results := make([]model.ScanResult, len(urls))

	limit := min(len(urls), maxURLs)
	for i := limit; i < len(urls); i++ {
		results[i] = model.ScanResult{URL: urls[i], Error: "Scan limit exceeded; at most 100 URLs per request."}
	}
	urls = urls[:limit]

	if limit == 0 {
		return results
	}

	jobs := make(chan scanJob, limit)
	numWorkers := min(limit, s.concurrency)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				// Each worker writes to its own index, so no lock is needed.
				results[job.idx] = s.Scan(ctx, job.url, targetPhrase)
			}
		}()
	}

	for i, u := range urls {
		jobs <- scanJob{idx: i, url: u}
	}
	close(jobs)
	wg.Wait()

	return results
}
