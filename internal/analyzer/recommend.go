package analyzer

import (
	"fmt"
	"math"

	"github.com/ghoststack/bizboost/internal/model"
)

// minRecommendedMentions is the floor for the suggested service-phrase count.
const minRecommendedMentions = 3

const (
	closingSuggestion = "Structure your site as a single page: a hero with a strong headline and " +
		"call-to-action, an about section, your main services, testimonials, and a simple " +
		"contact form with phone and email."

	genericSuggestion = "Make sure your homepage clearly states what you do, where you operate, " +
		"and how customers can contact you."
)

// featureCheck pairs a feature flag with its two recommendation variants:
// one for when the client's site lacks the feature, one softer variant for
// when the site was not scanned or already has it.
type featureCheck struct {
	has     func(model.ScanResult) bool
	missing string
	generic string
}

// Checks run in a fixed order; the recommendation list order is part of the
// API contract.
var featureChecks = []featureCheck{
	{
		has:     func(r model.ScanResult) bool { return r.HasTestimonials },
		missing: "Most of your competitors showcase customer testimonials and your site doesn't. Add a testimonials section with a few short quotes.",
		generic: "Most of your competitors showcase customer testimonials. Make sure yours are prominent and up to date.",
	},
	{
		has:     func(r model.ScanResult) bool { return r.HasFAQ },
		missing: "Most of your competitors answer common questions in an FAQ and your site doesn't. Add a short FAQ section.",
		generic: "Most of your competitors answer common questions in an FAQ. Make sure yours covers pricing, scheduling, and service area.",
	},
	{
		has:     func(r model.ScanResult) bool { return r.HasGallery },
		missing: "Most of your competitors show off their work in a gallery and your site doesn't. Add photos of recent jobs.",
		generic: "Most of your competitors show off their work in a gallery. Make sure your photos are recent and high quality.",
	},
	{
		has:     func(r model.ScanResult) bool { return r.HasClearCTA },
		missing: "Most of your competitors have a clear call-to-action like 'Get a Quote' and your site doesn't. Add one above the fold.",
		generic: "Most of your competitors have a clear call-to-action like 'Get a Quote'. Make sure yours stands out above the fold.",
	},
}

// buildRecommendations derives the ordered recommendation list from the
// competitor scan results and, when available, the client's own scan.
// It is pure: no I/O, deterministic given its inputs.
func buildRecommendations(mainService string, competitors []model.ScanResult, own *model.ScanResult) []string {
	var valid []model.ScanResult
	for _, r := range competitors {
		if !r.Failed() {
			valid = append(valid, r)
		}
	}

	ownScanned := own != nil && !own.Failed()

	var recs []string

	if len(valid) > 0 {
		if avg := avgMentions(valid); avg > 0 {
			recs = append(recs, keywordRecommendation(mainService, avg, own, ownScanned))
		}

		halfOrMore := max(1, len(valid)/2)
		for _, check := range featureChecks {
			count := 0
			for _, r := range valid {
				if check.has(r) {
					count++
				}
			}
			if count < halfOrMore {
				continue
			}
			if ownScanned && !check.has(*own) {
				recs = append(recs, check.missing)
			} else {
				recs = append(recs, check.generic)
			}
		}
	}

	if len(recs) == 0 {
		recs = append(recs, genericSuggestion)
	}

	return append(recs, closingSuggestion)
}

func avgMentions(valid []model.ScanResult) float64 {
	total := 0
	for _, r := range valid {
		total += r.ServiceMentions
	}
	return float64(total) / float64(len(valid))
}

func keywordRecommendation(mainService string, avg float64, own *model.ScanResult, ownScanned bool) string {
	target := max(minRecommendedMentions, int(math.Round(avg)))

	if !ownScanned {
		return fmt.Sprintf("Use the phrase '%s' at least %d times in your headings and body text.",
			mainService, target)
	}

	if float64(own.ServiceMentions) < avg {
		return fmt.Sprintf("Your use of '%s' is below average for your market. Aim for at least %d mentions in your headings and body text.",
			mainService, target)
	}

	return fmt.Sprintf("Your use of '%s' is on par with your competitors. Keep it up.", mainService)
}
