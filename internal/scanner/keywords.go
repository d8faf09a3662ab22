package scanner

import "strings"

// Feature keyword sets. These are product constants: a feature counts as
// present iff the page's lower-cased visible text contains any entry as a
// plain substring.
var (
	testimonialKeywords = []string{
		"testimonial",
		"testimonials",
		"what our customers say",
		"reviews",
		"review",
	}

	galleryKeywords = []string{
		"gallery",
		"our work",
		"portfolio",
		"before and after",
	}

	faqKeywords = []string{
		"faq",
		"frequently asked questions",
	}

	ctaKeywords = []string{
		"call now",
		"get a quote",
		"get a free quote",
		"free estimate",
		"book now",
		"schedule now",
		"request a quote",
		"request a call",
	}
)

// containsAny reports whether text contains any of the given keywords.
// Text is expected to be lower-cased already.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
