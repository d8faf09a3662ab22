package model

// ScanResult holds everything extracted from scanning a single site, or the
// reason the scan failed. A non-empty Error means the scan failed and every
// other field except URL is at its zero value.
type ScanResult struct {
	URL             string `json:"url"`
	Title           string `json:"title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	HasTestimonials bool   `json:"has_testimonials"`
	HasGallery      bool   `json:"has_gallery"`
	HasFAQ          bool   `json:"has_faq"`
	HasClearCTA     bool   `json:"has_clear_cta"`
	ServiceMentions int    `json:"service_mentions"`
	Error           string `json:"error,omitempty"`
}

// Failed reports whether this result is the failure variant.
func (r ScanResult) Failed() bool {
	return r.Error != ""
}

// AnalyzeResponse is the JSON body returned by the competitive analysis endpoint.
type AnalyzeResponse struct {
	Competitors     []ScanResult `json:"competitors"`
	YourSite        *ScanResult  `json:"your_site"`
	Recommendations []string     `json:"recommendations"`
}
