package model

// OnePagePlan is the copy and structure for a one-page website, ready to render.
type OnePagePlan struct {
	HeroHeadline    string   `json:"hero_headline"`
	HeroSubheadline string   `json:"hero_subheadline"`
	PrimaryCTA      string   `json:"primary_cta"`
	SecondaryCTA    string   `json:"secondary_cta"`
	AboutBullets    []string `json:"about_bullets"`
	Sections        []string `json:"sections"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}
