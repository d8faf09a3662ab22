package planner

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ghoststack/bizboost/internal/model"
	"github.com/ghoststack/bizboost/internal/platform/metrics"
)

// sections is the fixed one-page layout every plan recommends.
var sections = []string{
	"Hero section with strong headline, subheadline, and call-to-action buttons.",
	"About section telling your story and why you care about your customers.",
	"Services section highlighting 3-5 main services with benefits.",
	"Testimonials section to build trust.",
	"Simple contact / quote form with phone and email.",
	"Final call-to-action section reminding visitors what to do next.",
}

// Service fills the one-page plan templates from business facts. It performs
// no I/O: the same input always yields the same plan.
type Service struct {
	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewService creates a plan generator.
func NewService(log *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{log: log, metrics: m}
}

// Generate builds the copy for a one-page website from the business profile
// and its audience, tone, and goal.
func (s *Service) Generate(profile model.BusinessProfile, audience, tone, goal string) model.OnePagePlan {
	industry := strings.ToLower(profile.Industry)
	audienceLower := strings.ToLower(audience)

	plan := model.OnePagePlan{
		HeroHeadline: fmt.Sprintf("%s in %s for %s", profile.MainService, profile.Location, audience),
		HeroSubheadline: fmt.Sprintf("%s provides %s services for %s, making it easier to %s.",
			profile.BusinessName, industry, audienceLower, strings.ToLower(goal)),
		PrimaryCTA:   fmt.Sprintf("Get Your %s Today", profile.MainService),
		SecondaryCTA: "Request a Free Quote",
		AboutBullets: []string{
			fmt.Sprintf("Locally owned and serving %s.", profile.Location),
			fmt.Sprintf("Focused on %s who want reliable %s services.", audienceLower, industry),
			fmt.Sprintf("Specializing in %s with a %s style.", strings.ToLower(profile.MainService), tone),
		},
		Sections: sections,
	}

	s.metrics.IncPlans()
	s.log.Info("one-page plan generated", zap.String("business", profile.BusinessName))

	return plan
}
