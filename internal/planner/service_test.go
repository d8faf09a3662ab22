package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ghoststack/bizboost/internal/model"
	"github.com/ghoststack/bizboost/internal/platform/metrics"
)

func newTestService() *Service {
	return NewService(zap.NewNop(), metrics.New())
}

func testProfile() model.BusinessProfile {
	return model.BusinessProfile{
		BusinessName: "Joe's Lawn Care",
		Location:     "Fort Worth, TX",
		Industry:     "Lawn Care",
		MainService:  "Lawn mowing & yard cleanups",
	}
}

func TestGenerate(t *testing.T) {
	svc := newTestService()

	plan := svc.Generate(testProfile(), "Busy homeowners", "friendly, down-to-earth", "Get more calls")

	assert.Equal(t, "Lawn mowing & yard cleanups in Fort Worth, TX for Busy homeowners", plan.HeroHeadline)
	assert.Equal(t,
		"Joe's Lawn Care provides lawn care services for busy homeowners, making it easier to get more calls.",
		plan.HeroSubheadline)
	assert.Equal(t, "Get Your Lawn mowing & yard cleanups Today", plan.PrimaryCTA)
	assert.Equal(t, "Request a Free Quote", plan.SecondaryCTA)

	require.Len(t, plan.AboutBullets, 3)
	assert.Equal(t, "Locally owned and serving Fort Worth, TX.", plan.AboutBullets[0])
	assert.Equal(t, "Focused on busy homeowners who want reliable lawn care services.", plan.AboutBullets[1])
	assert.Equal(t, "Specializing in lawn mowing & yard cleanups with a friendly, down-to-earth style.", plan.AboutBullets[2])

	require.Len(t, plan.Sections, 6)
	assert.Contains(t, plan.Sections[0], "Hero section")
	assert.Contains(t, plan.Sections[5], "Final call-to-action")
}

func TestGenerate_Deterministic(t *testing.T) {
	svc := newTestService()

	a := svc.Generate(testProfile(), "busy homeowners", "friendly", "get more calls")
	b := svc.Generate(testProfile(), "busy homeowners", "friendly", "get more calls")

	assert.Equal(t, a, b)
}
