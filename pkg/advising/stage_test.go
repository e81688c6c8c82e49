package advising

import (
	"testing"

	"ai-counsellor-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func entries(statuses ...entity.ShortlistStatus) []*entity.ShortlistEntry {
	out := make([]*entity.ShortlistEntry, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, &entity.ShortlistEntry{Status: s})
	}
	return out
}

func TestResolve(t *testing.T) {
	onboarded := &entity.Profile{OnboardingCompleted: true}
	fresh := &entity.Profile{}

	tests := []struct {
		name      string
		profile   *entity.Profile
		shortlist []*entity.ShortlistEntry
		want      Stage
	}{
		{"missing profile", nil, nil, StageOnboarding},
		{"onboarding incomplete", fresh, nil, StageOnboarding},
		{"onboarding incomplete ignores lock", fresh, entries(entity.ShortlistStatusLocked), StageOnboarding},
		{"onboarded without shortlist", onboarded, nil, StageDiscovering},
		{"only recommendations", onboarded, entries(entity.ShortlistStatusRecommended), StageDiscovering},
		{"shortlisted", onboarded, entries(entity.ShortlistStatusRecommended, entity.ShortlistStatusShortlisted), StageFinalizing},
		{"locked", onboarded, entries(entity.ShortlistStatusShortlisted, entity.ShortlistStatusLocked), StageApplying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.profile, tt.shortlist, nil))
		})
	}
}

func TestResolveIgnoresTasks(t *testing.T) {
	profile := &entity.Profile{OnboardingCompleted: true}
	shortlist := entries(entity.ShortlistStatusShortlisted)

	without := Resolve(profile, shortlist, nil)
	with := Resolve(profile, shortlist, []*entity.Task{
		{Title: "Draft SOP", Status: entity.TaskStatusDone},
		{Title: "Submit application", Status: entity.TaskStatusPending},
	})

	assert.Equal(t, without, with)
	assert.Equal(t, without, Resolve(profile, shortlist, nil), "repeated calls must agree")
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "applying", StageApplying.String())
	assert.Equal(t, "unknown", Stage(9).String())
}
