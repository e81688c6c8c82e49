// Package advising holds the stage model and error taxonomy shared by the commitment
// guard, the task generator and the action executor.
package advising

import "ai-counsellor-be/internal/entity"

type Stage int

const (
	StageOnboarding  Stage = 1
	StageDiscovering Stage = 2
	StageFinalizing  Stage = 3
	StageApplying    Stage = 4
)

func (s Stage) String() string {
	switch s {
	case StageOnboarding:
		return "onboarding"
	case StageDiscovering:
		return "discovering"
	case StageFinalizing:
		return "finalizing"
	case StageApplying:
		return "applying"
	default:
		return "unknown"
	}
}

// Resolve derives the current stage from stored facts. The stage is never persisted.
// Tasks are part of the read model but do not influence the result.
func Resolve(profile *entity.Profile, shortlist []*entity.ShortlistEntry, tasks []*entity.Task) Stage {
	if profile == nil || !profile.OnboardingCompleted {
		return StageOnboarding
	}

	hasShortlisted := false
	for _, e := range shortlist {
		if e == nil {
			continue
		}
		switch e.Status {
		case entity.ShortlistStatusLocked:
			return StageApplying
		case entity.ShortlistStatusShortlisted:
			hasShortlisted = true
		}
	}

	if hasShortlisted {
		return StageFinalizing
	}
	return StageDiscovering
}
