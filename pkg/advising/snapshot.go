package advising

import "ai-counsellor-be/internal/entity"

// Snapshot is the read model returned after every turn and by the dashboard.
type Snapshot struct {
	Stage     Stage
	Profile   *entity.Profile
	Shortlist []*entity.ShortlistEntry
	Tasks     []*entity.Task
}

func NewSnapshot(profile *entity.Profile, shortlist []*entity.ShortlistEntry, tasks []*entity.Task) *Snapshot {
	return &Snapshot{
		Stage:     Resolve(profile, shortlist, tasks),
		Profile:   profile,
		Shortlist: shortlist,
		Tasks:     tasks,
	}
}

func (s *Snapshot) Onboarded() bool {
	return s.Profile != nil && s.Profile.OnboardingCompleted
}
