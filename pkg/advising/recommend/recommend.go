// Package recommend scores catalog universities against a student profile.
package recommend

import (
	"slices"
	"strings"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/pkg/advising"
)

type Bucket string

const (
	BucketDream  Bucket = "DREAM"
	BucketTarget Bucket = "TARGET"
	BucketSafe   Bucket = "SAFE"
)

type Level string

const (
	LevelHigh   Level = "HIGH"
	LevelMedium Level = "MEDIUM"
	LevelLow    Level = "LOW"
)

var bucketRank = map[Bucket]int{BucketDream: 0, BucketTarget: 1, BucketSafe: 2}

var reasons = map[Bucket]string{
	BucketDream:  "Strong university fit but competitive; needs strong SOP & exam readiness.",
	BucketTarget: "Balanced option based on budget/profile with manageable risk.",
	BucketSafe:   "Safe pick; high acceptance chances and easier profile match.",
}

type Candidate struct {
	University *entity.University
	Bucket     Bucket
	Acceptance Level
	Risk       Level
	Reason     string
}

type Scorer struct {
	// BudgetStretch is how far over the yearly budget a university may cost and still
	// be suggested.
	BudgetStretch int
	// DreamGpa is the GPA from which a high difficulty university counts as a dream.
	DreamGpa float64
	// AcceptanceMargin is the GPA margin over the minimum that makes acceptance likely.
	AcceptanceMargin float64
}

func NewScorer() *Scorer {
	return &Scorer{BudgetStretch: 15000, DreamGpa: 3.4, AcceptanceMargin: 0.3}
}

// Score filters universities by budget and ranks them DREAM, TARGET, SAFE, keeping the
// input order within a bucket. Callers pass the universities of the preferred countries.
func (s *Scorer) Score(profile *entity.Profile, universities []*entity.University) ([]Candidate, error) {
	if profile == nil || !profile.OnboardingCompleted {
		return nil, advising.Newf(advising.ErrOnboardingIncomplete, "recommend.Score", "complete onboarding first")
	}

	gpa := 0.0
	if profile.Gpa != nil {
		gpa = *profile.Gpa
	}

	out := make([]Candidate, 0, len(universities))
	for _, u := range universities {
		if profile.BudgetPerYear != nil && u.YearlyCostUsd > *profile.BudgetPerYear+s.BudgetStretch {
			continue
		}
		bucket := s.bucket(u, gpa)
		out = append(out, Candidate{
			University: u,
			Bucket:     bucket,
			Acceptance: s.acceptance(u, gpa),
			Risk:       s.risk(profile, u, gpa),
			Reason:     reasons[bucket],
		})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		return bucketRank[a.Bucket] - bucketRank[b.Bucket]
	})
	return out, nil
}

// Top returns at most n candidates.
func Top(candidates []Candidate, n int) []Candidate {
	if len(candidates) <= n {
		return candidates
	}
	return candidates[:n]
}

func (s *Scorer) bucket(u *entity.University, gpa float64) Bucket {
	switch strings.ToLower(u.Difficulty) {
	case "high":
		if gpa >= s.DreamGpa {
			return BucketDream
		}
		return BucketTarget
	case "medium":
		return BucketTarget
	default:
		return BucketSafe
	}
}

func (s *Scorer) acceptance(u *entity.University, gpa float64) Level {
	switch {
	case u.MinGpa == nil:
		return LevelMedium
	case gpa >= *u.MinGpa+s.AcceptanceMargin:
		return LevelHigh
	case gpa >= *u.MinGpa:
		return LevelMedium
	default:
		return LevelLow
	}
}

func (s *Scorer) risk(p *entity.Profile, u *entity.University, gpa float64) Level {
	score := 0
	if p.BudgetPerYear != nil && u.YearlyCostUsd > *p.BudgetPerYear {
		score++
	}
	if u.MinGpa != nil && gpa < *u.MinGpa {
		score += 2
	}
	for _, status := range []string{p.IeltsStatus, p.GreStatus, p.SopStatus} {
		if notReady(status) {
			score++
		}
	}

	switch {
	case score >= 4:
		return LevelHigh
	case score >= 2:
		return LevelMedium
	default:
		return LevelLow
	}
}

func notReady(status string) bool {
	s := strings.ToLower(strings.TrimSpace(status))
	return s == "" || strings.Contains(s, "not") || strings.Contains(s, "pending")
}
