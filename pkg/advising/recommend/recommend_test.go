package recommend

import (
	"testing"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/pkg/advising"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func profile(gpa float64, budget int) *entity.Profile {
	return &entity.Profile{
		Gpa:                 ptr(gpa),
		BudgetPerYear:       ptr(budget),
		IeltsStatus:         "completed",
		GreStatus:           "completed",
		SopStatus:           "ready",
		OnboardingCompleted: true,
	}
}

func TestScore_RequiresOnboarding(t *testing.T) {
	_, err := NewScorer().Score(&entity.Profile{}, nil)
	assert.ErrorIs(t, err, advising.ErrOnboardingIncomplete)
}

func TestScore_BudgetStretchFilter(t *testing.T) {
	unis := []*entity.University{
		{Name: "within", YearlyCostUsd: 30000, Difficulty: "low"},
		{Name: "stretch", YearlyCostUsd: 35000, Difficulty: "low"},
		{Name: "too expensive", YearlyCostUsd: 35001, Difficulty: "low"},
	}

	got, err := NewScorer().Score(profile(3.0, 20000), unis)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "within", got[0].University.Name)
	assert.Equal(t, "stretch", got[1].University.Name)
}

func TestScore_NoBudgetKeepsEverything(t *testing.T) {
	p := profile(3.0, 0)
	p.BudgetPerYear = nil
	got, err := NewScorer().Score(p, []*entity.University{{YearlyCostUsd: 90000}})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestScore_BucketsAndOrder(t *testing.T) {
	unis := []*entity.University{
		{Name: "safe", Difficulty: "low"},
		{Name: "target", Difficulty: "medium"},
		{Name: "dream", Difficulty: "high"},
		{Name: "unknown", Difficulty: ""},
	}

	got, err := NewScorer().Score(profile(3.5, 100000), unis)
	require.NoError(t, err)

	var names []string
	var buckets []Bucket
	for _, c := range got {
		names = append(names, c.University.Name)
		buckets = append(buckets, c.Bucket)
	}
	assert.Equal(t, []string{"dream", "target", "safe", "unknown"}, names)
	assert.Equal(t, []Bucket{BucketDream, BucketTarget, BucketSafe, BucketSafe}, buckets)
	assert.Equal(t, reasons[BucketDream], got[0].Reason)
}

func TestScore_HighDifficultyBelowDreamGpaIsTarget(t *testing.T) {
	got, err := NewScorer().Score(profile(3.39, 100000), []*entity.University{{Difficulty: "high"}})
	require.NoError(t, err)
	assert.Equal(t, BucketTarget, got[0].Bucket)
}

func TestScore_Acceptance(t *testing.T) {
	tests := []struct {
		name   string
		minGpa *float64
		want   Level
	}{
		{"no minimum", nil, LevelMedium},
		{"comfortably above", ptr(2.9), LevelHigh},
		{"just above", ptr(3.2), LevelMedium},
		{"below", ptr(3.5), LevelLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewScorer().Score(profile(3.3, 100000), []*entity.University{{MinGpa: tt.minGpa, Difficulty: "low"}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got[0].Acceptance)
		})
	}
}

func TestScore_Risk(t *testing.T) {
	ready := profile(3.3, 20000)
	unready := profile(3.3, 20000)
	unready.IeltsStatus = "Not started"
	unready.GreStatus = ""
	unready.SopStatus = "pending"

	tests := []struct {
		name    string
		profile *entity.Profile
		uni     *entity.University
		want    Level
	}{
		{"ready and affordable", ready, &entity.University{YearlyCostUsd: 10000}, LevelLow},
		{"over budget only", ready, &entity.University{YearlyCostUsd: 25000}, LevelLow},
		{"below min gpa", ready, &entity.University{MinGpa: ptr(3.5)}, LevelMedium},
		{"below min and over budget", ready, &entity.University{MinGpa: ptr(3.5), YearlyCostUsd: 25000}, LevelMedium},
		{"three exams outstanding", unready, &entity.University{}, LevelMedium},
		{"everything", unready, &entity.University{MinGpa: ptr(3.5), YearlyCostUsd: 25000}, LevelHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewScorer().Score(tt.profile, []*entity.University{tt.uni})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got[0].Risk)
		})
	}
}

func TestTop(t *testing.T) {
	c := make([]Candidate, 30)
	assert.Len(t, Top(c, 25), 25)
	assert.Len(t, Top(c[:3], 25), 3)
}
