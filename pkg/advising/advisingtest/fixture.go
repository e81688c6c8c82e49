// Package advisingtest provides an in-memory world for advising tests.
package advisingtest

import (
	"context"
	"sync"
	"testing"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/repository/memory"
	"ai-counsellor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Fixture struct {
	Ctx          context.Context
	Store        *memory.Store
	Factory      unitofwork.RepositoryFactory
	Student      uuid.UUID
	Universities []*entity.University
}

func ptr[T any](v T) *T { return &v }

// Catalog is the seeded university set: two per country across three countries.
func Catalog() []*entity.University {
	return []*entity.University{
		{Name: "University of Toronto", Country: "Canada", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 45000, MinGpa: ptr(3.5), Difficulty: "high"},
		{Name: "University of Waterloo", Country: "Canada", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 30000, MinGpa: ptr(3.2), Difficulty: "medium"},
		{Name: "TU Munich", Country: "Germany", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 3000, MinGpa: ptr(3.0), Difficulty: "medium"},
		{Name: "University of Stuttgart", Country: "Germany", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 2500, MinGpa: ptr(2.7), Difficulty: "low"},
		{Name: "Imperial College London", Country: "United Kingdom", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 52000, MinGpa: ptr(3.7), Difficulty: "high"},
		{Name: "University of Leeds", Country: "United Kingdom", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 28000, Difficulty: "low"},
	}
}

// New seeds the catalog and a student. When onboarded is true the student has a
// completed profile.
func New(t testing.TB, onboarded bool) *Fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	f := &Fixture{
		Ctx:          ctx,
		Store:        store,
		Factory:      memory.NewRepositoryFactory(store),
		Student:      uuid.New(),
		Universities: Catalog(),
	}

	uow := f.Factory.NewUnitOfWork(ctx)
	for _, u := range f.Universities {
		require.NoError(t, uow.UniversityRepository().Create(ctx, u))
	}
	require.NoError(t, uow.ProfileRepository().Save(ctx, &entity.Profile{
		UserId:              f.Student,
		EducationLevel:      "Bachelors",
		Major:               "Computer Science",
		Gpa:                 ptr(3.6),
		IntendedDegree:      "Masters",
		FieldOfStudy:        "Computer Science",
		PreferredCountries:  []string{"Canada", "Germany"},
		BudgetPerYear:       ptr(35000),
		IeltsStatus:         "completed",
		GreStatus:           "not started",
		SopStatus:           "draft",
		OnboardingCompleted: onboarded,
	}))
	return f
}

func (f *Fixture) UoW() unitofwork.UnitOfWork {
	return f.Factory.NewUnitOfWork(f.Ctx)
}

func (f *Fixture) Status(t testing.TB, universityID uuid.UUID) entity.ShortlistStatus {
	t.Helper()
	e, err := f.UoW().ShortlistRepository().FindByUserAndUniversity(f.Ctx, f.Student, universityID)
	require.NoError(t, err)
	if e == nil {
		return ""
	}
	return e.Status
}

func (f *Fixture) Shortlist(t testing.TB) []*entity.ShortlistEntry {
	t.Helper()
	entries, err := f.UoW().ShortlistRepository().FindAllByUser(f.Ctx, f.Student)
	require.NoError(t, err)
	return entries
}

func (f *Fixture) LockedCount(t testing.TB) int {
	t.Helper()
	n := 0
	for _, e := range f.Shortlist(t) {
		if e.Status == entity.ShortlistStatusLocked {
			n++
		}
	}
	return n
}

func (f *Fixture) Tasks(t testing.TB) []*entity.Task {
	t.Helper()
	tasks, err := f.UoW().TaskRepository().FindAllByUser(f.Ctx, f.Student)
	require.NoError(t, err)
	return tasks
}

func (f *Fixture) Messages(t testing.TB) []*entity.ConversationMessage {
	t.Helper()
	msgs, err := f.UoW().ConversationRepository().FindAllByUser(f.Ctx, f.Student)
	require.NoError(t, err)
	return msgs
}

// Events records published advising events by type.
type Events struct {
	mu    sync.Mutex
	Types []string
}

func (e *Events) record(t string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Types = append(e.Types, t)
}

func (e *Events) Snapshot() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.Types...)
}

func (e *Events) UniversityShortlisted(ctx context.Context, studentID, universityID uuid.UUID) {
	e.record("UNIVERSITY_SHORTLISTED")
}

func (e *Events) UniversityLocked(ctx context.Context, studentID, universityID uuid.UUID, demoted []uuid.UUID, tasksCreated int) {
	e.record("UNIVERSITY_LOCKED")
}

func (e *Events) UniversityUnlocked(ctx context.Context, studentID, universityID uuid.UUID) {
	e.record("UNIVERSITY_UNLOCKED")
}

func (e *Events) TaskCreated(ctx context.Context, studentID, taskID uuid.UUID, source string) {
	e.record("TASK_CREATED")
}

func (e *Events) TaskCompleted(ctx context.Context, studentID, taskID uuid.UUID) {
	e.record("TASK_COMPLETED")
}

func (e *Events) TurnCompleted(ctx context.Context, studentID, turnID uuid.UUID, stage int, actions, failed int) {
	e.record("TURN_COMPLETED")
}
