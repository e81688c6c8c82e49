// Package taskgen creates the system checklist that follows a commitment.
package taskgen

import (
	"context"
	"fmt"
	"strings"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/repository/unitofwork"
	"ai-counsellor-be/pkg/advising"

	"github.com/google/uuid"
)

// ApplicationTitles is the checklist created for a newly locked university, in order.
var ApplicationTitles = []string{
	"Request transcripts",
	"Draft SOP",
	"Request recommendation letters",
	"Submit application",
}

const (
	titleFinalizeShortlist = "Finalize shortlist: pick at least 6 universities (2 dream, 2 target, 2 safe)"
	titleCostPlan          = "Create tuition + living cost plan for selected countries"
	titleLanguageExam      = "Book IELTS/TOEFL exam date and create prep schedule"
	titleGraduateExam      = "Decide if GRE/GMAT is required for target universities"
	titleSop               = "Start SOP draft (collect projects, internships, achievements)"
)

// Generate creates the application checklist for one university inside the caller's
// transaction. Titles already present for the same student and university are skipped,
// compared case-insensitively.
func Generate(ctx context.Context, uow unitofwork.UnitOfWork, studentID uuid.UUID, university *entity.University) ([]*entity.Task, error) {
	repo := uow.TaskRepository()
	existing, err := repo.FindAllByUserAndUniversity(ctx, studentID, university.Id)
	if err != nil {
		return nil, fmt.Errorf("load tasks for university %s: %w", university.Id, err)
	}

	universityID := university.Id
	return createMissing(ctx, uow, existing, ApplicationTitles, func(title string) *entity.Task {
		return &entity.Task{
			UserId:       studentID,
			UniversityId: &universityID,
			Title:        title,
			Status:       entity.TaskStatusPending,
			Source:       entity.TaskSourceSystem,
		}
	})
}

// ReadinessTitles returns the readiness checklist for a profile. Exam and SOP items are
// only included while their status is unset or reads as not started.
func ReadinessTitles(profile *entity.Profile) []string {
	titles := []string{titleFinalizeShortlist, titleCostPlan}
	if notReady(profile.IeltsStatus) {
		titles = append(titles, titleLanguageExam)
	}
	if notReady(profile.GreStatus) {
		titles = append(titles, titleGraduateExam)
	}
	if notReady(profile.SopStatus) {
		titles = append(titles, titleSop)
	}
	return titles
}

// GenerateReadiness creates the readiness checklist, skipping titles the student already
// has on any task.
func GenerateReadiness(ctx context.Context, uow unitofwork.UnitOfWork, profile *entity.Profile) ([]*entity.Task, error) {
	if profile == nil || !profile.OnboardingCompleted {
		return nil, advising.Newf(advising.ErrOnboardingIncomplete, "taskgen.GenerateReadiness", "complete onboarding first to generate tasks")
	}

	existing, err := uow.TaskRepository().FindAllByUser(ctx, profile.UserId)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	return createMissing(ctx, uow, existing, ReadinessTitles(profile), func(title string) *entity.Task {
		return &entity.Task{
			UserId: profile.UserId,
			Title:  title,
			Status: entity.TaskStatusPending,
			Source: entity.TaskSourceSystem,
		}
	})
}

func createMissing(ctx context.Context, uow unitofwork.UnitOfWork, existing []*entity.Task, titles []string, build func(string) *entity.Task) ([]*entity.Task, error) {
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[strings.ToLower(t.Title)] = true
	}

	var created []*entity.Task
	for _, title := range titles {
		key := strings.ToLower(title)
		if seen[key] {
			continue
		}
		task := build(title)
		if err := uow.TaskRepository().Create(ctx, task); err != nil {
			return created, fmt.Errorf("create task %q: %w", title, err)
		}
		seen[key] = true
		created = append(created, task)
	}
	return created, nil
}

// notReady treats an empty status or one containing "not" as outstanding.
func notReady(status string) bool {
	s := strings.ToLower(strings.TrimSpace(status))
	return s == "" || strings.Contains(s, "not")
}
