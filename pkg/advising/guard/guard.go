// Package guard is the only writer of shortlist status. Every function runs inside the
// caller's open unit of work and never commits.
package guard

import (
	"context"
	"fmt"
	"time"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/repository/unitofwork"
	"ai-counsellor-be/pkg/advising"
	"ai-counsellor-be/pkg/advising/taskgen"

	"github.com/google/uuid"
)

// Transition describes what a guard call did. Changed is false for idempotent repeats.
type Transition struct {
	Entry        *entity.ShortlistEntry
	Changed      bool
	Demoted      []*entity.ShortlistEntry
	TasksCreated []*entity.Task
	Message      string
}

var now = time.Now

// Shortlist adds the university to the student's list, promoting a recommendation.
func Shortlist(ctx context.Context, uow unitofwork.UnitOfWork, studentID, universityID uuid.UUID) (*Transition, error) {
	const op = "guard.Shortlist"

	university, err := uow.UniversityRepository().FindById(ctx, universityID)
	if err != nil {
		return nil, fmt.Errorf("%s: load university: %w", op, err)
	}
	if university == nil {
		return nil, advising.Newf(advising.ErrNotFound, op, "university %s not found", universityID)
	}

	repo := uow.ShortlistRepository()
	entry, err := repo.FindByUserAndUniversity(ctx, studentID, universityID)
	if err != nil {
		return nil, fmt.Errorf("%s: load entry: %w", op, err)
	}

	switch {
	case entry == nil:
		entry = &entity.ShortlistEntry{
			UserId:       studentID,
			UniversityId: universityID,
			Status:       entity.ShortlistStatusShortlisted,
			University:   university,
		}
		if err := repo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("%s: create entry: %w", op, err)
		}
	case entry.Status == entity.ShortlistStatusRecommended:
		entry.Status = entity.ShortlistStatusShortlisted
		if err := repo.Update(ctx, entry); err != nil {
			return nil, fmt.Errorf("%s: promote entry: %w", op, err)
		}
	default:
		return &Transition{Entry: entry, Message: "Already in your list."}, nil
	}

	return &Transition{Entry: entry, Changed: true, Message: "University shortlisted."}, nil
}

// Lock commits the student to a shortlisted university. Any other locked entry is demoted
// in the same transaction and the application checklist is generated once.
func Lock(ctx context.Context, uow unitofwork.UnitOfWork, studentID, universityID uuid.UUID) (*Transition, error) {
	const op = "guard.Lock"

	entry, err := uow.ShortlistRepository().FindByUserAndUniversity(ctx, studentID, universityID)
	if err != nil {
		return nil, fmt.Errorf("%s: load entry: %w", op, err)
	}
	if entry == nil || entry.Status == entity.ShortlistStatusRecommended {
		return nil, advising.Newf(advising.ErrNotShortlisted, op, "university %s is not shortlisted", universityID)
	}
	if entry.Status == entity.ShortlistStatusLocked {
		return &Transition{Entry: entry, Message: "University already locked."}, nil
	}

	t, err := lockEntry(ctx, uow, op, studentID, entry)
	if err != nil {
		return nil, err
	}
	t.Message = "University locked. Application guidance unlocked."
	return t, nil
}

// LockMostRecent locks the entry that was shortlisted last.
func LockMostRecent(ctx context.Context, uow unitofwork.UnitOfWork, studentID uuid.UUID) (*Transition, error) {
	const op = "guard.LockMostRecent"

	shortlisted, err := uow.ShortlistRepository().FindAllByUserAndStatus(ctx, studentID, entity.ShortlistStatusShortlisted)
	if err != nil {
		return nil, fmt.Errorf("%s: load shortlist: %w", op, err)
	}

	var recent *entity.ShortlistEntry
	for _, e := range shortlisted {
		if recent == nil || !e.CreatedAt.Before(recent.CreatedAt) {
			recent = e
		}
	}
	if recent == nil {
		return nil, advising.Newf(advising.ErrNotShortlisted, op, "no shortlisted university found to lock, shortlist first")
	}

	t, err := lockEntry(ctx, uow, op, studentID, recent)
	if err != nil {
		return nil, err
	}
	t.Message = "Locked your most recently shortlisted university."
	return t, nil
}

// Unlock returns a locked university to the shortlist. Generated tasks are kept.
func Unlock(ctx context.Context, uow unitofwork.UnitOfWork, studentID, universityID uuid.UUID) (*Transition, error) {
	const op = "guard.Unlock"

	repo := uow.ShortlistRepository()
	entry, err := repo.FindByUserAndUniversity(ctx, studentID, universityID)
	if err != nil {
		return nil, fmt.Errorf("%s: load entry: %w", op, err)
	}
	if entry == nil || entry.Status == entity.ShortlistStatusRecommended {
		return nil, advising.Newf(advising.ErrNotLocked, op, "university %s is not locked", universityID)
	}
	if entry.Status == entity.ShortlistStatusShortlisted {
		return &Transition{Entry: entry, Message: "University is already unlocked."}, nil
	}

	entry.Status = entity.ShortlistStatusShortlisted
	entry.LockedAt = nil
	if err := repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("%s: update entry: %w", op, err)
	}
	return &Transition{Entry: entry, Changed: true, Message: "University unlocked. You can lock another university."}, nil
}

func lockEntry(ctx context.Context, uow unitofwork.UnitOfWork, op string, studentID uuid.UUID, entry *entity.ShortlistEntry) (*Transition, error) {
	repo := uow.ShortlistRepository()

	locked, err := repo.FindAllByUserAndStatus(ctx, studentID, entity.ShortlistStatusLocked)
	if err != nil {
		return nil, fmt.Errorf("%s: load locked entries: %w", op, err)
	}

	t := &Transition{Entry: entry, Changed: true}
	for _, other := range locked {
		if other.Id == entry.Id {
			continue
		}
		other.Status = entity.ShortlistStatusShortlisted
		other.LockedAt = nil
		if err := repo.Update(ctx, other); err != nil {
			return nil, fmt.Errorf("%s: demote entry %s: %w", op, other.Id, err)
		}
		t.Demoted = append(t.Demoted, other)
	}

	lockedAt := now()
	entry.Status = entity.ShortlistStatusLocked
	entry.LockedAt = &lockedAt
	if err := repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("%s: lock entry: %w", op, err)
	}

	university := entry.University
	if university == nil {
		university, err = uow.UniversityRepository().FindById(ctx, entry.UniversityId)
		if err != nil {
			return nil, fmt.Errorf("%s: load university: %w", op, err)
		}
		if university == nil {
			return nil, advising.Newf(advising.ErrNotFound, op, "university %s not found", entry.UniversityId)
		}
	}

	tasks, err := taskgen.Generate(ctx, uow, studentID, university)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	t.TasksCreated = tasks
	return t, nil
}
