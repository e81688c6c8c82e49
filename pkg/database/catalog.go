package database

import (
	"context"
	"fmt"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/repository/unitofwork"
)

func gpa(v float64) *float64 { return &v }

// DefaultCatalog is the built-in university catalog loaded by the seed command and by
// the in-memory store.
func DefaultCatalog() []*entity.University {
	return []*entity.University{
		{Name: "University of Toronto", Country: "Canada", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 45000, MinGpa: gpa(3.5), Difficulty: "high"},
		{Name: "University of British Columbia", Country: "Canada", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 38000, MinGpa: gpa(3.3), Difficulty: "high"},
		{Name: "University of Waterloo", Country: "Canada", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 30000, MinGpa: gpa(3.2), Difficulty: "medium"},
		{Name: "Dalhousie University", Country: "Canada", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 22000, MinGpa: gpa(3.0), Difficulty: "low"},
		{Name: "Technical University of Munich", Country: "Germany", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 3000, MinGpa: gpa(3.0), Difficulty: "medium"},
		{Name: "RWTH Aachen University", Country: "Germany", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 2000, MinGpa: gpa(2.9), Difficulty: "medium"},
		{Name: "University of Stuttgart", Country: "Germany", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 2500, MinGpa: gpa(2.7), Difficulty: "low"},
		{Name: "Imperial College London", Country: "United Kingdom", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 52000, MinGpa: gpa(3.7), Difficulty: "high"},
		{Name: "University of Edinburgh", Country: "United Kingdom", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 40000, MinGpa: gpa(3.4), Difficulty: "high"},
		{Name: "University of Leeds", Country: "United Kingdom", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 28000, Difficulty: "low"},
		{Name: "Stanford University", Country: "United States", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 62000, MinGpa: gpa(3.8), Difficulty: "high"},
		{Name: "Arizona State University", Country: "United States", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 33000, MinGpa: gpa(3.0), Difficulty: "low"},
		{Name: "University of Melbourne", Country: "Australia", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 36000, MinGpa: gpa(3.2), Difficulty: "medium"},
		{Name: "Trinity College Dublin", Country: "Ireland", Degree: "Masters", Field: "Computer Science", YearlyCostUsd: 27000, MinGpa: gpa(3.1), Difficulty: "medium"},
	}
}

// SeedCatalog loads the catalog into an empty universities table. It returns how many rows
// were created.
func SeedCatalog(ctx context.Context, uowFactory unitofwork.RepositoryFactory, catalog []*entity.University) (int, error) {
	uow := uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback()

	count, err := uow.UniversityRepository().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count universities: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, u := range catalog {
		if err := uow.UniversityRepository().Create(ctx, u); err != nil {
			return 0, fmt.Errorf("create university %q: %w", u.Name, err)
		}
	}
	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(catalog), nil
}
