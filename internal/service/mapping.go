package service

import (
	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/pkg/advising"
	"ai-counsellor-be/pkg/advising/recommend"
)

func toSnapshotResponse(snap *advising.Snapshot) *dto.SnapshotResponse {
	res := &dto.SnapshotResponse{
		Stage:     int(snap.Stage),
		StageName: snap.Stage.String(),
		Profile:   toProfileResponse(snap.Profile),
		Shortlist: make([]dto.ShortlistResponse, 0, len(snap.Shortlist)),
		Tasks:     make([]dto.TaskResponse, 0, len(snap.Tasks)),
	}
	for _, e := range snap.Shortlist {
		res.Shortlist = append(res.Shortlist, toShortlistResponse(e))
	}
	for _, t := range snap.Tasks {
		res.Tasks = append(res.Tasks, toTaskResponse(t))
	}
	return res
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	countries := p.PreferredCountries
	if countries == nil {
		countries = []string{}
	}
	return &dto.ProfileResponse{
		UserId:              p.UserId,
		EducationLevel:      p.EducationLevel,
		Major:               p.Major,
		GradYear:            p.GradYear,
		Gpa:                 p.Gpa,
		IntendedDegree:      p.IntendedDegree,
		FieldOfStudy:        p.FieldOfStudy,
		IntakeYear:          p.IntakeYear,
		PreferredCountries:  countries,
		BudgetPerYear:       p.BudgetPerYear,
		FundingPlan:         p.FundingPlan,
		IeltsStatus:         p.IeltsStatus,
		GreStatus:           p.GreStatus,
		SopStatus:           p.SopStatus,
		OnboardingCompleted: p.OnboardingCompleted,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func toUniversityResponse(u *entity.University) *dto.UniversityResponse {
	if u == nil {
		return nil
	}
	return &dto.UniversityResponse{
		Id:            u.Id,
		Name:          u.Name,
		Country:       u.Country,
		Degree:        u.Degree,
		Field:         u.Field,
		YearlyCostUsd: u.YearlyCostUsd,
		MinGpa:        u.MinGpa,
		Difficulty:    u.Difficulty,
	}
}

func toCandidateResponse(c recommend.Candidate) dto.UniversityCandidateResponse {
	return dto.UniversityCandidateResponse{
		UniversityResponse: *toUniversityResponse(c.University),
		Bucket:             string(c.Bucket),
		AcceptanceChance:   string(c.Acceptance),
		RiskLevel:          string(c.Risk),
		Reason:             c.Reason,
	}
}

func toShortlistResponse(e *entity.ShortlistEntry) dto.ShortlistResponse {
	return dto.ShortlistResponse{
		Id:           e.Id,
		UniversityId: e.UniversityId,
		University:   toUniversityResponse(e.University),
		Status:       string(e.Status),
		LockedAt:     e.LockedAt,
		CreatedAt:    e.CreatedAt,
	}
}

func toTaskResponse(t *entity.Task) dto.TaskResponse {
	return dto.TaskResponse{
		Id:           t.Id,
		UniversityId: t.UniversityId,
		Title:        t.Title,
		Status:       string(t.Status),
		Source:       string(t.Source),
		CreatedAt:    t.CreatedAt,
		CompletedAt:  t.CompletedAt,
	}
}

func toMessageResponse(m *entity.ConversationMessage) dto.ConversationMessageResponse {
	return dto.ConversationMessageResponse{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func toAuditResponse(a *entity.ActionAudit) dto.ActionAuditResponse {
	res := dto.ActionAuditResponse{
		Id:        a.Id,
		TurnId:    a.TurnId,
		Position:  a.Position,
		Type:      a.Type,
		Args:      a.Args,
		Result:    a.Result,
		CreatedAt: a.CreatedAt,
	}
	if a.ErrorCode != "" {
		res.Error = &dto.ActionError{Code: a.ErrorCode, Message: a.ErrorMessage}
	}
	return res
}
