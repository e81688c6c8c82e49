// Package prompt renders the generation request for one turn.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/pkg/advising"
	"ai-counsellor-be/pkg/advising/recommend"
	"ai-counsellor-be/pkg/llm"
)

const (
	gatingOpen   = "Onboarding complete. Recommend universities and take actions if helpful."
	gatingClosed = "Onboarding incomplete. DO NOT recommend universities. Ask onboarding questions only."
)

const systemTemplate = `You are AI Counsellor for a stage-based study abroad platform.

You MUST respond in strict JSON only (no markdown, no text outside JSON).

Output JSON schema:
{
  "reply": "string",
  "actions": [
    {"type": "shortlist", "args": {"universityId": "<uuid>"}},
    {"type": "lock", "args": {"universityId": "<uuid>"}},
    {"type": "unlock", "args": {"universityId": "<uuid>"}},
    {"type": "lock_recent_shortlisted", "args": {}},
    {"type": "create_task", "args": {"title": "string"}},
    {"type": "complete_task", "args": {"taskId": "<uuid>"}}
  ]
}

CRITICAL RULES:
- NEVER invent a university name or ID.
- You may ONLY mention universities that exist in the shortlist or availableUniversitiesTop context.
- If you cannot find an ID, do NOT guess. Ask the user to shortlist first.
- For locking, prefer "lock_recent_shortlisted" unless the user explicitly names a university.
- Only complete tasks listed in the tasks context, by their id.
- If onboarding is incomplete: actions MUST be [] and guide onboarding only.
- If you include an action, your reply MUST say what you are doing.

BEHAVIOR BY STAGE:
- stage=1: onboarding questions only
- stage=2: recommend universities and shortlist
- stage=3: push locking at least one university
- stage=4: focus on application readiness tasks

ACTION LIMIT:
- Max %d actions.`

type Builder struct {
	maxActions int
}

func NewBuilder(maxActions int) *Builder {
	return &Builder{maxActions: maxActions}
}

func (b *Builder) System() string {
	return fmt.Sprintf(systemTemplate, b.maxActions)
}

// Messages renders system prompt, prior turns and the new message carrying the JSON
// context.
func (b *Builder) Messages(history []*entity.ConversationMessage, snap *advising.Snapshot, candidates []recommend.Candidate, message string) ([]llm.Message, error) {
	ctxJSON, err := json.MarshalIndent(b.Context(snap, candidates), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal prompt context: %w", err)
	}

	msgs := make([]llm.Message, 0, len(history)+2)
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: b.System()})
	for _, h := range history {
		role := llm.RoleUser
		if h.Role == entity.ConversationRoleAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: h.Content})
	}

	var sb strings.Builder
	sb.WriteString("CONTEXT:\n")
	sb.Write(ctxJSON)
	sb.WriteString("\n\nUSER_MESSAGE:\n")
	sb.WriteString(message)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: sb.String()})
	return msgs, nil
}

type profileContext struct {
	EducationLevel      string   `json:"educationLevel"`
	Major               string   `json:"major"`
	GradYear            *int     `json:"gradYear"`
	Gpa                 *float64 `json:"gpa"`
	IntendedDegree      string   `json:"intendedDegree"`
	FieldOfStudy        string   `json:"fieldOfStudy"`
	IntakeYear          *int     `json:"intakeYear"`
	PreferredCountries  []string `json:"preferredCountries"`
	BudgetPerYear       *int     `json:"budgetPerYear"`
	FundingPlan         string   `json:"fundingPlan"`
	IeltsStatus         string   `json:"ieltsStatus"`
	GreStatus           string   `json:"greStatus"`
	SopStatus           string   `json:"sopStatus"`
	OnboardingCompleted bool     `json:"onboardingCompleted"`
}

type shortlistContext struct {
	UniversityID string `json:"universityId"`
	Name         string `json:"name,omitempty"`
	Country      string `json:"country,omitempty"`
	Status       string `json:"status"`
}

type taskContext struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type universityContext struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Country          string `json:"country"`
	YearlyCostUsd    int    `json:"yearlyCostUsd"`
	Bucket           string `json:"bucket"`
	AcceptanceChance string `json:"acceptanceChance"`
	Risk             string `json:"risk"`
}

// Context is the structured part of the prompt. Shortlist and catalog are only shared
// once onboarding is complete.
type Context struct {
	Stage                    int                 `json:"stage"`
	Gating                   string              `json:"gating"`
	Profile                  *profileContext     `json:"profile"`
	Shortlist                []shortlistContext  `json:"shortlist,omitempty"`
	Tasks                    []taskContext       `json:"tasks,omitempty"`
	AvailableUniversitiesTop []universityContext `json:"availableUniversitiesTop,omitempty"`
}

func (b *Builder) Context(snap *advising.Snapshot, candidates []recommend.Candidate) Context {
	c := Context{Stage: int(snap.Stage), Gating: gatingClosed}
	if p := snap.Profile; p != nil {
		c.Profile = &profileContext{
			EducationLevel:      p.EducationLevel,
			Major:               p.Major,
			GradYear:            p.GradYear,
			Gpa:                 p.Gpa,
			IntendedDegree:      p.IntendedDegree,
			FieldOfStudy:        p.FieldOfStudy,
			IntakeYear:          p.IntakeYear,
			PreferredCountries:  p.PreferredCountries,
			BudgetPerYear:       p.BudgetPerYear,
			FundingPlan:         p.FundingPlan,
			IeltsStatus:         p.IeltsStatus,
			GreStatus:           p.GreStatus,
			SopStatus:           p.SopStatus,
			OnboardingCompleted: p.OnboardingCompleted,
		}
	}
	if !snap.Onboarded() {
		return c
	}

	c.Gating = gatingOpen
	for _, e := range snap.Shortlist {
		sc := shortlistContext{UniversityID: e.UniversityId.String(), Status: string(e.Status)}
		if e.University != nil {
			sc.Name = e.University.Name
			sc.Country = e.University.Country
		}
		c.Shortlist = append(c.Shortlist, sc)
	}
	for _, t := range snap.Tasks {
		c.Tasks = append(c.Tasks, taskContext{ID: t.Id.String(), Title: t.Title, Status: string(t.Status)})
	}
	for _, cand := range candidates {
		u := cand.University
		c.AvailableUniversitiesTop = append(c.AvailableUniversitiesTop, universityContext{
			ID:               u.Id.String(),
			Name:             u.Name,
			Country:          u.Country,
			YearlyCostUsd:    u.YearlyCostUsd,
			Bucket:           string(cand.Bucket),
			AcceptanceChance: string(cand.Acceptance),
			Risk:             string(cand.Risk),
		})
	}
	return c
}
