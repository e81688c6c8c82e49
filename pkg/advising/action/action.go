// Package action defines the closed set of state-changing operations the assistant may
// propose. Candidates arrive as untrusted data and only become an Action through Decode.
package action

import (
	"strings"

	"ai-counsellor-be/pkg/advising"

	"github.com/google/uuid"
)

type Type string

const (
	TypeShortlist             Type = "shortlist"
	TypeLock                  Type = "lock"
	TypeUnlock                Type = "unlock"
	TypeLockRecentShortlisted Type = "lock_recent_shortlisted"
	TypeCreateTask            Type = "create_task"
	TypeCompleteTask          Type = "complete_task"
)

const MaxTaskTitleLength = 200

// Candidate is an action exactly as proposed, before validation.
type Candidate struct {
	Type string                 `json:"type"`
	Args map[string]interface{} `json:"args"`
}

// Action is implemented only by the variants in this package.
type Action interface {
	Type() Type
	Args() map[string]interface{}
	sealed()
}

type Shortlist struct{ UniversityID uuid.UUID }
type Lock struct{ UniversityID uuid.UUID }
type Unlock struct{ UniversityID uuid.UUID }
type LockRecentShortlisted struct{}
type CreateTask struct{ Title string }
type CompleteTask struct{ TaskID uuid.UUID }

func (Shortlist) Type() Type             { return TypeShortlist }
func (Lock) Type() Type                  { return TypeLock }
func (Unlock) Type() Type                { return TypeUnlock }
func (LockRecentShortlisted) Type() Type { return TypeLockRecentShortlisted }
func (CreateTask) Type() Type            { return TypeCreateTask }
func (CompleteTask) Type() Type          { return TypeCompleteTask }

func (a Shortlist) Args() map[string]interface{} {
	return map[string]interface{}{"universityId": a.UniversityID.String()}
}
func (a Lock) Args() map[string]interface{} {
	return map[string]interface{}{"universityId": a.UniversityID.String()}
}
func (a Unlock) Args() map[string]interface{} {
	return map[string]interface{}{"universityId": a.UniversityID.String()}
}
func (LockRecentShortlisted) Args() map[string]interface{} { return map[string]interface{}{} }
func (a CreateTask) Args() map[string]interface{} {
	return map[string]interface{}{"title": a.Title}
}
func (a CompleteTask) Args() map[string]interface{} {
	return map[string]interface{}{"taskId": a.TaskID.String()}
}

func (Shortlist) sealed()             {}
func (Lock) sealed()                  {}
func (Unlock) sealed()                {}
func (LockRecentShortlisted) sealed() {}
func (CreateTask) sealed()            {}
func (CompleteTask) sealed()          {}

// Decode validates a candidate and returns the matching variant. Every failure is
// classified as advising.ErrInvalidAction.
func Decode(c Candidate) (Action, error) {
	switch normalizeType(c.Type) {
	case TypeShortlist:
		id, err := uuidArg(c, "universityId")
		if err != nil {
			return nil, err
		}
		return Shortlist{UniversityID: id}, nil
	case TypeLock:
		id, err := uuidArg(c, "universityId")
		if err != nil {
			return nil, err
		}
		return Lock{UniversityID: id}, nil
	case TypeUnlock:
		id, err := uuidArg(c, "universityId")
		if err != nil {
			return nil, err
		}
		return Unlock{UniversityID: id}, nil
	case TypeLockRecentShortlisted:
		return LockRecentShortlisted{}, nil
	case TypeCreateTask:
		title, err := stringArg(c, "title")
		if err != nil {
			return nil, err
		}
		if len(title) > MaxTaskTitleLength {
			return nil, advising.Newf(advising.ErrInvalidAction, "decode", "title longer than %d characters", MaxTaskTitleLength)
		}
		return CreateTask{Title: title}, nil
	case TypeCompleteTask:
		id, err := uuidArg(c, "taskId")
		if err != nil {
			return nil, err
		}
		return CompleteTask{TaskID: id}, nil
	default:
		return nil, advising.Newf(advising.ErrInvalidAction, "decode", "unknown action type %q", c.Type)
	}
}

// normalizeType accepts the camelCase spellings models tend to produce.
func normalizeType(raw string) Type {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch t {
	case "createtask":
		return TypeCreateTask
	case "completetask":
		return TypeCompleteTask
	case "lockrecentshortlisted":
		return TypeLockRecentShortlisted
	}
	return Type(t)
}

func stringArg(c Candidate, key string) (string, error) {
	raw, ok := c.Args[key]
	if !ok || raw == nil {
		return "", advising.Newf(advising.ErrInvalidAction, "decode", "%s: missing %s", c.Type, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", advising.Newf(advising.ErrInvalidAction, "decode", "%s: %s must be a string", c.Type, key)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", advising.Newf(advising.ErrInvalidAction, "decode", "%s: %s is empty", c.Type, key)
	}
	return s, nil
}

func uuidArg(c Candidate, key string) (uuid.UUID, error) {
	s, err := stringArg(c, key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, advising.Newf(advising.ErrInvalidAction, "decode", "%s: %s is not a valid id", c.Type, key)
	}
	return id, nil
}
