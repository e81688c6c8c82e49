package action

import (
	"errors"
	"strings"
	"testing"

	"ai-counsellor-be/pkg/advising"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestDecode(t *testing.T) {
	uni := uuid.MustParse("6f1c2b1e-0d5a-4a4e-9d53-2a7f4d0c9b11")
	task := uuid.MustParse("0b6f1e7c-3f0e-4c55-8a0e-9c1b5d2e7a44")

	tests := []struct {
		name string
		in   Candidate
		want Action
	}{
		{"shortlist", Candidate{Type: "shortlist", Args: map[string]interface{}{"universityId": uni.String()}}, Shortlist{UniversityID: uni}},
		{"lock upper case", Candidate{Type: " LOCK ", Args: map[string]interface{}{"universityId": uni.String()}}, Lock{UniversityID: uni}},
		{"unlock", Candidate{Type: "unlock", Args: map[string]interface{}{"universityId": uni.String()}}, Unlock{UniversityID: uni}},
		{"lock recent without args", Candidate{Type: "lock_recent_shortlisted"}, LockRecentShortlisted{}},
		{"create task trims", Candidate{Type: "createTask", Args: map[string]interface{}{"title": "  Book IELTS  "}}, CreateTask{Title: "Book IELTS"}},
		{"complete task", Candidate{Type: "complete_task", Args: map[string]interface{}{"taskId": task.String()}}, CompleteTask{TaskID: task}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   Candidate
	}{
		{"unknown type", Candidate{Type: "delete_everything"}},
		{"empty type", Candidate{}},
		{"missing university", Candidate{Type: "lock", Args: map[string]interface{}{}}},
		{"university not a string", Candidate{Type: "shortlist", Args: map[string]interface{}{"universityId": 42}}},
		{"university not a uuid", Candidate{Type: "shortlist", Args: map[string]interface{}{"universityId": "Stanford"}}},
		{"nil uuid", Candidate{Type: "unlock", Args: map[string]interface{}{"universityId": uuid.Nil.String()}}},
		{"blank title", Candidate{Type: "create_task", Args: map[string]interface{}{"title": "   "}}},
		{"long title", Candidate{Type: "create_task", Args: map[string]interface{}{"title": strings.Repeat("x", MaxTaskTitleLength+1)}}},
		{"bad task id", Candidate{Type: "complete_task", Args: map[string]interface{}{"taskId": "first"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if got != nil {
				t.Errorf("Decode() = %#v, want nil", got)
			}
			if !errors.Is(err, advising.ErrInvalidAction) {
				t.Errorf("Decode() error = %v, want ErrInvalidAction", err)
			}
		})
	}
}

func TestArgsRoundTrip(t *testing.T) {
	uni := uuid.New()
	a := Lock{UniversityID: uni}

	back, err := Decode(Candidate{Type: string(a.Type()), Args: a.Args()})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if back != a {
		t.Errorf("Decode(Args()) = %#v, want %#v", back, a)
	}
}
