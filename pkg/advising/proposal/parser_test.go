package proposal

import (
	"testing"

	"ai-counsellor-be/pkg/advising/action"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *Proposal
	}{
		{
			name: "plain object",
			raw:  `{"reply":"Done.","actions":[{"type":"shortlist","args":{"universityId":"u1"}}]}`,
			want: &Proposal{Reply: "Done.", Actions: []action.Candidate{
				{Type: "shortlist", Args: map[string]interface{}{"universityId": "u1"}},
			}},
		},
		{
			name: "fenced",
			raw:  "```json\n{\"reply\":\"Hi\",\"actions\":[]}\n```",
			want: &Proposal{Reply: "Hi", Actions: []action.Candidate{}},
		},
		{
			name: "surrounding prose",
			raw:  "Sure! Here you go: {\"reply\":\"Hi\"} hope that helps",
			want: &Proposal{Reply: "Hi", Actions: []action.Candidate{}},
		},
		{
			name: "malformed entry is kept",
			raw:  `{"reply":"x","actions":["lock",{"type":"lock_recent_shortlisted"}]}`,
			want: &Proposal{Reply: "x", Actions: []action.Candidate{
				{Type: MalformedType},
				{Type: "lock_recent_shortlisted"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":         "",
		"prose only":    "I'm warming up",
		"missing reply": `{"actions":[]}`,
		"broken json":   `{"reply": "x",}`,
		"actions wrong": `{"reply":"x","actions":{"type":"lock"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(raw)
			assert.Error(t, err)
		})
	}
}
