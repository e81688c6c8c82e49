package proposal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ai-counsellor-be/pkg/advising/action"
)

// MalformedType marks an actions entry that was not an object. It never decodes, so the
// entry surfaces as an invalid action instead of disappearing.
const MalformedType = "<malformed>"

type rawProposal struct {
	Reply   *string           `json:"reply"`
	Actions []json.RawMessage `json:"actions"`
}

// Parse extracts {reply, actions} from model output. Markdown fences and prose around
// the object are tolerated, a missing reply is not.
func Parse(raw string) (*Proposal, error) {
	body, err := extractObject(raw)
	if err != nil {
		return nil, err
	}

	var rp rawProposal
	if err := json.Unmarshal([]byte(body), &rp); err != nil {
		return nil, fmt.Errorf("decode proposal: %w", err)
	}
	if rp.Reply == nil {
		return nil, errors.New("proposal has no reply")
	}

	p := &Proposal{Reply: strings.TrimSpace(*rp.Reply), Actions: []action.Candidate{}}
	for _, a := range rp.Actions {
		var c action.Candidate
		if err := json.Unmarshal(a, &c); err != nil {
			c = action.Candidate{Type: MalformedType}
		}
		p.Actions = append(p.Actions, c)
	}
	return p, nil
}

func extractObject(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", errors.New("no JSON object in model output")
	}
	return s[start : end+1], nil
}
