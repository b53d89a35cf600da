package domain_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/pageurl/domain"
)

func TestRuleBackendDict(t *testing.T) {
	var dict domain.BackendRuleDict
	err := json.Unmarshal([]byte(`{"rule_type":"Equals","inputs":{"x":"abc"}}`), &dict)
	assert.Nil(t, err)

	rule := domain.RuleFactory{}.CreateFromBackendDict(dict)
	assert.Equal(t, rule.Type, "Equals")
	assert.Equal(t, rule.Inputs["x"], any("abc"))

	back := rule.ToBackendDict()
	assert.Equal(t, back.RuleType, "Equals")
	assert.Equal(t, back.Inputs["x"], any("abc"))
}

func TestRuleClone(t *testing.T) {
	rule := domain.RuleFactory{}.CreateNew("Contains", domain.RuleInputs{
		"x": []any{"a", "b"},
	})

	cp := rule.Clone()
	cp.Inputs["x"].([]any)[0] = "changed"
	cp.Inputs["y"] = 1

	assert.Equal(t, rule.Inputs["x"].([]any)[0], any("a"))
	_, ok := rule.Inputs["y"]
	assert.False(t, ok)

	empty := domain.RuleFactory{}.CreateNew("", nil).Clone()
	assert.True(t, empty.Inputs == nil)
}

func TestOutcome(t *testing.T) {
	dest := "Introduction"
	outcome := domain.NewOutcome(&dest, "feedback_1", "  ", nil)
	assert.False(t, outcome.HasNonemptyFeedback())
	assert.False(t, outcome.Labelled)
	assert.Equal(t, outcome.Feedback.ContentID, "feedback_1")

	outcome.Feedback.HTML = "<p>Well done</p>"
	assert.True(t, outcome.HasNonemptyFeedback())

	cp := outcome.Clone()
	*cp.Dest = "Elsewhere"
	assert.Equal(t, *outcome.Dest, "Introduction")
}

func TestEmailDashboardQueryResults(t *testing.T) {
	payload := `{
		"cursor": "c-2",
		"recent_queries": [
			{"id": "q1", "status": "processing", "num_qualified_users": 0, "submitter_username": "admin", "created_on": "04-06-20"},
			{"id": "q2", "status": "completed", "num_qualified_users": 12, "submitter_username": "admin", "created_on": "05-06-20"}
		]
	}`

	results, err := domain.EmailDashboardQueryResultsFactory{}.DecodeEmailDashboardQueryResults(strings.NewReader(payload))
	assert.Nil(t, err)
	assert.Equal(t, results.Cursor, "c-2")
	assert.Equal(t, len(results.RecentQueries), 2)
	assert.Equal(t, results.RecentQueries[1].ID, "q2")
	assert.Equal(t, results.RecentQueries[1].NumQualifiedUsers, 12)

	_, err = domain.EmailDashboardQueryResultsFactory{}.DecodeEmailDashboardQueryResults(strings.NewReader("{"))
	assert.NotNil(t, err)
}

func TestFileDownloadRequestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	req := domain.NewFileDownloadRequest("audio.mp3", cancel)
	assert.Equal(t, req.Filename, "audio.mp3")

	req.Cancel()
	req.Cancel()
	assert.NotNil(t, ctx.Err())

	domain.NewFileDownloadRequest("x", nil).Cancel()
}
