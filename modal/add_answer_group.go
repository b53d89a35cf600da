package modal

import (
	"github.com/rohanthewiz/pageurl/domain"
)

const (
	// ComponentFeedback names feedback content when generating content ids.
	ComponentFeedback = "feedback"

	EventSaveOutcomeFeedback = "saveOutcomeFeedbackDetails"
	EventSaveOutcomeDest     = "saveOutcomeDestDetails"
)

// StateEditor exposes the state being edited.
type StateEditor interface {
	IsInQuestionMode() bool
	CorrectnessFeedbackEnabled() bool
}

// FirstTimeEvents records editor milestones for the tutorial.
type FirstTimeEvents interface {
	RegisterFirstSaveRuleEvent()
}

// Broadcaster notifies child editors, e.g. to flush pending edits.
type Broadcaster interface {
	Broadcast(event string)
}

// InteractionSpec is the interaction metadata the dialog reads.
type InteractionSpec struct {
	IsLinear bool `json:"is_linear"`
}

// AnswerGroupResult is what the dialog resolves with on save.
type AnswerGroupResult struct {
	Rule    domain.Rule
	Outcome domain.Outcome
	Reopen  bool
}

// AddAnswerGroupDeps are the collaborators of the add-answer-group dialog.
type AddAnswerGroupDeps struct {
	Instance    Instance[AnswerGroupResult]
	StateEditor StateEditor
	Events      FirstTimeEvents
	Broadcaster Broadcaster
	ContentIDs  ContentIDGenerator
	Rules       domain.RuleFactory
}

// AddAnswerGroupOptions are the values the dialog is opened with.
type AddAnswerGroupOptions struct {
	AddState             func(stateName string)
	CurrentInteractionID string
	ExistingContentIDs   []string
	StateName            string
	InteractionSpecs     map[string]InteractionSpec
}

// AddAnswerGroup drives the dialog that creates a new answer group:
// a rule plus the outcome taken when it matches.
type AddAnswerGroup struct {
	ConfirmOrCancel[AnswerGroupResult]

	deps AddAnswerGroupDeps
	opts AddAnswerGroupOptions

	FeedbackEditorIsOpen bool
	QuestionModeEnabled  bool
	TmpRule              domain.Rule
	TmpOutcome           domain.Outcome
}

// NewAddAnswerGroup prepares an empty rule and an outcome pointing back at
// the current state (no destination in question mode).
func NewAddAnswerGroup(deps AddAnswerGroupDeps, opts AddAnswerGroupOptions) *AddAnswerGroup {
	if deps.ContentIDs == nil {
		deps.ContentIDs = SequentialContentIDs{}
	}

	m := &AddAnswerGroup{
		ConfirmOrCancel:     ConfirmOrCancel[AnswerGroupResult]{instance: deps.Instance},
		deps:                deps,
		opts:                opts,
		QuestionModeEnabled: deps.StateEditor.IsInQuestionMode(),
	}

	m.TmpRule = deps.Rules.CreateNew("", domain.RuleInputs{})

	var dest *string
	if !m.QuestionModeEnabled {
		stateName := opts.StateName
		dest = &stateName
	}
	feedbackContentID := deps.ContentIDs.NextID(opts.ExistingContentIDs, ComponentFeedback)
	m.TmpOutcome = domain.NewOutcome(dest, feedbackContentID, "", []domain.ParamChange{})

	return m
}

// AddState creates a new state from within the dialog.
func (m *AddAnswerGroup) AddState(stateName string) {
	if m.opts.AddState != nil {
		m.opts.AddState(stateName)
	}
}

// OpenFeedbackEditor shows the feedback editor.
func (m *AddAnswerGroup) OpenFeedbackEditor() {
	m.FeedbackEditorIsOpen = true
}

func (m *AddAnswerGroup) IsCorrectnessFeedbackEnabled() bool {
	return m.deps.StateEditor.CorrectnessFeedbackEnabled()
}

// IsCurrentInteractionLinear is false when no interaction is set.
func (m *AddAnswerGroup) IsCurrentInteractionLinear() bool {
	if m.opts.CurrentInteractionID == "" {
		return false
	}
	return m.opts.InteractionSpecs[m.opts.CurrentInteractionID].IsLinear
}

// IsSelfLoopWithNoFeedback reports an outcome that sends the learner back to
// the same state without telling them anything.
func (m *AddAnswerGroup) IsSelfLoopWithNoFeedback(outcome domain.Outcome) bool {
	return outcome.Dest != nil && *outcome.Dest == m.opts.StateName && !outcome.HasNonemptyFeedback()
}

// SaveResponse flushes the child editors and closes the dialog with copies of
// the rule and outcome. reopen asks the caller to open a fresh dialog afterwards.
func (m *AddAnswerGroup) SaveResponse(reopen bool) {
	if m.deps.Broadcaster != nil {
		m.deps.Broadcaster.Broadcast(EventSaveOutcomeFeedback)
		m.deps.Broadcaster.Broadcast(EventSaveOutcomeDest)
	}

	if m.deps.Events != nil {
		m.deps.Events.RegisterFirstSaveRuleEvent()
	}

	m.Confirm(AnswerGroupResult{
		Rule:    m.TmpRule.Clone(),
		Outcome: m.TmpOutcome.Clone(),
		Reopen:  reopen,
	})
}
