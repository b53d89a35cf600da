package domain

import (
	"strings"
)

// SubtitledHTML is translatable HTML content with its content id.
type SubtitledHTML struct {
	ContentID string `json:"content_id"`
	HTML      string `json:"html"`
}

// ParamChange sets an exploration parameter when an outcome is taken.
type ParamChange struct {
	Name              string         `json:"name"`
	GeneratorID       string         `json:"generator_id"`
	CustomizationArgs map[string]any `json:"customization_args"`
}

// Outcome is where a learner goes after an answer group matches,
// and what feedback they see.
type Outcome struct {
	Dest                       *string // nil in question mode
	Feedback                   SubtitledHTML
	Labelled                   bool
	ParamChanges               []ParamChange
	RefresherExplorationID     *string
	MissingPrerequisiteSkillID *string
}

// NewOutcome builds an unlabelled outcome with the given feedback.
func NewOutcome(dest *string, feedbackContentID, feedbackHTML string, paramChanges []ParamChange) Outcome {
	return Outcome{
		Dest:         dest,
		Feedback:     SubtitledHTML{ContentID: feedbackContentID, HTML: feedbackHTML},
		ParamChanges: paramChanges,
	}
}

// HasNonemptyFeedback reports whether the feedback has visible text.
func (o Outcome) HasNonemptyFeedback() bool {
	return strings.TrimSpace(o.Feedback.HTML) != ""
}

// Clone returns a deep copy of the outcome.
func (o Outcome) Clone() Outcome {
	out := o
	out.Dest = cloneString(o.Dest)
	out.RefresherExplorationID = cloneString(o.RefresherExplorationID)
	out.MissingPrerequisiteSkillID = cloneString(o.MissingPrerequisiteSkillID)

	if o.ParamChanges != nil {
		out.ParamChanges = make([]ParamChange, len(o.ParamChanges))
		for i, pc := range o.ParamChanges {
			pc.CustomizationArgs, _ = cloneValue(pc.CustomizationArgs).(map[string]any)
			out.ParamChanges[i] = pc
		}
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
