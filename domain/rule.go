// Package domain holds the frontend records built from backend dicts.
package domain

// RuleInputs maps an input name to its value for one rule.
type RuleInputs map[string]any

// BackendRuleDict is the wire form of a Rule.
type BackendRuleDict struct {
	RuleType string     `json:"rule_type"`
	Inputs   RuleInputs `json:"inputs"`
}

// Rule is a single answer-matching rule of an interaction.
type Rule struct {
	Type   string
	Inputs RuleInputs
}

// ToBackendDict converts the rule back to its wire form.
func (r Rule) ToBackendDict() BackendRuleDict {
	return BackendRuleDict{
		RuleType: r.Type,
		Inputs:   r.Inputs,
	}
}

// Clone returns a deep copy of the rule.
func (r Rule) Clone() Rule {
	return Rule{Type: r.Type, Inputs: cloneInputs(r.Inputs)}
}

// RuleFactory builds Rules.
type RuleFactory struct{}

// CreateNew builds a rule from its parts.
func (RuleFactory) CreateNew(ruleType string, inputs RuleInputs) Rule {
	return Rule{Type: ruleType, Inputs: inputs}
}

// CreateFromBackendDict builds a rule from its wire form.
func (RuleFactory) CreateFromBackendDict(dict BackendRuleDict) Rule {
	return Rule{Type: dict.RuleType, Inputs: dict.Inputs}
}

func cloneInputs(in RuleInputs) RuleInputs {
	if in == nil {
		return nil
	}
	out := make(RuleInputs, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep copies the shapes JSON decoding produces.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = cloneValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = cloneValue(elem)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return val
	}
}
