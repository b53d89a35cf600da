package pageurl

import (
	"errors"
	"math"
	"strconv"
)

// FieldResult is the outcome of one extractor.
// Found is false both for an absent query value and for a route mismatch;
// Error and Code are only set for the latter.
type FieldResult struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Found bool   `json:"found"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

// Report gathers everything the Service can say about the current address.
type Report struct {
	Location Location          `json:"location"`
	Href     string            `json:"href"`
	Params   map[string]string `json:"params"`
	Iframed  bool              `json:"iframed"`
	Fields   []FieldResult     `json:"fields"`
}

type routeExtractor struct {
	name string
	fn   func(*Service) (string, error)
}

var routeExtractors = []routeExtractor{
	{"topic_id", (*Service).TopicIDFromURL},
	{"topic_name", (*Service).TopicNameFromLearnerURL},
	{"classroom_name", (*Service).ClassroomNameFromURL},
	{"subtopic_id", (*Service).SubtopicIDFromURL},
	{"story_id", (*Service).StoryIDFromURL},
	{"story_id_viewer", (*Service).StoryIDFromViewerURL},
	{"skill_id", (*Service).SkillIDFromURL},
	{"username", (*Service).UsernameFromProfileURL},
	{"collection_id", (*Service).CollectionIDFromURL},
	{"collection_id_editor", (*Service).CollectionIDFromEditorURL},
}

// Report runs every extractor once against the current address.
func (s *Service) Report() Report {
	loc := s.CurrentLocation()
	rpt := Report{
		Location: loc,
		Href:     loc.Href(),
		Params:   s.URLParams(),
		Iframed:  s.IsIframed(),
		Fields:   make([]FieldResult, 0, len(routeExtractors)+3),
	}

	for _, ex := range routeExtractors {
		fr := FieldResult{Name: ex.name}
		if val, err := ex.fn(s); err != nil {
			fr.Error = err.Error()
			var invalid *InvalidURLError
			if errors.As(err, &invalid) {
				fr.Code = invalid.Code()
			}
		} else {
			fr.Value, fr.Found = val, true
		}
		rpt.Fields = append(rpt.Fields, fr)
	}

	storyID, ok := s.StoryIDInPlayer()
	rpt.Fields = append(rpt.Fields, FieldResult{Name: "player_story_id", Value: storyID, Found: ok})

	collectionID, ok := s.CollectionIDFromExplorationURL()
	rpt.Fields = append(rpt.Fields, FieldResult{Name: "exploration_collection_id", Value: collectionID, Found: ok})

	fr := FieldResult{Name: "exploration_version"}
	if version, ok := s.ExplorationVersionFromURL(); ok {
		fr.Value, fr.Found = formatNumber(version), true
	}
	rpt.Fields = append(rpt.Fields, fr)

	return rpt
}

// Field returns the named result, if the report has it.
func (r Report) Field(name string) (FieldResult, bool) {
	for _, fr := range r.Fields {
		if fr.Name == name {
			return fr, true
		}
	}
	return FieldResult{}, false
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
