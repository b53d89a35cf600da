package pageurl

import (
	"fmt"
	"regexp"

	"github.com/rohanthewiz/pageurl/consts"
)

// The id patterns are substring matches on the whole path, not anchored
// to segment boundaries: "/topic_editor/abcdefghijkl_extra" is accepted.
var (
	reTopicEditor      = regexp.MustCompile(`/topic_editor/(\w|-){12}`)
	reLearnerTopic     = regexp.MustCompile(`/(story|topic|subtopic|practice_session)`)
	reSubtopic         = regexp.MustCompile(`/subtopic`)
	reStoryEditor      = regexp.MustCompile(`/(story_editor|review_test)/(\w|-){12}`)
	reStoryViewer      = regexp.MustCompile(`/story/(\w|-){12}`)
	reProfile          = regexp.MustCompile(`/(profile)`)
	reCollection       = regexp.MustCompile(`/(collection)`)
	reCollectionEditor = regexp.MustCompile(`/(collection_editor/create)`)
)

// routeRule describes one route shape and which segment holds the field.
type routeRule struct {
	pattern  *regexp.Regexp // nil means no pattern check
	segCount int            // exact segment count required; 0 means any
	index    int            // segment holding the field
	decode   bool           // percent-decode the segment
	message  string
}

var (
	ruleTopicID          = routeRule{pattern: reTopicEditor, index: 2, message: consts.MsgInvalidTopicID}
	ruleTopicName        = routeRule{pattern: reLearnerTopic, index: 2, decode: true, message: consts.MsgInvalidTopicURL}
	ruleClassroomName    = routeRule{segCount: 2, index: 1, decode: true, message: consts.MsgInvalidClassroomURL}
	ruleSubtopicID       = routeRule{pattern: reSubtopic, segCount: 4, index: 3, decode: true, message: consts.MsgInvalidSubtopicURL}
	ruleStoryID          = routeRule{pattern: reStoryEditor, index: 2, message: consts.MsgInvalidStoryID}
	ruleStoryViewerID    = routeRule{pattern: reStoryViewer, index: 2, message: consts.MsgInvalidStoryID}
	ruleUsername         = routeRule{pattern: reProfile, index: 2, decode: true, message: consts.MsgInvalidProfileURL}
	ruleCollectionID     = routeRule{pattern: reCollection, index: 2, decode: true, message: consts.MsgInvalidCollectionURL}
	ruleCollectionEditor = routeRule{pattern: reCollectionEditor, index: 3, decode: true, message: consts.MsgInvalidCollectionEditor}
)

// extract applies the rule to pathname.
func (r routeRule) extract(pathname string) (string, error) {
	if r.pattern != nil && !r.pattern.MatchString(pathname) {
		return "", invalidURL(r.message, pathname, nil)
	}

	parts := segments(pathname)
	if r.segCount > 0 && len(parts) != r.segCount {
		return "", invalidURL(r.message, pathname, nil)
	}

	seg, ok := segmentAt(parts, r.index)
	if !ok {
		return "", invalidURL(r.message, pathname,
			fmt.Errorf("path has no segment %d", r.index))
	}

	if !r.decode {
		return seg, nil
	}

	val, err := decodeComponent(seg)
	if err != nil {
		return "", invalidURL(r.message, pathname, err)
	}
	return val, nil
}

// TopicIDFromURL returns the topic id from a topic editor path
// such as /topic_editor/abcdefghijkl.
func (s *Service) TopicIDFromURL() (string, error) {
	return ruleTopicID.extract(s.Pathname())
}

// TopicNameFromLearnerURL returns the decoded topic name from a learner path
// such as /learn/math/fractions/story.
func (s *Service) TopicNameFromLearnerURL() (string, error) {
	return ruleTopicName.extract(s.Pathname())
}

// ClassroomNameFromURL returns the decoded classroom name from a single-component
// path such as /math.
func (s *Service) ClassroomNameFromURL() (string, error) {
	return ruleClassroomName.extract(s.Pathname())
}

// SubtopicIDFromURL returns the decoded subtopic id from a path
// such as /subtopic/topic-name/1.
func (s *Service) SubtopicIDFromURL() (string, error) {
	return ruleSubtopicID.extract(s.Pathname())
}

// StoryIDFromURL returns the story id from a story editor or review test path.
func (s *Service) StoryIDFromURL() (string, error) {
	return ruleStoryID.extract(s.Pathname())
}

// StoryIDFromViewerURL returns the story id from a story viewer path.
func (s *Service) StoryIDFromViewerURL() (string, error) {
	return ruleStoryViewerID.extract(s.Pathname())
}

// SkillIDFromURL returns the third path segment when it is exactly
// 12 characters long.
func (s *Service) SkillIDFromURL() (string, error) {
	pathname := s.Pathname()
	skillID, ok := segmentAt(segments(pathname), 2)
	if !ok || utf16Len(skillID) != consts.IDLength {
		return "", invalidURL(consts.MsgInvalidSkillID, pathname, nil)
	}
	return skillID, nil
}

// UsernameFromProfileURL returns the decoded username from /profile/<username>.
func (s *Service) UsernameFromProfileURL() (string, error) {
	return ruleUsername.extract(s.Pathname())
}

// CollectionIDFromURL returns the decoded collection id from /collection/<id>.
func (s *Service) CollectionIDFromURL() (string, error) {
	return ruleCollectionID.extract(s.Pathname())
}

// CollectionIDFromEditorURL returns the decoded collection id from
// /collection_editor/create/<id>.
func (s *Service) CollectionIDFromEditorURL() (string, error) {
	return ruleCollectionEditor.extract(s.Pathname())
}

// IsIframed reports whether the page is served under /embed.
func (s *Service) IsIframed() bool {
	seg, _ := segmentAt(segments(s.Pathname()), 1)
	return seg == consts.SegEmbed
}
