package pageurl_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/pageurl"
	"github.com/rohanthewiz/pageurl/window"
)

func TestRouteFieldExtractors(t *testing.T) {
	type extractor func(*pageurl.Service) (string, error)

	tests := []struct {
		name    string
		href    string
		fn      extractor
		want    string
		wantErr string
	}{
		{"topic id", "/topic_editor/abcdefghijkl", (*pageurl.Service).TopicIDFromURL, "abcdefghijkl", ""},
		{"topic id with hyphen", "/topic_editor/abc-efgh_jkl", (*pageurl.Service).TopicIDFromURL, "abc-efgh_jkl", ""},
		{"topic id longer token", "/topic_editor/abcdefghijkl123", (*pageurl.Service).TopicIDFromURL, "abcdefghijkl123", ""},
		{"topic id too short", "/topic_editor/abcdefghij", (*pageurl.Service).TopicIDFromURL, "", "Invalid topic id url"},
		{"topic id wrong page", "/story_editor/abcdefghijkl", (*pageurl.Service).TopicIDFromURL, "", "Invalid topic id url"},

		{"topic name", "/topic/Fractions%20and%20Decimals", (*pageurl.Service).TopicNameFromLearnerURL, "Fractions and Decimals", ""},
		{"topic name practice", "/practice_session/fractions", (*pageurl.Service).TopicNameFromLearnerURL, "fractions", ""},
		{"topic name no segment", "/story", (*pageurl.Service).TopicNameFromLearnerURL, "", "Invalid URL for topic"},
		{"topic name wrong page", "/about", (*pageurl.Service).TopicNameFromLearnerURL, "", "Invalid URL for topic"},

		{"classroom", "/math", (*pageurl.Service).ClassroomNameFromURL, "math", ""},
		{"classroom decoded", "/math%20class", (*pageurl.Service).ClassroomNameFromURL, "math class", ""},
		{"classroom too deep", "/learn/math", (*pageurl.Service).ClassroomNameFromURL, "", "Invalid URL for classroom"},

		{"subtopic", "/subtopic/fractions/intro%20part", (*pageurl.Service).SubtopicIDFromURL, "intro part", ""},
		{"subtopic too short", "/subtopic/fractions", (*pageurl.Service).SubtopicIDFromURL, "", "Invalid URL for subtopic"},
		{"subtopic wrong page", "/topic/fractions/1", (*pageurl.Service).SubtopicIDFromURL, "", "Invalid URL for subtopic"},

		{"story editor", "/story_editor/abcdefghijkl", (*pageurl.Service).StoryIDFromURL, "abcdefghijkl", ""},
		{"review test", "/review_test/abc-efghij_l", (*pageurl.Service).StoryIDFromURL, "abc-efghij_l", ""},
		{"story editor short", "/story_editor/short", (*pageurl.Service).StoryIDFromURL, "", "Invalid story id url"},

		{"story viewer", "/story/abcdefghijkl", (*pageurl.Service).StoryIDFromViewerURL, "abcdefghijkl", ""},
		{"story viewer on editor", "/story_editor/abcdefghijkl", (*pageurl.Service).StoryIDFromViewerURL, "", "Invalid story id url"},

		{"skill", "/skill_editor/abcdefghijkl", (*pageurl.Service).SkillIDFromURL, "abcdefghijkl", ""},
		{"skill short", "/skill_editor/abc", (*pageurl.Service).SkillIDFromURL, "", "Invalid Skill Id"},
		{"skill missing", "/skill_editor", (*pageurl.Service).SkillIDFromURL, "", "Invalid Skill Id"},

		{"profile", "/profile/jane%20doe", (*pageurl.Service).UsernameFromProfileURL, "jane doe", ""},
		{"profile wrong page", "/about", (*pageurl.Service).UsernameFromProfileURL, "", "Invalid profile URL"},

		{"collection", "/collection/col1", (*pageurl.Service).CollectionIDFromURL, "col1", ""},
		{"collection matches editor prefix", "/collection_editor/create/col2", (*pageurl.Service).CollectionIDFromURL, "create", ""},
		{"collection wrong page", "/", (*pageurl.Service).CollectionIDFromURL, "", "Invalid collection URL"},

		{"collection editor", "/collection_editor/create/col%2F2", (*pageurl.Service).CollectionIDFromEditorURL, "col/2", ""},
		{"collection editor edit", "/collection_editor/edit/x", (*pageurl.Service).CollectionIDFromEditorURL, "", "Invalid collection editor URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := pageurl.New(window.Parse("https://www.oppia.org" + tt.href))

			got, err := tt.fn(svc)
			if tt.wantErr == "" {
				assert.Nil(t, err)
				assert.Equal(t, got, tt.want)
				return
			}

			assert.NotNil(t, err)
			assert.Equal(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, pageurl.ErrInvalidURL))
			assert.Equal(t, got, "")
		})
	}
}

func TestInvalidURLErrorDetails(t *testing.T) {
	svc := pageurl.New(window.Parse("/profile/%E0%A4%A"))

	_, err := svc.UsernameFromProfileURL()
	assert.NotNil(t, err)

	var invalid *pageurl.InvalidURLError
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, invalid.Message, "Invalid profile URL")
	assert.Equal(t, invalid.Pathname, "/profile/%E0%A4%A")
	assert.Equal(t, invalid.Code(), "invalid_url")
	assert.NotNil(t, errors.Unwrap(err))
}

func TestIsIframed(t *testing.T) {
	assert.True(t, pageurl.New(window.Parse("/embed/exploration/abc")).IsIframed())
	assert.False(t, pageurl.New(window.Parse("/exploration/abc")).IsIframed())
	assert.False(t, pageurl.New(window.Parse("/")).IsIframed())
}

func TestExtractorsReadLiveLocation(t *testing.T) {
	win := window.Parse("/topic_editor/abcdefghijkl")
	svc := pageurl.New(win)

	first, err := svc.TopicIDFromURL()
	assert.Nil(t, err)
	second, err := svc.TopicIDFromURL()
	assert.Nil(t, err)
	assert.Equal(t, first, second)

	win.Navigate("/topic_editor/zyxwvutsrqpo")
	third, err := svc.TopicIDFromURL()
	assert.Nil(t, err)
	assert.Equal(t, third, "zyxwvutsrqpo")

	win.Navigate("/about")
	_, err = svc.TopicIDFromURL()
	assert.NotNil(t, err)
}
