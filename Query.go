package pageurl

import (
	"regexp"
	"strings"

	"github.com/rohanthewiz/pageurl/consts"
)

var (
	reQueryPair     = regexp.MustCompile(`[?&]+([^=&]+)=([^&]*)`)
	rePlayerStoryID = regexp.MustCompile(`\?` + consts.QueryStoryID + `=((\w|-){12})`)
)

// QueryString returns the current query string unmodified.
func (s *Service) QueryString() string {
	return s.Search()
}

// URLParams decodes the query string into a map.
// When a key repeats, the last occurrence wins; use QueryFieldValues
// to get every occurrence. A key or value that fails to decode is kept raw.
func (s *Service) URLParams() map[string]string {
	params := make(map[string]string)

	for _, m := range reQueryPair.FindAllStringSubmatch(s.QueryString(), -1) {
		params[decodeOrRaw(m[1])] = decodeOrRaw(m[2])
	}

	return params
}

// QueryFieldValues returns, in order, every value given for fieldName.
// Duplicates are kept.
func (s *Service) QueryFieldValues(fieldName string) []string {
	values := []string{}

	query := s.QueryString()
	qPos := strings.IndexByte(query, consts.RuneQuestion)
	if qPos < 0 {
		return values
	}

	for _, item := range strings.Split(query[qPos+1:], consts.StrAmp) {
		key, val, _ := strings.Cut(item, consts.StrEquals)
		if decodeOrRaw(key) == fieldName {
			values = append(values, decodeOrRaw(val))
		}
	}

	return values
}

// CollectionIDFromExplorationURL returns the collection_id query value.
// Explorations opened from a parent have no collection of their own,
// so the presence of "parent" yields nothing.
func (s *Service) CollectionIDFromExplorationURL() (string, bool) {
	params := s.URLParams()
	if _, ok := params[consts.QueryParent]; ok {
		return "", false
	}
	collectionID, ok := params[consts.QueryCollectionID]
	return collectionID, ok
}

// ExplorationVersionFromURL returns the "v" query value as a number.
// Anything after a '#' is dropped (the player iframe appends fragments to it).
// An unparseable version is returned as NaN, not as an error.
func (s *Service) ExplorationVersionFromURL() (float64, bool) {
	version, ok := s.URLParams()[consts.QueryVersion]
	if !ok {
		return 0, false
	}
	if hashPos := strings.IndexByte(version, consts.RuneHash); hashPos >= 0 {
		version = version[:hashPos]
	}
	return coerceNumber(version), true
}

// StoryIDInPlayer returns the story id carried as "?story_id=<12-char id>"
// in the player's query string.
func (s *Service) StoryIDInPlayer() (string, bool) {
	for _, part := range strings.Split(s.QueryString(), consts.StrAmp) {
		if rePlayerStoryID.MatchString(part) {
			_, storyID, _ := strings.Cut(part, consts.StrEquals)
			return storyID, true
		}
	}
	return "", false
}

// AddField appends an encoded field to url. See AddField.
func (s *Service) AddField(url, fieldName, fieldValue string) string {
	return AddField(url, fieldName, fieldValue)
}

// AddField appends "fieldName=fieldValue" to url, using '&' if url
// already has a query string and '?' otherwise.
func AddField(url, fieldName, fieldValue string) string {
	sep := consts.StrQuestion
	if strings.IndexByte(url, consts.RuneQuestion) >= 0 {
		sep = consts.StrAmp
	}
	return url + sep + encodeComponent(fieldName) + consts.StrEquals + encodeComponent(fieldValue)
}

func decodeOrRaw(s string) string {
	if out, err := decodeComponent(s); err == nil {
		return out
	}
	return s
}
