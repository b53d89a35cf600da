package consts

// IDLength is the length of generated topic, story and skill ids.
const IDLength = 12

// Path segments with a meaning of their own.
const (
	SegEmbed = "embed"
)

// Query keys read by the exploration player.
const (
	QueryParent       = "parent"
	QueryCollectionID = "collection_id"
	QueryVersion      = "v"
	QueryStoryID      = "story_id"
)

// Messages carried by InvalidURLError. Callers match on these verbatim.
const (
	MsgInvalidTopicID          = "Invalid topic id url"
	MsgInvalidTopicURL         = "Invalid URL for topic"
	MsgInvalidClassroomURL     = "Invalid URL for classroom"
	MsgInvalidSubtopicURL      = "Invalid URL for subtopic"
	MsgInvalidStoryID          = "Invalid story id url"
	MsgInvalidSkillID          = "Invalid Skill Id"
	MsgInvalidProfileURL       = "Invalid profile URL"
	MsgInvalidCollectionURL    = "Invalid collection URL"
	MsgInvalidCollectionEditor = "Invalid collection editor URL"
)
