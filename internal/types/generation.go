package types

type StoryLength string

const (
	StoryLengthShort  StoryLength = "short"
	StoryLengthMedium StoryLength = "medium"
	StoryLengthLong   StoryLength = "long"
)

func ValidStoryLength(l StoryLength) bool {
	switch l {
	case StoryLengthShort, StoryLengthMedium, StoryLengthLong:
		return true
	default:
		return false
	}
}

// StoryGenerationRequest describes one requested story. Constructed fresh per
// call; carries no identity.
type StoryGenerationRequest struct {
	Theme      string      `json:"theme" binding:"required"`
	AgeGroup   AgeGroup    `json:"ageGroup" binding:"required"`
	LifeLesson string      `json:"lifeLesson" binding:"required"`
	Length     StoryLength `json:"length" binding:"required"`
}

type ActivityGenerationRequest struct {
	Type       ActivityKind `json:"type" binding:"required"`
	AgeGroup   string       `json:"ageGroup" binding:"required"`
	Difficulty Difficulty   `json:"difficulty" binding:"required"`
	Theme      string       `json:"theme,omitempty"`
}
