package types

import (
	"time"

	"github.com/google/uuid"
)

type StoryCategory string

const (
	StoryCategoryBedtime     StoryCategory = "bedtime"
	StoryCategoryEducational StoryCategory = "educational"
	StoryCategoryAdventure   StoryCategory = "adventure"
	StoryCategoryMoral       StoryCategory = "moral"
)

func ValidStoryCategory(c StoryCategory) bool {
	switch c {
	case StoryCategoryBedtime, StoryCategoryEducational, StoryCategoryAdventure, StoryCategoryMoral:
		return true
	default:
		return false
	}
}

type AgeGroup string

const (
	AgeGroup3to5  AgeGroup = "3-5"
	AgeGroup6to8  AgeGroup = "6-8"
	AgeGroup9to12 AgeGroup = "9-12"
)

func ValidAgeGroup(a AgeGroup) bool {
	switch a {
	case AgeGroup3to5, AgeGroup6to8, AgeGroup9to12:
		return true
	default:
		return false
	}
}

type Story struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID     `gorm:"type:uuid;index;column:user_id" json:"user_id"`
	Title       string        `gorm:"not null;column:title" json:"title"`
	Content     string        `gorm:"not null;column:content" json:"content"`
	Category    StoryCategory `gorm:"not null;column:category" json:"category"`
	AgeGroup    AgeGroup      `gorm:"not null;column:age_group" json:"ageGroup"`
	CoverImage  string        `gorm:"column:cover_image" json:"coverImage,omitempty"`
	AudioURL    string        `gorm:"column:audio_url" json:"audioUrl,omitempty"`
	LifeLesson  string        `gorm:"column:life_lesson" json:"lifeLesson,omitempty"`
	ReadingTime int           `gorm:"not null;column:reading_time" json:"readingTime"`
	CreatedAt   time.Time     `gorm:"not null;column:created_at" json:"createdAt"`
}

func (Story) TableName() string {
	return "stories"
}
