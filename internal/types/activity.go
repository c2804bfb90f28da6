package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityKind string

const (
	ActivityColoring      ActivityKind = "coloring"
	ActivityPuzzle        ActivityKind = "puzzle"
	ActivityDrawing       ActivityKind = "drawing"
	ActivityMath          ActivityKind = "math"
	ActivityLetters       ActivityKind = "letters"
	ActivityWords         ActivityKind = "words"
	ActivityDictation     ActivityKind = "dictation"
	ActivityPaintByNumber ActivityKind = "paint-by-numbers"
)

func ValidActivityKind(k ActivityKind) bool {
	switch k {
	case ActivityColoring, ActivityPuzzle, ActivityDrawing, ActivityMath,
		ActivityLetters, ActivityWords, ActivityDictation, ActivityPaintByNumber:
		return true
	default:
		return false
	}
}

// VisualActivityKind reports whether the kind carries an image asset that
// image enrichment may fill in.
func VisualActivityKind(k ActivityKind) bool {
	switch k {
	case ActivityColoring, ActivityDrawing, ActivityPaintByNumber:
		return true
	default:
		return false
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Activity content is an open-ended payload whose shape depends on Type; it is
// stored as a JSON column. AgeGroup is deliberately free-form here (unlike
// stories) to match how activities were always recorded.
type Activity struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;index;column:user_id" json:"user_id"`
	Title        string         `gorm:"not null;column:title" json:"title"`
	Type         ActivityKind   `gorm:"not null;column:type" json:"type"`
	Difficulty   Difficulty     `gorm:"not null;column:difficulty" json:"difficulty"`
	AgeGroup     string         `gorm:"not null;column:age_group" json:"ageGroup"`
	Content      datatypes.JSON `gorm:"column:content" json:"content"`
	Instructions string         `gorm:"not null;column:instructions" json:"instructions"`
	CreatedAt    time.Time      `gorm:"not null;column:created_at" json:"createdAt"`
}

func (Activity) TableName() string {
	return "activities"
}
