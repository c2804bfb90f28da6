package repos

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/storysprout/storysprout-backend/internal/types"
)

func TestActivityRepoCreateAndGetByUserID(t *testing.T) {
	db, log := newTestDB(t)
	repo := NewActivityRepo(db, log)
	userID := uuid.New()
	now := time.Now().UTC()

	content, _ := json.Marshal(types.MathContent{
		Problems: []types.MathProblem{{Question: "2 + 2 = ?", Answer: 4}},
	})
	older := &types.Activity{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        "Math Adventure",
		Type:         types.ActivityMath,
		Difficulty:   types.DifficultyEasy,
		AgeGroup:     "6-8",
		Content:      datatypes.JSON(content),
		Instructions: "Solve each problem.",
		CreatedAt:    now.Add(-time.Hour),
	}
	if _, err := repo.Create(context.Background(), nil, older); err != nil {
		t.Fatalf("create: %v", err)
	}
	newer := &types.Activity{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        "Coloring Adventure",
		Type:         types.ActivityColoring,
		Difficulty:   types.DifficultyEasy,
		AgeGroup:     "3-5",
		Content:      datatypes.JSON(`{"imageUrl":"x","colors":["red"]}`),
		Instructions: "Color the picture.",
		CreatedAt:    now,
	}
	if _, err := repo.Create(context.Background(), nil, newer); err != nil {
		t.Fatalf("create: %v", err)
	}

	activities, err := repo.GetByUserID(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("len = %d, want 2", len(activities))
	}
	if activities[0].ID != newer.ID {
		t.Fatalf("order = %q first, want newest first", activities[0].Title)
	}

	var got types.MathContent
	if err := json.Unmarshal(activities[1].Content, &got); err != nil {
		t.Fatalf("content did not survive the JSON column round trip: %v", err)
	}
	if len(got.Problems) != 1 || got.Problems[0].Answer != 4 {
		t.Fatalf("content = %+v", got)
	}

	other, err := repo.GetByUserID(context.Background(), nil, uuid.New())
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("activities leaked across users")
	}
}
