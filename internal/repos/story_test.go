package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/storysprout/storysprout-backend/internal/types"
)

func seedStory(t *testing.T, repo StoryRepo, userID uuid.UUID, title string, createdAt time.Time) *types.Story {
	t.Helper()
	story := &types.Story{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Content:     "Once upon a time.",
		Category:    types.StoryCategoryBedtime,
		AgeGroup:    types.AgeGroup3to5,
		ReadingTime: 3,
		CreatedAt:   createdAt,
	}
	if _, err := repo.Create(context.Background(), nil, story); err != nil {
		t.Fatalf("create story: %v", err)
	}
	return story
}

func TestStoryRepoCreateAndGet(t *testing.T) {
	db, log := newTestDB(t)
	repo := NewStoryRepo(db, log)
	userID := uuid.New()

	created := seedStory(t, repo, userID, "The Sleepy Fox", time.Now().UTC())

	got, err := repo.GetByID(context.Background(), nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "The Sleepy Fox" || got.UserID != userID {
		t.Fatalf("got = %+v", got)
	}

	if _, err := repo.GetByID(context.Background(), nil, uuid.New()); err == nil {
		t.Fatalf("GetByID returned a story for an unknown id")
	}
}

func TestStoryRepoGetByUserIDNewestFirst(t *testing.T) {
	db, log := newTestDB(t)
	repo := NewStoryRepo(db, log)
	userID := uuid.New()
	now := time.Now().UTC()

	oldest := seedStory(t, repo, userID, "oldest", now.Add(-2*time.Hour))
	newest := seedStory(t, repo, userID, "newest", now)
	middle := seedStory(t, repo, userID, "middle", now.Add(-time.Hour))
	seedStory(t, repo, uuid.New(), "other user", now)

	stories, err := repo.GetByUserID(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(stories) != 3 {
		t.Fatalf("len = %d, want 3", len(stories))
	}
	if stories[0].ID != newest.ID || stories[1].ID != middle.ID || stories[2].ID != oldest.ID {
		t.Fatalf("order = %q, %q, %q; want newest first", stories[0].Title, stories[1].Title, stories[2].Title)
	}
}

func TestStoryRepoUpdateAudioURL(t *testing.T) {
	db, log := newTestDB(t)
	repo := NewStoryRepo(db, log)
	story := seedStory(t, repo, uuid.New(), "narrated", time.Now().UTC())

	audioURL := "data:audio/mpeg;base64,bXAz"
	if err := repo.UpdateAudioURL(context.Background(), nil, story.ID, audioURL); err != nil {
		t.Fatalf("UpdateAudioURL: %v", err)
	}

	got, err := repo.GetByID(context.Background(), nil, story.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.AudioURL != audioURL {
		t.Fatalf("audioURL = %q, want %q", got.AudioURL, audioURL)
	}
}
