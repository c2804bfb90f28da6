package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/repos"
	"github.com/storysprout/storysprout-backend/internal/types"
)

// ContentStore holds the generated content for the running session. The
// in-memory lists stay authoritative for readers regardless of persistence
// outcome; database saves are copies, fire-and-forget.
//
// The in-flight flag and error message are store-wide, not per invocation:
// when two generations overlap, whichever finishes last wins both fields.
// That matches the behavior this store has always had; the mutex below only
// keeps the fields data-race free, it does not serialize generations.
type ContentStore struct {
	log *logger.Logger

	storyService    StoryService
	activityService ActivityService
	storyRepo       repos.StoryRepo
	activityRepo    repos.ActivityRepo

	mu           sync.Mutex
	stories      []*types.Story
	activities   []*types.Activity
	isGenerating bool
	errMsg       string
}

func NewContentStore(log *logger.Logger, storyService StoryService, activityService ActivityService, storyRepo repos.StoryRepo, activityRepo repos.ActivityRepo) *ContentStore {
	return &ContentStore{
		log:             log.With("service", "ContentStore"),
		storyService:    storyService,
		activityService: activityService,
		storyRepo:       storyRepo,
		activityRepo:    activityRepo,
	}
}

func validateStoryRequest(req types.StoryGenerationRequest) error {
	if !types.ValidAgeGroup(req.AgeGroup) {
		return fmt.Errorf("invalid ageGroup %q", req.AgeGroup)
	}
	if !types.ValidStoryLength(req.Length) {
		return fmt.Errorf("invalid length %q", req.Length)
	}
	return nil
}

func validateActivityRequest(req types.ActivityGenerationRequest) error {
	if !types.ValidActivityKind(req.Type) {
		return fmt.Errorf("invalid activity type %q", req.Type)
	}
	if !types.ValidDifficulty(req.Difficulty) {
		return fmt.Errorf("invalid difficulty %q", req.Difficulty)
	}
	return nil
}

func (cs *ContentStore) GenerateStory(ctx context.Context, userID uuid.UUID, req types.StoryGenerationRequest) (*types.Story, error) {
	cs.setGenerating(true)

	if err := validateStoryRequest(req); err != nil {
		cs.failGeneration(err)
		return nil, err
	}

	story := cs.storyService.Generate(ctx, req)
	story.UserID = userID
	story.CoverImage = cs.storyService.CoverImage(ctx, story.Title, req.Theme)

	if cs.storyRepo != nil {
		if _, err := cs.storyRepo.Create(ctx, nil, story); err != nil {
			cs.log.Warn("Failed to save story to database", "story_id", story.ID, "error", err)
		}
	}

	cs.mu.Lock()
	cs.stories = append([]*types.Story{story}, cs.stories...)
	cs.isGenerating = false
	cs.mu.Unlock()

	return story, nil
}

func (cs *ContentStore) GenerateActivity(ctx context.Context, userID uuid.UUID, req types.ActivityGenerationRequest) (*types.Activity, error) {
	cs.setGenerating(true)

	if err := validateActivityRequest(req); err != nil {
		cs.failGeneration(err)
		return nil, err
	}

	activity := cs.activityService.Generate(ctx, req)
	activity.UserID = userID

	if types.VisualActivityKind(activity.Type) {
		asset := cs.activityService.ActivityImage(ctx, activity.Type, req.Theme)
		cs.setActivityImage(activity, asset)
	}

	if cs.activityRepo != nil {
		if _, err := cs.activityRepo.Create(ctx, nil, activity); err != nil {
			cs.log.Warn("Failed to save activity to database", "activity_id", activity.ID, "error", err)
		}
	}

	cs.mu.Lock()
	cs.activities = append([]*types.Activity{activity}, cs.activities...)
	cs.isGenerating = false
	cs.mu.Unlock()

	return activity, nil
}

// setActivityImage rewrites only the imageUrl key of the content payload; any
// failure leaves the activity untouched.
func (cs *ContentStore) setActivityImage(activity *types.Activity, asset string) {
	if asset == "" {
		return
	}
	var content map[string]any
	if err := json.Unmarshal(activity.Content, &content); err != nil {
		cs.log.Warn("Activity content not an object, skipping image enrichment", "activity_id", activity.ID, "error", err)
		return
	}
	if content == nil {
		content = map[string]any{}
	}
	content["imageUrl"] = asset
	raw, err := json.Marshal(content)
	if err != nil {
		return
	}
	activity.Content = raw
}

// LoadUserContent replaces the session lists with the user's persisted
// content, newest first.
func (cs *ContentStore) LoadUserContent(ctx context.Context, userID uuid.UUID) error {
	stories, err := cs.storyRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		cs.log.Error("Failed to load user stories", "user_id", userID, "error", err)
		cs.failGeneration(fmt.Errorf("failed to load your content"))
		return err
	}
	activities, err := cs.activityRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		cs.log.Error("Failed to load user activities", "user_id", userID, "error", err)
		cs.failGeneration(fmt.Errorf("failed to load your content"))
		return err
	}

	cs.mu.Lock()
	cs.stories = stories
	cs.activities = activities
	cs.mu.Unlock()
	return nil
}

func (cs *ContentStore) AddStory(story *types.Story) {
	cs.mu.Lock()
	cs.stories = append([]*types.Story{story}, cs.stories...)
	cs.mu.Unlock()
}

func (cs *ContentStore) AddActivity(activity *types.Activity) {
	cs.mu.Lock()
	cs.activities = append([]*types.Activity{activity}, cs.activities...)
	cs.mu.Unlock()
}

func (cs *ContentStore) Stories() []*types.Story {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]*types.Story, len(cs.stories))
	copy(out, cs.stories)
	return out
}

func (cs *ContentStore) Activities() []*types.Activity {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]*types.Activity, len(cs.activities))
	copy(out, cs.activities)
	return out
}

func (cs *ContentStore) IsGenerating() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.isGenerating
}

func (cs *ContentStore) Err() string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.errMsg
}

func (cs *ContentStore) ClearError() {
	cs.mu.Lock()
	cs.errMsg = ""
	cs.mu.Unlock()
}

func (cs *ContentStore) setGenerating(v bool) {
	cs.mu.Lock()
	cs.isGenerating = v
	cs.errMsg = ""
	cs.mu.Unlock()
}

func (cs *ContentStore) failGeneration(err error) {
	cs.mu.Lock()
	cs.errMsg = err.Error()
	cs.isGenerating = false
	cs.mu.Unlock()
}
