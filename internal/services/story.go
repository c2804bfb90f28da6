package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/types"
)

const stockImageURL = "https://images.pexels.com/photos/1148998/pexels-photo-1148998.jpeg?auto=compress&cs=tinysrgb&w=400"

const storySystemPrompt = "You are a master storyteller who creates enchanting children's stories. Create engaging, age-appropriate stories with valuable life lessons. The stories should be imaginative, fun, and educational."

// StoryService generates stories through the configured text providers in
// priority order, synthesizing a local placeholder when none succeed.
type StoryService interface {
	// Generate is total: it always returns a story satisfying the domain
	// invariants, falling back to a placeholder when every provider fails.
	Generate(ctx context.Context, req types.StoryGenerationRequest) *types.Story
	// CoverImage returns an asset reference for the story cover. It never
	// fails: without a configured image provider, or when generation errors,
	// it returns the stock fallback image.
	CoverImage(ctx context.Context, title string, theme string) string
}

type storyService struct {
	log         *logger.Logger
	textClients []TextClient
	imageClient ImageClient
}

func NewStoryService(log *logger.Logger, textClients []TextClient, imageClient ImageClient) StoryService {
	return &storyService{
		log:         log.With("service", "StoryService"),
		textClients: textClients,
		imageClient: imageClient,
	}
}

func storyWordRange(length types.StoryLength) string {
	switch length {
	case types.StoryLengthMedium:
		return "400-800"
	case types.StoryLengthLong:
		return "800-1200"
	default:
		return "200-400"
	}
}

func storyMaxTokens(length types.StoryLength) int {
	switch length {
	case types.StoryLengthMedium:
		return 1200
	case types.StoryLengthLong:
		return 2000
	default:
		return 800
	}
}

func storyUserPrompt(req types.StoryGenerationRequest) string {
	return fmt.Sprintf(`Create a %s story for children aged %s with the theme "%s" that teaches the life lesson: "%s".

Return a JSON object with:
- title: An engaging title
- content: The complete story (%s words)
- category: One of "bedtime", "educational", "adventure", "moral"
- readingTime: Estimated reading time in minutes`,
		req.Length, req.AgeGroup, req.Theme, req.LifeLesson, storyWordRange(req.Length))
}

// storyPayload is the structured part of a provider completion.
type storyPayload struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	ReadingTime int    `json:"readingTime"`
}

// normalizeStory maps a provider completion into a Story. Identity and
// timestamp are assigned here; age group and life lesson come from the request
// rather than the provider. Category and reading time are the provider's but
// are validated strictly: out-of-set or non-positive values reject the payload
// so the chain can move on.
func normalizeStory(completion string, providerName string, req types.StoryGenerationRequest) (*types.Story, error) {
	var payload storyPayload
	if err := json.Unmarshal([]byte(completion), &payload); err != nil {
		return nil, &MalformedPayloadError{Provider: providerName, Reason: "story payload not valid JSON", Err: err}
	}
	if payload.Title == "" || payload.Content == "" {
		return nil, &MalformedPayloadError{Provider: providerName, Reason: "missing title or content"}
	}
	category := types.StoryCategory(payload.Category)
	if !types.ValidStoryCategory(category) {
		return nil, &MalformedPayloadError{Provider: providerName, Reason: fmt.Sprintf("invalid category %q", payload.Category)}
	}
	if payload.ReadingTime <= 0 {
		return nil, &MalformedPayloadError{Provider: providerName, Reason: fmt.Sprintf("invalid readingTime %d", payload.ReadingTime)}
	}
	return &types.Story{
		ID:          uuid.New(),
		Title:       payload.Title,
		Content:     payload.Content,
		Category:    category,
		AgeGroup:    req.AgeGroup,
		LifeLesson:  req.LifeLesson,
		ReadingTime: payload.ReadingTime,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (ss *storyService) Generate(ctx context.Context, req types.StoryGenerationRequest) *types.Story {
	system := storySystemPrompt
	user := storyUserPrompt(req)
	maxTokens := storyMaxTokens(req.Length)

	for _, client := range ss.textClients {
		completion, err := client.Complete(ctx, system, user, maxTokens)
		if err != nil {
			ss.log.Warn("Story provider attempt failed", "provider", client.Name(), "error", err)
			continue
		}
		story, err := normalizeStory(completion, client.Name(), req)
		if err != nil {
			ss.log.Warn("Story provider payload rejected", "provider", client.Name(), "error", err)
			continue
		}
		return story
	}

	if len(ss.textClients) == 0 {
		ss.log.Debug("No text providers configured, synthesizing placeholder story")
	}
	return placeholderStory(req)
}

// placeholderStory is deterministic for a given request, modulo ID and
// timestamp.
func placeholderStory(req types.StoryGenerationRequest) *types.Story {
	return &types.Story{
		ID:    uuid.New(),
		Title: fmt.Sprintf("The Magical Adventure of %s", req.Theme),
		Content: fmt.Sprintf("Once upon a time, in a land filled with wonder and magic, there lived a brave little character who would learn about %s. This enchanting tale unfolds with excitement and valuable lessons that will inspire young hearts and minds.",
			req.LifeLesson),
		Category:    types.StoryCategoryAdventure,
		AgeGroup:    req.AgeGroup,
		LifeLesson:  req.LifeLesson,
		ReadingTime: 5,
		CreatedAt:   time.Now().UTC(),
	}
}

func (ss *storyService) CoverImage(ctx context.Context, title string, theme string) string {
	if ss.imageClient == nil {
		return stockImageURL
	}
	prompt := fmt.Sprintf("Children's book cover illustration for %q, %s, colorful, whimsical, magical, child-friendly art style", title, theme)
	asset, err := ss.imageClient.Generate(ctx, prompt)
	if err != nil {
		ss.log.Warn("Cover image generation failed, using fallback", "error", err)
		return stockImageURL
	}
	return asset
}
