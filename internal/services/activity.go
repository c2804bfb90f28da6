package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/types"
)

const activitySystemPrompt = "You are an expert in creating engaging educational activities for children. Create fun, interactive activities that promote learning and creativity."

const activityMaxTokens = 1000

// ActivityService mirrors StoryService for learning activities.
type ActivityService interface {
	Generate(ctx context.Context, req types.ActivityGenerationRequest) *types.Activity
	// ActivityImage returns an asset reference for visual activity kinds,
	// falling back to the stock image on any failure.
	ActivityImage(ctx context.Context, kind types.ActivityKind, theme string) string
}

type activityService struct {
	log         *logger.Logger
	textClients []TextClient
	imageClient ImageClient
}

func NewActivityService(log *logger.Logger, textClients []TextClient, imageClient ImageClient) ActivityService {
	return &activityService{
		log:         log.With("service", "ActivityService"),
		textClients: textClients,
		imageClient: imageClient,
	}
}

func activityUserPrompt(req types.ActivityGenerationRequest) string {
	themed := ""
	if req.Theme != "" {
		themed = fmt.Sprintf(" themed around %q", req.Theme)
	}
	return fmt.Sprintf(`Create a %s activity for children aged %s with %s difficulty%s.

Return JSON with:
- title: Engaging activity title
- instructions: Clear, child-friendly instructions
- content: Activity-specific content (questions for math, words for letters, etc.)

Make it fun and educational!`,
		req.Type, req.AgeGroup, req.Difficulty, themed)
}

type activityPayload struct {
	Title        string          `json:"title"`
	Instructions string          `json:"instructions"`
	Content      json.RawMessage `json:"content"`
}

// normalizeActivity maps a provider completion into an Activity. Type,
// difficulty and age group come from the request; the provider contributes
// title, instructions and the kind-specific content payload, which is kept as
// raw JSON.
func normalizeActivity(completion string, providerName string, req types.ActivityGenerationRequest) (*types.Activity, error) {
	var payload activityPayload
	if err := json.Unmarshal([]byte(completion), &payload); err != nil {
		return nil, &MalformedPayloadError{Provider: providerName, Reason: "activity payload not valid JSON", Err: err}
	}
	if payload.Title == "" || payload.Instructions == "" {
		return nil, &MalformedPayloadError{Provider: providerName, Reason: "missing title or instructions"}
	}
	if len(payload.Content) == 0 {
		return nil, &MalformedPayloadError{Provider: providerName, Reason: "missing content"}
	}
	return &types.Activity{
		ID:           uuid.New(),
		Title:        payload.Title,
		Type:         req.Type,
		Difficulty:   req.Difficulty,
		AgeGroup:     req.AgeGroup,
		Content:      datatypes.JSON(payload.Content),
		Instructions: payload.Instructions,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (as *activityService) Generate(ctx context.Context, req types.ActivityGenerationRequest) *types.Activity {
	system := activitySystemPrompt
	user := activityUserPrompt(req)

	for _, client := range as.textClients {
		completion, err := client.Complete(ctx, system, user, activityMaxTokens)
		if err != nil {
			as.log.Warn("Activity provider attempt failed", "provider", client.Name(), "error", err)
			continue
		}
		activity, err := normalizeActivity(completion, client.Name(), req)
		if err != nil {
			as.log.Warn("Activity provider payload rejected", "provider", client.Name(), "error", err)
			continue
		}
		return activity
	}

	return placeholderActivity(req)
}

func placeholderActivity(req types.ActivityGenerationRequest) *types.Activity {
	kindName := string(req.Type)
	title := strings.ToUpper(kindName[:1]) + kindName[1:] + " Adventure"
	return &types.Activity{
		ID:           uuid.New(),
		Title:        title,
		Type:         req.Type,
		Difficulty:   req.Difficulty,
		AgeGroup:     req.AgeGroup,
		Content:      placeholderContent(req.Type),
		Instructions: fmt.Sprintf("Let's have fun with this %s activity! Follow the steps and enjoy learning.", req.Type),
		CreatedAt:    time.Now().UTC(),
	}
}

func placeholderContent(kind types.ActivityKind) datatypes.JSON {
	var content any
	switch kind {
	case types.ActivityColoring:
		content = types.ColoringContent{
			ImageURL: stockImageURL,
			Colors:   []string{"red", "blue", "yellow", "green", "purple", "orange"},
		}
	case types.ActivityMath:
		content = types.MathContent{
			Problems: []types.MathProblem{
				{Question: "2 + 3 = ?", Answer: 5},
				{Question: "5 - 2 = ?", Answer: 3},
				{Question: "4 + 1 = ?", Answer: 5},
			},
		}
	case types.ActivityLetters:
		content = types.LettersContent{
			Letters: []string{"A", "B", "C", "D", "E"},
			Words:   []string{"Apple", "Ball", "Cat", "Dog", "Elephant"},
		}
	case types.ActivityPuzzle:
		content = types.PuzzleContent{Pieces: 12, ImageURL: stockImageURL}
	case types.ActivityDrawing:
		content = types.DrawingContent{
			Prompt: "Draw your favorite animal",
			Tools:  []string{"pencil", "crayon", "marker"},
		}
	case types.ActivityWords:
		content = types.WordsContent{
			Vocabulary: []string{"happy", "sunny", "friend", "play", "learn"},
		}
	case types.ActivityDictation:
		content = types.DictationContent{
			Sentences: []string{"The cat is happy.", "I love to play.", "Books are fun."},
		}
	case types.ActivityPaintByNumber:
		content = types.PaintByNumberContent{
			ImageURL: stockImageURL,
			ColorMap: map[string]string{"1": "red", "2": "blue", "3": "yellow"},
		}
	default:
		content = map[string]any{}
	}
	raw, _ := json.Marshal(content)
	return datatypes.JSON(raw)
}

func (as *activityService) ActivityImage(ctx context.Context, kind types.ActivityKind, theme string) string {
	if as.imageClient == nil {
		return stockImageURL
	}
	themed := ""
	if theme != "" {
		themed = fmt.Sprintf(" with %s theme", theme)
	}
	prompt := fmt.Sprintf("Children's %s activity illustration%s, colorful, educational, fun, child-friendly", kind, themed)
	asset, err := as.imageClient.Generate(ctx, prompt)
	if err != nil {
		as.log.Warn("Activity image generation failed, using fallback", "error", err)
		return stockImageURL
	}
	return asset
}
