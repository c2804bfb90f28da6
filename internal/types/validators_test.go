package types

import "testing"

func TestValidStoryCategory(t *testing.T) {
	for _, c := range []StoryCategory{StoryCategoryBedtime, StoryCategoryEducational, StoryCategoryAdventure, StoryCategoryMoral} {
		if !ValidStoryCategory(c) {
			t.Errorf("ValidStoryCategory(%q) = false", c)
		}
	}
	if ValidStoryCategory("spooky") {
		t.Errorf("ValidStoryCategory accepted an unknown category")
	}
}

func TestValidAgeGroup(t *testing.T) {
	for _, a := range []AgeGroup{AgeGroup3to5, AgeGroup6to8, AgeGroup9to12} {
		if !ValidAgeGroup(a) {
			t.Errorf("ValidAgeGroup(%q) = false", a)
		}
	}
	if ValidAgeGroup("4-7") {
		t.Errorf("ValidAgeGroup accepted an unknown band")
	}
}

func TestValidActivityKind(t *testing.T) {
	kinds := []ActivityKind{
		ActivityColoring, ActivityPuzzle, ActivityDrawing, ActivityMath,
		ActivityLetters, ActivityWords, ActivityDictation, ActivityPaintByNumber,
	}
	for _, k := range kinds {
		if !ValidActivityKind(k) {
			t.Errorf("ValidActivityKind(%q) = false", k)
		}
	}
	if ValidActivityKind("karaoke") {
		t.Errorf("ValidActivityKind accepted an unknown kind")
	}
}

func TestVisualActivityKind(t *testing.T) {
	visual := map[ActivityKind]bool{
		ActivityColoring:      true,
		ActivityDrawing:       true,
		ActivityPaintByNumber: true,
	}
	kinds := []ActivityKind{
		ActivityColoring, ActivityPuzzle, ActivityDrawing, ActivityMath,
		ActivityLetters, ActivityWords, ActivityDictation, ActivityPaintByNumber,
	}
	for _, k := range kinds {
		if got := VisualActivityKind(k); got != visual[k] {
			t.Errorf("VisualActivityKind(%q) = %v, want %v", k, got, visual[k])
		}
	}
}

func TestValidStoryLength(t *testing.T) {
	for _, l := range []StoryLength{StoryLengthShort, StoryLengthMedium, StoryLengthLong} {
		if !ValidStoryLength(l) {
			t.Errorf("ValidStoryLength(%q) = false", l)
		}
	}
	if ValidStoryLength("epic") {
		t.Errorf("ValidStoryLength accepted an unknown length")
	}
}
