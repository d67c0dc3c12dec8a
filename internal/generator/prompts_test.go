package generator

import (
	"strings"
	"testing"
)

func TestSystemPromptDemandsJSON(t *testing.T) {
	prompt := SystemPrompt()

	for _, want := range []string{"valid JSON only", "correct_answer", "4 options"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestBuildChapterPromptKnownChapter(t *testing.T) {
	prompt := BuildChapterPrompt("circulation", "Circulation", 5)

	if !strings.Contains(prompt, "Generate 5 new quiz questions") {
		t.Error("prompt missing question count")
	}
	if !strings.Contains(prompt, "thermohaline") {
		t.Error("prompt missing chapter topic guidance")
	}
}

func TestBuildChapterPromptUnknownChapterFallsBack(t *testing.T) {
	prompt := BuildChapterPrompt("abyssal", "Abyssal Zones", 3)

	if !strings.Contains(prompt, `"Abyssal Zones"`) {
		t.Error("fallback prompt missing chapter title")
	}
	if !strings.Contains(prompt, "Generate 3 new quiz questions") {
		t.Error("fallback prompt missing question count")
	}
}

func TestChapterTopicsCoverBuiltinChapters(t *testing.T) {
	for _, id := range []string{"circulation", "ecosystem", "climate", "ocean_health"} {
		if _, ok := chapterTopics[id]; !ok {
			t.Errorf("no topic guidance for chapter %s", id)
		}
	}
}
