package generator

import (
	"fmt"
	"strings"
)

// chapterTopics steers generation toward each chapter's subject matter. The
// key is the chapter id the browser app uses.
var chapterTopics = map[string]string{
	"circulation": `FOCUS: ocean circulation and the human circulatory system.
Parallel pairs to draw on:
- The thermohaline "conveyor belt" and the heart-driven blood loop
- Warm and cold currents vs. arterial and venous flow
- Upwelling delivering nutrients vs. capillary exchange delivering oxygen
- Gyres and eddies vs. vortices in blood flow near valves`,

	"ecosystem": `FOCUS: ocean ecosystems and the human body as an ecosystem of organs.
Parallel pairs to draw on:
- Coral reefs as dense hubs of exchange vs. organ systems cooperating
- The gut microbiome vs. plankton communities at the base of the food web
- Keystone species vs. regulatory organs whose loss cascades
- Symbiosis on the reef vs. symbiosis between body and microbes`,

	"climate": `FOCUS: the ocean as climate regulator and the body's temperature regulation.
Parallel pairs to draw on:
- Ocean heat uptake vs. sweating and vasodilation shedding heat
- Currents redistributing heat vs. blood redistributing core warmth
- Ocean acidification vs. blood pH buffering
- Feedback loops in climate vs. homeostatic feedback in the body`,

	"ocean_health": `FOCUS: ocean health and human health as mirrored conditions.
Parallel pairs to draw on:
- Pollution accumulating in food webs vs. toxins accumulating in tissue
- Dead zones from oxygen loss vs. hypoxia in organs
- Overfishing collapse vs. exhaustion of bodily reserves
- Recovery of protected waters vs. healing after rest and care`,
}

func SystemPrompt() string {
	return `You are a science educator writing quiz questions for an interactive app that teaches how the human body and ocean systems mirror each other. Your questions test whether a learner genuinely understood a body/ocean parallel, not trivia recall.

QUESTION CONSTRUCTION:
- Each question names or clearly implies one body/ocean parallel
- The question should be answerable from understanding the parallel, without specialist vocabulary
- Keep question text to 1-3 sentences, written for a curious teenager

ANSWER OPTIONS:
- Exactly 4 options per question
- Exactly ONE correct option
- Wrong options must be plausible: a common misconception, an inverted relationship, or a superficially similar but wrong mechanism
- Never make the correct option obviously longer or more detailed than the others

EXPLANATIONS:
- 1-3 sentences explaining WHY the correct option captures the parallel
- Reference both sides of the parallel (the body side and the ocean side)

OUTPUT FORMAT:
Respond with valid JSON only. No markdown, no text outside the JSON:
{"questions":[{"text":"...","options":["...","...","...","..."],"correct_answer":0,"explanation":"..."}]}
correct_answer is the zero-based index into options. Vary which index is correct across the batch.`
}

// BuildChapterPrompt builds the per-request user prompt. Unknown chapter ids
// fall back to generic guidance built from the chapter title.
func BuildChapterPrompt(chapterID, chapterTitle string, count int) string {
	topic, ok := chapterTopics[chapterID]
	if !ok {
		topic = fmt.Sprintf("FOCUS: the %q chapter of the body/ocean parallels curriculum.", chapterTitle)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d new quiz questions for the chapter %q.\n\n", count, chapterTitle)
	b.WriteString(topic)
	b.WriteString("\n\nEach question must use a different parallel pair. Respond with the JSON object only.")
	return b.String()
}
