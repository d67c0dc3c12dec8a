package generator

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// LLMClient is the interface all generation backends satisfy.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// Options selects a generation backend.
type Options struct {
	Mock    bool   // use canned local data, no network
	CLIPath string // non-empty: shell out to the claude CLI instead of the API
	APIKey  string
	Model   string
}

// Generator wraps an LLMClient and adds chapter-aware batch methods.
type Generator struct {
	llm   LLMClient
	model string
}

func NewGenerator(opts Options) *Generator {
	var llm LLMClient
	model := opts.Model
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}

	switch {
	case opts.Mock:
		llm = NewMockClient()
		model = "mock"
		log.Println("[generator] using mock data")
	case opts.CLIPath != "":
		llm = NewCLIClient(opts.CLIPath)
		model = "claude-cli"
		log.Println("[generator] using claude CLI")
	default:
		llm = NewAPIClient(opts.APIKey, model)
		log.Println("[generator] using Anthropic API:", model)
	}

	return &Generator{llm: llm, model: model}
}

func (g *Generator) ModelName() string {
	return g.model
}

// GenerateChapterBatch asks the backend for count new questions on one
// chapter's topic and returns the ones that parse and pass the structural
// quality gate.
func (g *Generator) GenerateChapterBatch(ctx context.Context, chapterID, chapterTitle string, count int) (*GeneratedBatch, error) {
	systemPrompt := SystemPrompt()
	userPrompt := BuildChapterPrompt(chapterID, chapterTitle, count)

	resp, err := g.llm.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate chapter batch: %w", err)
	}

	batch, err := ParseResponse(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parse chapter response: %w", err)
	}

	kept := batch.Questions[:0]
	for i, q := range batch.Questions {
		score := ComputeQualityScore(q)
		if score < MinQualityScore {
			log.Printf("[generator] dropping question %d: quality score %.2f below %.2f", i+1, score, MinQualityScore)
			continue
		}
		kept = append(kept, q)
	}
	batch.Questions = kept
	return batch, nil
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(apiKey, model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   4096,
		Temperature: param.NewOpt(0.8),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("[generator] retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			time.Sleep(sleepDuration)
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("[generator] Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	return &LLMResponse{
		Content:      buildMockJSON(),
		PromptTokens: 800,
		OutputTokens: 1200,
	}, nil
}

func buildMockJSON() string {
	topics := []string{
		"thermohaline circulation and the human heartbeat",
		"gas exchange at the ocean surface and in the alveoli",
		"nutrient cycling in estuaries and in the digestive tract",
	}

	questions := "["
	for i, topic := range topics {
		if i > 0 {
			questions += ","
		}
		questions += fmt.Sprintf(
			`{"text":"[Mock] Which statement best describes the parallel between %s?","options":["[Mock] Both move essential materials along gradients maintained by the larger system.","[Mock] They are unrelated processes that merely share a name.","[Mock] One is driven by temperature only, the other by pressure only.","[Mock] Neither process transports anything between regions."],"correct_answer":0,"explanation":"[Mock] Both systems circulate material along gradients, which is the core of the parallel between %s."}`,
			topic, topic)
	}
	questions += "]"

	return fmt.Sprintf(`{"questions":%s}`, questions)
}
