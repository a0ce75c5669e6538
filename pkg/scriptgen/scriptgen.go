package scriptgen

import (
	"context"
	"fmt"
	"strings"

	"coursecast/pkg/domain"
	"coursecast/pkg/openai"
)

// Generator produces a narration script from extracted course content
type Generator interface {
	Generate(ctx context.Context, course domain.CourseContent) (string, error)
}

// DefaultModel is the chat model used when none is configured
const DefaultModel = "gpt-4o-mini"

const systemMessage = "You are a Rust programming expert. Generate a clear, concise, and engaging TTS script for a Rust course. " +
	"Focus on key Rust concepts and examples, explaining the *behavior* of code examples in plain English. " +
	"Omit presenter instructions, error discussions, and unnecessary details. Assume the listener is a Rust learner."

const promptTemplate = "You are a Rust programming expert tasked with converting content from a Rust course into a concise and engaging " +
	"text-to-speech script.  Assume the listener is learning Rust. Focus on explaining the core Rust concepts and " +
	"providing illustrative Rust code examples. The examples should be described in plain English, explaining *what* the code does, rather than presenting the raw code. " +
	"Omit any meta-discussions, instructions to the presenter (like 'show what happens'), " +
	"or compiler error discussions. The script should only include the text to be read aloud, " +
	"without extra annotations, formatting markers, or symbols. " +
	"Prioritize clarity and brevity. Extract the most important information and present it in a way that's easy to understand when spoken.\n\n" +
	"Course Content (from a Rust mdBook):\n%s\n\n" +
	"Speaker Notes:\n%s\n\n" +
	"Provide ONLY the final TTS script as plain text, suitable for direct text-to-speech conversion."

// OpenAIGenerator implements Generator using the OpenAI chat completions API
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates a generator with the given client and model.
// An empty model falls back to DefaultModel.
func NewOpenAIGenerator(client *openai.Client, model string) *OpenAIGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIGenerator{
		client: client,
		model:  model,
	}
}

// Generate builds the narration prompt from the course content and returns
// the trimmed model response. Fails when the call errors or the response
// carries no content.
func (g *OpenAIGenerator) Generate(ctx context.Context, course domain.CourseContent) (string, error) {
	notes := course.SpeakerNotes
	if !course.HasNotes() {
		notes = "None"
	}
	prompt := fmt.Sprintf(promptTemplate, course.MainText, notes)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatMessage{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.5,
		MaxTokens:   1000,
		TopP:        0.9,
	})
	if err != nil {
		return "", fmt.Errorf("completion call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	script := strings.TrimSpace(resp.Choices[0].Message.Content)
	if script == "" {
		return "", fmt.Errorf("completion response contained no content")
	}

	return script, nil
}
