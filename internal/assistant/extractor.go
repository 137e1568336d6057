package assistant

import (
	"context"
	"fmt"

	"github.com/clinicdesk/voice-ai/pkg/logging"
)

// Extractor sends the utterance plus grounding context to the LLM and returns
// the raw structured guess. The output is best-effort and may be malformed;
// NormalizeRecord absorbs that downstream.
type Extractor struct {
	llm    LLMClient
	clock  Clock
	model  string
	logger *logging.Logger
}

// NewExtractor creates a field extractor backed by the given LLM client.
func NewExtractor(llm LLMClient, clock Clock, model string, logger *logging.Logger) *Extractor {
	if llm == nil {
		panic("assistant: llm client required")
	}
	if clock == nil {
		clock = NewClock("")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Extractor{
		llm:    llm,
		clock:  clock,
		model:  model,
		logger: logger,
	}
}

// Extract runs the extraction call and returns the model output verbatim.
func (e *Extractor) Extract(ctx context.Context, req ProcessRequest) (string, error) {
	prompt := buildExtractionPrompt(req, e.clock.Now())

	resp, err := e.llm.Complete(ctx, LLMRequest{
		Model:  e.model,
		System: []string{extractionSystemPrompt},
		Messages: []ChatMessage{
			{Role: ChatRoleUser, Content: prompt},
		},
		MaxTokens:    1024,
		Temperature:  0.1, // low temperature for consistent structured output
		JSONResponse: true,
	})
	if err != nil {
		return "", fmt.Errorf("assistant: extraction failed: %w", err)
	}

	e.logger.Debug("extraction completed",
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)
	return resp.Text, nil
}
