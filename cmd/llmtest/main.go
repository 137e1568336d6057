package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/clinicdesk/voice-ai/internal/assistant"
	appconfig "github.com/clinicdesk/voice-ai/internal/config"
)

// Manual smoke test for the Groq-backed LLM client. Run with a populated
// .env: go run ./cmd/llmtest "I'd like to see a cardiologist tomorrow at 2pm"
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := appconfig.Load()
	if cfg.GroqAPIKey == "" {
		log.Fatal("GROQ_API_KEY is not set")
	}

	text := "Hi, I'm Siddharth Rafi, born 1990-01-01. I need a cardiologist tomorrow at 2pm, chest pain."
	if len(os.Args) > 1 {
		text = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.LLMTimeout)
	defer cancel()

	client, err := assistant.NewOpenAIClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.ExtractionModel)
	if err != nil {
		log.Fatalf("create client: %v", err)
	}

	clock := assistant.NewClock(cfg.ClinicTimezone)
	extractor := assistant.NewExtractor(client, clock, cfg.ExtractionModel, nil)

	start := time.Now()
	raw, err := extractor.Extract(ctx, assistant.ProcessRequest{Text: text})
	if err != nil {
		log.Fatalf("extract: %v", err)
	}

	rec := assistant.NormalizeRecord(raw)
	decision := assistant.Resolve(rec, assistant.Ready(rec))

	fmt.Printf("raw output (%s):\n%s\n\n", time.Since(start).Round(time.Millisecond), raw)
	fmt.Printf("intent=%s ready=%t action=%s missing=%v\n",
		rec.Intent, decision.Ready, decision.Action, rec.MissingInfo)
}
