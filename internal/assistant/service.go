package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/clinicdesk/voice-ai/internal/observability/metrics"
	"github.com/clinicdesk/voice-ai/pkg/logging"
)

var assistantTracer = otel.Tracer("clinicdesk.internal.assistant")

// ErrEmptyText is returned for requests with a missing or empty utterance.
// No external calls are issued in that case.
var ErrEmptyText = errors.New("assistant: text is required")

// Service runs the voice pipeline: extract, normalize, evaluate readiness,
// resolve the dialogue state, build the booking payload when warranted, and
// compose the outward response. It holds no per-conversation state; every
// turn arrives fully self-contained.
type Service struct {
	extractor *Extractor
	generator LLMClient
	clock     Clock
	genModel  string
	metrics   *metrics.AssistantMetrics
	logger    *logging.Logger
}

// NewService constructs the assistant service. metrics may be nil.
func NewService(extractor *Extractor, generator LLMClient, clock Clock, genModel string, m *metrics.AssistantMetrics, logger *logging.Logger) *Service {
	if extractor == nil {
		panic("assistant: extractor required")
	}
	if generator == nil {
		panic("assistant: generator client required")
	}
	if clock == nil {
		clock = NewClock("")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		extractor: extractor,
		generator: generator,
		clock:     clock,
		genModel:  genModel,
		metrics:   m,
		logger:    logger,
	}
}

// ProcessVoice handles one conversational turn end-to-end. The operation is
// all-or-nothing: any extraction or generation failure returns an error and
// no partial response.
func (s *Service) ProcessVoice(ctx context.Context, req ProcessRequest) (*ProcessResponse, error) {
	if !filled(req.Text) {
		s.metrics.ObserveRequest("invalid_input")
		return nil, ErrEmptyText
	}

	ctx, span := assistantTracer.Start(ctx, "assistant.process_voice")
	defer span.End()

	now := s.clock.Now()

	extractStart := time.Now()
	rawExtraction, err := s.extractor.Extract(ctx, req)
	s.metrics.ObserveLLMLatency("extract", time.Since(extractStart).Seconds())
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveRequest("extraction_error")
		return nil, err
	}

	rec := NormalizeRecord(rawExtraction)
	ready := Ready(rec)
	decision := Resolve(rec, ready)

	span.SetAttributes(
		attribute.String("clinicvoice.intent", decision.Intent),
		attribute.String("clinicvoice.action", string(decision.Action)),
		attribute.Bool("clinicvoice.ready", ready),
	)
	s.metrics.ObserveDecision(string(decision.Action), decision.Intent)
	s.logger.Info("dialogue state resolved",
		"intent", decision.Intent,
		"action", decision.Action,
		"ready", ready,
		"missing", rec.MissingInfo,
	)

	var pending *PendingBooking
	if decision.producesBooking() {
		b := BuildPendingBooking(rec)
		pending = &b
	}

	// The reply and the clinical summary have no data dependency on each
	// other; generate them concurrently. A failure cancels the sibling call.
	var reply, summary string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reply, err = s.generate(gctx, "reply", buildReplyPrompt(req, rec, ready))
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.generate(gctx, "summary", buildSummaryPrompt(req, rec))
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		s.metrics.ObserveRequest("generation_error")
		return nil, err
	}

	resp := &ProcessResponse{
		Success:        true,
		StructuredData: rec,
		DoctorSummary:  summary,
		GermanyTime:    FormatClinicTimestamp(now),
		Conversation: []ConversationTurn{
			{Role: ChatRoleUser, Content: req.Text},
			{Role: ChatRoleAssistant, Content: reply},
		},
		RequiresConfirmation: decision.Action == ActionRequestConfirmation,
		PendingBooking:       pending,
	}
	if decision.Action == ActionFinalizeBooking {
		resp.BookingRequest = pending
	}

	s.metrics.ObserveRequest("success")
	return resp, nil
}

// generate runs one free-text generation call.
func (s *Service) generate(ctx context.Context, operation, prompt string) (string, error) {
	start := time.Now()
	resp, err := s.generator.Complete(ctx, LLMRequest{
		Model: s.genModel,
		Messages: []ChatMessage{
			{Role: ChatRoleUser, Content: prompt},
		},
		MaxTokens:   512,
		Temperature: 0.7,
	})
	s.metrics.ObserveLLMLatency(operation, time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("assistant: %s generation failed: %w", operation, err)
	}
	return resp.Text, nil
}
