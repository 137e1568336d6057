package assistant

import (
	"strings"
	"testing"
)

func TestBuildReplyPromptLoggedIn(t *testing.T) {
	req := ProcessRequest{Text: "book me in", PatientID: "pat-42"}
	rec := Record{Intent: IntentBook, MissingInfo: []string{"date"}}

	prompt := buildReplyPrompt(req, rec, false)

	if !strings.Contains(prompt, "Yes (ID: pat-42)") {
		t.Fatalf("expected logged-in marker in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"date"`) {
		t.Fatalf("expected missing-info list in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Ready to book (has all info): false") {
		t.Fatalf("expected readiness state in prompt:\n%s", prompt)
	}
}

func TestBuildReplyPromptAnonymous(t *testing.T) {
	prompt := buildReplyPrompt(ProcessRequest{Text: "hello"}, Record{Intent: IntentQuery, MissingInfo: []string{}}, false)

	if !strings.Contains(prompt, "Is Patient Logged In? No") {
		t.Fatalf("expected anonymous marker in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Available Clinic Doctors: None") {
		t.Fatalf("expected roster placeholder in prompt:\n%s", prompt)
	}
}

func TestBuildSummaryPromptIncludesExtraction(t *testing.T) {
	rec := Record{FirstName: "Anna", Intent: IntentQuery, MissingInfo: []string{}}
	prompt := buildSummaryPrompt(ProcessRequest{Text: "my knee hurts"}, rec)

	if !strings.Contains(prompt, "my knee hurts") || !strings.Contains(prompt, "Anna") {
		t.Fatalf("summary prompt missing grounding:\n%s", prompt)
	}
}

func TestDoctorsJSON(t *testing.T) {
	if got := doctorsJSON(nil, "Not provided"); got != "Not provided" {
		t.Fatalf("expected placeholder, got %q", got)
	}

	got := doctorsJSON([]Doctor{{Name: "Dr. Weber", Specialization: "Cardiologist"}}, "Not provided")
	if !strings.Contains(got, "Dr. Weber") || !strings.Contains(got, "Cardiologist") {
		t.Fatalf("expected roster JSON, got %q", got)
	}
}
