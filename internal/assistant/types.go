// Package assistant implements the conversational slot-filling engine behind
// the clinic voice assistant: it extracts structured booking fields from a
// patient utterance, tracks which required fields are still missing, and
// decides whether the conversation should keep gathering information, ask for
// confirmation, or emit a finalized booking request.
package assistant

import "strings"

// Intent values the extractor may classify an utterance as.
const (
	IntentBook        = "book"
	IntentCancel      = "cancel"
	IntentQuery       = "query"
	IntentConfirm     = "confirm"
	IntentProvideInfo = "provide_info"
	IntentOther       = "other"
)

// Doctor is a roster entry passed in by the caller. Only name and
// specialization matter to the assistant; anything else travels through the
// prompts untouched.
type Doctor struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// ProcessRequest is the body of POST /process-voice.
type ProcessRequest struct {
	Text      string   `json:"text"`
	PatientID string   `json:"patientId,omitempty"`
	Doctors   []Doctor `json:"doctors,omitempty"`
}

// Record is the structured booking record produced by extraction and repaired
// by NormalizeRecord. Every field is optional at the extraction boundary; the
// normalizer guarantees Intent, MissingInfo, and ReadyToBook carry defaults.
//
// ReadyToBook is the extractor's self-reported claim and is advisory only;
// readiness is always recomputed with Ready.
type Record struct {
	FirstName      string   `json:"firstName,omitempty"`
	LastName       string   `json:"lastName,omitempty"`
	DOB            string   `json:"dob,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	DoctorName     string   `json:"doctorName,omitempty"`
	Date           string   `json:"date,omitempty"`
	Time           string   `json:"time,omitempty"`
	Symptoms       string   `json:"symptoms,omitempty"`
	Intent         string   `json:"intent"`
	MissingInfo    []string `json:"missingInfo"`
	ReadyToBook    bool     `json:"readyToBook"`

	// Raw holds the unparseable extractor output for diagnostics. Empty when
	// extraction produced valid JSON.
	Raw string `json:"raw,omitempty"`
}

// PendingBooking is the transient booking payload handed to the booking
// backend. It is never persisted by this service.
type PendingBooking struct {
	DoctorID       string `json:"doctorId,omitempty"`
	DoctorName     string `json:"doctorName,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	DOB            string `json:"dob,omitempty"`
	Email          string `json:"email,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// ConversationTurn is one side of the exchange returned to the caller.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ProcessResponse is the body returned by POST /process-voice.
type ProcessResponse struct {
	Success              bool               `json:"success"`
	StructuredData       Record             `json:"structuredData"`
	DoctorSummary        string             `json:"doctorSummary"`
	GermanyTime          string             `json:"germanyTime"`
	Conversation         []ConversationTurn `json:"conversation"`
	RequiresConfirmation bool               `json:"requiresConfirmation"`
	PendingBooking       *PendingBooking    `json:"pendingBooking"`
	BookingRequest       *PendingBooking    `json:"bookingRequest"`
}

// filled reports whether a slot value is present after trimming whitespace.
func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}
