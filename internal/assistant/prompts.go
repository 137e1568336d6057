package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const extractionSystemPrompt = "You are a highly efficient clinic reservation bot. Output strictly JSON."

// doctorsJSON renders the roster for prompt embedding, with a placeholder
// when the caller supplied none.
func doctorsJSON(doctors []Doctor, placeholder string) string {
	if len(doctors) == 0 {
		return placeholder
	}
	b, err := json.Marshal(doctors)
	if err != nil {
		return placeholder
	}
	return string(b)
}

// buildExtractionPrompt assembles the slot-extraction prompt: clinic-local
// time, the doctor roster, the raw utterance, and the strict-JSON contract.
func buildExtractionPrompt(req ProcessRequest, now time.Time) string {
	tomorrow := now.AddDate(0, 0, 1).Format(dateLayout)

	var b strings.Builder
	b.WriteString("You are the AI Clinic Receptionist.\n")
	fmt.Fprintf(&b, "Current date/time in Germany: %s.\n", now.Format(timestampLayout))
	fmt.Fprintf(&b, "Available Doctors in our Clinic: %s\n\n", doctorsJSON(req.Doctors, "Not provided"))
	fmt.Fprintf(&b, "Patient input: %q\n\n", req.Text)
	b.WriteString("Extract the following information in JSON format:\n")
	b.WriteString(`- firstName (e.g., "Siddharth")
- lastName (e.g., "Rafi")
- dob (Date of birth, YYYY-MM-DD. Priority!)
- specialization (e.g., Cardiologist, Dermatologist, General Physician. DEFAULT to "General Physician")
- doctorName (Matches one of the Available Doctors)
`)
	fmt.Fprintf(&b, "- date (YYYY-MM-DD format. Priority! Tomorrow is %s)\n", tomorrow)
	b.WriteString(`- time (HH:mm format)
- symptoms (brief description)
- intent ("book", "cancel", "query", "confirm", "provide_info", or "other")
- missingInfo (array of missing required fields: ["firstName", "lastName", "dob", "doctor", "date", "time"])
- readyToBook (boolean: true if we have all required info: firstName, lastName, dob, doctor/date/time)

CRITICAL RULES:
1. NEVER set readyToBook to true unless ALL of these are present and valid:
   - firstName, lastName, dob (patient identification)
   - doctorName OR specialization (doctor/specialty)
   - date AND time (appointment slot)
2. If patient hasn't confirmed yet, set intent to "provide_info" or "query"
3. If patient says "yes", "confirm", "book it", "go ahead" - set intent to "confirm"
4. Output STRICT JSON.
`)
	return b.String()
}

// buildReplyPrompt assembles the patient-facing reply prompt from the
// normalized record and conversation state.
func buildReplyPrompt(req ProcessRequest, rec Record, ready bool) string {
	recJSON, err := json.Marshal(rec)
	if err != nil {
		recJSON = []byte("{}")
	}
	missingJSON, err := json.Marshal(rec.MissingInfo)
	if err != nil {
		missingJSON = []byte("[]")
	}

	loginStatus := "No"
	if req.PatientID != "" {
		loginStatus = "Yes (ID: " + req.PatientID + ")"
	}

	var b strings.Builder
	b.WriteString("You are a friendly Clinic Receptionist.\n")
	fmt.Fprintf(&b, "Current Context: %s\n", recJSON)
	fmt.Fprintf(&b, "Is Patient Logged In? %s\n", loginStatus)
	fmt.Fprintf(&b, "Available Clinic Doctors: %s\n", doctorsJSON(req.Doctors, "None"))
	fmt.Fprintf(&b, "Patient said: %q\n\n", req.Text)
	b.WriteString("CONVERSATION STATE:\n")
	fmt.Fprintf(&b, "- Intent: %s\n", rec.Intent)
	fmt.Fprintf(&b, "- Missing info: %s\n", missingJSON)
	fmt.Fprintf(&b, "- Ready to book (has all info): %t\n\n", ready)
	b.WriteString(`Task: Provide a professional clinic response.

RULES:
1. If Patient IS logged in: DO NOT ask for Name/DOB. Use "Welcome back, [Name]" if possible.
2. If Patient is NOT logged in and wants to book: Explain "For security reasons, you must be registered with our clinic to book an appointment. Please log in or register first."
3. If intent is 'query' or 'other': Answer helpfully and ask what they need.
4. If we have all booking info but user hasn't confirmed yet:
   - Say: "I have Dr. [Name] available on [Date] at [Time]. Should I go ahead and book that for you?"
   - This is the confirmation step - DO NOT book without asking.
5. If user just confirmed (intent is 'confirm'):
   - Say: "Perfect! I'm processing your booking at our clinic now..."
6. If we're missing information:
   - Ask ONLY for the missing info, one question at a time.
   - Examples: "What date would you like to come in?" or "Which doctor would you prefer?"

Keep response to ONE short, friendly sentence.
`)
	return b.String()
}

// buildSummaryPrompt asks for a clinical summary of the exchange for the
// doctor-facing record.
func buildSummaryPrompt(req ProcessRequest, rec Record) string {
	recJSON, err := json.Marshal(rec)
	if err != nil {
		recJSON = []byte("{}")
	}
	return fmt.Sprintf("Professional summary for clinic records: %s. Extracted: %s", req.Text, recJSON)
}
