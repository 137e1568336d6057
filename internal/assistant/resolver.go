package assistant

// Action classifies what the conversation should do next.
type Action string

const (
	// ActionFinalizeBooking: the patient confirmed a fully-specified slot;
	// the booking request is authoritative and ready for the backend.
	ActionFinalizeBooking Action = "finalize_booking"
	// ActionRequestConfirmation: all mandatory data is present but the
	// patient has not explicitly accepted yet.
	ActionRequestConfirmation Action = "request_confirmation"
	// ActionAskMissingInfo: the patient wants to book but mandatory data is
	// incomplete; the missing-field list drives the next question.
	ActionAskMissingInfo Action = "ask_missing_info"
	// ActionNone: query/cancel/provide_info/other turns that produce no
	// booking movement.
	ActionNone Action = "none"
)

// Decision is the resolver's output, carrying the evidence it was derived
// from so the response composer can audit it.
type Decision struct {
	Action Action
	Record Record
	Ready  bool
	Intent string
}

// Resolve maps a normalized record and its recomputed readiness to the next
// conversational action. The table is evaluated in priority order, first
// match wins:
//
//  1. confirm + ready            → finalize booking
//  2. ready, not yet confirmed   → request confirmation
//  3. book intent, not ready     → ask for missing info
//  4. everything else            → no booking action
//
// A premature "confirm" without readiness deliberately falls through to
// ActionNone rather than finalizing a partial booking.
func Resolve(rec Record, ready bool) Decision {
	d := Decision{
		Record: rec,
		Ready:  ready,
		Intent: rec.Intent,
	}

	switch {
	case rec.Intent == IntentConfirm && ready:
		d.Action = ActionFinalizeBooking
	case ready:
		d.Action = ActionRequestConfirmation
	case rec.Intent == IntentBook:
		d.Action = ActionAskMissingInfo
	default:
		d.Action = ActionNone
	}
	return d
}

// producesBooking reports whether the decision calls for a booking payload.
func (d Decision) producesBooking() bool {
	return d.Action == ActionFinalizeBooking || d.Action == ActionRequestConfirmation
}
