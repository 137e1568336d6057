package assistant

// defaultBookingReason is recorded when the patient gave no symptom description.
const defaultBookingReason = "Voice appointment request"

// BuildPendingBooking assembles the transient booking payload from a
// normalized record. Callers invoke it only for decisions that produce a
// booking (finalize or request-confirmation).
func BuildPendingBooking(rec Record) PendingBooking {
	reason := rec.Symptoms
	if !filled(reason) {
		reason = defaultBookingReason
	}
	return PendingBooking{
		DoctorName:     rec.DoctorName,
		Specialization: rec.Specialization,
		Date:           rec.Date,
		Time:           rec.Time,
		FirstName:      rec.FirstName,
		LastName:       rec.LastName,
		DOB:            rec.DOB,
		Reason:         reason,
	}
}
