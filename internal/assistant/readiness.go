package assistant

// Ready reports whether the mandatory field set is fully populated:
// firstName, lastName, dob, doctorName or specialization, date, and time.
// It checks presence only; date/time format validity is not its concern.
//
// This is the single source of truth for readiness. The extractor's
// self-reported ReadyToBook claim is never consulted.
func Ready(rec Record) bool {
	return filled(rec.FirstName) &&
		filled(rec.LastName) &&
		filled(rec.DOB) &&
		(filled(rec.DoctorName) || filled(rec.Specialization)) &&
		filled(rec.Date) &&
		filled(rec.Time)
}
