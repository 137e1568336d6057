package assistant

import "testing"

func TestBuildPendingBookingCopiesFields(t *testing.T) {
	rec := fullRecord()
	rec.Symptoms = "chest pain"

	b := BuildPendingBooking(rec)

	if b.DoctorName != rec.DoctorName || b.Specialization != rec.Specialization {
		t.Fatalf("doctor identity not copied: %+v", b)
	}
	if b.Date != rec.Date || b.Time != rec.Time {
		t.Fatalf("slot not copied: %+v", b)
	}
	if b.FirstName != rec.FirstName || b.LastName != rec.LastName || b.DOB != rec.DOB {
		t.Fatalf("patient identity not copied: %+v", b)
	}
	if b.Reason != "chest pain" {
		t.Fatalf("expected reason from symptoms, got %q", b.Reason)
	}
}

func TestBuildPendingBookingReasonFallback(t *testing.T) {
	rec := fullRecord()
	rec.Symptoms = ""

	b := BuildPendingBooking(rec)

	if b.Reason != "Voice appointment request" {
		t.Fatalf("expected fallback reason, got %q", b.Reason)
	}
}
