package email

import (
	"strings"
	"testing"
)

func testData() AppointmentEmailData {
	return AppointmentEmailData{
		PatientName:     "Reza Karimi",
		PatientEmail:    "reza@example.com",
		DoctorName:      "Dr. Sara Ahmadi",
		Specialty:       "Cardiology",
		AppointmentDate: "2026-09-07",
		AppointmentTime: "10:00",
		AppointmentType: "offline",
		BookingRef:      "K7TM-Q2XB",
	}
}

func TestBookingConfirmationEmail(t *testing.T) {
	msg := BuildBookingConfirmationEmail(testData())

	if len(msg.To) != 1 || msg.To[0] != "reza@example.com" {
		t.Errorf("To = %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "Appointment request received") {
		t.Errorf("Subject = %q", msg.Subject)
	}

	// The reference is the guest's only handle on the booking, so both
	// bodies must carry it.
	for name, body := range map[string]string{"text": msg.TextBody, "html": msg.HTMLBody} {
		if !strings.Contains(body, "K7TM-Q2XB") {
			t.Errorf("%s body is missing the booking reference", name)
		}
		if !strings.Contains(body, "Dr. Sara Ahmadi") {
			t.Errorf("%s body is missing the doctor name", name)
		}
	}
}

func TestAppointmentConfirmedEmail(t *testing.T) {
	msg := BuildAppointmentConfirmedEmail(testData())

	if !strings.Contains(msg.Subject, "confirmed") {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "K7TM-Q2XB") || !strings.Contains(msg.HTMLBody, "K7TM-Q2XB") {
		t.Error("confirmed email is missing the booking reference")
	}
}

func TestAppointmentCancelledEmail_Reason(t *testing.T) {
	data := testData()
	data.Reason = "Doctor unavailable"
	msg := BuildAppointmentCancelledEmail(data)

	if !strings.Contains(msg.TextBody, "Doctor unavailable") {
		t.Error("text body is missing the cancellation reason")
	}

	data.Reason = ""
	msg = BuildAppointmentCancelledEmail(data)
	if strings.Contains(msg.TextBody, "Reason:") {
		t.Error("reason line rendered without a reason")
	}
}

func TestEmailFallbacks(t *testing.T) {
	data := AppointmentEmailData{PatientEmail: "anon@example.com"}
	msg := BuildBookingConfirmationEmail(data)

	if !strings.Contains(msg.TextBody, "Hi there,") {
		t.Error("missing patient name should fall back to a generic greeting")
	}
	if !strings.Contains(msg.Subject, "Medera") {
		t.Error("missing hospital name should fall back to Medera")
	}
}
