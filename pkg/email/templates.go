package email

import (
	"fmt"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	PatientName     string
	PatientEmail    string
	DoctorName      string
	Specialty       string
	AppointmentDate string // YYYY-MM-DD
	AppointmentTime string // HH:MM
	AppointmentType string // online, offline, emergency
	BookingRef      string // formatted booking reference, e.g. K7TM-Q2XB
	Reason          string // only used by the cancellation email
	HospitalName    string
}

func (d AppointmentEmailData) hospital() string {
	if d.HospitalName == "" {
		return "Medera"
	}
	return d.HospitalName
}

func (d AppointmentEmailData) patient() string {
	if d.PatientName == "" {
		return "there"
	}
	return d.PatientName
}

// BuildBookingConfirmationEmail creates the email sent when an appointment
// request is received. The booking is still pending at this point.
func BuildBookingConfirmationEmail(data AppointmentEmailData) Message {
	hospital := data.hospital()
	subject := fmt.Sprintf("Appointment request received - %s", hospital)

	textBody := fmt.Sprintf(`Hi %s,

We've received your appointment request at %s.

Reference: %s
Doctor:    %s (%s)
Date:      %s
Time:      %s
Visit:     %s

Our staff will review your request and confirm it shortly. You'll receive
another message once the booking is confirmed. Keep the reference above;
you'll need it to look up or cancel this booking.

Thanks,
The %s Team`,
		data.patient(), hospital, data.BookingRef, data.DoctorName, data.Specialty,
		data.AppointmentDate, data.AppointmentTime, data.AppointmentType, hospital)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>We've received your appointment request at %s.</p>
    <table style="background-color: #f3f4f6; border-radius: 6px; padding: 10px; width: 100%%; margin: 20px 0;">
        <tr><td style="padding: 6px 12px; color: #6b7280;">Reference</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Doctor</td><td style="padding: 6px 12px;"><strong>%s</strong> (%s)</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Date</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Time</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Visit</td><td style="padding: 6px 12px;">%s</td></tr>
    </table>
    <p>Our staff will review your request and confirm it shortly. You'll receive another message once the booking is confirmed. Keep the reference above; you'll need it to look up or cancel this booking.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.patient(), hospital, data.BookingRef, data.DoctorName, data.Specialty,
		data.AppointmentDate, data.AppointmentTime, data.AppointmentType, hospital)

	return Message{
		To:       []string{data.PatientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentConfirmedEmail creates the email sent when staff confirm
// a pending appointment.
func BuildAppointmentConfirmedEmail(data AppointmentEmailData) Message {
	hospital := data.hospital()
	subject := fmt.Sprintf("Your appointment is confirmed - %s", hospital)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment at %s is confirmed.

Reference: %s
Doctor:    %s (%s)
Date:      %s
Time:      %s
Visit:     %s

Please arrive 15 minutes early and mention your reference at the front
desk. If you need to cancel or reschedule, contact us as soon as possible.

Thanks,
The %s Team`,
		data.patient(), hospital, data.BookingRef, data.DoctorName, data.Specialty,
		data.AppointmentDate, data.AppointmentTime, data.AppointmentType, hospital)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Your appointment at %s is <strong>confirmed</strong>.</p>
    <table style="background-color: #f3f4f6; border-radius: 6px; padding: 10px; width: 100%%; margin: 20px 0;">
        <tr><td style="padding: 6px 12px; color: #6b7280;">Reference</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Doctor</td><td style="padding: 6px 12px;"><strong>%s</strong> (%s)</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Date</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Time</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Visit</td><td style="padding: 6px 12px;">%s</td></tr>
    </table>
    <p>Please arrive 15 minutes early and mention your reference at the front desk. If you need to cancel or reschedule, contact us as soon as possible.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.patient(), hospital, data.BookingRef, data.DoctorName, data.Specialty,
		data.AppointmentDate, data.AppointmentTime, data.AppointmentType, hospital)

	return Message{
		To:       []string{data.PatientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentCancelledEmail creates the email sent when an appointment
// is cancelled, with the cancellation reason when one was given.
func BuildAppointmentCancelledEmail(data AppointmentEmailData) Message {
	hospital := data.hospital()
	subject := fmt.Sprintf("Your appointment was cancelled - %s", hospital)

	reasonText := ""
	reasonHTML := ""
	if data.Reason != "" {
		reasonText = fmt.Sprintf("\nReason: %s\n", data.Reason)
		reasonHTML = fmt.Sprintf(`<p style="background-color: #fef2f2; padding: 10px 15px; border-radius: 4px; color: #991b1b;">Reason: %s</p>`, data.Reason)
	}

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with %s on %s at %s has been cancelled.
%s
You can book a new appointment any time through our website.

Thanks,
The %s Team`,
		data.patient(), data.DoctorName, data.AppointmentDate, data.AppointmentTime,
		reasonText, hospital)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">Hi %s,</h2>
    <p>Your appointment with <strong>%s</strong> on %s at %s has been cancelled.</p>
    %s
    <p>You can book a new appointment any time through our website.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.patient(), data.DoctorName, data.AppointmentDate, data.AppointmentTime,
		reasonHTML, hospital)

	return Message{
		To:       []string{data.PatientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
