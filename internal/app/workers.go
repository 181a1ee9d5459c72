package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/internal/repo"
	entappt "github.com/medera/medera_backend/internal/repo/appointment"
	"github.com/medera/medera_backend/pkg/email"
	svcsms "github.com/medera/medera_backend/pkg/sms"
	"github.com/medera/medera_backend/pkg/util/codes"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	Cfg   *config.Config
	NC    *nats.Conn
	DB    *repo.Client
	Email *email.Client
	SMS   *svcsms.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startEmailWorker(p.NC, p.DB, p.Email)
			startReminderWorker(p.NC, p.DB, p.SMS, p.Cfg.Booking.ReminderHoursBefore)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

func loadAppointment(ctx context.Context, db *repo.Client, msg *nats.Msg) (*repo.Appointment, bool) {
	idStr := strings.TrimSpace(string(msg.Data))
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, false
	}

	appt, err := db.Appointment.Query().
		Where(entappt.ID(id)).
		Only(ctx)
	if err != nil {
		slog.Warn("worker: appointment not found", "id", idStr, "err", err)
		return nil, false
	}
	return appt, true
}

func emailData(appt *repo.Appointment) email.AppointmentEmailData {
	data := email.AppointmentEmailData{
		PatientName:     appt.PatientInfo.Name,
		PatientEmail:    appt.PatientInfo.Email,
		DoctorName:      appt.DoctorInfo.Name,
		Specialty:       appt.DoctorInfo.Specialty,
		AppointmentDate: appt.AppointmentDate,
		AppointmentTime: appt.AppointmentTime,
		AppointmentType: string(appt.Type),
		// Guests look up and cancel by this reference.
		BookingRef: codes.FormatBookingRef(appt.BookingCode),
	}
	if appt.CancellationReason != nil {
		data.Reason = *appt.CancellationReason
	}
	return data
}

// ---------------------------------------------------------------------------
// email_worker
// ---------------------------------------------------------------------------

func startEmailWorker(nc *nats.Conn, db *repo.Client, mail *email.Client) {
	send := func(event string, build func(email.AppointmentEmailData) email.Message) {
		_, err := nc.Subscribe("medera.appointment."+event+".*", func(msg *nats.Msg) {
			ctx := context.Background()

			appt, found := loadAppointment(ctx, db, msg)
			if !found {
				return
			}
			if appt.PatientInfo.Email == "" {
				return
			}

			if err := mail.Send(ctx, build(emailData(appt))); err != nil {
				slog.Warn("email_worker: send failed",
					"event", event,
					"appointment_id", appt.ID.String(),
					"err", err,
				)
			}
		})
		if err != nil {
			slog.Error("email_worker: subscribe failed", "event", event, "err", err)
		}
	}

	send("created", email.BuildBookingConfirmationEmail)
	send("confirmed", email.BuildAppointmentConfirmedEmail)
	send("cancelled", email.BuildAppointmentCancelledEmail)

	slog.Info("email_worker: started")
}

// ---------------------------------------------------------------------------
// reminder_worker
// ---------------------------------------------------------------------------

// startReminderWorker schedules an SMS reminder when an appointment is
// confirmed. The reminder fires hoursBefore the slot; confirmations
// closer to the slot than that get no reminder.
func startReminderWorker(nc *nats.Conn, db *repo.Client, smsCli *svcsms.Client, hoursBefore int) {
	if hoursBefore <= 0 {
		hoursBefore = 24
	}

	_, err := nc.Subscribe("medera.appointment.confirmed.*", func(msg *nats.Msg) {
		ctx := context.Background()

		appt, found := loadAppointment(ctx, db, msg)
		if !found {
			return
		}
		if appt.PatientInfo.Phone == "" || !smsCli.IsEnabled() {
			return
		}

		slot, err := time.ParseInLocation("2006-01-02 15:04",
			appt.AppointmentDate+" "+appt.AppointmentTime, time.Local)
		if err != nil {
			slog.Warn("reminder_worker: unparseable slot",
				"appointment_id", appt.ID.String(), "err", err)
			return
		}

		fireAt := slot.Add(-time.Duration(hoursBefore) * time.Hour)
		if !fireAt.After(time.Now()) {
			return
		}

		apptID := appt.ID
		time.AfterFunc(time.Until(fireAt), func() {
			ctx := context.Background()

			// Re-read so cancellations after confirmation suppress the SMS.
			current, err := db.Appointment.Query().
				Where(entappt.ID(apptID), entappt.StatusEQ(entappt.StatusConfirmed)).
				Only(ctx)
			if err != nil {
				return
			}

			err = smsCli.SendAppointmentReminder(ctx,
				current.PatientInfo.Phone,
				current.DoctorInfo.Name,
				current.AppointmentDate,
				current.AppointmentTime,
				codes.FormatBookingRef(current.BookingCode),
			)
			if err != nil {
				slog.Warn("reminder_worker: send failed",
					"appointment_id", apptID.String(), "err", err)
			}
		})
	})
	if err != nil {
		slog.Error("reminder_worker: subscribe failed", "err", err)
	}

	slog.Info("reminder_worker: started")
}
