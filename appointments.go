package saludya

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jonatanlavado-utec/saludya-client/catalog"
	"github.com/jonatanlavado-utec/saludya-client/internal/api"
	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

// AppointmentLedger is the in-memory collection of the session user's
// appointments. Entries appear only after the appointment service has
// confirmed them; there is no optimistic insert.
type AppointmentLedger struct {
	httpClient *http.Client
	urls       serviceURLs
	catalog    *catalog.Catalog
	session    *SessionManager
	log        clientLogger

	mu    sync.RWMutex
	items []types.Appointment
}

func newAppointmentLedger(c *Client) *AppointmentLedger {
	return &AppointmentLedger{
		httpClient: c.httpClient,
		urls:       c.urls,
		catalog:    c.catalog,
		session:    c.session,
		log:        clientLogger{c.log},
	}
}

// List returns the current appointments in insertion order. Sorting is a
// presentation concern and happens elsewhere.
func (l *AppointmentLedger) List() []types.Appointment {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]types.Appointment, len(l.items))
	copy(out, l.items)
	return out
}

// Refresh fetches the remote appointment list for the session user and
// replaces the in-memory sequence with it.
func (l *AppointmentLedger) Refresh(ctx context.Context) error {
	user, okUser := l.session.User()
	if !okUser {
		return errNoSession
	}
	records, err := api.ListAppointments(ctx, l.httpClient, l.urls.appointments, user.ID)
	if err != nil {
		return err
	}
	items := make([]types.Appointment, 0, len(records))
	for _, rec := range records {
		items = append(items, l.fromRecord(rec))
	}
	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
	return nil
}

// Create books an appointment with the remote service and, only on
// confirmed success, appends it locally with the server-assigned id and
// pending status. Returns false when unauthenticated, rejected, or
// unreachable; in every failure case the ledger is unchanged.
func (l *AppointmentLedger) Create(ctx context.Context, doctor types.Doctor, slot types.TimeSlot, symptoms, paymentID string) bool {
	return l.create(ctx, doctor, slot, symptoms, paymentID) == nil
}

func (l *AppointmentLedger) create(ctx context.Context, doctor types.Doctor, slot types.TimeSlot, symptoms, paymentID string) error {
	user, okUser := l.session.User()
	if !okUser {
		return errNoSession
	}

	req := types.CreateAppointmentRequest{
		UserID:          user.ID,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		SpecialtyName:   doctor.Specialty,
		AppointmentDate: combineSlot(slot),
		Price:           doctor.Price,
		Notes:           symptoms,
		PaymentID:       paymentID,
	}
	resp, err := api.CreateAppointment(ctx, l.httpClient, l.urls.appointments, req)
	if err != nil {
		bookingsTotal.WithLabelValues(outcomeFailure).Inc()
		l.log.warnErr(err, "appointment creation failed")
		return err
	}

	appt := types.Appointment{
		ID:       resp.ID,
		Doctor:   doctor,
		Date:     slot.Date,
		Time:     slot.Time,
		Status:   types.StatusPending,
		Symptoms: symptoms,
	}
	l.mu.Lock()
	l.items = append(l.items, appt)
	l.mu.Unlock()
	bookingsTotal.WithLabelValues(outcomeSuccess).Inc()
	return nil
}

// Cancel rewrites the matching entry's status to cancelled. Idempotent;
// an unknown id is a no-op.
//
// TODO: reconcile with a remote cancellation call on the appointment
// service and roll the local status back when the service rejects it.
func (l *AppointmentLedger) Cancel(appointmentID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].ID == appointmentID {
			l.items[i].Status = types.StatusCancelled
		}
	}
}

func (l *AppointmentLedger) clear() {
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()
}

// fromRecord maps a remote appointment record to the local entity. The
// doctor snapshot comes from the catalog when the id is still known,
// otherwise from the record's inline fields.
func (l *AppointmentLedger) fromRecord(rec types.AppointmentRecord) types.Appointment {
	doctor, found := l.catalog.DoctorByID(rec.DoctorID)
	if !found {
		doctor = types.Doctor{
			ID:         rec.DoctorID,
			Name:       rec.DoctorName,
			Specialty:  rec.DoctorSpecialty,
			Rating:     rec.DoctorRating,
			Experience: rec.DoctorExperience,
		}
	}

	date, tm := splitAppointmentDate(rec.AppointmentDate, rec.Time)
	return types.Appointment{
		ID:           rec.ID,
		Doctor:       doctor,
		Date:         date,
		Time:         tm,
		Status:       types.AppointmentStatus(rec.Status),
		Symptoms:     rec.Symptoms,
		Diagnosis:    rec.Diagnosis,
		Prescription: rec.Prescription,
		Notes:        rec.Notes,
	}
}

// combineSlot joins a slot's date and time into the RFC 3339 timestamp
// the appointment service expects.
func combineSlot(slot types.TimeSlot) string {
	return slot.Date + "T" + slot.Time + ":00Z"
}

// splitAppointmentDate breaks a remote appointment_date into local date
// and time parts. An explicit time field on the record wins over the
// timestamp's time component.
func splitAppointmentDate(appointmentDate, timeField string) (string, string) {
	date := appointmentDate
	tm := timeField
	if ts, err := time.Parse(time.RFC3339, appointmentDate); err == nil {
		date = ts.Format("2006-01-02")
		if tm == "" {
			tm = ts.Format("15:04")
		}
		return date, tm
	}
	if idx := strings.IndexByte(appointmentDate, 'T'); idx >= 0 {
		date = appointmentDate[:idx]
		if tm == "" && len(appointmentDate) >= idx+6 {
			tm = appointmentDate[idx+1 : idx+6]
		}
	}
	return date, tm
}
