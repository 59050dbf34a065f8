package saludya_test

import (
	"context"
	"net/http"
	"testing"

	saludya "github.com/jonatanlavado-utec/saludya-client"
)

func TestAppointments_CreateFailure_LeavesLedgerUntouched(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.login("42", "a@b.com", "tok")
	env.mux.HandleFunc("/api/appointments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ok := env.c.Appointments().Create(context.Background(), testDoctor(t, env), testSlot, "", "pay-1")

	if ok {
		t.Fatalf("expected failure")
	}
	if got := env.c.Appointments().List(); len(got) != 0 {
		t.Fatalf("ledger must stay empty, got %d entries", len(got))
	}
}

func TestAppointments_Create_RequiresSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	if env.c.Appointments().Create(context.Background(), testDoctor(t, env), testSlot, "", "") {
		t.Fatalf("create must fail without a session")
	}
}

func TestAppointments_Refresh_MapsRecords(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.login("42", "a@b.com", "tok")
	env.mux.HandleFunc("/api/appointments/user/42", func(w http.ResponseWriter, r *http.Request) {
		// First record joins the catalog by doctor id, second falls back to
		// the inline doctor fields.
		_, _ = w.Write([]byte(`[
			{"id":"apt-1","doctor_id":"4d98d28a-7517-4560-8438-66db00244675","doctor_name":"ignored","appointment_date":"2026-09-10T10:30:00Z","status":"pending","symptoms":"dolor"},
			{"id":"apt-2","doctor_id":"unknown-id","doctor_name":"Dr. Externo","doctor_specialty":"Cardiología","appointment_date":"2026-09-11T09:00:00Z","time":"09:00","status":"completed"}
		]`))
	})

	if err := env.c.Appointments().Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	got := env.c.Appointments().List()
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(got))
	}

	first := got[0]
	if first.Doctor.Name != "Dr. Carlos Rodríguez Sánchez" {
		t.Fatalf("catalog join must win over inline name, got %q", first.Doctor.Name)
	}
	if first.Date != "2026-09-10" || first.Time != "10:30" {
		t.Fatalf("unexpected date split %q %q", first.Date, first.Time)
	}
	if first.Status != saludya.StatusPending || first.Symptoms != "dolor" {
		t.Fatalf("unexpected record %+v", first)
	}

	second := got[1]
	if second.Doctor.Name != "Dr. Externo" || second.Doctor.Specialty != "Cardiología" {
		t.Fatalf("inline fallback not applied: %+v", second.Doctor)
	}
	if second.Status != saludya.StatusCompleted {
		t.Fatalf("unexpected status %q", second.Status)
	}
}

func TestAppointments_Refresh_RequiresSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	if err := env.c.Appointments().Refresh(context.Background()); err == nil {
		t.Fatalf("refresh without session must fail")
	}
}

func TestAppointments_Cancel_IsLocalAndIdempotent(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.login("42", "a@b.com", "tok")
	env.mux.HandleFunc("/api/payments", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"pay-1"}`))
	})
	env.mux.HandleFunc("/api/appointments", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"apt-1"}`))
	})
	res := env.c.Booking().ProcessPayment(context.Background(), 0, testCard, testDoctor(t, env), testSlot, "")
	if !res.Success {
		t.Fatalf("setup booking failed: %s", res.Error)
	}

	env.c.Appointments().Cancel("apt-1")
	env.c.Appointments().Cancel("apt-1") // repeat is a no-op
	env.c.Appointments().Cancel("missing-id")

	got := env.c.Appointments().List()
	if len(got) != 1 {
		t.Fatalf("cancel must not remove entries, got %d", len(got))
	}
	if got[0].Status != saludya.StatusCancelled {
		t.Fatalf("expected cancelled, got %q", got[0].Status)
	}
}

func TestAppointments_List_ReturnsCopy(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.login("42", "a@b.com", "tok")
	env.mux.HandleFunc("/api/appointments", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"apt-1"}`))
	})
	if !env.c.Appointments().Create(context.Background(), testDoctor(t, env), testSlot, "", "") {
		t.Fatalf("setup create failed")
	}

	got := env.c.Appointments().List()
	got[0].Status = saludya.StatusCompleted

	if env.c.Appointments().List()[0].Status != saludya.StatusPending {
		t.Fatalf("List must return a copy")
	}
}
