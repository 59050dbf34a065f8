package catalog

import "testing"

func TestDoctorByID(t *testing.T) {
	c := Default()
	d, ok := c.DoctorByID("4d98d28a-7517-4560-8438-66db00244675")
	if !ok {
		t.Fatalf("expected doctor to exist")
	}
	if d.Specialty != "Cardiología" {
		t.Fatalf("unexpected specialty %q", d.Specialty)
	}
	if _, ok := c.DoctorByID("nope"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestDoctorsBySpecialtyID(t *testing.T) {
	c := Default()
	sp, ok := c.SpecialtyByName("Cardiología")
	if !ok {
		t.Fatalf("specialty not found")
	}
	docs := c.DoctorsBySpecialtyID([]string{sp.ID})
	if len(docs) != 1 {
		t.Fatalf("expected one cardiologist, got %d", len(docs))
	}
	if docs[0].SpecialtyID != sp.ID {
		t.Fatalf("filter returned wrong doctor %+v", docs[0])
	}
	if got := c.DoctorsBySpecialtyID(nil); len(got) != 0 {
		t.Fatalf("empty id set should match nothing, got %d", len(got))
	}
}

func TestSpecialtyByName_CaseSensitive(t *testing.T) {
	c := Default()
	if _, ok := c.SpecialtyByName("cardiología"); ok {
		t.Fatalf("lookup must be case-sensitive")
	}
}

func TestAvailableSlots_Deterministic(t *testing.T) {
	c := Default()
	a := c.AvailableSlots("e1a72605-6a58-47bc-9b6f-4770fc60f47e")
	b := c.AvailableSlots("e1a72605-6a58-47bc-9b6f-4770fc60f47e")
	if len(a) != 14*12 {
		t.Fatalf("expected 168 slots, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d differs between calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}
