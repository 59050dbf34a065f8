// Package catalog holds the static medical reference data: specialties,
// doctors and their bookable time slots. The orchestration layer treats it
// as a read-only collaborator; nothing here is ever mutated.
package catalog

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

// Catalog exposes lookups over the doctor and specialty reference data.
type Catalog struct {
	specialties []types.Specialty
	doctors     []types.Doctor
	now         func() time.Time
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{specialties: specialties, doctors: doctors, now: time.Now}
}

// New builds a catalog over caller-supplied reference data. Used by tests
// that need a minimal, fully controlled doctor set.
func New(sps []types.Specialty, docs []types.Doctor) *Catalog {
	return &Catalog{specialties: sps, doctors: docs, now: time.Now}
}

// Specialties returns all specialties in display order.
func (c *Catalog) Specialties() []types.Specialty {
	out := make([]types.Specialty, len(c.specialties))
	copy(out, c.specialties)
	return out
}

// Doctors returns all doctors in display order.
func (c *Catalog) Doctors() []types.Doctor {
	out := make([]types.Doctor, len(c.doctors))
	copy(out, c.doctors)
	return out
}

// DoctorByID looks a doctor up by id. ok is false when the doctor is not
// in the catalog.
func (c *Catalog) DoctorByID(id string) (types.Doctor, bool) {
	for _, d := range c.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return types.Doctor{}, false
}

// DoctorsBySpecialtyID returns every doctor whose specialty id is in ids.
func (c *Catalog) DoctorsBySpecialtyID(ids []string) []types.Doctor {
	var out []types.Doctor
	for _, d := range c.doctors {
		for _, id := range ids {
			if d.SpecialtyID == id {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// SpecialtyByName looks a specialty up by its display name, case-sensitive
// exact match. The orientation service replies with these names.
func (c *Catalog) SpecialtyByName(name string) (types.Specialty, bool) {
	for _, s := range c.specialties {
		if s.Name == name {
			return s, true
		}
	}
	return types.Specialty{}, false
}

// SpecialtyByID looks a specialty up by id.
func (c *Catalog) SpecialtyByID(id string) (types.Specialty, bool) {
	for _, s := range c.specialties {
		if s.ID == id {
			return s, true
		}
	}
	return types.Specialty{}, false
}

// AvailableSlots generates the next 14 days of half-hour consultation
// slots for a doctor. Availability is pseudo-random but stable for a given
// (doctor, day) pair so repeated calls agree with each other.
func (c *Catalog) AvailableSlots(doctorID string) []types.TimeSlot {
	times := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	}
	today := c.now()
	var slots []types.TimeSlot
	for day := 1; day <= 14; day++ {
		date := today.AddDate(0, 0, day).Format("2006-01-02")
		rng := rand.New(rand.NewSource(slotSeed(doctorID, date)))
		for _, t := range times {
			slots = append(slots, types.TimeSlot{
				ID:        date + "-" + t,
				Date:      date,
				Time:      t,
				Available: rng.Float64() > 0.3,
			})
		}
	}
	return slots
}

func slotSeed(doctorID, date string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(doctorID))
	_, _ = h.Write([]byte(date))
	return int64(h.Sum64())
}
