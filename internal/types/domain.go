package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// User is the patient identity as the client sees it. ID and Email are
// always set once a User exists; the remaining fields fall back to the
// empty string when the profile service is unreachable.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DNI       string `json:"dni"`
	BirthDate string `json:"birthDate,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Specialty is a named medical discipline with a stable identifier.
type Specialty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// Doctor is a read-only catalog entity. The client never mutates doctors,
// it only joins appointment records against them by ID.
type Doctor struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Specialty   string  `json:"specialty"`
	SpecialtyID string  `json:"specialtyId"`
	Rating      float64 `json:"rating"`
	Experience  int     `json:"experience"`
	Price       float64 `json:"price"`
	PhotoURL    string  `json:"photoUrl,omitempty"`
}

// TimeSlot is a bookable slot sourced from the catalog.
type TimeSlot struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
}

// AppointmentStatus enumerates the states an appointment can be in.
// The only client-initiated transition is pending -> cancelled; completed,
// diagnosis and prescription are set exclusively by the remote service.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is the local representation of a booked consultation.
// Doctor is a snapshot resolved against the catalog at read time.
type Appointment struct {
	ID           string            `json:"id"`
	Doctor       Doctor            `json:"doctor"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Status       AppointmentStatus `json:"status"`
	Symptoms     string            `json:"symptoms,omitempty"`
	Diagnosis    string            `json:"diagnosis,omitempty"`
	Prescription string            `json:"prescription,omitempty"`
	Notes        string            `json:"notes,omitempty"`
}

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatMessage is one entry of the append-only dialogue log.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// CardInfo carries the payment card data entered by the patient. It is
// forwarded to the payment service and never persisted.
type CardInfo struct {
	Number     string `json:"cardNumber"`
	Holder     string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"` // MM/YY
	CVV        string `json:"cvv"`
}
