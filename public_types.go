package saludya

import "github.com/jonatanlavado-utec/saludya-client/internal/types"

// Public type aliases so SDK consumers can import only this package.
type (
	// Domain entities
	User        = types.User
	Specialty   = types.Specialty
	Doctor      = types.Doctor
	TimeSlot    = types.TimeSlot
	Appointment = types.Appointment
	ChatMessage = types.ChatMessage
	CardInfo    = types.CardInfo

	AppointmentStatus = types.AppointmentStatus
	Sender            = types.Sender
)

// Appointment statuses.
const (
	StatusScheduled = types.StatusScheduled
	StatusPending   = types.StatusPending
	StatusCompleted = types.StatusCompleted
	StatusCancelled = types.StatusCancelled
)

// Chat message senders.
const (
	SenderUser      = types.SenderUser
	SenderAssistant = types.SenderAssistant
)
