package types

// ------------------------------
// Request Types (wire shapes)
// ------------------------------
//
// Field names follow the remote services' snake_case JSON contracts.
// Optional fields use pointers so "absent" and "empty" stay distinct on
// the wire: the services treat a null phone as "no phone", not "".

// LoginRequest is the identity-service login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the identity-service registration payload.
type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	DNI       string  `json:"dni"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birth_date,omitempty"`
}

// UpdateProfileRequest is the profile-service PUT payload. Every field is
// sent; the session manager fills missing values from the current user
// before building it.
type UpdateProfileRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	DNI       string  `json:"dni"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birth_date,omitempty"`
}

// CreateAppointmentRequest is the appointment-service creation payload.
type CreateAppointmentRequest struct {
	UserID          string  `json:"user_id"`
	DoctorID        string  `json:"doctor_id"`
	DoctorName      string  `json:"doctor_name"`
	SpecialtyName   string  `json:"specialty_name"`
	AppointmentDate string  `json:"appointment_date"` // RFC 3339
	Price           float64 `json:"price"`
	Notes           string  `json:"notes,omitempty"`
	PaymentID       string  `json:"payment_id,omitempty"`
}

// PaymentRequest is the payment-service charge payload. CardNumber must
// already be normalized (spaces and dashes stripped).
type PaymentRequest struct {
	UserID     string  `json:"user_id"`
	Amount     float64 `json:"amount"`
	CardNumber string  `json:"card_number"`
	CardHolder string  `json:"card_holder"`
	ExpiryDate string  `json:"expiry_date"`
	CVV        string  `json:"cvv"`
}

// OrientationRequest is the symptom-orientation payload. The symptom text
// is forwarded verbatim; the service owns all interpretation.
type OrientationRequest struct {
	Symptoms string `json:"symptoms"`
	UserID   string `json:"user_id,omitempty"`
}
