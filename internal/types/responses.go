package types

// ------------------------------
// Response Types (wire shapes)
// ------------------------------

// AuthResponse is returned by the identity service on login and register.
type AuthResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// MeResponse is returned by the identity service "who am I" endpoint.
type MeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ProfileResponse is the profile-service user record.
type ProfileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DNI       string `json:"dni"`
	BirthDate string `json:"birth_date"`
	Phone     string `json:"phone"`
}

// User converts the wire profile into the local User entity. Missing
// fields collapse to the empty string because the wire struct already
// zero-values them.
func (p ProfileResponse) User() User {
	return User{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		DNI:       p.DNI,
		BirthDate: p.BirthDate,
		Phone:     p.Phone,
	}
}

// AppointmentRecord is one element of the appointment-service list
// response. Doctor fields are inlined so the record stays renderable even
// when the doctor has left the local catalog.
type AppointmentRecord struct {
	ID               string  `json:"id"`
	DoctorID         string  `json:"doctor_id"`
	DoctorName       string  `json:"doctor_name"`
	DoctorSpecialty  string  `json:"doctor_specialty"`
	DoctorRating     float64 `json:"doctor_rating"`
	DoctorExperience int     `json:"doctor_experience"`
	AppointmentDate  string  `json:"appointment_date"`
	Time             string  `json:"time"`
	Status           string  `json:"status"`
	Symptoms         string  `json:"symptoms"`
	Diagnosis        string  `json:"diagnosis"`
	Prescription     string  `json:"prescription"`
	Notes            string  `json:"notes"`
}

// CreateAppointmentResponse acknowledges a created appointment.
type CreateAppointmentResponse struct {
	ID string `json:"id"`
}

// PaymentResponse acknowledges a successful charge.
type PaymentResponse struct {
	ID string `json:"id"`
}

// OrientationResponse is the symptom-orientation service reply.
// Explanation and Comment are opaque display strings, never parsed.
type OrientationResponse struct {
	RecommendedSpecialty string `json:"recommended_specialty"`
	Explanation          string `json:"explanation"`
	Comment              string `json:"comment"`
	InferenceMethod      string `json:"inference_method"`
}
