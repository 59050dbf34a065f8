package catalog

import "github.com/jonatanlavado-utec/saludya-client/internal/types"

// Reference data mirrors the backend catalog service. IDs are stable; the
// appointment mapping and the dialogue filter join against them.

var specialties = []types.Specialty{
	{ID: "b897c291-3ca0-44b6-a376-1fb13e2dda4c", Name: "Medicina General", Icon: "🩺", Description: "Atención primaria y consultas generales"},
	{ID: "9d9dc434-a2bc-4a5a-9867-b9dc514c4e2d", Name: "Cardiología", Icon: "❤️", Description: "Corazón y sistema cardiovascular"},
	{ID: "4d309499-1286-4869-ad20-a336f1eece37", Name: "Pediatría", Icon: "👶", Description: "Salud infantil y adolescente"},
	{ID: "5955b0a7-1351-4991-84c1-04836a24da72", Name: "Dermatología", Icon: "🧴", Description: "Piel, cabello y uñas"},
	{ID: "2a73e4aa-21ca-4cd1-89f9-6de7bd0d851b", Name: "Ginecología", Icon: "👩", Description: "Salud femenina"},
	{ID: "6b73299b-0b43-44f8-9340-751aa8b0c089", Name: "Traumatología", Icon: "🦴", Description: "Huesos, músculos y articulaciones"},
	{ID: "e94b5251-a759-4a48-bba5-5eaf777e4aac", Name: "Neurología", Icon: "🧠", Description: "Sistema nervioso"},
	{ID: "c4e78714-f890-4e8d-890b-aff96ae39529", Name: "Oftalmología", Icon: "👁️", Description: "Salud visual"},
	{ID: "6052bdea-3ddd-4512-afb9-e36b87238cbe", Name: "Psicología", Icon: "🧘", Description: "Salud mental y bienestar emocional"},
	{ID: "80217568-4d6d-4021-90f3-20a951a3172d", Name: "Nutrición", Icon: "🥗", Description: "Alimentación y dietas"},
}

var doctors = []types.Doctor{
	{
		ID:          "e1a72605-6a58-47bc-9b6f-4770fc60f47e",
		Name:        "Dra. María García López",
		Specialty:   "Medicina General",
		SpecialtyID: "b897c291-3ca0-44b6-a376-1fb13e2dda4c",
		Rating:      4.9,
		Experience:  15,
		Price:       50,
		PhotoURL:    "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=200&h=200&fit=crop&crop=face",
	},
	{
		ID:          "4d98d28a-7517-4560-8438-66db00244675",
		Name:        "Dr. Carlos Rodríguez Sánchez",
		Specialty:   "Cardiología",
		SpecialtyID: "9d9dc434-a2bc-4a5a-9867-b9dc514c4e2d",
		Rating:      4.8,
		Experience:  20,
		Price:       80,
		PhotoURL:    "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=200&h=200&fit=crop&crop=face",
	},
	{
		ID:          "78235213-9a3b-4819-863d-498c1cd81711",
		Name:        "Dra. Ana Martínez Ruiz",
		Specialty:   "Pediatría",
		SpecialtyID: "4d309499-1286-4869-ad20-a336f1eece37",
		Rating:      4.95,
		Experience:  12,
		Price:       60,
		PhotoURL:    "https://images.unsplash.com/photo-1594824476967-48c8b964273f?w=200&h=200&fit=crop&crop=face",
	},
	{
		ID:          "b863a3c9-0261-41bd-8c76-50851f5e27fb",
		Name:        "Dr. Luis Fernández Torres",
		Specialty:   "Dermatología",
		SpecialtyID: "5955b0a7-1351-4991-84c1-04836a24da72",
		Rating:      4.7,
		Experience:  8,
		Price:       70,
		PhotoURL:    "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=200&h=200&fit=crop&crop=face",
	},
	{
		ID:          "f8a0322c-5690-4d57-8fb6-829d660e5b0b",
		Name:        "Dra. Patricia Gómez Vega",
		Specialty:   "Ginecología",
		SpecialtyID: "2a73e4aa-21ca-4cd1-89f9-6de7bd0d851b",
		Rating:      4.85,
		Experience:  18,
		Price:       75,
		PhotoURL:    "https://images.unsplash.com/photo-1651008376811-b90baee60c1f?w=200&h=200&fit=crop&crop=face",
	},
	{
		ID:          "2c8a705e-a89f-43b9-a417-2fb078b54203",
		Name:        "Dr. Roberto Díaz Mendoza",
		Specialty:   "Traumatología",
		SpecialtyID: "6b73299b-0b43-44f8-9340-751aa8b0c089",
		Rating:      4.6,
		Experience:  22,
		Price:       85,
		PhotoURL:    "https://images.unsplash.com/photo-1537368910025-700350fe46c7?w=200&h=200&fit=crop&crop=face",
	},
	{
		ID:          "e0c5c678-5db6-4299-9730-1be66fbab6f2",
		Name:        "Dra. Elena Castro Navarro",
		Specialty:   "Neurología",
		SpecialtyID: "e94b5251-a759-4a48-bba5-5eaf777e4aac",
		Rating:      4.9,
		Experience:  16,
		Price:       90,
		PhotoURL:    "https://images.unsplash.com/photo-1527613426441-4da17471b66d?w=200&h=200&fit=crop&crop=face",
	},
	{
		ID:          "11c42f02-cd6e-44dc-9d8d-bb35d21c3b1e",
		Name:        "Dr. Miguel Herrera Blanco",
		Specialty:   "Oftalmología",
		SpecialtyID: "c4e78714-f890-4e8d-890b-aff96ae39529",
		Rating:      4.75,
		Experience:  14,
		Price:       65,
		PhotoURL:    "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=200&h=200&fit=crop&crop=face",
	},
	{
		ID:          "c369fc6a-2f47-49a3-9a8c-9c98bc0eeb13",
		Name:        "Dra. Laura Jiménez Ortega",
		Specialty:   "Psicología",
		SpecialtyID: "6052bdea-3ddd-4512-afb9-e36b87238cbe",
		Rating:      4.92,
		Experience:  10,
		Price:       55,
		PhotoURL:    "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=200&h=200&fit=crop&crop=face",
	},
	{
		ID:          "9f05e263-ea7c-4ab4-9721-3fc75fbfa9c7",
		Name:        "Dr. Antonio Morales Prieto",
		Specialty:   "Nutrición",
		SpecialtyID: "80217568-4d6d-4021-90f3-20a951a3172d",
		Rating:      4.8,
		Experience:  7,
		Price:       45,
		PhotoURL:    "https://images.unsplash.com/photo-1612531386530-97286d97c2d2?w=200&h=200&fit=crop&crop=face",
	},
}
