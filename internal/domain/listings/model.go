package listings

import "time"

// Sex según el contrato original: Female | Male | vacío.
type Sex string

const (
	SexFemale Sex = "Female"
	SexMale   Sex = "Male"
)

func ValidSex(s string) bool {
	return s == "" || s == string(SexFemale) || s == string(SexMale)
}

// Listing es una mascota publicada en adopción.
type Listing struct {
	ID            string
	OwnerUsername string

	PetName     string
	PetAge      *int
	Sex         Sex
	Location    string
	Description string
	PetPhoto    string // base64

	CreatedAt time.Time
}

// Application es una solicitud de adopción para una mascota puntual.
type Application struct {
	ID        string
	ListingID string

	ApplicantUsername     string
	Name                  string
	Address               string
	Occupation            string
	ResponsibleForPetCare string
	PlanToCareForPet      string
	ClinicName            string
	ReasonForAdopting     string
	ProofOfIdentity       string // base64

	CreatedAt time.Time
}
