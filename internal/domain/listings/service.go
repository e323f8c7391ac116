package listings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrOwnPet       = errors.New("cannot adopt own pet")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	OwnerUsername string
	PetName       string
	PetAge        *int
	Sex           string
	Location      string
	Description   string
	PetPhoto      string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Listing, error) {
	if strings.TrimSpace(in.OwnerUsername) == "" {
		return Listing{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.PetName) == "" {
		return Listing{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Location) == "" {
		return Listing{}, ErrInvalidInput
	}
	if in.PetPhoto == "" {
		return Listing{}, ErrInvalidInput
	}
	if !ValidSex(in.Sex) {
		return Listing{}, ErrInvalidInput
	}
	if in.PetAge != nil && *in.PetAge <= 0 {
		return Listing{}, ErrInvalidInput
	}

	l := Listing{
		ID:            uuid.NewString(),
		OwnerUsername: strings.TrimSpace(in.OwnerUsername),
		PetName:       strings.TrimSpace(in.PetName),
		PetAge:        in.PetAge,
		Sex:           Sex(in.Sex),
		Location:      strings.TrimSpace(in.Location),
		Description:   strings.TrimSpace(in.Description),
		PetPhoto:      in.PetPhoto,
		CreatedAt:     s.now(),
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Listing, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUsername string) ([]Listing, error) {
	return s.repo.ListByOwner(ctx, ownerUsername)
}

type ApplyInput struct {
	ApplicantUsername     string
	Name                  string
	Address               string
	Occupation            string
	ResponsibleForPetCare string
	PlanToCareForPet      string
	ClinicName            string
	ReasonForAdopting     string
	ProofOfIdentity       string
}

// Apply registra una solicitud de adopción. El dueño no puede adoptar
// su propia mascota; esa regla vive acá, no en el cliente.
func (s *Service) Apply(ctx context.Context, listingID string, in ApplyInput) (Listing, error) {
	if strings.TrimSpace(in.ApplicantUsername) == "" || strings.TrimSpace(in.Name) == "" {
		return Listing{}, ErrInvalidInput
	}
	if in.ProofOfIdentity == "" {
		return Listing{}, ErrInvalidInput
	}

	l, err := s.repo.GetByID(ctx, strings.TrimSpace(listingID))
	if err != nil {
		return Listing{}, ErrNotFound
	}

	if l.OwnerUsername == strings.TrimSpace(in.ApplicantUsername) {
		return Listing{}, ErrOwnPet
	}

	a := Application{
		ID:                    uuid.NewString(),
		ListingID:             l.ID,
		ApplicantUsername:     strings.TrimSpace(in.ApplicantUsername),
		Name:                  strings.TrimSpace(in.Name),
		Address:               strings.TrimSpace(in.Address),
		Occupation:            strings.TrimSpace(in.Occupation),
		ResponsibleForPetCare: strings.TrimSpace(in.ResponsibleForPetCare),
		PlanToCareForPet:      strings.TrimSpace(in.PlanToCareForPet),
		ClinicName:            strings.TrimSpace(in.ClinicName),
		ReasonForAdopting:     strings.TrimSpace(in.ReasonForAdopting),
		ProofOfIdentity:       in.ProofOfIdentity,
		CreatedAt:             s.now(),
	}

	if err := s.repo.CreateApplication(ctx, a); err != nil {
		return Listing{}, err
	}
	return l, nil
}
