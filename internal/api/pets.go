package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"furever-pals/internal/platform/httpclient"
)

// AllPets trae la galería completa para el dashboard.
func (c *Client) AllPets(ctx context.Context) ([]PetListing, error) {
	var out []PetListing
	if err := c.http.DoJSON(ctx, http.MethodGet, "/all-pets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyPets trae las mascotas publicadas por el usuario de la sesión.
// 404 acá significa "todavía no publicó nada": lista vacía, no error.
func (c *Client) MyPets(ctx context.Context) ([]PetListing, error) {
	username, err := c.actingUser()
	if err != nil {
		return nil, err
	}

	var out []PetListing
	err = c.http.DoJSON(ctx, http.MethodGet, "/user-pets/"+username, nil, &out)
	if err != nil {
		var ce *httpclient.ClientError
		if errors.As(err, &ce) && ce.StatusCode == http.StatusNotFound {
			return []PetListing{}, nil
		}
		return nil, err
	}
	return out, nil
}

type AddPetInput struct {
	PetName     string
	PetAge      *int
	Sex         string // Female | Male | vacío
	Location    string
	Description string
	PetPhoto    string // base64, obligatorio
}

type addPetRequest struct {
	Username    string `json:"username"`
	PetName     string `json:"pet_name"`
	PetAge      *int   `json:"pet_age,omitempty"`
	Sex         string `json:"sex,omitempty"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	PetPhoto    string `json:"pet_photo"`
}

// AddPet publica una mascota en adopción a nombre de la sesión.
// Nombre, ubicación y foto son obligatorios; se valida local antes de
// emitir el request.
func (c *Client) AddPet(ctx context.Context, in AddPetInput) error {
	username, err := c.actingUser()
	if err != nil {
		return err
	}

	in.PetName = strings.TrimSpace(in.PetName)
	in.Location = strings.TrimSpace(in.Location)

	var bad []string
	if in.PetName == "" {
		bad = append(bad, "pet_name")
	}
	if in.Location == "" {
		bad = append(bad, "location")
	}
	if in.PetPhoto == "" {
		bad = append(bad, "pet_photo")
	}
	if in.PetAge != nil && *in.PetAge < 0 {
		bad = append(bad, "pet_age")
	}
	if err := validationError(bad); err != nil {
		return err
	}

	req := addPetRequest{
		Username:    username,
		PetName:     in.PetName,
		PetAge:      in.PetAge,
		Sex:         in.Sex,
		Location:    in.Location,
		Description: strings.TrimSpace(in.Description),
		PetPhoto:    in.PetPhoto,
	}

	if err := c.http.DoJSON(ctx, http.MethodPost, "/add-pet", req, nil); err != nil {
		return err
	}

	c.log.Info("pet listed for adoption", "user", username, "pet", in.PetName)
	return nil
}

type AdoptionInput struct {
	Name                  string // nombre completo del solicitante
	Address               string
	Occupation            string
	ResponsibleForPetCare string
	PlanToCareForPet      string
	ClinicName            string
	ReasonForAdopting     string
	ProofOfIdentity       string // base64, obligatorio
}

type adoptionRequest struct {
	Username              string `json:"username"`
	Name                  string `json:"name"`
	Address               string `json:"address,omitempty"`
	Occupation            string `json:"occupation,omitempty"`
	ResponsibleForPetCare string `json:"responsible_for_pet_care,omitempty"`
	PlanToCareForPet      string `json:"plan_to_care_for_pet,omitempty"`
	ClinicName            string `json:"clinic_name,omitempty"`
	ReasonForAdopting     string `json:"reason_for_adopting,omitempty"`
	ProofOfIdentity       string `json:"proof_of_identity_photo"`
}

// Adopt envía la solicitud de adopción para una mascota puntual.
// El backend rechaza adoptar la mascota propia; eso llega como
// ClientError y se muestra tal cual.
func (c *Client) Adopt(ctx context.Context, petID string, in AdoptionInput) error {
	username, err := c.actingUser()
	if err != nil {
		return err
	}

	petID = strings.TrimSpace(petID)
	in.Name = strings.TrimSpace(in.Name)

	var bad []string
	if petID == "" {
		bad = append(bad, "pet_id")
	}
	if in.Name == "" {
		bad = append(bad, "name")
	}
	if in.ProofOfIdentity == "" {
		bad = append(bad, "proof_of_identity_photo")
	}
	if err := validationError(bad); err != nil {
		return err
	}

	req := adoptionRequest{
		Username:              username,
		Name:                  in.Name,
		Address:               strings.TrimSpace(in.Address),
		Occupation:            strings.TrimSpace(in.Occupation),
		ResponsibleForPetCare: strings.TrimSpace(in.ResponsibleForPetCare),
		PlanToCareForPet:      strings.TrimSpace(in.PlanToCareForPet),
		ClinicName:            strings.TrimSpace(in.ClinicName),
		ReasonForAdopting:     strings.TrimSpace(in.ReasonForAdopting),
		ProofOfIdentity:       in.ProofOfIdentity,
	}

	if err := c.http.DoJSON(ctx, http.MethodPost, "/adopt-pet/"+petID, req, nil); err != nil {
		return err
	}

	c.log.Info("adoption application submitted", "user", username, "pet_id", petID)
	return nil
}
