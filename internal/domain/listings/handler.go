package listings

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"furever-pals/internal/domain/accounts"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, accountsSvc *accounts.Service) {
	r.Post("/add-pet", addPetHandler(svc, accountsSvc))
	r.Get("/all-pets", allPetsHandler(svc))
	r.Get("/user-pets/{username}", userPetsHandler(svc))
	r.Get("/pets/{petID}", getPetHandler(svc))
	r.Post("/adopt-pet/{petID}", adoptPetHandler(svc, accountsSvc))
}

type petRequest struct {
	Username    string `json:"username"`
	PetName     string `json:"pet_name"`
	PetAge      *int   `json:"pet_age"`
	Sex         string `json:"sex"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PetPhoto    string `json:"pet_photo"`
}

// petResponse incluye id, a diferencia del backend original que lo
// omitía en /all-pets y dejaba al cliente sin forma de adoptar.
type petResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	PetName     string `json:"pet_name"`
	PetAge      *int   `json:"pet_age,omitempty"`
	Sex         string `json:"sex,omitempty"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	PetPhoto    string `json:"pet_photo"`
}

func toPetResponse(l Listing) petResponse {
	return petResponse{
		ID:          l.ID,
		Username:    l.OwnerUsername,
		PetName:     l.PetName,
		PetAge:      l.PetAge,
		Sex:         string(l.Sex),
		Location:    l.Location,
		Description: l.Description,
		PetPhoto:    l.PetPhoto,
	}
}

func addPetHandler(svc *Service, accountsSvc *accounts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid json")
			return
		}

		if !accountsSvc.Exists(r.Context(), req.Username) {
			writeDetail(w, http.StatusNotFound, "Username does not exist")
			return
		}

		l, err := svc.Create(r.Context(), CreateInput{
			OwnerUsername: req.Username,
			PetName:       req.PetName,
			PetAge:        req.PetAge,
			Sex:           req.Sex,
			Location:      req.Location,
			Description:   req.Description,
			PetPhoto:      req.PetPhoto,
		})
		switch {
		case errors.Is(err, ErrInvalidInput):
			writeValidation(w, []string{"pet_name, location and pet_photo are required"})
		case err != nil:
			writeDetail(w, http.StatusInternalServerError, "internal error")
		default:
			writeJSON(w, http.StatusOK, toPetResponse(l))
		}
	}
}

func allPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toPetResponse(l))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func userPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, "internal error")
			return
		}

		// El contrato original responde 404 cuando el usuario no tiene
		// mascotas; el cliente lo traduce a lista vacía.
		if len(items) == 0 {
			writeDetail(w, http.StatusNotFound, "No pets found for this user")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toPetResponse(l))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeDetail(w, http.StatusNotFound, "Pet not found")
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(l))
	}
}

type adoptionRequest struct {
	Username              string `json:"username"`
	Name                  string `json:"name"`
	Address               string `json:"address"`
	Occupation            string `json:"occupation"`
	ResponsibleForPetCare string `json:"responsible_for_pet_care"`
	PlanToCareForPet      string `json:"plan_to_care_for_pet"`
	ClinicName            string `json:"clinic_name"`
	ReasonForAdopting     string `json:"reason_for_adopting"`
	ProofOfIdentity       string `json:"proof_of_identity_photo"`
}

func adoptPetHandler(svc *Service, accountsSvc *accounts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adoptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid json")
			return
		}

		if !accountsSvc.Exists(r.Context(), req.Username) {
			writeDetail(w, http.StatusNotFound, "Username does not exist")
			return
		}

		l, err := svc.Apply(r.Context(), chi.URLParam(r, "petID"), ApplyInput{
			ApplicantUsername:     req.Username,
			Name:                  req.Name,
			Address:               req.Address,
			Occupation:            req.Occupation,
			ResponsibleForPetCare: req.ResponsibleForPetCare,
			PlanToCareForPet:      req.PlanToCareForPet,
			ClinicName:            req.ClinicName,
			ReasonForAdopting:     req.ReasonForAdopting,
			ProofOfIdentity:       req.ProofOfIdentity,
		})
		switch {
		case errors.Is(err, ErrOwnPet):
			writeDetail(w, http.StatusBadRequest, "You cannot adopt your own pet")
		case errors.Is(err, ErrNotFound):
			writeDetail(w, http.StatusNotFound, "Pet not found")
		case errors.Is(err, ErrInvalidInput):
			writeValidation(w, []string{"name and proof_of_identity_photo are required"})
		case err != nil:
			writeDetail(w, http.StatusInternalServerError, "internal error")
		default:
			writeJSON(w, http.StatusCreated, map[string]string{
				"message": fmt.Sprintf("Adoption application for %s submitted successfully", l.PetName),
			})
		}
	}
}

// duplicado adrede por módulo, igual que en accounts/feed
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeValidation(w http.ResponseWriter, msgs []string) {
	type item struct {
		Msg string `json:"msg"`
	}
	items := make([]item, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, item{Msg: m})
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": items})
}
