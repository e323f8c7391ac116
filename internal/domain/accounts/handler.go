package accounts

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/register", registerHandler(svc))
	r.Post("/login", loginHandler(svc))
	r.Get("/user-details/{username}", userDetailsHandler(svc))
	r.Put("/update-user-details/{username}", updateDetailsHandler(svc))
}

type registerRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Firstname    string `json:"firstname"`
	Middlename   string `json:"middlename"`
	Lastname     string `json:"lastname"`
	Birthday     string `json:"birthday"` // YYYY-MM-DD
	MobileNum    string `json:"mobilenum"`
	Address      string `json:"address"`
	PetKnowledge int    `json:"pet_knowledge"`
	StableLiving int    `json:"stable_living"`
	FlexTime     int    `json:"flex_time_sched"`
	Environment  int    `json:"environment"`
	ProfilePhoto string `json:"profile_photo"`
}

type detailsResponse struct {
	Firstname    string `json:"firstname"`
	Middlename   string `json:"middlename,omitempty"`
	Lastname     string `json:"lastname"`
	Email        string `json:"email"`
	Birthday     string `json:"birthday"`
	MobileNum    string `json:"mobilenum"`
	Address      string `json:"address"`
	PetKnowledge int    `json:"pet_knowledge"`
	StableLiving int    `json:"stable_living"`
	FlexTime     int    `json:"flex_time_sched"`
	Environment  int    `json:"environment"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}

func toDetailsResponse(a Account) detailsResponse {
	return detailsResponse{
		Firstname:    a.Firstname,
		Middlename:   a.Middlename,
		Lastname:     a.Lastname,
		Email:        a.Email,
		Birthday:     a.Birthday.Format(dateLayout),
		MobileNum:    a.MobileNum,
		Address:      a.Address,
		PetKnowledge: a.PetKnowledge,
		StableLiving: a.StableLiving,
		FlexTime:     a.FlexTime,
		Environment:  a.Environment,
		ProfilePhoto: a.ProfilePhoto,
	}
}

func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid json")
			return
		}

		var birthday time.Time
		if req.Birthday != "" {
			t, err := time.Parse(dateLayout, req.Birthday)
			if err != nil {
				writeValidation(w, []string{"birthday must be YYYY-MM-DD"})
				return
			}
			birthday = t
		}

		_, msgs, err := svc.Register(r.Context(), RegisterInput{
			Username:     req.Username,
			Email:        req.Email,
			Password:     req.Password,
			Firstname:    req.Firstname,
			Middlename:   req.Middlename,
			Lastname:     req.Lastname,
			Birthday:     birthday,
			MobileNum:    req.MobileNum,
			Address:      req.Address,
			PetKnowledge: req.PetKnowledge,
			StableLiving: req.StableLiving,
			FlexTime:     req.FlexTime,
			Environment:  req.Environment,
			ProfilePhoto: req.ProfilePhoto,
		})
		switch {
		case errors.Is(err, ErrInvalidInput):
			writeValidation(w, msgs)
		case errors.Is(err, ErrUserExists):
			writeDetail(w, http.StatusBadRequest, "Username already taken")
		case err != nil:
			writeDetail(w, http.StatusInternalServerError, "internal error")
		default:
			writeJSON(w, http.StatusOK, map[string]string{
				"message":  "User registered successfully",
				"username": req.Username,
			})
		}
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid json")
			return
		}

		if err := svc.VerifyLogin(r.Context(), req.Username, req.Password); err != nil {
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
	}
}

func userDetailsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			writeDetail(w, http.StatusNotFound, "User details not found")
			return
		}
		writeJSON(w, http.StatusOK, toDetailsResponse(a))
	}
}

type updateDetailsRequest struct {
	Firstname    *string `json:"firstname"`
	Middlename   *string `json:"middlename"`
	Lastname     *string `json:"lastname"`
	Email        *string `json:"email"`
	Birthday     *string `json:"birthday"`
	MobileNum    *string `json:"mobilenum"`
	Address      *string `json:"address"`
	PetKnowledge *int    `json:"pet_knowledge"`
	StableLiving *int    `json:"stable_living"`
	FlexTime     *int    `json:"flex_time_sched"`
	Environment  *int    `json:"environment"`
	ProfilePhoto *string `json:"profile_photo"`
}

func updateDetailsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateDetailsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid json")
			return
		}

		patch := DetailsPatch{
			Firstname:    req.Firstname,
			Middlename:   req.Middlename,
			Lastname:     req.Lastname,
			Email:        req.Email,
			MobileNum:    req.MobileNum,
			Address:      req.Address,
			PetKnowledge: req.PetKnowledge,
			StableLiving: req.StableLiving,
			FlexTime:     req.FlexTime,
			Environment:  req.Environment,
			ProfilePhoto: req.ProfilePhoto,
		}
		if req.Birthday != nil {
			t, err := time.Parse(dateLayout, *req.Birthday)
			if err != nil {
				writeValidation(w, []string{"birthday must be YYYY-MM-DD"})
				return
			}
			patch.Birthday = &t
		}

		_, err := svc.UpdateDetails(r.Context(), chi.URLParam(r, "username"), patch)
		switch {
		case errors.Is(err, ErrInvalidInput):
			writeValidation(w, []string{"invalid field value"})
		case err != nil:
			writeDetail(w, http.StatusNotFound, "User details not found")
		default:
			writeJSON(w, http.StatusOK, map[string]string{"message": "User details updated successfully"})
		}
	}
}

// writeJSON/writeDetail se duplican adrede por módulo (accounts/listings/feed)
// para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeValidation arma el 422 estilo FastAPI: detail como lista de {msg}.
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
