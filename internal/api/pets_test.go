package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestAllPets_DecodesListing(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/all-pets" {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, `[
			{"pet_name":"Rex","pet_age":2,"sex":"Male","location":"Cebu","description":"good boy","username":"ben","pet_photo":"Zm90bw=="},
			{"pet_name":"Mingming","location":"Davao","pet_photo":"Zm90bw=="}
		]`)
	})

	pets, err := c.AllPets(context.Background())
	if err != nil {
		t.Fatalf("all pets: %v", err)
	}
	if len(pets) != 2 {
		t.Fatalf("got %d pets", len(pets))
	}

	rex := pets[0]
	if rex.PetName != "Rex" || rex.OwnerUsername != "ben" {
		t.Fatalf("unexpected listing: %+v", rex)
	}
	if rex.PetAge == nil || *rex.PetAge != 2 {
		t.Fatalf("pet_age = %v", rex.PetAge)
	}

	// segundo registro sin dueño ni edad: el hueco de contrato conocido
	if pets[1].OwnerUsername != "" || pets[1].PetAge != nil {
		t.Fatalf("unexpected listing: %+v", pets[1])
	}
}

func TestCanAdopt_OwnershipGate(t *testing.T) {
	cases := []struct {
		name    string
		owner   string
		current string
		want    bool
	}{
		{"other user's pet", "ben", "ana", true},
		{"own pet hidden", "ana", "ana", false},
		{"unknown owner shown", "", "ana", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := PetListing{OwnerUsername: tc.owner}
			if got := p.CanAdopt(tc.current); got != tc.want {
				t.Fatalf("CanAdopt(%q) = %v, want %v", tc.current, got, tc.want)
			}
		})
	}
}

func TestMyPets_404MeansEmpty(t *testing.T) {
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user-pets/ana" {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusNotFound, `{"detail":"No pets found for this user"}`)
	})
	sess.Set("ana")

	pets, err := c.MyPets(context.Background())
	if err != nil {
		t.Fatalf("404 must not be an error, got %v", err)
	}
	if pets == nil || len(pets) != 0 {
		t.Fatalf("want empty slice, got %#v", pets)
	}
}

func TestMyPets_OtherErrorsPropagate(t *testing.T) {
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, `{}`)
	})
	sess.Set("ana")

	if _, err := c.MyPets(context.Background()); err == nil {
		t.Fatal("500 should propagate as error")
	}
}

func TestAddPet_RequiredFieldGate(t *testing.T) {
	c, sess := newOfflineClient(t)
	sess.Set("ana")

	err := c.AddPet(context.Background(), AddPetInput{
		// sin nombre, sin foto
		Location: "Cebu",
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("fields = %v", ve.Fields)
	}
}

func TestAddPet_OwnerComesFromSession(t *testing.T) {
	var got addPetRequest
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/add-pet" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(t, w, http.StatusOK, `{"pet_name":"Rex"}`)
	})
	sess.Set("ana")

	age := 2
	err := c.AddPet(context.Background(), AddPetInput{
		PetName:  "Rex",
		PetAge:   &age,
		Sex:      "Male",
		Location: "Cebu",
		PetPhoto: "Zm90bw==",
	})
	if err != nil {
		t.Fatalf("add pet: %v", err)
	}

	if got.Username != "ana" {
		t.Fatalf("owner = %q, must come from session", got.Username)
	}
	if got.PetName != "Rex" || got.PetAge == nil || *got.PetAge != 2 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestAddPet_RequiresSession(t *testing.T) {
	c, _ := newOfflineClient(t)

	err := c.AddPet(context.Background(), AddPetInput{
		PetName:  "Rex",
		Location: "Cebu",
		PetPhoto: "Zm90bw==",
	})
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestAdopt_ApplicantFromSession(t *testing.T) {
	var got adoptionRequest
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/adopt-pet/pet-42" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(t, w, http.StatusCreated, `{"message":"Adoption application for Rex submitted successfully"}`)
	})
	sess.Set("ana")

	err := c.Adopt(context.Background(), "pet-42", AdoptionInput{
		Name:            "Ana Reyes",
		Occupation:      "vet tech",
		ProofOfIdentity: "aWQ=",
	})
	if err != nil {
		t.Fatalf("adopt: %v", err)
	}

	if got.Username != "ana" {
		t.Fatalf("applicant = %q, must come from session", got.Username)
	}
}

func TestAdopt_RequiresProof(t *testing.T) {
	c, sess := newOfflineClient(t)
	sess.Set("ana")

	err := c.Adopt(context.Background(), "pet-42", AdoptionInput{Name: "Ana Reyes"})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
}
