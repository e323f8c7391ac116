package api_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"furever-pals/internal/api"
	"furever-pals/internal/platform/httpclient"
	"furever-pals/internal/platform/logger"
	"furever-pals/internal/router"
	"furever-pals/internal/session"
)

// Levanta el servidor de desarrollo completo y corre el flujo de la app
// contra el contrato real, sin mocks: registro, login, publicación,
// adopción y feed.
func TestClientAgainstDevServer(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	ctx := context.Background()
	ana := newE2EClient(t, ts.URL)
	ben := newE2EClient(t, ts.URL)

	register := func(c *api.Client, username string) {
		t.Helper()
		err := c.Register(ctx, api.RegisterInput{
			Username:     username,
			Email:        username + "@example.com",
			Password:     "password-" + username,
			Firstname:    "Nombre",
			Lastname:     "Apellido",
			Birthday:     "1998-07-20",
			MobileNum:    "09171234567",
			Address:      "Cebu City",
			PetKnowledge: 4,
			StableLiving: 3,
			FlexTime:     2,
			Environment:  5,
			ProfilePhoto: "Zm90bw==",
		})
		if err != nil {
			t.Fatalf("register %s: %v", username, err)
		}
	}
	register(ana, "ana")
	register(ben, "ben")

	if err := ana.Login(ctx, "ana", "password-ana"); err != nil {
		t.Fatalf("login ana: %v", err)
	}
	if err := ben.Login(ctx, "ben", "password-ben"); err != nil {
		t.Fatalf("login ben: %v", err)
	}

	// Login malo llega como ClientError 401, nunca como pánico ni éxito.
	otro := newE2EClient(t, ts.URL)
	err := otro.Login(ctx, "ana", "no-es-la-clave")
	var ce *httpclient.ClientError
	if !errors.As(err, &ce) || ce.StatusCode != 401 {
		t.Fatalf("expected 401 ClientError, got %v", err)
	}

	// Sin mascotas el backend responde 404; el accessor lo vuelve lista vacía.
	pets, err := ana.MyPets(ctx)
	if err != nil {
		t.Fatalf("my pets (empty): %v", err)
	}
	if len(pets) != 0 {
		t.Fatalf("expected empty list, got %d", len(pets))
	}

	age := 2
	if err := ana.AddPet(ctx, api.AddPetInput{
		PetName:  "Rex",
		PetAge:   &age,
		Sex:      "Male",
		Location: "Cebu",
		PetPhoto: "Zm90bw==",
	}); err != nil {
		t.Fatalf("add pet: %v", err)
	}

	all, err := ben.AllPets(ctx)
	if err != nil {
		t.Fatalf("all pets: %v", err)
	}
	if len(all) != 1 || all[0].PetName != "Rex" || all[0].ID == "" {
		t.Fatalf("unexpected listing: %+v", all)
	}
	rex := all[0]

	// Visibilidad de adopción según dueño
	if rex.CanAdopt("ana") {
		t.Fatal("owner should not be offered adoption")
	}
	if !rex.CanAdopt("ben") {
		t.Fatal("non-owner should be offered adoption")
	}

	// El backend también lo refuerza: la dueña recibe 400.
	solicitud := api.AdoptionInput{
		Name:            "Solicitante",
		Occupation:      "vet tech",
		ProofOfIdentity: "aWQ=",
	}
	err = ana.Adopt(ctx, rex.ID, solicitud)
	if !errors.As(err, &ce) || ce.StatusCode != 400 {
		t.Fatalf("expected 400 adopting own pet, got %v", err)
	}
	if err := ben.Adopt(ctx, rex.ID, solicitud); err != nil {
		t.Fatalf("adopt: %v", err)
	}

	// Feed: vacío => lista vacía; tras postear, ordenado descendente.
	posts, err := ana.AllPosts(ctx)
	if err != nil {
		t.Fatalf("all posts (empty): %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty feed, got %d", len(posts))
	}

	if err := ana.CreatePost(ctx, "adopten, no compren"); err != nil {
		t.Fatalf("create post: %v", err)
	}
	if err := ben.CreatePost(ctx, "Rex ya tiene hogar"); err != nil {
		t.Fatalf("create post: %v", err)
	}

	posts, err = ana.AllPosts(ctx)
	if err != nil {
		t.Fatalf("all posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("feed len = %d", len(posts))
	}
	if posts[0].PostedAt().Before(posts[1].PostedAt()) {
		t.Fatalf("feed not sorted desc: %v then %v", posts[0].DatePosted, posts[1].DatePosted)
	}
	if posts[0].AuthorPhoto == "" {
		t.Fatal("expected profile photo joined into feed")
	}

	// Perfil: lectura y patch parcial
	prof, err := ana.UserDetails(ctx)
	if err != nil {
		t.Fatalf("user details: %v", err)
	}
	if prof.Username != "ana" || prof.PetKnowledge != 4 {
		t.Fatalf("unexpected profile: %+v", prof)
	}

	addr := "Mandaue City"
	if err := ana.UpdateUserDetails(ctx, api.UpdateDetailsInput{Address: &addr}); err != nil {
		t.Fatalf("update details: %v", err)
	}
	prof, err = ana.UserDetails(ctx)
	if err != nil {
		t.Fatalf("user details after update: %v", err)
	}
	if prof.Address != addr {
		t.Fatalf("address = %q", prof.Address)
	}

	// Logout corta el acceso a recursos con identidad
	ana.Logout()
	if _, err := ana.UserDetails(ctx); !errors.Is(err, api.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after logout, got %v", err)
	}
}

func newE2EClient(t *testing.T, baseURL string) *api.Client {
	t.Helper()

	gw, err := httpclient.NewWithBaseURL(baseURL, 5*time.Second)
	if err != nil {
		t.Fatalf("gateway: %v", err)
	}
	return api.New(gw, session.New(), logger.New(logger.Options{Level: logger.Error}))
}
