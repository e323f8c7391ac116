package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"furever-pals/internal/router"
)

func TestHTTP_EndToEnd_AdoptionFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Dos usuarios se registran
	registerUser(t, ts.URL, "ana")
	registerUser(t, ts.URL, "ben")

	// 2) Login con credenciales buenas y malas
	{
		st, _ := doReq(t, ts.URL, "POST", "/login", map[string]any{
			"username": "ana", "password": "password-ana",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/login", map[string]any{
			"username": "ana", "password": "wrong",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad login, got %d", st)
		}
		if detail := detailOf(t, body); detail != "Invalid credentials" {
			t.Fatalf("detail = %q", detail)
		}
	}

	// 3) Sin mascotas todavía: user-pets responde 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/user-pets/ana", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for empty user-pets, got %d", st)
		}
	}

	// 4) ana publica una mascota
	petID := addPet(t, ts.URL, "ana", map[string]any{
		"username":  "ana",
		"pet_name":  "Rex",
		"pet_age":   2,
		"sex":       "Male",
		"location":  "Cebu",
		"pet_photo": "Zm90bw==",
	})

	// 5) Aparece en all-pets con dueño e id
	{
		st, body := doReq(t, ts.URL, "GET", "/all-pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 all-pets, got %d body=%s", st, string(body))
		}
		var pets []struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			PetName  string `json:"pet_name"`
		}
		_ = json.Unmarshal(body, &pets)
		if len(pets) != 1 || pets[0].PetName != "Rex" || pets[0].Username != "ana" || pets[0].ID == "" {
			t.Fatalf("unexpected all-pets body: %s", string(body))
		}
	}

	// 6) Dueña no puede adoptar su propia mascota
	{
		st, body := doReq(t, ts.URL, "POST", "/adopt-pet/"+petID, adoptionBody("ana"))
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 adopting own pet, got %d", st)
		}
		if detail := detailOf(t, body); detail != "You cannot adopt your own pet" {
			t.Fatalf("detail = %q", detail)
		}
	}

	// 7) ben sí puede
	{
		st, body := doReq(t, ts.URL, "POST", "/adopt-pet/"+petID, adoptionBody("ben"))
		if st != http.StatusCreated {
			t.Fatalf("expected 201 adopt, got %d body=%s", st, string(body))
		}
	}

	// 8) Feed vacío responde 404; tras postear, lista con join de foto
	{
		st, _ := doReq(t, ts.URL, "GET", "/all-user-posts", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 empty feed, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/user-posts/ana", map[string]any{
			"username":    "ana",
			"sharedpost":  "adopten, no compren",
			"date_posted": "2025-06-01 12:30:00",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 create post, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/all-user-posts", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 feed, got %d", st)
		}
		var resp struct {
			Posts []struct {
				Username     string `json:"username"`
				PostContent  string `json:"post_content"`
				DatePosted   string `json:"date_posted"`
				ProfilePhoto string `json:"profile_photo"`
			} `json:"posts"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Posts) != 1 {
			t.Fatalf("feed len = %d", len(resp.Posts))
		}
		p := resp.Posts[0]
		if p.Username != "ana" || p.DatePosted != "2025-06-01 12:30:00" || p.ProfilePhoto == "" {
			t.Fatalf("unexpected post: %+v", p)
		}
	}

	// 9) user-details y update
	{
		st, body := doReq(t, ts.URL, "GET", "/user-details/ana", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 user-details, got %d", st)
		}
		var det struct {
			Firstname    string `json:"firstname"`
			PetKnowledge int    `json:"pet_knowledge"`
		}
		_ = json.Unmarshal(body, &det)
		if det.Firstname != "Ana" || det.PetKnowledge != 3 {
			t.Fatalf("unexpected details: %s", string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "PUT", "/update-user-details/ana", map[string]any{
			"address": "Mandaue City",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update details, got %d", st)
		}
	}
}

func TestHTTP_Register_ValidationDetailList(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// password corto y sin foto => 422 con lista de {msg}
	st, body := doReq(t, ts.URL, "POST", "/register", map[string]any{
		"username":  "x",
		"email":     "x@example.com",
		"password":  "short",
		"firstname": "X",
		"lastname":  "Y",
		"birthday":  "2000-01-01",
		"mobilenum": "09171234567",
		"address":   "Cebu",
	})
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", st, string(body))
	}

	var resp struct {
		Detail []struct {
			Msg string `json:"msg"`
		} `json:"detail"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Detail) == 0 {
		t.Fatalf("expected detail list, got %s", string(body))
	}
}

func TestHTTP_AddPet_UnknownUser(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/add-pet", map[string]any{
		"username":  "ghost",
		"pet_name":  "Rex",
		"location":  "Cebu",
		"pet_photo": "Zm90bw==",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}
	if detail := detailOf(t, body); detail != "Username does not exist" {
		t.Fatalf("detail = %q", detail)
	}
}

func registerUser(t *testing.T, baseURL, username string) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/register", map[string]any{
		"username":        username,
		"email":           username + "@example.com",
		"password":        "password-" + username,
		"firstname":       "Ana",
		"lastname":        "Reyes",
		"birthday":        "1999-04-12",
		"mobilenum":       "09171234567",
		"address":         "Cebu City",
		"pet_knowledge":   3,
		"stable_living":   4,
		"flex_time_sched": 2,
		"environment":     5,
		"profile_photo":   "Zm90bw==",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 register, got %d body=%s", st, string(body))
	}
}

func addPet(t *testing.T, baseURL, username string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/add-pet", payload)
	if st != http.StatusOK {
		t.Fatalf("expected 200 add-pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("add-pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func adoptionBody(username string) map[string]any {
	return map[string]any{
		"username":                username,
		"name":                    "Solicitante " + username,
		"occupation":              "vet tech",
		"reason_for_adopting":     "quiero un perro",
		"proof_of_identity_photo": "aWQ=",
	}
}

func detailOf(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("body is not a detail error: %s", string(body))
	}
	return resp.Detail
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
