package api

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// El backend exige celular local: 09 + 9 dígitos.
var mobileNumRe = regexp.MustCompile(`^09\d{9}$`)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifica credenciales y, si el backend acepta, fija la sesión.
// 401 llega como *httpclient.ClientError con el detail del backend.
func (c *Client) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)

	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if err := validationError(missing); err != nil {
		return err
	}

	var out struct {
		Message string `json:"message"`
	}
	err := c.http.DoJSON(ctx, http.MethodPost, "/login", loginRequest{
		Username: username,
		Password: password,
	}, &out)
	if err != nil {
		return err
	}

	c.sess.Set(username)
	c.log.Info("session started", "user", username)
	return nil
}

// Logout limpia la sesión. No hay llamada al backend: la sesión vive
// solo en memoria del cliente.
func (c *Client) Logout() {
	if u, ok := c.sess.Username(); ok {
		c.log.Info("session cleared", "user", u)
	}
	c.sess.Clear()
}

type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	Firstname  string
	Middlename string
	Lastname   string
	Birthday   string // YYYY-MM-DD
	MobileNum  string
	Address    string

	PetKnowledge int
	StableLiving int
	FlexTime     int
	Environment  int

	ProfilePhoto string // base64
}

type registerRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Firstname    string `json:"firstname"`
	Middlename   string `json:"middlename,omitempty"`
	Lastname     string `json:"lastname"`
	Birthday     string `json:"birthday"`
	MobileNum    string `json:"mobilenum"`
	Address      string `json:"address"`
	PetKnowledge int    `json:"pet_knowledge"`
	StableLiving int    `json:"stable_living"`
	FlexTime     int    `json:"flex_time_sched"`
	Environment  int    `json:"environment"`
	ProfilePhoto string `json:"profile_photo"`
}

// Register crea la cuenta. No inicia sesión: el flujo vuelve al login.
// Los puntajes fuera de [0,5] se recortan antes de enviar.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Firstname = strings.TrimSpace(in.Firstname)
	in.Lastname = strings.TrimSpace(in.Lastname)

	var bad []string
	if in.Username == "" {
		bad = append(bad, "username")
	}
	if in.Email == "" {
		bad = append(bad, "email")
	}
	if len(in.Password) < 8 {
		bad = append(bad, "password")
	}
	if in.Firstname == "" {
		bad = append(bad, "firstname")
	}
	if in.Lastname == "" {
		bad = append(bad, "lastname")
	}
	if !validPastDate(in.Birthday) {
		bad = append(bad, "birthday")
	}
	if !mobileNumRe.MatchString(in.MobileNum) {
		bad = append(bad, "mobilenum")
	}
	if strings.TrimSpace(in.Address) == "" {
		bad = append(bad, "address")
	}
	if in.ProfilePhoto == "" {
		bad = append(bad, "profile_photo")
	}
	if err := validationError(bad); err != nil {
		return err
	}

	req := registerRequest{
		Username:     in.Username,
		Email:        in.Email,
		Password:     in.Password,
		Firstname:    in.Firstname,
		Middlename:   strings.TrimSpace(in.Middlename),
		Lastname:     in.Lastname,
		Birthday:     in.Birthday,
		MobileNum:    in.MobileNum,
		Address:      strings.TrimSpace(in.Address),
		PetKnowledge: clampScore(in.PetKnowledge),
		StableLiving: clampScore(in.StableLiving),
		FlexTime:     clampScore(in.FlexTime),
		Environment:  clampScore(in.Environment),
		ProfilePhoto: in.ProfilePhoto,
	}

	if err := c.http.DoJSON(ctx, http.MethodPost, "/register", req, nil); err != nil {
		return err
	}

	c.log.Info("account registered", "user", in.Username)
	return nil
}

// UserDetails trae el perfil del usuario de la sesión.
func (c *Client) UserDetails(ctx context.Context) (UserProfile, error) {
	username, err := c.actingUser()
	if err != nil {
		return UserProfile{}, err
	}

	var out UserProfile
	if err := c.http.DoJSON(ctx, http.MethodGet, "/user-details/"+username, nil, &out); err != nil {
		return UserProfile{}, err
	}

	// El backend omite username en esta respuesta; lo completa la sesión.
	out.Username = username
	return out, nil
}

// UpdateDetailsInput: punteros = campo no tocado.
type UpdateDetailsInput struct {
	Firstname  *string
	Middlename *string
	Lastname   *string
	Email      *string
	Birthday   *string // YYYY-MM-DD
	MobileNum  *string
	Address    *string

	PetKnowledge *int
	StableLiving *int
	FlexTime     *int
	Environment  *int

	ProfilePhoto *string
}

// UpdateUserDetails manda solo los campos presentes.
// Mismas reglas locales que Register para los campos que sí vienen.
func (c *Client) UpdateUserDetails(ctx context.Context, in UpdateDetailsInput) error {
	username, err := c.actingUser()
	if err != nil {
		return err
	}

	var bad []string
	if in.Birthday != nil && !validPastDate(*in.Birthday) {
		bad = append(bad, "birthday")
	}
	if in.MobileNum != nil && !mobileNumRe.MatchString(*in.MobileNum) {
		bad = append(bad, "mobilenum")
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) == "" {
		bad = append(bad, "email")
	}
	if err := validationError(bad); err != nil {
		return err
	}

	patch := map[string]any{}
	putStr := func(key string, v *string) {
		if v != nil {
			patch[key] = strings.TrimSpace(*v)
		}
	}
	putScore := func(key string, v *int) {
		if v != nil {
			patch[key] = clampScore(*v)
		}
	}

	putStr("firstname", in.Firstname)
	putStr("middlename", in.Middlename)
	putStr("lastname", in.Lastname)
	putStr("email", in.Email)
	putStr("birthday", in.Birthday)
	putStr("mobilenum", in.MobileNum)
	putStr("address", in.Address)
	putScore("pet_knowledge", in.PetKnowledge)
	putScore("stable_living", in.StableLiving)
	putScore("flex_time_sched", in.FlexTime)
	putScore("environment", in.Environment)
	putStr("profile_photo", in.ProfilePhoto)

	if len(patch) == 0 {
		return validationError([]string{"no fields to update"})
	}

	path := fmt.Sprintf("/update-user-details/%s", username)
	if err := c.http.DoJSON(ctx, http.MethodPut, path, patch, nil); err != nil {
		return err
	}

	c.log.Info("profile updated", "user", username)
	return nil
}

// validPastDate acepta YYYY-MM-DD estrictamente en el pasado.
func validPastDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return t.Before(time.Now())
}
