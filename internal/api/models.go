package api

import "time"

// Layouts del contrato: fechas como YYYY-MM-DD, timestamps con hora.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Puntajes de características del perfil, siempre en [0,5].
const (
	ScoreMin = 0
	ScoreMax = 5
)

// clampScore aplica la política elegida para puntajes fuera de rango:
// se recortan a [0,5], no se rechazan. Uniforme en register y update.
func clampScore(v int) int {
	if v < ScoreMin {
		return ScoreMin
	}
	if v > ScoreMax {
		return ScoreMax
	}
	return v
}

// UserProfile es la vista de /user-details/{username}.
type UserProfile struct {
	Username     string `json:"username,omitempty"`
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

// PetListing es un registro de mascota en adopción.
// OwnerUsername puede venir vacío: algunas respuestas del backend
// omiten el dueño (hueco de contrato conocido).
type PetListing struct {
	ID            string `json:"id,omitempty"`
	OwnerUsername string `json:"username,omitempty"`
	PetName       string `json:"pet_name"`
	PetAge        *int   `json:"pet_age,omitempty"`
	Sex           string `json:"sex,omitempty"`
	Location      string `json:"location"`
	Description   string `json:"description,omitempty"`
	PetPhoto      string `json:"pet_photo"`
}

// CanAdopt decide si se muestra la acción "Adopt Me" a current.
// Política elegida: cuando no se puede determinar el dueño, se muestra.
// Solo se oculta cuando el dueño es, con certeza, el usuario actual.
func (p PetListing) CanAdopt(current string) bool {
	if p.OwnerUsername == "" {
		return true
	}
	return p.OwnerUsername != current
}

// CommunityPost es un tip compartido en el feed de comunidad.
type CommunityPost struct {
	AuthorUsername string `json:"username"`
	PostID         string `json:"post_id"`
	Content        string `json:"post_content"`
	DatePosted     string `json:"date_posted"`
	AuthorPhoto    string `json:"profile_photo,omitempty"`
}

// PostedAt parsea el timestamp de publicación; zero si no parsea.
func (p CommunityPost) PostedAt() time.Time {
	t, err := time.Parse(TimestampLayout, p.DatePosted)
	if err != nil {
		return time.Time{}
	}
	return t
}
