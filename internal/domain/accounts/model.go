package accounts

import "time"

// Account es la cuenta registrada tal como la persiste el dev server.
// PasswordHash es bcrypt; nunca sale en una respuesta.
type Account struct {
	Username     string
	Email        string
	PasswordHash string

	Firstname  string
	Middlename string
	Lastname   string
	Birthday   time.Time
	MobileNum  string
	Address    string

	// Puntajes de características, 0..5.
	PetKnowledge int
	StableLiving int
	FlexTime     int
	Environment  int

	ProfilePhoto string // base64

	CreatedAt time.Time
}
