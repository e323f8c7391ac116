package accounts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUserExists     = errors.New("username already taken")
	ErrNotFound       = errors.New("user not found")
	ErrBadCredentials = errors.New("invalid credentials")
)

var mobileNumRe = regexp.MustCompile(`^09\d{9}$`)

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

type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	Firstname  string
	Middlename string
	Lastname   string
	Birthday   time.Time
	MobileNum  string
	Address    string

	PetKnowledge int
	StableLiving int
	FlexTime     int
	Environment  int

	ProfilePhoto string
}

// validate replica las reglas del modelo pydantic original:
// campos obligatorios, password >= 8, celular 09XXXXXXXXX,
// birthday en el pasado, puntajes en [0,5].
func (in RegisterInput) validate(now time.Time) []string {
	var msgs []string

	if strings.TrimSpace(in.Username) == "" || len(in.Username) > 50 {
		msgs = append(msgs, "username is required (max 50 chars)")
	}
	if !strings.Contains(in.Email, "@") {
		msgs = append(msgs, "email is not valid")
	}
	if len(in.Password) < 8 {
		msgs = append(msgs, "password must be at least 8 characters")
	}
	if strings.TrimSpace(in.Firstname) == "" {
		msgs = append(msgs, "firstname is required")
	}
	if strings.TrimSpace(in.Lastname) == "" {
		msgs = append(msgs, "lastname is required")
	}
	if in.Birthday.IsZero() || !in.Birthday.Before(now) {
		msgs = append(msgs, "birthday must be in the past")
	}
	if !mobileNumRe.MatchString(in.MobileNum) {
		msgs = append(msgs, "mobilenum must match 09XXXXXXXXX")
	}
	if strings.TrimSpace(in.Address) == "" {
		msgs = append(msgs, "address is required")
	}
	for _, s := range []int{in.PetKnowledge, in.StableLiving, in.FlexTime, in.Environment} {
		if s < 0 || s > 5 {
			msgs = append(msgs, "characteristic scores must be between 0 and 5")
			break
		}
	}
	if in.ProfilePhoto == "" {
		msgs = append(msgs, "profile_photo is required")
	}

	return msgs
}

// Register valida y crea la cuenta con el password hasheado.
// Retorna los mensajes de validación para armar el 422 del handler.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Account, []string, error) {
	if msgs := in.validate(s.now()); len(msgs) > 0 {
		return Account{}, msgs, ErrInvalidInput
	}

	username := strings.TrimSpace(in.Username)
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return Account{}, nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, nil, fmt.Errorf("hash password: %w", err)
	}

	a := Account{
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
		Firstname:    strings.TrimSpace(in.Firstname),
		Middlename:   strings.TrimSpace(in.Middlename),
		Lastname:     strings.TrimSpace(in.Lastname),
		Birthday:     in.Birthday,
		MobileNum:    in.MobileNum,
		Address:      strings.TrimSpace(in.Address),
		PetKnowledge: in.PetKnowledge,
		StableLiving: in.StableLiving,
		FlexTime:     in.FlexTime,
		Environment:  in.Environment,
		ProfilePhoto: in.ProfilePhoto,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Account{}, nil, err
	}
	return a, nil, nil
}

// VerifyLogin chequea credenciales contra el hash guardado.
func (s *Service) VerifyLogin(ctx context.Context, username, password string) error {
	a, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return ErrBadCredentials
	}
	return nil
}

func (s *Service) Get(ctx context.Context, username string) (Account, error) {
	return s.repo.GetByUsername(ctx, strings.TrimSpace(username))
}

// Exists es el chequeo barato que usan listings/feed antes de aceptar
// registros a nombre de un usuario.
func (s *Service) Exists(ctx context.Context, username string) bool {
	_, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	return err == nil
}

// DetailsPatch: punteros = campo no tocado.
type DetailsPatch struct {
	Firstname  *string
	Middlename *string
	Lastname   *string
	Email      *string
	Birthday   *time.Time
	MobileNum  *string
	Address    *string

	PetKnowledge *int
	StableLiving *int
	FlexTime     *int
	Environment  *int

	ProfilePhoto *string
}

// UpdateDetails aplica un patch parcial sobre la cuenta.
func (s *Service) UpdateDetails(ctx context.Context, username string, p DetailsPatch) (Account, error) {
	a, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return Account{}, err
	}

	setStr := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	setScore := func(dst *int, v *int) error {
		if v == nil {
			return nil
		}
		if *v < 0 || *v > 5 {
			return ErrInvalidInput
		}
		*dst = *v
		return nil
	}

	setStr(&a.Firstname, p.Firstname)
	setStr(&a.Middlename, p.Middlename)
	setStr(&a.Lastname, p.Lastname)
	setStr(&a.Email, p.Email)
	setStr(&a.MobileNum, p.MobileNum)
	setStr(&a.Address, p.Address)
	setStr(&a.ProfilePhoto, p.ProfilePhoto)

	if p.Birthday != nil {
		if !p.Birthday.Before(s.now()) {
			return Account{}, ErrInvalidInput
		}
		a.Birthday = *p.Birthday
	}
	if p.MobileNum != nil && !mobileNumRe.MatchString(a.MobileNum) {
		return Account{}, ErrInvalidInput
	}

	for dst, v := range map[*int]*int{
		&a.PetKnowledge: p.PetKnowledge,
		&a.StableLiving: p.StableLiving,
		&a.FlexTime:     p.FlexTime,
		&a.Environment:  p.Environment,
	} {
		if err := setScore(dst, v); err != nil {
			return Account{}, err
		}
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return Account{}, err
	}
	return a, nil
}
