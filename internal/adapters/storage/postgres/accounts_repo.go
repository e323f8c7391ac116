package postgres

import (
	"context"
	"database/sql"
	"strings"

	"furever-pals/internal/domain/accounts"
)

type AccountsRepo struct {
	db *sql.DB
}

func NewAccountsRepo(db *sql.DB) *AccountsRepo {
	return &AccountsRepo{db: db}
}

func (r *AccountsRepo) Create(ctx context.Context, a accounts.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (
			username, email, password_hash,
			firstname, middlename, lastname,
			birthday, mobilenum, address,
			pet_knowledge, stable_living, flex_time_sched, environment,
			profile_photo, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		a.Username,
		a.Email,
		a.PasswordHash,
		a.Firstname,
		a.Middlename,
		a.Lastname,
		a.Birthday,
		a.MobileNum,
		a.Address,
		a.PetKnowledge,
		a.StableLiving,
		a.FlexTime,
		a.Environment,
		a.ProfilePhoto,
		a.CreatedAt,
	)
	return err
}

func (r *AccountsRepo) GetByUsername(ctx context.Context, username string) (accounts.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return accounts.Account{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			username, email, password_hash,
			firstname, middlename, lastname,
			birthday, mobilenum, address,
			pet_knowledge, stable_living, flex_time_sched, environment,
			profile_photo, created_at
		FROM accounts
		WHERE username = $1
	`, username)

	var a accounts.Account
	err := row.Scan(
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.Firstname,
		&a.Middlename,
		&a.Lastname,
		&a.Birthday,
		&a.MobileNum,
		&a.Address,
		&a.PetKnowledge,
		&a.StableLiving,
		&a.FlexTime,
		&a.Environment,
		&a.ProfilePhoto,
		&a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return accounts.Account{}, ErrNotFound
	}
	if err != nil {
		return accounts.Account{}, err
	}
	return a, nil
}

func (r *AccountsRepo) Update(ctx context.Context, a accounts.Account) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET
			email = $2,
			firstname = $3,
			middlename = $4,
			lastname = $5,
			birthday = $6,
			mobilenum = $7,
			address = $8,
			pet_knowledge = $9,
			stable_living = $10,
			flex_time_sched = $11,
			environment = $12,
			profile_photo = $13
		WHERE username = $1
	`,
		a.Username,
		a.Email,
		a.Firstname,
		a.Middlename,
		a.Lastname,
		a.Birthday,
		a.MobileNum,
		a.Address,
		a.PetKnowledge,
		a.StableLiving,
		a.FlexTime,
		a.Environment,
		a.ProfilePhoto,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
