package postgres

import (
	"context"
	"database/sql"
	"strings"

	"furever-pals/internal/domain/listings"
)

type ListingsRepo struct {
	db *sql.DB
}

func NewListingsRepo(db *sql.DB) *ListingsRepo {
	return &ListingsRepo{db: db}
}

func (r *ListingsRepo) Create(ctx context.Context, l listings.Listing) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO listings (
			id, owner_username,
			pet_name, pet_age, sex, location, description, pet_photo,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		l.ID,
		l.OwnerUsername,
		l.PetName,
		toNullInt(l.PetAge),
		string(l.Sex),
		l.Location,
		l.Description,
		l.PetPhoto,
		l.CreatedAt,
	)
	return err
}

func (r *ListingsRepo) GetByID(ctx context.Context, id string) (listings.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return listings.Listing{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_username, pet_name, pet_age, sex, location, description, pet_photo, created_at
		FROM listings
		WHERE id = $1
	`, id)

	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return listings.Listing{}, ErrNotFound
	}
	if err != nil {
		return listings.Listing{}, err
	}
	return l, nil
}

func (r *ListingsRepo) ListAll(ctx context.Context) ([]listings.Listing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_username, pet_name, pet_age, sex, location, description, pet_photo, created_at
		FROM listings
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *ListingsRepo) ListByOwner(ctx context.Context, ownerUsername string) ([]listings.Listing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_username, pet_name, pet_age, sex, location, description, pet_photo, created_at
		FROM listings
		WHERE owner_username = $1
		ORDER BY created_at ASC
	`, ownerUsername)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *ListingsRepo) CreateApplication(ctx context.Context, a listings.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoption_applications (
			id, listing_id, applicant_username,
			name, address, occupation,
			responsible_for_pet_care, plan_to_care_for_pet,
			clinic_name, reason_for_adopting,
			proof_of_identity_photo, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		a.ID,
		a.ListingID,
		a.ApplicantUsername,
		a.Name,
		a.Address,
		a.Occupation,
		a.ResponsibleForPetCare,
		a.PlanToCareForPet,
		a.ClinicName,
		a.ReasonForAdopting,
		a.ProofOfIdentity,
		a.CreatedAt,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (listings.Listing, error) {
	var (
		l   listings.Listing
		age sql.NullInt64
		sex string
	)
	err := row.Scan(
		&l.ID,
		&l.OwnerUsername,
		&l.PetName,
		&age,
		&sex,
		&l.Location,
		&l.Description,
		&l.PetPhoto,
		&l.CreatedAt,
	)
	if err != nil {
		return listings.Listing{}, err
	}

	if age.Valid {
		v := int(age.Int64)
		l.PetAge = &v
	}
	l.Sex = listings.Sex(sex)
	return l, nil
}

func collectListings(rows *sql.Rows) ([]listings.Listing, error) {
	out := make([]listings.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
