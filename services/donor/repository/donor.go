package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"raktasewa/domain"
)

type donorRepository struct {
	db *pgxpool.Pool
}

func NewDonorRepository(database *pgxpool.Pool) domain.DonorRepo {
	return &donorRepository{
		db: database,
	}
}

// CreateDonor inserts in one statement and lets the unique index on
// (phone, district) arbitrate duplicates, so concurrent creates cannot
// race past an application-level check.
func (dr *donorRepository) CreateDonor(ctx context.Context, donor *domain.Donor) error {
	insertQuery := `
		INSERT INTO donors (id, name, blood_group, phone, district, municipality, ward, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	id := uuid.NewString()
	now := time.Now()

	_, err := dr.db.Exec(ctx, insertQuery, id, donor.Name, donor.BloodGroup, donor.Phone, donor.District, donor.Municipality, donor.Ward, now, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateDonor
		}
		return fmt.Errorf("could not insert donor: %v", err)
	}

	donor.ID = id
	donor.CreatedAt = now
	donor.UpdatedAt = now

	return nil
}

func (dr *donorRepository) GetAllDonor(ctx context.Context, filter *domain.DonorFilter) (*[]domain.Donor, error) {
	query := `
		SELECT id, name, blood_group, phone, district, municipality, ward, created_at, updated_at
		FROM donors`

	var conds []string
	var args []interface{}

	if filter != nil && !filter.IsEmpty() {
		if filter.BloodGroup != "" {
			args = append(args, filter.BloodGroup)
			conds = append(conds, fmt.Sprintf("blood_group = $%d", len(args)))
		}
		if filter.District != "" {
			args = append(args, "%"+filter.District+"%")
			conds = append(conds, fmt.Sprintf("district ILIKE $%d", len(args)))
		}
		if filter.Query != "" {
			args = append(args, "%"+filter.Query+"%")
			n := len(args)
			conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR municipality ILIKE $%d OR ward ILIKE $%d)", n, n, n))
		}
	}

	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY created_at DESC, id DESC;"

	rows, err := dr.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not get all donors: %v", err)
	}
	defer rows.Close()

	donors := []domain.Donor{}
	for rows.Next() {
		var donor domain.Donor

		err := rows.Scan(&donor.ID, &donor.Name, &donor.BloodGroup, &donor.Phone, &donor.District, &donor.Municipality, &donor.Ward, &donor.CreatedAt, &donor.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("could not scan donor: %v", err)
		}

		donors = append(donors, donor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &donors, nil
}

func (dr *donorRepository) GetDonorByID(ctx context.Context, id string) (*domain.Donor, error) {
	query := `
		SELECT id, name, blood_group, phone, district, municipality, ward, created_at, updated_at
		FROM donors
		WHERE id = $1;
	`

	var donor domain.Donor
	err := dr.db.QueryRow(ctx, query, id).Scan(&donor.ID, &donor.Name, &donor.BloodGroup, &donor.Phone, &donor.District, &donor.Municipality, &donor.Ward, &donor.CreatedAt, &donor.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, fmt.Errorf("could not get donor: %v", err)
	}

	return &donor, nil
}

// DeleteDonor performs no existence check; deleting an absent id is a
// no-op, matching the idempotent DELETE contract.
func (dr *donorRepository) DeleteDonor(ctx context.Context, id string) error {
	query := `
		DELETE FROM donors
		WHERE id = $1;
	`

	_, err := dr.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not delete donor: %v", err)
	}

	return nil
}
