package domain

import (
	"context"
	"strings"
	"time"
)

// BloodGroups is the fixed set accepted by the registry.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func IsValidBloodGroup(bg string) bool {
	for _, v := range BloodGroups {
		if v == bg {
			return true
		}
	}
	return false
}

type Donor struct {
	ID           string    `json:"id"`
	Name         string    `json:"name" valid:"required~Name is required"`
	BloodGroup   string    `json:"blood_group" valid:"required~Blood group is required,in(A+|A-|B+|B-|AB+|AB-|O+|O-)~Invalid blood group"`
	Phone        string    `json:"phone,omitempty" valid:"required~Phone is required"`
	District     string    `json:"district" valid:"required~District is required"`
	Municipality string    `json:"municipality"`
	Ward         string    `json:"ward"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DonorPublic is the list-response shape. PhoneMasked is always present,
// Phone only when the exposure policy allows it.
type DonorPublic struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BloodGroup   string    `json:"blood_group"`
	District     string    `json:"district"`
	Municipality string    `json:"municipality"`
	Ward         string    `json:"ward"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	PhoneMasked  string    `json:"phone_masked"`
	Phone        string    `json:"phone,omitempty"`
}

// DonorFilter carries the optional list-query constraints. Empty fields
// impose no constraint.
type DonorFilter struct {
	BloodGroup string
	District   string
	Query      string
}

// Normalize trims every field so whitespace-only values behave as absent.
func (f *DonorFilter) Normalize() {
	f.BloodGroup = strings.TrimSpace(f.BloodGroup)
	f.District = strings.TrimSpace(f.District)
	f.Query = strings.TrimSpace(f.Query)
}

func (f *DonorFilter) IsEmpty() bool {
	return f.BloodGroup == "" && f.District == "" && f.Query == ""
}

type DonorRepo interface {
	CreateDonor(ctx context.Context, donor *Donor) error
	GetAllDonor(ctx context.Context, filter *DonorFilter) (*[]Donor, error)
	GetDonorByID(ctx context.Context, id string) (*Donor, error)
	DeleteDonor(ctx context.Context, id string) error
}

type DonorUseCase interface {
	CreateDonorUC(ctx context.Context, donor *Donor) error
	GetAllDonorUC(ctx context.Context, filter *DonorFilter) (*[]DonorPublic, error)
	DeleteDonorUC(ctx context.Context, id string) error
}
