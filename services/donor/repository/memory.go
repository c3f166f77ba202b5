package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"raktasewa/domain"
)

// memoryDonorRepository mirrors the Postgres store's semantics without a
// database: same uniqueness rule, same filter behavior, newest first.
// Used by tests and local development.
type memoryDonorRepository struct {
	mu     sync.Mutex
	donors []domain.Donor
}

func NewMemoryDonorRepository() domain.DonorRepo {
	return &memoryDonorRepository{}
}

func (mr *memoryDonorRepository) CreateDonor(ctx context.Context, donor *domain.Donor) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	for _, d := range mr.donors {
		if d.Phone == donor.Phone && d.District == donor.District {
			return domain.ErrDuplicateDonor
		}
	}

	now := time.Now()
	donor.ID = uuid.NewString()
	donor.CreatedAt = now
	donor.UpdatedAt = now

	mr.donors = append(mr.donors, *donor)
	return nil
}

func (mr *memoryDonorRepository) GetAllDonor(ctx context.Context, filter *domain.DonorFilter) (*[]domain.Donor, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	out := []domain.Donor{}
	for i := len(mr.donors) - 1; i >= 0; i-- {
		d := mr.donors[i]
		if filter != nil && !filter.IsEmpty() && !matches(&d, filter) {
			continue
		}
		out = append(out, d)
	}

	return &out, nil
}

func matches(d *domain.Donor, f *domain.DonorFilter) bool {
	if f.BloodGroup != "" && d.BloodGroup != f.BloodGroup {
		return false
	}
	if f.District != "" && !containsFold(d.District, f.District) {
		return false
	}
	if f.Query != "" {
		if !containsFold(d.Name, f.Query) && !containsFold(d.Municipality, f.Query) && !containsFold(d.Ward, f.Query) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (mr *memoryDonorRepository) GetDonorByID(ctx context.Context, id string) (*domain.Donor, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	for _, d := range mr.donors {
		if d.ID == id {
			donor := d
			return &donor, nil
		}
	}

	return nil, domain.ErrDonorNotFound
}

func (mr *memoryDonorRepository) DeleteDonor(ctx context.Context, id string) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	for i, d := range mr.donors {
		if d.ID == id {
			mr.donors = append(mr.donors[:i], mr.donors[i+1:]...)
			return nil
		}
	}

	return nil
}
