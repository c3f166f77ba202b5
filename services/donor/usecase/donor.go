package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"

	"raktasewa/domain"
)

type donorUC struct {
	donorRepo domain.DonorRepo
	policy    domain.PhonePolicy
	TimeOut   time.Duration
}

func NewDonorUseCase(repo domain.DonorRepo, policy domain.PhonePolicy, timeOut time.Duration) domain.DonorUseCase {
	return &donorUC{
		donorRepo: repo,
		policy:    policy,
		TimeOut:   timeOut,
	}
}

func (dUC *donorUC) CreateDonorUC(ctx context.Context, donor *domain.Donor) error {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	donor.Name = strings.TrimSpace(donor.Name)
	donor.BloodGroup = strings.TrimSpace(donor.BloodGroup)
	donor.Phone = strings.TrimSpace(donor.Phone)
	donor.District = strings.TrimSpace(donor.District)
	donor.Municipality = strings.TrimSpace(donor.Municipality)
	donor.Ward = strings.TrimSpace(donor.Ward)

	if _, err := govalidator.ValidateStruct(donor); err != nil {
		return domain.Invalid(err.Error())
	}

	if !domain.ValidatePhone(donor.Phone) {
		return domain.Invalid("invalid phone number format")
	}

	err := dUC.donorRepo.CreateDonor(ctx, donor)
	if err != nil {
		return err
	}
	return nil
}

func (dUC *donorUC) GetAllDonorUC(ctx context.Context, filter *domain.DonorFilter) (*[]domain.DonorPublic, error) {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	if filter == nil {
		filter = &domain.DonorFilter{}
	}
	filter.Normalize()

	// a blood group outside the enum can never match a stored donor
	if filter.BloodGroup != "" && !domain.IsValidBloodGroup(filter.BloodGroup) {
		out := []domain.DonorPublic{}
		return &out, nil
	}

	donors, err := dUC.donorRepo.GetAllDonor(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]domain.DonorPublic, 0, len(*donors))
	for _, d := range *donors {
		pub := domain.DonorPublic{
			ID:           d.ID,
			Name:         d.Name,
			BloodGroup:   d.BloodGroup,
			District:     d.District,
			Municipality: d.Municipality,
			Ward:         d.Ward,
			CreatedAt:    d.CreatedAt,
			UpdatedAt:    d.UpdatedAt,
			PhoneMasked:  domain.MaskPhone(d.Phone),
		}
		if dUC.policy.Exposes() {
			pub.Phone = d.Phone
		}
		out = append(out, pub)
	}

	return &out, nil
}

func (dUC *donorUC) DeleteDonorUC(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	err := dUC.donorRepo.DeleteDonor(ctx, id)
	if err != nil {
		return err
	}
	return nil
}
