package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"raktasewa/domain"
)

type contactUC struct {
	donorRepo domain.DonorRepo
	transport domain.MessageTransport
	TimeOut   time.Duration
}

func NewContactUseCase(repo domain.DonorRepo, transport domain.MessageTransport, timeOut time.Duration) domain.ContactUseCase {
	return &contactUC{
		donorRepo: repo,
		transport: transport,
		TimeOut:   timeOut,
	}
}

// RelayContactUC forwards the requester's details to the donor over the
// configured transport. The donor's number never travels back to the
// requester except inside the deep links their own device opens.
func (cUC *contactUC) RelayContactUC(ctx context.Context, req *domain.ContactRequest) (*domain.ContactResult, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	req.DonorID = strings.TrimSpace(req.DonorID)
	req.RequesterName = strings.TrimSpace(req.RequesterName)
	req.RequesterPhone = strings.TrimSpace(req.RequesterPhone)
	req.Message = strings.TrimSpace(req.Message)

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}

	if _, err := uuid.Parse(req.DonorID); err != nil {
		return nil, domain.Invalid("invalid donorId")
	}

	if !domain.ValidatePhone(req.RequesterPhone) {
		return nil, domain.Invalid("invalid requesterPhone format")
	}

	donor, err := cUC.donorRepo.GetDonorByID(ctx, req.DonorID)
	if err != nil {
		return nil, err
	}

	body := composeBody(req, donor)

	if err := cUC.transport.Send(ctx, donor.Phone, body); err != nil {
		return nil, domain.DeliveryError(err)
	}

	enc := encodeBody(body)
	return &domain.ContactResult{
		OK:        true,
		Relayed:   cUC.transport.Live(),
		SMSLink:   fmt.Sprintf("sms:%s?body=%s", donor.Phone, enc), // Android
		SMSToLink: fmt.Sprintf("sms:%s&body=%s", donor.Phone, enc), // iOS variants
	}, nil
}

func composeBody(req *domain.ContactRequest, donor *domain.Donor) string {
	body := fmt.Sprintf("RaktaSewa: %s (%s) is requesting blood (%s).", req.RequesterName, req.RequesterPhone, donor.BloodGroup)
	if req.Message != "" {
		// message text goes into the template verbatim, quotes included
		body += fmt.Sprintf(" Msg: \"%s\"", req.Message)
	}
	return body
}

// encodeBody percent-encodes for a URI component, spaces as %20 rather
// than the form-encoding +.
func encodeBody(body string) string {
	return strings.ReplaceAll(url.QueryEscape(body), "+", "%20")
}
