package domain

import "context"

// ContactRequest is the relay payload: the requester asks the server to
// forward their contact details to a donor without learning the donor's
// number.
type ContactRequest struct {
	DonorID        string `json:"donorId" valid:"required~donorId is required"`
	RequesterName  string `json:"requesterName" valid:"required~requesterName is required"`
	RequesterPhone string `json:"requesterPhone" valid:"required~requesterPhone is required"`
	Message        string `json:"message"`
}

type ContactResult struct {
	OK        bool   `json:"ok"`
	Relayed   bool   `json:"relayed"`
	SMSLink   string `json:"smsLink"`
	SMSToLink string `json:"smstoLink"`
}

// MessageTransport is the outbound delivery strategy, picked once at
// startup. Live transports (Twilio, WhatsApp) return delivery errors as-is;
// the deep-link-only transport never fails and never actually delivers.
type MessageTransport interface {
	// Send delivers body to the given phone number. Live reports whether
	// a real provider performed the delivery.
	Send(ctx context.Context, to, body string) error
	Live() bool
}

type ContactUseCase interface {
	RelayContactUC(ctx context.Context, req *ContactRequest) (*ContactResult, error)
}
