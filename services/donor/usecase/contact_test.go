package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raktasewa/domain"
	"raktasewa/services/donor/repository"
)

type sentMessage struct {
	To   string
	Body string
}

type fakeTransport struct {
	live bool
	err  error
	sent []sentMessage
}

func (f *fakeTransport) Send(ctx context.Context, to, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{To: to, Body: body})
	return nil
}

func (f *fakeTransport) Live() bool { return f.live }

func seedDonor(t *testing.T, repo domain.DonorRepo) *domain.Donor {
	t.Helper()
	donor := &domain.Donor{
		Name:       "Ram",
		BloodGroup: "B+",
		Phone:      "+9779812345678",
		District:   "Kathmandu",
	}
	require.NoError(t, repo.CreateDonor(context.Background(), donor))
	return donor
}

func contactReq(donorID string) *domain.ContactRequest {
	return &domain.ContactRequest{
		DonorID:        donorID,
		RequesterName:  "Hari",
		RequesterPhone: "+9779811111111",
	}
}

func TestRelayContactUCDeepLinksOnly(t *testing.T) {
	repo := repository.NewMemoryDonorRepository()
	donor := seedDonor(t, repo)
	transport := &fakeTransport{live: false}
	uc := NewContactUseCase(repo, transport, time.Second*5)

	result, err := uc.RelayContactUC(context.Background(), contactReq(donor.ID))
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.False(t, result.Relayed)
	assert.True(t, strings.HasPrefix(result.SMSLink, "sms:+9779812345678?body="), result.SMSLink)
	assert.True(t, strings.HasPrefix(result.SMSToLink, "sms:+9779812345678&body="), result.SMSToLink)
	assert.Contains(t, result.SMSLink, "%20")
	assert.NotContains(t, result.SMSLink, "+9779811111111 ") // body is URL-encoded

	// the simulated send still happened
	require.Len(t, transport.sent, 1)
	assert.Equal(t, donor.Phone, transport.sent[0].To)
	assert.Contains(t, transport.sent[0].Body, "RaktaSewa: Hari (+9779811111111) is requesting blood (B+).")
}

func TestRelayContactUCWithMessage(t *testing.T) {
	repo := repository.NewMemoryDonorRepository()
	donor := seedDonor(t, repo)
	transport := &fakeTransport{live: false}
	uc := NewContactUseCase(repo, transport, time.Second*5)

	req := contactReq(donor.ID)
	req.Message = "urgent, need by tomorrow"

	_, err := uc.RelayContactUC(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, transport.sent, 1)
	assert.Contains(t, transport.sent[0].Body, `Msg: "urgent, need by tomorrow"`)
}

func TestRelayContactUCMessageKeepsQuotes(t *testing.T) {
	repo := repository.NewMemoryDonorRepository()
	donor := seedDonor(t, repo)
	transport := &fakeTransport{live: false}
	uc := NewContactUseCase(repo, transport, time.Second*5)

	req := contactReq(donor.ID)
	req.Message = `need "O+" fast`

	_, err := uc.RelayContactUC(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, transport.sent, 1)
	assert.Contains(t, transport.sent[0].Body, ` Msg: "need "O+" fast"`)
}

func TestRelayContactUCLiveProvider(t *testing.T) {
	repo := repository.NewMemoryDonorRepository()
	donor := seedDonor(t, repo)
	transport := &fakeTransport{live: true}
	uc := NewContactUseCase(repo, transport, time.Second*5)

	result, err := uc.RelayContactUC(context.Background(), contactReq(donor.ID))
	require.NoError(t, err)

	assert.True(t, result.Relayed)
	assert.NotEmpty(t, result.SMSLink)
	require.Len(t, transport.sent, 1)
}

func TestRelayContactUCProviderFailure(t *testing.T) {
	repo := repository.NewMemoryDonorRepository()
	donor := seedDonor(t, repo)
	transport := &fakeTransport{live: true, err: errors.New("twilio send error: 21211")}
	uc := NewContactUseCase(repo, transport, time.Second*5)

	result, err := uc.RelayContactUC(context.Background(), contactReq(donor.ID))
	assert.Nil(t, result)
	require.ErrorIs(t, err, domain.ErrDeliveryFailed)
	assert.Contains(t, err.Error(), "21211")
}

func TestRelayContactUCDonorNotFound(t *testing.T) {
	repo := repository.NewMemoryDonorRepository()
	transport := &fakeTransport{live: true}
	uc := NewContactUseCase(repo, transport, time.Second*5)

	_, err := uc.RelayContactUC(context.Background(), contactReq("3f1fc0da-1111-2222-3333-444455556666"))
	require.ErrorIs(t, err, domain.ErrDonorNotFound)
	assert.Empty(t, transport.sent) // no delivery attempt for unknown donors
}

func TestRelayContactUCValidation(t *testing.T) {
	repo := repository.NewMemoryDonorRepository()
	donor := seedDonor(t, repo)
	transport := &fakeTransport{live: true}
	uc := NewContactUseCase(repo, transport, time.Second*5)
	ctx := context.Background()

	cases := []struct {
		name string
		req  *domain.ContactRequest
	}{
		{"missing donorId", &domain.ContactRequest{RequesterName: "Hari", RequesterPhone: "+9779811111111"}},
		{"missing requesterName", &domain.ContactRequest{DonorID: donor.ID, RequesterPhone: "+9779811111111"}},
		{"missing requesterPhone", &domain.ContactRequest{DonorID: donor.ID, RequesterName: "Hari"}},
		{"malformed donorId", contactReq("not-a-uuid")},
		{"bad requesterPhone", &domain.ContactRequest{DonorID: donor.ID, RequesterName: "Hari", RequesterPhone: "98123"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RelayContactUC(ctx, tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	assert.Empty(t, transport.sent)
}
