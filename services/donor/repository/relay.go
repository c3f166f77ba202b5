package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"

	"raktasewa/domain"
)

// Twilio-backed transport. One outbound SMS per Send, no retry.
type twilioTransport struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioTransport(client *twilio.RestClient, from string) domain.MessageTransport {
	return &twilioTransport{
		client: client,
		from:   from,
	}
}

func (t *twilioTransport) Send(ctx context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	_, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send error: %v", err)
	}
	return nil
}

func (t *twilioTransport) Live() bool { return true }

// WhatsApp transport over a logged-in whatsmeow client. The donor's
// international number minus the leading + is its JID user part.
type whatsappTransport struct {
	meowClient *whatsmeow.Client
}

func NewWhatsappTransport(meow *whatsmeow.Client) domain.MessageTransport {
	return &whatsappTransport{
		meowClient: meow,
	}
}

func (w *whatsappTransport) Send(ctx context.Context, to, body string) error {
	jid := types.NewJID(strings.TrimPrefix(to, "+"), types.DefaultUserServer)

	conversationMessage := &waE2E.Message{
		Conversation: &body,
	}

	_, err := w.meowClient.SendMessage(ctx, jid, conversationMessage)
	if err != nil {
		return fmt.Errorf("whatsapp send error: %v", err)
	}
	return nil
}

func (w *whatsappTransport) Live() bool { return true }

// Fallback when no provider is configured: the send is only logged and the
// caller relies on the deep links instead.
type deepLinkTransport struct {
	log *logrus.Logger
}

func NewDeepLinkTransport(log *logrus.Logger) domain.MessageTransport {
	return &deepLinkTransport{
		log: log,
	}
}

func (d *deepLinkTransport) Send(ctx context.Context, to, body string) error {
	d.log.WithFields(logrus.Fields{
		"to":   to,
		"body": body,
	}).Info("[SIMULATED SMS]")
	return nil
}

func (d *deepLinkTransport) Live() bool { return false }
