package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"raktasewa/config"
)

func TestPickTransport(t *testing.T) {
	log = config.GetLogrusInstance()

	t.Setenv("TWILIO_SID", "")
	t.Setenv("TWILIO_TOKEN", "")
	t.Setenv("TWILIO_FROM", "")
	t.Setenv("WHATSAPP_RELAY", "")

	transport := pickTransport()
	assert.False(t, transport.Live()) // deep links only without a provider

	t.Setenv("TWILIO_SID", "AC123")
	t.Setenv("TWILIO_TOKEN", "secret")
	t.Setenv("TWILIO_FROM", "+15005550006")

	transport = pickTransport()
	assert.True(t, transport.Live())
}
