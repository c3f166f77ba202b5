package config

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"raktasewa/domain"
)

// The whatsmeow sqlstore opens its session store through database/sql with
// the "postgres" dialect, so the driver has to be registered in this binary.
func TestPostgresDriverRegistered(t *testing.T) {
	assert.Contains(t, sql.Drivers(), "postgres")
}

func TestTwilioConfigured(t *testing.T) {
	t.Setenv("TWILIO_SID", "")
	t.Setenv("TWILIO_TOKEN", "")
	t.Setenv("TWILIO_FROM", "")
	assert.False(t, TwilioConfigured())

	t.Setenv("TWILIO_SID", "AC123")
	t.Setenv("TWILIO_TOKEN", "secret")
	assert.False(t, TwilioConfigured()) // from number still missing

	t.Setenv("TWILIO_FROM", "+15005550006")
	assert.True(t, TwilioConfigured())

	client, err := InitTwilio()
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestWhatsappConfigured(t *testing.T) {
	t.Setenv("WHATSAPP_RELAY", "")
	assert.False(t, WhatsappConfigured())

	t.Setenv("WHATSAPP_RELAY", "true")
	assert.True(t, WhatsappConfigured())

	t.Setenv("WHATSAPP_RELAY", "TRUE")
	assert.True(t, WhatsappConfigured())

	t.Setenv("WHATSAPP_RELAY", "false")
	assert.False(t, WhatsappConfigured())
}

func TestGetPhonePolicy(t *testing.T) {
	t.Setenv("EXPOSE_PHONE", "")
	assert.Equal(t, domain.PhonePolicyExpose, GetPhonePolicy())

	t.Setenv("EXPOSE_PHONE", "true")
	assert.Equal(t, domain.PhonePolicyExpose, GetPhonePolicy())

	t.Setenv("EXPOSE_PHONE", "false")
	assert.Equal(t, domain.PhonePolicyMaskOnly, GetPhonePolicy())

	t.Setenv("EXPOSE_PHONE", "FALSE")
	assert.Equal(t, domain.PhonePolicyMaskOnly, GetPhonePolicy())
}
