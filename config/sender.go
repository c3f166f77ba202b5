package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	_ "github.com/lib/pq"

	"github.com/skip2/go-qrcode"
	"github.com/twilio/twilio-go"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store/sqlstore"

	"raktasewa/domain"
)

// GetPhonePolicy reads EXPOSE_PHONE. Set EXPOSE_PHONE=false in production
// to keep raw numbers out of list responses.
func GetPhonePolicy() domain.PhonePolicy {
	v := os.Getenv("EXPOSE_PHONE")
	if strings.EqualFold(strings.TrimSpace(v), "false") {
		return domain.PhonePolicyMaskOnly
	}
	return domain.PhonePolicyExpose
}

// Twilio

func getTwilioSID() (*string, error) {
	sid := os.Getenv("TWILIO_SID")
	if sid == "" {
		return nil, fmt.Errorf("Twilio Account SID is missing, value: %s", sid)
	}
	return &sid, nil
}

func getTwilioToken() (*string, error) {
	token := os.Getenv("TWILIO_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("Twilio Auth Token is missing, value: %s", token)
	}
	return &token, nil
}

func GetTwilioFrom() (*string, error) {
	number := os.Getenv("TWILIO_FROM")
	if number == "" {
		return nil, fmt.Errorf("Twilio From Number is missing, value: %s", number)
	}
	return &number, nil
}

func TwilioConfigured() bool {
	return os.Getenv("TWILIO_SID") != "" && os.Getenv("TWILIO_TOKEN") != "" && os.Getenv("TWILIO_FROM") != ""
}

func InitTwilio() (*twilio.RestClient, error) {
	sid, err := getTwilioSID()
	if err != nil {
		return nil, err
	}

	token, err := getTwilioToken()
	if err != nil {
		return nil, err
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: *sid,
		Password: *token,
	})
	if client == nil {
		return nil, fmt.Errorf("Failed to initialize twillio")
	}

	return client, nil
}

// WhatsApp

func WhatsappConfigured() bool {
	return strings.EqualFold(os.Getenv("WHATSAPP_RELAY"), "true")
}

var meowWhatsapp *whatsmeow.Client

func InitMeow() (*whatsmeow.Client, error) {
	meowAddress := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))

	container, err := sqlstore.New("postgres", meowAddress, nil)
	if err != nil {
		return nil, err
	}

	deviceStore, err := container.GetFirstDevice()
	if err != nil {
		return nil, err
	}
	client := whatsmeow.NewClient(deviceStore, nil)
	meowWhatsapp = client

	if meowWhatsapp.Store.ID == nil {
		qrChan, _ := meowWhatsapp.GetQRChannel(context.Background())
		if err := meowWhatsapp.Connect(); err != nil {
			return nil, err
		}
		// No stored session, admin has to scan the QR code once.
		for evt := range qrChan {
			if evt.Event == "code" {
				fmt.Println("")
				fmt.Println("Need admin to scan the qr code for the WhatsApp relay to run!")
				fmt.Println("==============   QR CODE   ==============")
				fmt.Println(evt.Code)

				if err := qrcode.WriteFile(evt.Code, qrcode.Medium, 256, "qrcode.png"); err != nil {
					return nil, err
				}

				fmt.Println("")
			} else {
				fmt.Println("Login event:", evt.Event)
			}
		}
	} else {
		if err := meowWhatsapp.Connect(); err != nil {
			return nil, err
		}
		fmt.Println("Login success")
	}

	return meowWhatsapp, nil
}
