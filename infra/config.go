package infra

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultReminderMessage = "{nome} Seu pagamento PIX de {produto} ainda está pendente. Finalize sua compra antes que expire → {link}"

type Config struct {
	ServerName          string
	ServerPort          string
	Environment         string
	TwilioAccountSID    string
	TwilioAPIKeySID     string
	TwilioAPIKeySecret  string
	TwilioPhoneNumber   string
	GhostpaySecretKey   string
	DuckfyWebhookToken  string
	ReminderMessage     string
	CheckoutFallbackURL string
}

func NewConfig() Config {
	if os.Getenv("ENVIRONMENT") == "" {
		if err := godotenv.Load(".env"); err != nil {
			panic("Error loading env file")
		}
	}

	config := Config{
		ServerName:          os.Getenv("SERVER_NAME"),
		ServerPort:          os.Getenv("SERVER_PORT"),
		Environment:         os.Getenv("ENVIRONMENT"),
		TwilioAccountSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAPIKeySID:     os.Getenv("TWILIO_API_KEY_SID"),
		TwilioAPIKeySecret:  os.Getenv("TWILIO_API_KEY_SECRET"),
		TwilioPhoneNumber:   os.Getenv("TWILIO_PHONE_NUMBER"),
		GhostpaySecretKey:   os.Getenv("GHOSTPAY_SECRET_KEY"),
		DuckfyWebhookToken:  os.Getenv("DUCKFY_WEBHOOK_TOKEN"),
		ReminderMessage:     os.Getenv("REMINDER_MESSAGE"),
		CheckoutFallbackURL: os.Getenv("CHECKOUT_FALLBACK_URL"),
	}

	if config.ServerPort == "" {
		config.ServerPort = ":8080"
	}
	if config.ReminderMessage == "" {
		config.ReminderMessage = defaultReminderMessage
	}

	return config
}

// MissingTwilioCreds lista as credenciais Twilio ausentes no ambiente.
func (c Config) MissingTwilioCreds() []string {
	var missing []string
	if c.TwilioAccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if c.TwilioAPIKeySID == "" {
		missing = append(missing, "TWILIO_API_KEY_SID")
	}
	if c.TwilioAPIKeySecret == "" {
		missing = append(missing, "TWILIO_API_KEY_SECRET")
	}
	if c.TwilioPhoneNumber == "" {
		missing = append(missing, "TWILIO_PHONE_NUMBER")
	}
	return missing
}
