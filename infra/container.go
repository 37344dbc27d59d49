package infra

import (
	"log"
	"pixreminder/internal/duckfy"
	"pixreminder/internal/ghostpay"
	"pixreminder/internal/reminder"
	"pixreminder/pkg/sms"
	"strings"
)

type ContainerDI struct {
	Config          Config
	SMSSender       sms.Sender
	ServiceReminder *reminder.Service
	ServiceGhostpay *ghostpay.Service
	ServiceDuckfy   *duckfy.Service
	HandlerGhostpay *ghostpay.Handler
	HandlerDuckfy   *duckfy.Handler
}

func NewContainerDI(config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.buildPkg()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) buildPkg() {
	if missing := c.Config.MissingTwilioCreds(); len(missing) > 0 {
		log.Printf("Credenciais Twilio ausentes: %s. Envio de SMS desabilitado.", strings.Join(missing, ", "))
		return
	}

	c.SMSSender = sms.NewTwilioSender(sms.TwilioConfig{
		AccountSID:   c.Config.TwilioAccountSID,
		APIKeySID:    c.Config.TwilioAPIKeySID,
		APIKeySecret: c.Config.TwilioAPIKeySecret,
		FromNumber:   c.Config.TwilioPhoneNumber,
	})
	log.Println("Cliente Twilio inicializado com sucesso.")
}

func (c *ContainerDI) buildService() {
	c.ServiceReminder = reminder.NewReminderService(c.SMSSender, c.Config.ReminderMessage, c.Config.CheckoutFallbackURL)
	c.ServiceGhostpay = ghostpay.NewGhostpayService(c.ServiceReminder)
	c.ServiceDuckfy = duckfy.NewDuckfyService(c.ServiceReminder)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerGhostpay = ghostpay.NewGhostpayHandler(c.ServiceGhostpay)
	if c.Config.DuckfyWebhookToken == "" {
		log.Println("DUCKFY_WEBHOOK_TOKEN não configurado. Verificação de token da Duckfy desabilitada.")
	}
	c.HandlerDuckfy = duckfy.NewDuckfyHandler(c.ServiceDuckfy, c.Config.DuckfyWebhookToken)
}
