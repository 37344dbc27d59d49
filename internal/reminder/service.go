package reminder

import (
	"context"
	"errors"
	"log"
	"pixreminder/infra/metrics"
	"pixreminder/pkg/sms"
	"strings"
)

var ErrSMSDisabled = errors.New("cliente Twilio não inicializado, envio de SMS desabilitado")

type InterfaceService interface {
	SendPendingPix(ctx context.Context, data Reminder) error
}

type Service struct {
	sender       sms.Sender
	template     string
	fallbackLink string
}

func NewReminderService(sender sms.Sender, template, fallbackLink string) *Service {
	return &Service{
		sender:       sender,
		template:     template,
		fallbackLink: fallbackLink,
	}
}

func (s *Service) SendPendingPix(ctx context.Context, data Reminder) error {
	if s.sender == nil {
		log.Printf("%s: lembrete para %s não enviado, SMS desabilitado.", data.Provider, data.ReferenceID)
		metrics.SMSFailed.Inc()
		return ErrSMSDisabled
	}

	link := data.CheckoutLink
	if link == "" {
		link = s.fallbackLink
	}
	product := data.ProductName
	if product == "" {
		product = defaultProductName
	}

	body := strings.NewReplacer(
		"{nome}", data.CustomerName,
		"{produto}", product,
		"{link}", link,
	).Replace(s.template)

	sid, err := s.sender.Send(ctx, sms.Message{To: data.Phone, Body: body})
	if err != nil {
		log.Printf("%s: erro ao enviar SMS para %s (pagamento %s): %v", data.Provider, data.Phone, data.ReferenceID, err)
		metrics.SMSFailed.Inc()
		return err
	}

	log.Printf("%s: SMS enviado para %s (pagamento %s): %s", data.Provider, data.Phone, data.ReferenceID, sid)
	metrics.SMSSent.Inc()
	return nil
}
