package duckfy

import (
	"context"
	"errors"
	"fmt"
	"log"
	"pixreminder/infra/metrics"
	"pixreminder/internal/reminder"
	"pixreminder/pkg/phone"
)

var ErrInvalidPhone = errors.New("telefone inválido para envio de SMS")

type InterfaceService interface {
	ProcessWebhook(ctx context.Context, request WebhookRequest) (WebhookResponse, error)
}

type Service struct {
	ServiceReminder reminder.InterfaceService
}

func NewDuckfyService(ServiceReminder reminder.InterfaceService) *Service {
	return &Service{ServiceReminder}
}

func (s *Service) ProcessWebhook(ctx context.Context, request WebhookRequest) (WebhookResponse, error) {
	transaction := request.Transaction

	clientPhone, reliable, err := phone.FormatE164(request.Client.Phone)
	if err != nil {
		log.Printf("Duckfy: transação %s com telefone %q que não pôde ser normalizado: %v", transaction.ID, request.Client.Phone, err)
		metrics.WebhookDeliveries.WithLabelValues("duckfy", "invalid_phone").Inc()
		return WebhookResponse{}, ErrInvalidPhone
	}
	if !reliable {
		log.Printf("Duckfy: transação %s com telefone %q em formato não reconhecido, usando %q.", transaction.ID, request.Client.Phone, clientPhone)
	}

	currency := transaction.Currency
	if currency == "" {
		currency = "BRL"
	}
	log.Printf("Duckfy: transação %s de %.2f %s usando telefone %s (original %q).", transaction.ID, transaction.Amount, currency, clientPhone, request.Client.Phone)

	if transaction.PaymentMethod != "PIX" {
		log.Printf("Duckfy: transação %s com método %s ignorada (produto aceita apenas PIX).", transaction.ID, transaction.PaymentMethod)
		metrics.WebhookDeliveries.WithLabelValues("duckfy", "ignored").Inc()
		return WebhookResponse{Status: "ignored", Message: fmt.Sprintf("Payment method %s not supported. Only PIX is accepted.", transaction.PaymentMethod)}, nil
	}

	switch transaction.Status {
	case "PENDING":
		checkoutLink := transaction.CheckoutURL
		if checkoutLink == "" {
			checkoutLink = transaction.PaymentLink
		}

		err := s.ServiceReminder.SendPendingPix(ctx, reminder.Reminder{
			Provider:     "duckfy",
			ReferenceID:  transaction.ID,
			CustomerName: request.Client.Name,
			Phone:        clientPhone,
			ProductName:  request.ProductName(),
			CheckoutLink: checkoutLink,
		})
		if err != nil {
			metrics.WebhookDeliveries.WithLabelValues("duckfy", "sms_error").Inc()
			return WebhookResponse{}, err
		}

		metrics.WebhookDeliveries.WithLabelValues("duckfy", "sent").Inc()
		return WebhookResponse{Status: "success", Message: "SMS reminder sent for pending PIX."}, nil

	case "COMPLETED":
		log.Printf("Duckfy: transação PIX %s está %s, nenhum lembrete necessário.", transaction.ID, transaction.Status)
		metrics.WebhookDeliveries.WithLabelValues("duckfy", "noop").Inc()
		return WebhookResponse{Status: "success", Message: fmt.Sprintf("PIX Payment %s, no reminder needed.", transaction.Status)}, nil

	default:
		log.Printf("Duckfy: transação PIX %s com status %s ignorada.", transaction.ID, transaction.Status)
		metrics.WebhookDeliveries.WithLabelValues("duckfy", "ignored").Inc()
		return WebhookResponse{Status: "ignored", Message: fmt.Sprintf("PIX event with status %s not processed.", transaction.Status)}, nil
	}
}
