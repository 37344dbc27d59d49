package ghostpay

import (
	"context"
	"errors"
	"fmt"
	"log"
	"pixreminder/infra/metrics"
	"pixreminder/internal/reminder"
	"pixreminder/pkg/phone"
	"pixreminder/validation"
)

var ErrInvalidPhone = errors.New("telefone inválido para envio de SMS")

type InterfaceService interface {
	ProcessWebhook(ctx context.Context, request WebhookRequest) (WebhookResponse, error)
}

type Service struct {
	ServiceReminder reminder.InterfaceService
}

func NewGhostpayService(ServiceReminder reminder.InterfaceService) *Service {
	return &Service{ServiceReminder}
}

func (s *Service) ProcessWebhook(ctx context.Context, request WebhookRequest) (WebhookResponse, error) {
	customerPhone, reliable, err := phone.FormatE164(request.Customer.Phone)
	if err != nil {
		log.Printf("GhostPay: pagamento %s com telefone %q que não pôde ser normalizado: %v", request.PaymentID, request.Customer.Phone, err)
		metrics.WebhookDeliveries.WithLabelValues("ghostpay", "invalid_phone").Inc()
		return WebhookResponse{}, ErrInvalidPhone
	}
	if !reliable {
		log.Printf("GhostPay: pagamento %s com telefone %q em formato não reconhecido, usando %q. Pode estar incorreto para números não brasileiros.", request.PaymentID, request.Customer.Phone, customerPhone)
	}
	if request.Customer.Document != "" && !validation.ValidateCPF(request.Customer.Document) {
		log.Printf("GhostPay: pagamento %s com CPF inválido no cadastro do cliente.", request.PaymentID)
	}

	log.Printf("GhostPay: pagamento %s usando telefone %s (original %q).", request.PaymentID, customerPhone, request.Customer.Phone)

	switch {
	case request.PaymentMethod == "PIX" && request.Status == "PENDING":
		customerName := request.Customer.Name
		if customerName == "" {
			customerName = "Cliente"
		}
		checkoutLink := request.CheckoutURL
		if checkoutLink == "" {
			checkoutLink = request.PixQrCode
		}

		err := s.ServiceReminder.SendPendingPix(ctx, reminder.Reminder{
			Provider:     "ghostpay",
			ReferenceID:  request.PaymentID,
			CustomerName: customerName,
			Phone:        customerPhone,
			CheckoutLink: checkoutLink,
		})
		if err != nil {
			metrics.WebhookDeliveries.WithLabelValues("ghostpay", "sms_error").Inc()
			return WebhookResponse{}, err
		}

		metrics.WebhookDeliveries.WithLabelValues("ghostpay", "sent").Inc()
		return WebhookResponse{Status: "success", Message: "SMS reminder sent for pending PIX."}, nil

	case request.Status == "APPROVED":
		log.Printf("GhostPay: pagamento %s (%s) está %s, nenhum lembrete necessário.", request.PaymentID, request.PaymentMethod, request.Status)
		metrics.WebhookDeliveries.WithLabelValues("ghostpay", "noop").Inc()
		return WebhookResponse{Status: "success", Message: fmt.Sprintf("Payment %s, no reminder needed.", request.Status)}, nil

	default:
		log.Printf("GhostPay: evento do pagamento %s (status %s, método %s) ignorado.", request.PaymentID, request.Status, request.PaymentMethod)
		metrics.WebhookDeliveries.WithLabelValues("ghostpay", "ignored").Inc()
		return WebhookResponse{Status: "ignored", Message: "Event not relevant for PIX reminder or already handled."}, nil
	}
}
