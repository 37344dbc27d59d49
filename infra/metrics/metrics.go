package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixreminder_webhook_deliveries_total",
		Help: "Total de webhooks recebidos por provedor e desfecho.",
	}, []string{"provider", "outcome"})

	SMSSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pixreminder_sms_sent_total",
		Help: "Total de SMS de lembrete enviados com sucesso.",
	})

	SMSFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pixreminder_sms_failed_total",
		Help: "Total de falhas no envio de SMS de lembrete.",
	})
)
