package sms

import "context"

type Message struct {
	To   string
	Body string
}

type TwilioConfig struct {
	AccountSID   string
	APIKeySID    string
	APIKeySecret string
	FromNumber   string
}

// Sender envia mensagens SMS e retorna o identificador da mensagem no provedor.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
