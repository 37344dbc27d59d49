package sms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(config TwilioConfig) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   config.APIKeySID,
		Password:   config.APIKeySecret,
		AccountSid: config.AccountSID,
	})

	return &TwilioSender{
		client: client,
		from:   config.FromNumber,
	}
}

func (s *TwilioSender) Send(ctx context.Context, msg Message) (string, error) {
	params := &openapi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(s.from)
	params.SetBody(msg.Body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("falha ao enviar SMS para %s: %w", msg.To, err)
	}

	if resp.Status != nil && *resp.Status == "failed" {
		return "", fmt.Errorf("SMS para %s retornou status failed", msg.To)
	}

	var sid string
	if resp.Sid != nil {
		sid = *resp.Sid
	}

	return sid, nil
}
