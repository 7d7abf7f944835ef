package notifications

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// ServiceImpl implements domain.NotificationService: email over SMTP,
// SMS over Twilio. Both transports fall back to logging when their
// credentials are not configured, so local development works offline.
type ServiceImpl struct {
	mailer     *SMTPMailer
	smsClient  *twilio.RestClient
	fromNumber string
	logger     *zap.Logger
}

// NewService creates a new notification service
func NewService(smtpCfg SMTPConfig, twilioSID, twilioToken, twilioFrom string, logger *zap.Logger) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: twilioSID,
		Password: twilioToken,
	})

	return &ServiceImpl{
		mailer:     NewSMTPMailer(smtpCfg),
		smsClient:  client,
		fromNumber: twilioFrom,
		logger:     logger,
	}
}

// SendEmail implements domain.NotificationService
func (s *ServiceImpl) SendEmail(to, subject, body string) error {
	if s.mailer.config.Username == "" {
		s.logger.Info("smtp not configured, skipping email",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}
	return s.mailer.Send(to, subject, body)
}

// SendSMS implements domain.NotificationService
func (s *ServiceImpl) SendSMS(to, message string) error {
	if s.fromNumber == "" {
		s.logger.Info("twilio not configured, skipping sms",
			zap.String("to", to),
		)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(message)

	if _, err := s.smsClient.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
