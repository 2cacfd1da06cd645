package services

import (
	"fmt"
	"sync"

	"lahmah_server/structs"
	"lahmah_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient     *resend.Client
	emailClientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.APIKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	emailClientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderStatusUpdate tells a customer their order moved to a new status.
// When no API key is configured the notification is silently skipped.
func (es *EmailService) SendOrderStatusUpdate(email string, order *tables.Order) error {
	if es.cfg.Email.APIKey == "" {
		return nil
	}

	shortID := order.Id.String()
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html dir="rtl" lang="ar">
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; direction: rtl; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #8B0000; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.status { background-color: white; padding: 15px; margin: 15px 0; border-radius: 5px; text-align: center; font-size: 18px; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>تحديث حالة الطلب</h1>
				</div>
				<div class="content">
					<p>تم تحديث حالة طلبك رقم <strong>%s</strong>.</p>
					<div class="status">
						الحالة الحالية: <strong>%s</strong>
					</div>
					<p>الإجمالي: %.2f ر.س</p>
					<p>شكراً لتسوقك معنا!</p>
				</div>
				<div class="footer">
					<p>لحمة | لحوم طازجة توصل لباب بيتك</p>
				</div>
			</div>
		</body>
		</html>
	`, shortID, order.Status, order.TotalAmount)

	subject := fmt.Sprintf("تحديث طلبك %s: %s", shortID, order.Status)

	return es.SendEmail([]string{email}, subject, emailBody)
}
