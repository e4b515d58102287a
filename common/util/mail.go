package util

import (
	"log/slog"

	"github.com/campusflow/cert-api/common"
	"gopkg.in/gomail.v2"
)

func InitDialer() {
	if common.Config.MailEnabled == nil || !*common.Config.MailEnabled {
		slog.Info("Issuance mail disabled in configuration")
		return
	}

	dialer := gomail.NewDialer(*common.Config.MailHost, 587, *common.Config.MailUser, *common.Config.MailPass)
	common.Dialer = dialer
}

// MailNotifier delivers issuance notifications over SMTP. It satisfies the
// scheduler's Notifier interface.
type MailNotifier struct{}

func NewMailNotifier() *MailNotifier {
	return &MailNotifier{}
}

func (n *MailNotifier) Notify(recipient string, subject string, body string) error {
	if common.Dialer == nil {
		slog.Debug("Mail dialer not initialized, skipping notification", "recipient", recipient)
		return nil
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", *common.Config.MailUser)
	mailer.SetHeader("To", recipient)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	if err := common.Dialer.DialAndSend(mailer); err != nil {
		slog.Error("Error sending mail", "error", err, "recipient", recipient)
		return err
	}

	slog.Info("Email sent successfully", "recipient", recipient)
	return nil
}
