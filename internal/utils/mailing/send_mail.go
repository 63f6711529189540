package mailing

import (
	"strconv"

	"github.com/OojayFidel/plp-hackathon-2/internal/utils"
	"gopkg.in/gomail.v2"
)

// SendMail delivers one HTML mail through the configured SMTP relay. Callers
// are expected to gate on SMTP_HOST being set before calling.
func SendMail(toEmail string, subject string, body string) error {
	host := utils.GetConfig("SMTP_HOST")
	sender := utils.GetConfig("SMTP_AUTH_EMAIL")
	password := utils.GetConfig("SMTP_AUTH_PASSWORD")

	port, err := strconv.Atoi(utils.GetConfig("SMTP_PORT"))
	if err != nil {
		return err
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", sender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	return gomail.NewDialer(host, port, sender, password).DialAndSend(mailer)
}
