// Package service holds the outbound collaborators of the auth flow
package service

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer dispatches a one-time passcode to an email address. The SMTP
// implementation is swapped out for a capturing fake in tests.
type Mailer interface {
	SendOTPMail(to, code string) error
}

type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (m *SMTPMailer) SendOTPMail(to, code string) error {
	from := viper.GetString("mail.sender")
	if to == from {
		return errors.New("invalid email address")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your OTP")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your One-Time Password is: %s\n\nThe code expires in %d minutes.",
		code, viper.GetInt("otp.ttl_minutes"),
	))

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	return d.DialAndSend(msg)
}
