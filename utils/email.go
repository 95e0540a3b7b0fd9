package utils

import (
	"github.com/resendlabs/resend-go"
	"github.com/sketchsync/backend/config"
	"github.com/sketchsync/backend/templates"
)

const (
	resendEmailFrom = "onboarding@resend.dev"
	resendReplyFrom = "onboarding@resend.dev"
)

// Email is a struct that contains email related operations
type Email struct {
	Env *config.Env
}

func (e *Email) send(to, subject, html string) error {
	client := resend.NewClient(e.Env.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    resendEmailFrom,
		To:      []string{to},
		Html:    html,
		Subject: subject,
		ReplyTo: resendReplyFrom,
	}

	_, err := client.Emails.Send(params)
	return err
}

// SendOTP is a function that is used to send the OTP that verifies the signup email address
func (e *Email) SendOTP(email, code string) error {
	emailTemplate, err := templates.Email{}.SignupOTPTmpl(code)
	if err != nil {
		return err
	}

	return e.send(email, "Your OTP Code", emailTemplate)
}

// SendPasswordResetOTP is a function that is used to send the OTP that is used to
// reset the users password
func (e *Email) SendPasswordResetOTP(email, code string) error {
	emailTemplate, err := templates.Email{}.PasswordResetTmpl(code)
	if err != nil {
		return err
	}

	return e.send(email, "Your OTP Code", emailTemplate)
}

// SendWelcome is a function that is used to welcome a newly registered user
func (e *Email) SendWelcome(email string) error {
	emailTemplate, err := templates.Email{}.WelcomeTmpl(email)
	if err != nil {
		return err
	}

	return e.send(email, "Welcome", emailTemplate)
}
