package services

// Mailer dispatches the transactional emails of the auth workflow
type Mailer interface {
	SendOTP(email, code string) error
	SendPasswordResetOTP(email, code string) error
	SendWelcome(email string) error
}
