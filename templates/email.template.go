// Package templates contains all the email templates
package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Email contains all the templates that are related to email
type Email struct{}

type otpCodes struct {
	CODE1 string
	CODE2 string
	CODE3 string
	CODE4 string
	CODE5 string
	CODE6 string
}

func splitCodes(otp string) (otpCodes, error) {
	codes := strings.Split(otp, "")
	if len(codes) != 6 {
		return otpCodes{}, fmt.Errorf("the OTP must contain exactly 6 digits")
	}

	return otpCodes{
		CODE1: codes[0],
		CODE2: codes[1],
		CODE3: codes[2],
		CODE4: codes[3],
		CODE5: codes[4],
		CODE6: codes[5],
	}, nil
}

const otpBlocks = `
  <style>
    .container {
      display: flex;
      flex-direction: row;
      align-items: center;
      justify-content: center;
      width: 100%;
      margin-top: 10px;
      column-gap: 20px;
    }

    .block {
      display: flex;
      border: 2px solid black;
      border-radius: 20%;
      width: 50px;
      height: 50px;
      align-items: center;
      justify-content: center;
    }
  </style>
  <div class="container">
    <section class="block">{{.CODE1}}</section>
    <section class="block">{{.CODE2}}</section>
    <section class="block">{{.CODE3}}</section>
    <section class="block">{{.CODE4}}</section>
    <section class="block">{{.CODE5}}</section>
    <section class="block">{{.CODE6}}</section>
  </div>
`

// SignupOTPTmpl is a function that is used to get the email with the OTP that
// verifies the signup email address
func (Email) SignupOTPTmpl(otp string) (emailHTML string, err error) {
	codes, err := splitCodes(otp)
	if err != nil {
		return "", err
	}

	tmpl := `
<html>
  <h1>SketchSync</h1>
  <strong> Use the below OTP(One Time Password) to verify your email address </strong>
  <br />
  <br />` + otpBlocks + `
  <footer>
    The code expires shortly, if you did not request this email please ignore it
  </footer>
</html>
`

	t := template.Must(template.New("signupOTP").Parse(tmpl))

	var buf bytes.Buffer
	err = t.Execute(&buf, codes)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// PasswordResetTmpl is a function that is used to get the email with the OTP to reset the password
func (Email) PasswordResetTmpl(otp string) (emailHTML string, err error) {
	codes, err := splitCodes(otp)
	if err != nil {
		return "", err
	}

	tmpl := `
<html>
  <h1>SketchSync</h1>
  <strong> Use the below OTP(One Time Password) to reset your password </strong>
  <br />
  <br />` + otpBlocks + `
  <footer>
    If you did not request a password reset please ignore this email
  </footer>
</html>
`

	t := template.Must(template.New("resetPassword").Parse(tmpl))

	var buf bytes.Buffer
	err = t.Execute(&buf, codes)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// WelcomeTmpl is a function that is used to get the email that welcomes a newly
// registered user
func (Email) WelcomeTmpl(email string) (emailHTML string, err error) {
	tmpl := `
<html>
  <h1>Welcome to SketchSync</h1>
  <strong>Your account {{.Email}} is ready</strong>
  <br />
  <p>
    Sign in to start sketching with your friends, send a connection request to
    find the people you want to draw with.
  </p>
</html>
`

	t := template.Must(template.New("welcome").Parse(tmpl))

	var buf bytes.Buffer
	err = t.Execute(&buf, struct{ Email string }{Email: email})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
