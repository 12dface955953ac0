// Package notify delivers one-time codes to account owners.
package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/dtroode/authgate/internal/model"
)

// Message is a rendered notification.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

var htmlBody = template.Must(template.New("code").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>{{.Title}}</h2>
  <p>{{.Intro}}</p>
  <div style="background-color: #f4f4f4; padding: 15px; font-size: 24px; text-align: center; letter-spacing: 5px; font-weight: bold;">{{.Code}}</div>
  <p>This code will expire in {{.Minutes}} minutes.</p>
  <p>{{.Ignore}}</p>
</div>
`))

type htmlData struct {
	Title   string
	Intro   string
	Code    string
	Minutes int
	Ignore  string
}

// LoginCodeMessage renders the email carrying a login or 2FA-enable code.
func LoginCodeMessage(code string) (Message, error) {
	minutes := int(model.LoginCodeWindow / time.Minute)
	html, err := render(htmlData{
		Title:   "Your One-Time Password",
		Intro:   "Use the following code to complete your login:",
		Code:    code,
		Minutes: minutes,
		Ignore:  "If you didn't request this code, please ignore this email.",
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: "Your One-Time Password (OTP)",
		Text:    fmt.Sprintf("Your OTP for login is: %s. It will expire in %d minutes.", code, minutes),
		HTML:    html,
	}, nil
}

// ResetCodeMessage renders the email carrying a password reset code.
func ResetCodeMessage(code string) (Message, error) {
	minutes := int(model.ResetCodeWindow / time.Minute)
	html, err := render(htmlData{
		Title:   "Password Reset Request",
		Intro:   "Please use the following code to reset your password:",
		Code:    code,
		Minutes: minutes,
		Ignore:  "If you didn't request this password reset, please ignore this email.",
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: "Password Reset Request",
		Text: fmt.Sprintf("You requested a password reset. Please use the following code to reset your password: %s. This code will expire in %d minutes.",
			code, minutes),
		HTML: html,
	}, nil
}

func render(data htmlData) (string, error) {
	var buf bytes.Buffer
	if err := htmlBody.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render message: %w", err)
	}
	return buf.String(), nil
}
