package model

import "github.com/google/uuid"

// RegisterParams are the inputs of Register.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams are the inputs of Login. DeviceToken is optional.
type LoginParams struct {
	Identifier  string
	Password    string
	DeviceToken string
}

// VerifyOTPParams are the inputs of VerifyOTP.
type VerifyOTPParams struct {
	UserID           uuid.UUID
	Code             string
	RememberDevice   bool
	DeviceDescriptor string
}

// ResetPasswordParams are the inputs of ResetPassword.
type ResetPasswordParams struct {
	Email       string
	Code        string
	NewPassword string
}

// GoogleLoginParams are the inputs of GoogleLogin. Name and Password are
// only needed when no account exists for the token's email yet.
type GoogleLoginParams struct {
	IDToken  string
	Name     string
	Password string
}
