package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPStore persists short lived one time codes. A stored code replaces any
// prior code for the same identity and purpose, and expires on its own
type OTPStore interface {
	StoreSignupCode(ctx context.Context, email, username, code string) error
	SignupCode(ctx context.Context, email, username string) (string, error)
	DeleteSignupCode(ctx context.Context, email, username string) error
	StoreResetCode(ctx context.Context, userID, code string) error
	ResetCode(ctx context.Context, userID string) (string, error)
	DeleteResetCode(ctx context.Context, userID string) error
}

// OTP is the redis backed OTPStore
type OTP struct {
	R       *redis.Client
	Expires time.Duration
}

func signupKey(email, username string) string {
	return fmt.Sprintf("otp:signup:%s:%s", strings.ToLower(strings.TrimSpace(email)), strings.ToLower(strings.TrimSpace(username)))
}

func resetKey(userID string) string {
	return fmt.Sprintf("otp:reset:%s", userID)
}

// StoreSignupCode stores the signup code for the email and username pair
func (o *OTP) StoreSignupCode(ctx context.Context, email, username, code string) error {
	return o.R.Set(ctx, signupKey(email, username), code, o.Expires).Err()
}

// SignupCode returns the active signup code of the email and username pair,
// empty when absent or expired
func (o *OTP) SignupCode(ctx context.Context, email, username string) (string, error) {
	code, err := o.R.Get(ctx, signupKey(email, username)).Result()
	if err == redis.Nil {
		return "", nil
	}

	return code, err
}

// DeleteSignupCode consumes the signup code of the email and username pair
func (o *OTP) DeleteSignupCode(ctx context.Context, email, username string) error {
	return o.R.Del(ctx, signupKey(email, username)).Err()
}

// StoreResetCode stores the password reset code for the user
func (o *OTP) StoreResetCode(ctx context.Context, userID, code string) error {
	return o.R.Set(ctx, resetKey(userID), code, o.Expires).Err()
}

// ResetCode returns the active password reset code of the user,
// empty when absent or expired
func (o *OTP) ResetCode(ctx context.Context, userID string) (string, error) {
	code, err := o.R.Get(ctx, resetKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}

	return code, err
}

// DeleteResetCode consumes the password reset code of the user
func (o *OTP) DeleteResetCode(ctx context.Context, userID string) error {
	return o.R.Del(ctx, resetKey(userID)).Err()
}
