package validate_test

import (
	"testing"

	"github.com/sketchsync/backend/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructUsername(t *testing.T) {
	type payload struct {
		UserName string `json:"userName" validate:"required,validate_username"`
	}

	assert.Nil(t, validate.Struct(payload{UserName: "sketch_user1"}))

	fields := validate.Struct(payload{UserName: "ab"})
	require.NotNil(t, fields)
	assert.Equal(t, "Username must be 3-20 characters and can only contain letters, numbers, and underscores.", fields["userName"])

	fields = validate.Struct(payload{UserName: "has space"})
	require.NotNil(t, fields)
	assert.Contains(t, fields, "userName")

	fields = validate.Struct(payload{})
	require.NotNil(t, fields)
	assert.Equal(t, "userName is required.", fields["userName"])
}

func TestStructPassword(t *testing.T) {
	type payload struct {
		Password string `json:"password" validate:"required,min=8,max=200,validate_password"`
	}

	assert.Nil(t, validate.Struct(payload{Password: "N0t$oC0mmonPass92!"}))

	fields := validate.Struct(payload{Password: "aaaaaaaa"})
	require.NotNil(t, fields)
	assert.Equal(t, "Password is not strong enough.", fields["password"])

	fields = validate.Struct(payload{Password: "aB3!x"})
	require.NotNil(t, fields)
	assert.Equal(t, "password must be at least 8 characters long.", fields["password"])
}

func TestStructPhone(t *testing.T) {
	type payload struct {
		PhoneNumber string `json:"phoneNumber" validate:"omitempty,validate_phone"`
	}

	assert.Nil(t, validate.Struct(payload{PhoneNumber: "+12025550147"}))
	assert.Nil(t, validate.Struct(payload{PhoneNumber: "0771234567"}))
	assert.Nil(t, validate.Struct(payload{}))

	fields := validate.Struct(payload{PhoneNumber: "12ab34"})
	require.NotNil(t, fields)
	assert.Equal(t, "Phone number is not valid.", fields["phoneNumber"])
}

func TestStructOTPCode(t *testing.T) {
	type payload struct {
		OTPCode string `json:"otpCode" validate:"required,validate_otp"`
	}

	assert.Nil(t, validate.Struct(payload{OTPCode: "123456"}))

	for _, code := range []string{"12345", "1234567", "12345a", ""} {
		fields := validate.Struct(payload{OTPCode: code})
		require.NotNil(t, fields, "code %q should not validate", code)
		assert.Contains(t, fields, "otpCode")
	}
}

func TestStructEmail(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	assert.Nil(t, validate.Struct(payload{Email: "user@example.com"}))

	fields := validate.Struct(payload{Email: "not-an-email"})
	require.NotNil(t, fields)
	assert.Equal(t, "Email is not valid.", fields["email"])
}
