// Package errors contians http errors and other custom errors
package errors

import (
	errs "errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sketchsync/backend/config"
	"github.com/sketchsync/backend/schemas"
)

//revive:disable

var (
	ErrInternalServerError    = fmt.Errorf("Internal server error")
	ErrUnauthorized           = fmt.Errorf("You are not authorized to access this resource")
	ErrTokenNotProvided       = fmt.Errorf("No authentication token provided")
	ErrInvalidToken           = fmt.Errorf("Invalid token")
	ErrInvalidCredentials     = fmt.Errorf("Invalid credentials")
	ErrUserNotFound           = fmt.Errorf("User not found")
	ErrUsernameAlreadyUsed    = fmt.Errorf("Username is already taken")
	ErrEmailAlreadyUsed       = fmt.Errorf("Email is already taken")
	ErrUsernameOrEmailExists  = fmt.Errorf("Username or email already exists")
	ErrInvalidOrExpiredOTP    = fmt.Errorf("Invalid or expired OTP")
	ErrCurrentPasswordWrong   = fmt.Errorf("Current password is incorrect")
	ErrSamePassword           = fmt.Errorf("New password must be different from the current password")
	ErrCannotConnectSelf      = fmt.Errorf("You cannot send a connection request to yourself")
	ErrAlreadyConnected       = fmt.Errorf("You are already connected with this user")
	ErrRequestAlreadySent     = fmt.Errorf("Connection request already sent")
	ErrPendingRequestReceived = fmt.Errorf("You already have a pending request from this user")
	ErrRequestNotFound        = fmt.Errorf("Connection request not found")
	ErrRequestNotPending      = fmt.Errorf("Connection request is no longer pending")
	ErrOnlyAcceptedRemovable  = fmt.Errorf("Can only remove accepted connections")
	ErrNotRecipient           = fmt.Errorf("You are not authorized to access this resource")
	ErrNotSender              = fmt.Errorf("You are not authorized to access this resource")
	ErrNotParticipant         = fmt.Errorf("You are not authorized to access this resource")
)

type res schemas.Res

func unauthorized(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(res{
		Message: err.Error(),
	})
}

func badrequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(res{
		Message: err.Error(),
	})
}

func notfound(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusNotFound).JSON(res{
		Message: err.Error(),
	})
}

func conflict(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusConflict).JSON(res{
		Message: err.Error(),
	})
}

// InternalServerErr responds with 500; the underlying error is only
// surfaced outside of production
func InternalServerErr(c *fiber.Ctx, env *config.Env, err error) error {
	if config.GetDevEnv(env) != config.Prod && err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": ErrInternalServerError.Error(),
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(res{
		Message: ErrInternalServerError.Error(),
	})
}

func Unauthorized(c *fiber.Ctx) error {
	return unauthorized(c, ErrUnauthorized)
}

func TokenNotProvided(c *fiber.Ctx) error {
	return unauthorized(c, ErrTokenNotProvided)
}

func InvalidToken(c *fiber.Ctx) error {
	return unauthorized(c, ErrInvalidToken)
}

func InvalidCredentials(c *fiber.Ctx) error {
	return unauthorized(c, ErrInvalidCredentials)
}

func CurrentPasswordWrong(c *fiber.Ctx) error {
	return unauthorized(c, ErrCurrentPasswordWrong)
}

func UserNotFound(c *fiber.Ctx) error {
	return notfound(c, ErrUserNotFound)
}

func RequestNotFound(c *fiber.Ctx) error {
	return notfound(c, ErrRequestNotFound)
}

func UsernameAlreadyUsed(c *fiber.Ctx) error {
	return conflict(c, ErrUsernameAlreadyUsed)
}

func EmailAlreadyUsed(c *fiber.Ctx) error {
	return conflict(c, ErrEmailAlreadyUsed)
}

func UsernameOrEmailExists(c *fiber.Ctx) error {
	return conflict(c, ErrUsernameOrEmailExists)
}

func InvalidOrExpiredOTP(c *fiber.Ctx) error {
	return badrequest(c, ErrInvalidOrExpiredOTP)
}

func SamePassword(c *fiber.Ctx) error {
	return badrequest(c, ErrSamePassword)
}

func BadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(res{
		Message: msg,
	})
}

// ValidationErr responds with the field level validation messages
func ValidationErr(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation error",
		"errors":  fields,
	})
}

//revive:enable

// CheckDBError is a struc that is used to identify the database errors
type CheckDBError struct{}

// DuplicateKey is a function that is used to find wether the the returned database error
// is due to a duplicate key entry (A unique key constraint)
func (CheckDBError) DuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errs.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return true
		}
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
