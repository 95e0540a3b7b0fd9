// Package middleware contains the middlewares of the application
package middleware

import (
	"strings"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sketchsync/backend/config"
	"github.com/sketchsync/backend/connect"
	"github.com/sketchsync/backend/errors"
	"github.com/sketchsync/backend/services"
	"github.com/sketchsync/backend/session"
	"github.com/sketchsync/backend/token"
)

// Auth contains auth related middlewares
type Auth struct {
	Conn *connect.Connector
	Env  *config.Env
}

// Check is a function that is used to check wether the user is authenticated
func (a *Auth) Check(c *fiber.Ctx) error {
	var sessionToken string
	authorization := c.Get("Authorization")

	if strings.HasPrefix(authorization, "Bearer ") {
		sessionToken = strings.TrimPrefix(authorization, "Bearer ")
	} else if c.Cookies("token") != "" {
		sessionToken = c.Cookies("token")
	} else {
		return errors.TokenNotProvided(c)
	}

	sessionTokenS := token.Session{
		Env: a.Env,
	}

	userIDStr, err := sessionTokenS.Validate(sessionToken)
	if err != nil {
		return errors.InvalidToken(c)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return errors.InvalidToken(c)
	}

	userS := services.User{
		Conn: a.Conn,
	}
	user, err := userS.GetUserWithID(userID)
	if err != nil {
		if services.IsNotFound(err) {
			return errors.UserNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	if user.Blocked {
		return errors.Unauthorized(c)
	}

	session.Add(c, user)

	return c.Next()
}
