// Package token is used to create and validate session tokens
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sketchsync/backend/config"
)

// Details is a struct that contains the data of a created session token
type Details struct {
	Token     string
	UserID    string
	ExpiresIn int64
}

// Session is a struct that is used to perform operations on session tokens
type Session struct {
	Env *config.Env
}

// Create is a function that is used to create a new session token for the given user
func (s *Session) Create(userID uuid.UUID) (*Details, error) {
	now := time.Now().UTC()

	tokenDetails := &Details{
		UserID:    userID.String(),
		ExpiresIn: now.Add(s.Env.JWTExpires).Unix(),
	}

	claims := make(jwt.MapClaims)
	claims["userId"] = userID.String()
	claims["exp"] = tokenDetails.ExpiresIn
	claims["iat"] = now.Unix()
	claims["nbf"] = now.Unix()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Env.JWTSecret))
	if err != nil {
		return nil, err
	}

	tokenDetails.Token = token
	return tokenDetails, nil
}

// Validate is a function that is used to validate the session token and
// extract the user id from its payload
func (s *Session) Validate(tokenStr string) (userID string, err error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method : %s", t.Header["alg"])
		}

		return []byte(s.Env.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("validate : invalid token")
	}

	userID, ok = claims["userId"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("validate : token payload has no user")
	}

	return userID, nil
}
