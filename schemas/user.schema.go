package schemas

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sketchsync/backend/models"
)

// User is schema that contians user freindly user details
type User struct {
	ID                 *uuid.UUID         `json:"id"`
	UserName           string             `json:"userName"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	PhoneNumber        string             `json:"phoneNumber,omitempty"`
	AvatarURL          string             `json:"avatarUrl,omitempty"`
	Role               models.Roles       `json:"role"`
	Permissions        models.Permissions `json:"permissions"`
	IsVerified         bool               `json:"isVerified"`
	LastLoginFormatted string             `json:"lastLoginFormatted,omitempty"`
	LastLoginRelative  string             `json:"lastLoginRelative,omitempty"`
}

// UserSummary is the counterpart identity that is expanded on connection views
type UserSummary struct {
	ID        *uuid.UUID `json:"id"`
	UserName  string     `json:"userName"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
}

// FilterUser is a function that is used to filter the user model to a user freindly format
func FilterUser(user models.User) User {
	filtered := User{
		ID:          user.ID,
		UserName:    user.Username,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		AvatarURL:   user.AvatarURL,
		Role:        user.Roles,
		Permissions: user.Permissions,
		IsVerified:  user.Verified,
	}

	if user.LastLogin != nil {
		filtered.LastLoginFormatted = user.LastLogin.Format(time.RFC1123)
		filtered.LastLoginRelative = humanize.Time(*user.LastLogin)
	}

	return filtered
}

// SummarizeUser is a function that is used to filter the user model to the
// summary shown on connection views
func SummarizeUser(user models.User) UserSummary {
	return UserSummary{
		ID:        user.ID,
		UserName:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}
}
