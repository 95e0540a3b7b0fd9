package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles is the set of roles assigned to a user, stored as a JSON column
type Roles []string

// Value implements driver.Valuer
func (r Roles) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner
func (r *Roles) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("cannot scan roles from %T", src)
	}
}

// Permissions contains the collaboration permission flags of a user,
// stored as a JSON column
type Permissions struct {
	CanDraw   bool `json:"canDraw"`
	CanType   bool `json:"canType"`
	CanAudio  bool `json:"canAudio"`
	CanInvite bool `json:"canInvite"`
}

// Value implements driver.Valuer
func (p Permissions) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner
func (p *Permissions) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan permissions from %T", src)
	}
}

// DefaultPermissions returns the permissions granted to a newly created user
func DefaultPermissions() Permissions {
	return Permissions{
		CanDraw:   true,
		CanType:   true,
		CanAudio:  true,
		CanInvite: true,
	}
}

// BlockedUsers holds the ids of users blocked by a user, stored as a JSON column
type BlockedUsers []string

// Value implements driver.Valuer
func (b BlockedUsers) Value() (driver.Value, error) {
	if b == nil {
		b = BlockedUsers{}
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner
func (b *BlockedUsers) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("cannot scan blocked users from %T", src)
	}
}

// User represents the user in the relational database
type User struct {
	ID             *uuid.UUID   `gorm:"type:uuid;primary_key"`
	CreatedAt      *time.Time   `gorm:"not null"`
	UpdatedAt      *time.Time   `gorm:"not null"`
	Username       string       `gorm:"type:varchar(150);uniqueIndex:idx_users_username;not null"`
	Email          string       `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	Name           string       `gorm:"type:varchar(60);not null"`
	PasswordHashed string       `gorm:"type:varchar(255);not null"`
	PhoneNumber    string       `gorm:"type:varchar(20)"`
	AvatarURL      string       `gorm:"type:varchar(255)"`
	Verified       bool         `gorm:"default:false"`
	Roles          Roles        `gorm:"type:text"`
	Permissions    Permissions  `gorm:"type:text"`
	Blocked        bool         `gorm:"default:false"`
	BlockedUsers   BlockedUsers `gorm:"type:text"`
	LastLogin      *time.Time
}

// BeforeCreate assigns the primary key so that id generation does not
// depend on a database extension
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == nil {
		id := uuid.New()
		u.ID = &id
	}
	return nil
}
