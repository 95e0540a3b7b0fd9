package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Connection statuses
const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
	ConnectionRejected = "rejected"
)

// Connection represents a directed connection request between two users
type Connection struct {
	ID        *uuid.UUID `gorm:"type:uuid;primary_key"`
	FromID    *uuid.UUID `gorm:"type:uuid;index:idx_connections_from;not null"`
	ToID      *uuid.UUID `gorm:"type:uuid;index:idx_connections_to;not null"`
	Status    string     `gorm:"type:varchar(20);default:pending;not null"`
	CreatedAt *time.Time `gorm:"not null"`
	UpdatedAt *time.Time `gorm:"not null"`
}

// BeforeCreate assigns the primary key so that id generation does not
// depend on a database extension
func (conn *Connection) BeforeCreate(_ *gorm.DB) error {
	if conn.ID == nil {
		id := uuid.New()
		conn.ID = &id
	}
	return nil
}
