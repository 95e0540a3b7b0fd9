package schemas

import (
	"time"

	"github.com/google/uuid"
	"github.com/sketchsync/backend/models"
)

// ConnectionRequest is the wire format of a connection request record
type ConnectionRequest struct {
	ID        *uuid.UUID `json:"id"`
	From      *uuid.UUID `json:"from"`
	To        *uuid.UUID `json:"to"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"createdAt"`
}

// ConnectionView is an accepted connection with the counterpart expanded
type ConnectionView struct {
	ID          *uuid.UUID  `json:"id"`
	User        UserSummary `json:"user"`
	ConnectedAt *time.Time  `json:"connectedAt"`
}

// RequestView is a pending request with the counterpart expanded
type RequestView struct {
	ID        *uuid.UUID  `json:"id"`
	User      UserSummary `json:"user"`
	Status    string      `json:"status"`
	CreatedAt *time.Time  `json:"createdAt"`
}

// FilterConnection is a function that converts a connection model to its wire format
func FilterConnection(conn models.Connection) ConnectionRequest {
	return ConnectionRequest{
		ID:        conn.ID,
		From:      conn.FromID,
		To:        conn.ToID,
		Status:    conn.Status,
		CreatedAt: conn.CreatedAt,
	}
}
