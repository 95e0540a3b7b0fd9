package services

import (
	"github.com/google/uuid"
	"github.com/sketchsync/backend/connect"
	"github.com/sketchsync/backend/errors"
	"github.com/sketchsync/backend/models"
	"gorm.io/gorm"
)

// Relationship of the caller to another user, as reported by StatusBetween
const (
	StatusSelf      = "self"
	StatusNone      = "none"
	StatusConnected = "connected"
	StatusSent      = "sent"
	StatusReceived  = "received"
	StatusRejected  = "rejected"
)

// Connection contains all the connection related services
type Connection struct {
	Conn *connect.Connector
}

// Get is a function that is used to get a connection with the given id
func (s *Connection) Get(id uuid.UUID) (*models.Connection, error) {
	var conn models.Connection
	err := s.Conn.DB.Where(&models.Connection{
		ID: &id,
	}).First(&conn).Error
	if err != nil {
		return nil, err
	}

	return &conn, nil
}

// GetBetween is a function that is used to get the connection between two users
// in either direction, nil when there is none
func (s *Connection) GetBetween(a, b uuid.UUID) (*models.Connection, error) {
	var conn models.Connection
	err := s.Conn.DB.
		Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)", a, b, b, a).
		First(&conn).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &conn, nil
}

// SendRequest creates a pending connection request from one user to another.
// A rejected connection between the pair is revived to pending with the
// caller as the new sender
func (s *Connection) SendRequest(from, to uuid.UUID) (*models.Connection, error) {
	if from == to {
		return nil, errors.ErrCannotConnectSelf
	}

	existing, err := s.GetBetween(from, to)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		switch existing.Status {
		case models.ConnectionAccepted:
			return nil, errors.ErrAlreadyConnected
		case models.ConnectionPending:
			if *existing.FromID == from {
				return nil, errors.ErrRequestAlreadySent
			}
			return nil, errors.ErrPendingRequestReceived
		case models.ConnectionRejected:
			existing.FromID = &from
			existing.ToID = &to
			existing.Status = models.ConnectionPending
			if err := s.Conn.DB.Save(existing).Error; err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	conn := models.Connection{
		FromID: &from,
		ToID:   &to,
		Status: models.ConnectionPending,
	}
	if err := s.Conn.DB.Create(&conn).Error; err != nil {
		return nil, err
	}

	return &conn, nil
}

// validateAction checks that the user is the recipient of a still pending request
func (s *Connection) validateAction(userID, requestID uuid.UUID) (*models.Connection, error) {
	conn, err := s.Get(requestID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRequestNotFound
		}

		return nil, err
	}

	if *conn.ToID != userID {
		return nil, errors.ErrNotRecipient
	}
	if conn.Status != models.ConnectionPending {
		return nil, errors.ErrRequestNotPending
	}

	return conn, nil
}

// Accept marks a pending request addressed to the user as accepted
func (s *Connection) Accept(userID, requestID uuid.UUID) (*models.Connection, error) {
	conn, err := s.validateAction(userID, requestID)
	if err != nil {
		return nil, err
	}

	conn.Status = models.ConnectionAccepted
	if err := s.Conn.DB.Save(conn).Error; err != nil {
		return nil, err
	}

	return conn, nil
}

// Reject marks a pending request addressed to the user as rejected
func (s *Connection) Reject(userID, requestID uuid.UUID) (*models.Connection, error) {
	conn, err := s.validateAction(userID, requestID)
	if err != nil {
		return nil, err
	}

	conn.Status = models.ConnectionRejected
	if err := s.Conn.DB.Save(conn).Error; err != nil {
		return nil, err
	}

	return conn, nil
}

// Cancel deletes a pending request sent by the user
func (s *Connection) Cancel(userID, requestID uuid.UUID) error {
	conn, err := s.Get(requestID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRequestNotFound
		}

		return err
	}

	if *conn.FromID != userID {
		return errors.ErrNotSender
	}
	if conn.Status != models.ConnectionPending {
		return errors.ErrRequestNotPending
	}

	return s.Conn.DB.Delete(conn).Error
}

// Remove deletes an accepted connection the user is part of
func (s *Connection) Remove(userID, connectionID uuid.UUID) error {
	conn, err := s.Get(connectionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRequestNotFound
		}

		return err
	}

	if *conn.FromID != userID && *conn.ToID != userID {
		return errors.ErrNotParticipant
	}
	if conn.Status != models.ConnectionAccepted {
		return errors.ErrOnlyAcceptedRemovable
	}

	return s.Conn.DB.Delete(conn).Error
}

// ListAccepted returns the accepted connections of the user, most recently
// accepted first. A revived request is older by creation but its acceptance
// time is what the listing reports
func (s *Connection) ListAccepted(userID uuid.UUID) ([]models.Connection, error) {
	var conns []models.Connection
	err := s.Conn.DB.
		Where("(from_id = ? OR to_id = ?) AND status = ?", userID, userID, models.ConnectionAccepted).
		Order("updated_at DESC").
		Find(&conns).Error

	return conns, err
}

// ListPendingReceived returns the pending requests addressed to the user, newest first
func (s *Connection) ListPendingReceived(userID uuid.UUID) ([]models.Connection, error) {
	var conns []models.Connection
	err := s.Conn.DB.
		Where("to_id = ? AND status = ?", userID, models.ConnectionPending).
		Order("created_at DESC").
		Find(&conns).Error

	return conns, err
}

// ListPendingSent returns the pending requests sent by the user, newest first
func (s *Connection) ListPendingSent(userID uuid.UUID) ([]models.Connection, error) {
	var conns []models.Connection
	err := s.Conn.DB.
		Where("from_id = ? AND status = ?", userID, models.ConnectionPending).
		Order("created_at DESC").
		Find(&conns).Error

	return conns, err
}

// StatusBetween reports the relationship of the user to another user based on
// the single connection record between them
func (s *Connection) StatusBetween(userID, otherID uuid.UUID) (string, *models.Connection, error) {
	if userID == otherID {
		return StatusSelf, nil, nil
	}

	conn, err := s.GetBetween(userID, otherID)
	if err != nil {
		return "", nil, err
	}
	if conn == nil {
		return StatusNone, nil, nil
	}

	switch conn.Status {
	case models.ConnectionAccepted:
		return StatusConnected, conn, nil
	case models.ConnectionPending:
		if *conn.FromID == userID {
			return StatusSent, conn, nil
		}
		return StatusReceived, conn, nil
	default:
		return StatusRejected, conn, nil
	}
}
