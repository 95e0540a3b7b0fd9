package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sketchsync/backend/config"
	"github.com/sketchsync/backend/connect"
	"github.com/sketchsync/backend/errors"
	"github.com/sketchsync/backend/models"
	"github.com/sketchsync/backend/schemas"
	"github.com/sketchsync/backend/services"
	"github.com/sketchsync/backend/session"
	"github.com/sketchsync/backend/validate"
)

// Connection struct contains all the connection related controllers
type Connection struct {
	Conn *connect.Connector
	Env  *config.Env
}

// connectionErr maps the connection service errors to http responses
func (cc *Connection) connectionErr(c *fiber.Ctx, err error) error {
	switch err {
	case errors.ErrCannotConnectSelf,
		errors.ErrAlreadyConnected,
		errors.ErrRequestAlreadySent,
		errors.ErrPendingRequestReceived,
		errors.ErrRequestNotPending,
		errors.ErrOnlyAcceptedRemovable:
		return errors.BadRequest(c, err.Error())
	case errors.ErrNotRecipient, errors.ErrNotSender, errors.ErrNotParticipant:
		return errors.Unauthorized(c)
	case errors.ErrRequestNotFound:
		return errors.RequestNotFound(c)
	default:
		logger.Error(err)
		return errors.InternalServerErr(c, cc.Env, err)
	}
}

// counterpartOf returns the id of the other user on a connection
func counterpartOf(conn models.Connection, userID uuid.UUID) uuid.UUID {
	if *conn.FromID == userID {
		return *conn.ToID
	}
	return *conn.FromID
}

// SendRequest is a function that is used to send a connection request to another user
func (cc *Connection) SendRequest(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	var payload struct {
		ToUserID string `json:"toUserId" validate:"required,uuid"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, "Invalid request payload")
	}

	if fields := validate.Struct(payload); fields != nil {
		return errors.ValidationErr(c, fields)
	}

	toUserID, err := uuid.Parse(payload.ToUserID)
	if err != nil {
		return errors.ValidationErr(c, map[string]string{
			"toUserId": "toUserId must be a valid user ID.",
		})
	}

	userS := services.User{
		Conn: cc.Conn,
	}
	if _, err := userS.GetUserWithID(toUserID); err != nil {
		if services.IsNotFound(err) {
			return errors.UserNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c, cc.Env, err)
	}

	connS := services.Connection{
		Conn: cc.Conn,
	}
	conn, err := connS.SendRequest(*user.ID, toUserID)
	if err != nil {
		return cc.connectionErr(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Connection request sent successfully",
		"request": schemas.FilterConnection(*conn),
	})
}

// Accept is a function that is used to accept a pending connection request
func (cc *Connection) Accept(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return errors.BadRequest(c, "Invalid request ID format")
	}

	connS := services.Connection{
		Conn: cc.Conn,
	}
	conn, err := connS.Accept(*user.ID, requestID)
	if err != nil {
		return cc.connectionErr(c, err)
	}

	userS := services.User{
		Conn: cc.Conn,
	}
	sender, err := userS.GetUserWithID(*conn.FromID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, cc.Env, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Connection request accepted",
		"connection": schemas.RequestView{
			ID:        conn.ID,
			User:      schemas.SummarizeUser(*sender),
			Status:    conn.Status,
			CreatedAt: conn.CreatedAt,
		},
	})
}

// Reject is a function that is used to reject a pending connection request
func (cc *Connection) Reject(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return errors.BadRequest(c, "Invalid request ID format")
	}

	connS := services.Connection{
		Conn: cc.Conn,
	}
	if _, err := connS.Reject(*user.ID, requestID); err != nil {
		return cc.connectionErr(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Res{
		Message: "Connection request rejected",
	})
}

// Cancel is a function that is used to cancel a pending connection request that
// the logged in user has sent
func (cc *Connection) Cancel(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return errors.BadRequest(c, "Invalid request ID format")
	}

	connS := services.Connection{
		Conn: cc.Conn,
	}
	if err := connS.Cancel(*user.ID, requestID); err != nil {
		return cc.connectionErr(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Res{
		Message: "Connection request cancelled",
	})
}

// Remove is a function that is used to remove an accepted connection
func (cc *Connection) Remove(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	connectionID, err := uuid.Parse(c.Params("connectionId"))
	if err != nil {
		return errors.BadRequest(c, "Invalid connection ID format")
	}

	connS := services.Connection{
		Conn: cc.Conn,
	}
	if err := connS.Remove(*user.ID, connectionID); err != nil {
		return cc.connectionErr(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Res{
		Message: "Connection removed successfully",
	})
}

// List is a function that lists the accepted connections of the logged in user
// with the counterpart expanded
func (cc *Connection) List(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	connS := services.Connection{
		Conn: cc.Conn,
	}
	conns, err := connS.ListAccepted(*user.ID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, cc.Env, err)
	}

	counterparts := make([]uuid.UUID, 0, len(conns))
	for _, conn := range conns {
		counterparts = append(counterparts, counterpartOf(conn, *user.ID))
	}

	userS := services.User{
		Conn: cc.Conn,
	}
	users, err := userS.GetUsersWithIDs(counterparts)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, cc.Env, err)
	}

	connections := make([]schemas.ConnectionView, 0, len(conns))
	for _, conn := range conns {
		counterpart, ok := users[counterpartOf(conn, *user.ID)]
		if !ok {
			continue
		}

		connections = append(connections, schemas.ConnectionView{
			ID:          conn.ID,
			User:        schemas.SummarizeUser(counterpart),
			ConnectedAt: conn.UpdatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Connections fetched successfully",
		"connections": connections,
	})
}

func (cc *Connection) listRequests(c *fiber.Ctx, conns []models.Connection, userID uuid.UUID) error {
	counterparts := make([]uuid.UUID, 0, len(conns))
	for _, conn := range conns {
		counterparts = append(counterparts, counterpartOf(conn, userID))
	}

	userS := services.User{
		Conn: cc.Conn,
	}
	users, err := userS.GetUsersWithIDs(counterparts)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, cc.Env, err)
	}

	requests := make([]schemas.RequestView, 0, len(conns))
	for _, conn := range conns {
		counterpart, ok := users[counterpartOf(conn, userID)]
		if !ok {
			continue
		}

		requests = append(requests, schemas.RequestView{
			ID:        conn.ID,
			User:      schemas.SummarizeUser(counterpart),
			Status:    conn.Status,
			CreatedAt: conn.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Connection requests fetched successfully",
		"requests": requests,
	})
}

// PendingRequests is a function that lists the pending requests addressed to
// the logged in user
func (cc *Connection) PendingRequests(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	connS := services.Connection{
		Conn: cc.Conn,
	}
	conns, err := connS.ListPendingReceived(*user.ID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, cc.Env, err)
	}

	return cc.listRequests(c, conns, *user.ID)
}

// SentRequests is a function that lists the pending requests sent by the logged in user
func (cc *Connection) SentRequests(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	connS := services.Connection{
		Conn: cc.Conn,
	}
	conns, err := connS.ListPendingSent(*user.ID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, cc.Env, err)
	}

	return cc.listRequests(c, conns, *user.ID)
}

// Status is a function that reports the connection status between the logged in
// user and another user
func (cc *Connection) Status(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return errors.BadRequest(c, "Invalid user ID format")
	}

	connS := services.Connection{
		Conn: cc.Conn,
	}
	status, conn, err := connS.StatusBetween(*user.ID, otherID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, cc.Env, err)
	}

	res := fiber.Map{
		"message": "Connection status fetched",
		"status":  status,
	}
	if conn != nil {
		res["connection"] = schemas.FilterConnection(*conn)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
