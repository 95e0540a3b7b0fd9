// Package session contains session related activity
package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sketchsync/backend/models"
)

// Add is a function that is used to add the authenticated user to the session
func Add(c *fiber.Ctx, user *models.User) {
	if user == nil {
		return
	}

	c.Locals("user", user)
}

// Get the authenticated user from the session
func Get(c *fiber.Ctx) *models.User {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return nil
	}

	return user
}
