package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sketchsync/backend/config"
)

// System struct contains the system related controllers
type System struct {
	Env *config.Env
}

// Health is a function that is used to report the health of the server
func (s *System) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":      "success",
		"environment": s.Env.DevEnv,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
