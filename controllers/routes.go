package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sketchsync/backend/config"
	"github.com/sketchsync/backend/connect"
	"github.com/sketchsync/backend/middleware"
	"github.com/sketchsync/backend/services"
)

// RegisterRoutes is a function that is used to mount all the routes on the fiber app
func RegisterRoutes(app *fiber.App, conn *connect.Connector, env *config.Env, otp services.OTPStore, mail services.Mailer) {
	authC := Auth{
		Conn: conn,
		Env:  env,
		OTP:  otp,
		Mail: mail,
	}
	connectionC := Connection{
		Conn: conn,
		Env:  env,
	}
	systemC := System{
		Env: env,
	}
	authM := middleware.Auth{
		Conn: conn,
		Env:  env,
	}

	app.Get("/health", systemC.Health)

	app.Route("/api/v1/auth", func(router fiber.Router) {
		router.Post("/signup/request-otp", authC.RequestSignupOTP)
		router.Post("/signup/complete", authC.CompleteSignup)
		router.Post("/signin", authC.Signin)
		router.Post("/logout", authM.Check, authC.Logout)
		router.Get("/profile", authM.Check, authC.Profile)
		router.Patch("/editProfile", authM.Check, authC.EditProfile)
		router.Patch("/changePassword", authM.Check, authC.ChangePassword)
		router.Post("/forgotPassword", authC.ForgotPassword)
		router.Post("/resetPassword", authC.ResetPassword)
	})

	app.Route("/api/v1/connection", func(router fiber.Router) {
		router.Use(authM.Check)

		router.Post("/sendRequest", connectionC.SendRequest)
		router.Post("/accept/:requestId", connectionC.Accept)
		router.Post("/reject/:requestId", connectionC.Reject)
		router.Delete("/cancel/:requestId", connectionC.Cancel)
		router.Delete("/remove/:connectionId", connectionC.Remove)
		router.Get("/", connectionC.List)
		router.Get("/requests", connectionC.PendingRequests)
		router.Get("/sent", connectionC.SentRequests)
		router.Get("/status/:userId", connectionC.Status)
	})
}
