// Package controllers contains the route controllers of the application
package controllers

import (
	"strings"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/sketchsync/backend/config"
	"github.com/sketchsync/backend/connect"
	"github.com/sketchsync/backend/errors"
	"github.com/sketchsync/backend/models"
	"github.com/sketchsync/backend/schemas"
	"github.com/sketchsync/backend/services"
	"github.com/sketchsync/backend/session"
	"github.com/sketchsync/backend/token"
	"github.com/sketchsync/backend/utils"
	"github.com/sketchsync/backend/validate"
	"golang.org/x/crypto/bcrypt"
)

// Auth struct contains all the auth related controllers
type Auth struct {
	Conn *connect.Connector
	Env  *config.Env
	OTP  services.OTPStore
	Mail services.Mailer
}

func (a *Auth) setTokenCookie(c *fiber.Ctx, tokenStr string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    tokenStr,
		Path:     "/",
		MaxAge:   int(a.Env.JWTExpires.Seconds()),
		HTTPOnly: true,
	})
}

// RequestSignupOTP is a function that starts the signup by sending an OTP to the
// email address that is being registered
func (a *Auth) RequestSignupOTP(c *fiber.Ctx) error {
	var payload struct {
		UserName string `json:"userName" validate:"required,validate_username"`
		Email    string `json:"email" validate:"required,email"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, "Invalid request payload")
	}

	if fields := validate.Struct(payload); fields != nil {
		return errors.ValidationErr(c, fields)
	}

	userS := services.User{
		Conn: a.Conn,
	}

	usernameTaken, err := userS.IsUsernameTaken(payload.UserName, nil)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}
	if usernameTaken {
		return errors.UsernameAlreadyUsed(c)
	}

	emailTaken, err := userS.IsEmailTaken(payload.Email, nil)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}
	if emailTaken {
		return errors.EmailAlreadyUsed(c)
	}

	code := utils.GenerateOTPCode()
	err = a.OTP.StoreSignupCode(c.Context(), payload.Email, payload.UserName, code)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	err = a.Mail.SendOTP(payload.Email, code)
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to send the OTP email")
		return errors.InternalServerErr(c, a.Env, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "OTP sent successfully",
		"data": fiber.Map{
			"email":    payload.Email,
			"userName": payload.UserName,
		},
	})
}

// CompleteSignup is a function that verifies the signup OTP and creates the user
func (a *Auth) CompleteSignup(c *fiber.Ctx) error {
	var payload struct {
		UserName    string `json:"userName" validate:"required,validate_username"`
		Email       string `json:"email" validate:"required,email"`
		OTPCode     string `json:"otpCode" validate:"required,validate_otp"`
		Name        string `json:"name" validate:"required,min=2,max=60"`
		Password    string `json:"password" validate:"required,min=8,max=200,validate_password"`
		PhoneNumber string `json:"phoneNumber" validate:"omitempty,validate_phone"`
		AvatarURL   string `json:"avatarUrl" validate:"omitempty,url"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, "Invalid request payload")
	}

	if fields := validate.Struct(payload); fields != nil {
		return errors.ValidationErr(c, fields)
	}

	code, err := a.OTP.SignupCode(c.Context(), payload.Email, payload.UserName)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}
	if code == "" || code != payload.OTPCode {
		return errors.InvalidOrExpiredOTP(c)
	}

	userS := services.User{
		Conn: a.Conn,
	}

	// Guard against signups that raced this one since the OTP was requested
	usernameTaken, err := userS.IsUsernameTaken(payload.UserName, nil)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}
	emailTaken, err := userS.IsEmailTaken(payload.Email, nil)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}
	if usernameTaken || emailTaken {
		return errors.UsernameOrEmailExists(c)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	newUser, err := userS.Create(models.User{
		Username:       payload.UserName,
		Email:          payload.Email,
		Name:           payload.Name,
		PasswordHashed: string(hashedPassword),
		PhoneNumber:    payload.PhoneNumber,
		AvatarURL:      payload.AvatarURL,
		Verified:       true,
		Roles:          models.Roles{"viewer"},
		Permissions:    models.DefaultPermissions(),
	})
	if err != nil {
		if ok := (errors.CheckDBError{}.DuplicateKey(err)); ok {
			return errors.UsernameOrEmailExists(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	// The code is consumed only once the user record exists
	if err := a.OTP.DeleteSignupCode(c.Context(), payload.Email, payload.UserName); err != nil {
		logger.Error(err)
	}

	sessionTokenS := token.Session{
		Env: a.Env,
	}
	tokenDetails, err := sessionTokenS.Create(*newUser.ID)
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to create the session token")
		return errors.InternalServerErr(c, a.Env, err)
	}

	a.setTokenCookie(c, tokenDetails.Token)

	go func(email string) {
		if err := a.Mail.SendWelcome(email); err != nil {
			logger.ErrorWithMsg(err, "Failed to send the welcome email")
		}
	}(newUser.Email)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    schemas.FilterUser(newUser),
		"token":   tokenDetails.Token,
	})
}

// Signin is a funciton that is used to login the user with the username or email and password
func (a *Auth) Signin(c *fiber.Ctx) error {
	var payload struct {
		UserName string `json:"userName"`
		Email    string `json:"email" validate:"omitempty,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, "Invalid request payload")
	}

	if payload.UserName == "" && payload.Email == "" {
		return errors.ValidationErr(c, map[string]string{
			"userName": "Either userName or email is required.",
		})
	}

	if fields := validate.Struct(payload); fields != nil {
		return errors.ValidationErr(c, fields)
	}

	userS := services.User{
		Conn: a.Conn,
	}

	var user *models.User
	var err error

	if payload.UserName != "" {
		user, err = userS.GetUserWithUsername(payload.UserName)
	} else {
		user, err = userS.GetUserWithEmail(payload.Email)
	}
	if err != nil {
		if services.IsNotFound(err) {
			return errors.InvalidCredentials(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(payload.Password))
	if err != nil {
		return errors.InvalidCredentials(c)
	}

	if user.Blocked {
		return errors.Unauthorized(c)
	}

	if err := userS.UpdateLastLogin(user); err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	sessionTokenS := token.Session{
		Env: a.Env,
	}
	tokenDetails, err := sessionTokenS.Create(*user.ID)
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to create the session token")
		return errors.InternalServerErr(c, a.Env, err)
	}

	a.setTokenCookie(c, tokenDetails.Token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User data retrieved successfully",
		"token":   tokenDetails.Token,
		"user":    schemas.FilterUser(*user),
	})
}

// Logout is a function that is used to logout the user
func (a *Auth) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:    "token",
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-time.Hour * 24),
	})

	return c.Status(fiber.StatusOK).JSON(schemas.Res{
		Message: "Logged out successfully",
	})
}

// Profile is a function that is used to get the profile of the logged in user
func (a *Auth) Profile(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User profile retrieved successfully",
		"user":    schemas.FilterUser(*user),
	})
}

// EditProfile is a function that is used to update the profile of the logged in user
func (a *Auth) EditProfile(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, "Invalid request payload")
	}

	allowed := map[string]bool{
		"userName":    true,
		"name":        true,
		"email":       true,
		"phoneNumber": true,
		"avatarUrl":   true,
	}
	for field := range raw {
		if !allowed[field] {
			return errors.BadRequest(c, "Invalid fields in update")
		}
	}

	var payload struct {
		UserName    string `json:"userName" validate:"omitempty,validate_username"`
		Name        string `json:"name" validate:"omitempty,min=2,max=60"`
		Email       string `json:"email" validate:"omitempty,email"`
		PhoneNumber string `json:"phoneNumber" validate:"omitempty,validate_phone"`
		AvatarURL   string `json:"avatarUrl" validate:"omitempty,url"`
	}
	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, "Invalid request payload")
	}

	if fields := validate.Struct(payload); fields != nil {
		return errors.ValidationErr(c, fields)
	}

	userS := services.User{
		Conn: a.Conn,
	}

	if payload.UserName != "" {
		taken, err := userS.IsUsernameTaken(payload.UserName, user.ID)
		if err != nil {
			logger.Error(err)
			return errors.InternalServerErr(c, a.Env, err)
		}
		if taken {
			return errors.UsernameAlreadyUsed(c)
		}
		user.Username = payload.UserName
	}

	if payload.Email != "" {
		// Stored the same way Create stores it, so email lookups keep working
		email := strings.ToLower(strings.TrimSpace(payload.Email))

		taken, err := userS.IsEmailTaken(email, user.ID)
		if err != nil {
			logger.Error(err)
			return errors.InternalServerErr(c, a.Env, err)
		}
		if taken {
			return errors.EmailAlreadyUsed(c)
		}
		user.Email = email
	}

	if payload.Name != "" {
		user.Name = payload.Name
	}
	if _, ok := raw["phoneNumber"]; ok {
		user.PhoneNumber = payload.PhoneNumber
	}
	if _, ok := raw["avatarUrl"]; ok {
		user.AvatarURL = payload.AvatarURL
	}

	if err := userS.Save(user); err != nil {
		if ok := (errors.CheckDBError{}.DuplicateKey(err)); ok {
			return errors.UsernameOrEmailExists(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    schemas.FilterUser(*user),
	})
}

// ChangePassword is a function that is used to change the password of the logged in user
func (a *Auth) ChangePassword(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	var payload struct {
		CurrentPassword string `json:"currentPassword" validate:"required"`
		NewPassword     string `json:"newPassword" validate:"required,min=8,max=200,validate_password"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, "Invalid request payload")
	}

	if fields := validate.Struct(payload); fields != nil {
		return errors.ValidationErr(c, fields)
	}

	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(payload.CurrentPassword))
	if err != nil {
		return errors.CurrentPasswordWrong(c)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	user.PasswordHashed = string(hashedPassword)

	userS := services.User{
		Conn: a.Conn,
	}
	if err := userS.Save(user); err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Res{
		Message: "Password updated successfully",
	})
}

// ForgotPassword is a function that sends a password reset OTP to the given email.
// The response does not reveal wether an account exists for the email
func (a *Auth) ForgotPassword(c *fiber.Ctx) error {
	var payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, "Invalid request payload")
	}

	if fields := validate.Struct(payload); fields != nil {
		return errors.ValidationErr(c, fields)
	}

	res := schemas.Res{
		Message: "Password reset OTP has been sent",
	}

	userS := services.User{
		Conn: a.Conn,
	}
	user, err := userS.GetUserWithEmail(payload.Email)
	if err != nil {
		if services.IsNotFound(err) {
			return c.Status(fiber.StatusOK).JSON(res)
		}

		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	code := utils.GenerateOTPCode()
	err = a.OTP.StoreResetCode(c.Context(), user.ID.String(), code)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	err = a.Mail.SendPasswordResetOTP(user.Email, code)
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to send the password reset email")
		return errors.InternalServerErr(c, a.Env, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// ResetPassword is a function that verifies the password reset OTP and updates the password
func (a *Auth) ResetPassword(c *fiber.Ctx) error {
	var payload struct {
		Email       string `json:"email" validate:"required,email"`
		OTPCode     string `json:"otpCode" validate:"required,validate_otp"`
		NewPassword string `json:"newPassword" validate:"required,min=8,max=200,validate_password"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, "Invalid request payload")
	}

	if fields := validate.Struct(payload); fields != nil {
		return errors.ValidationErr(c, fields)
	}

	userS := services.User{
		Conn: a.Conn,
	}
	user, err := userS.GetUserWithEmail(payload.Email)
	if err != nil {
		if services.IsNotFound(err) {
			return errors.UserNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	code, err := a.OTP.ResetCode(c.Context(), user.ID.String())
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}
	if code == "" || code != payload.OTPCode {
		return errors.InvalidOrExpiredOTP(c)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(payload.NewPassword)); err == nil {
		return errors.SamePassword(c)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	user.PasswordHashed = string(hashedPassword)
	if err := userS.Save(user); err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, a.Env, err)
	}

	// The code is consumed only once the password update succeeds
	if err := a.OTP.DeleteResetCode(c.Context(), user.ID.String()); err != nil {
		logger.Error(err)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Res{
		Message: "Password reset successfully",
	})
}
