// Package services contains the store backed services of the application
package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sketchsync/backend/connect"
	"github.com/sketchsync/backend/models"
	"gorm.io/gorm"
)

// User contains all the user related services
type User struct {
	Conn *connect.Connector
}

// GetUserWithEmail is a function that is used to get a user with the given email
func (u *User) GetUserWithEmail(email string) (*models.User, error) {
	var user models.User
	err := u.Conn.DB.Where(&models.User{
		Email: strings.ToLower(strings.TrimSpace(email)),
	}).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserWithUsername is a function that is used to get a user with the given username
func (u *User) GetUserWithUsername(username string) (*models.User, error) {
	var user models.User
	err := u.Conn.DB.Where(&models.User{
		Username: strings.TrimSpace(username),
	}).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserWithID is a function that is used to get a user with the given id
func (u *User) GetUserWithID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := u.Conn.DB.Where(&models.User{
		ID: &id,
	}).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// IsUsernameTaken is a function that is used to check wether a username is taken,
// optionally excluding a user (profile edits)
func (u *User) IsUsernameTaken(username string, exclude *uuid.UUID) (bool, error) {
	query := u.Conn.DB.Model(&models.User{}).Where("username = ?", strings.TrimSpace(username))
	if exclude != nil {
		query = query.Where("id <> ?", exclude)
	}

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// IsEmailTaken is a function that is used to check wether an email is taken,
// optionally excluding a user (profile edits)
func (u *User) IsEmailTaken(email string, exclude *uuid.UUID) (bool, error) {
	query := u.Conn.DB.Model(&models.User{}).Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if exclude != nil {
		query = query.Where("id <> ?", exclude)
	}

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create is a function that is used to create a new user in the relational database
func (u *User) Create(user models.User) (models.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Username = strings.TrimSpace(user.Username)

	err := u.Conn.DB.Create(&user).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Save is a function that is used to persist changes made to a user
func (u *User) Save(user *models.User) error {
	return u.Conn.DB.Save(user).Error
}

// UpdateLastLogin is a function that is used to stamp the last login time of a user
func (u *User) UpdateLastLogin(user *models.User) error {
	now := time.Now().UTC()
	user.LastLogin = &now
	return u.Conn.DB.Model(user).Update("last_login", now).Error
}

// GetUsersWithIDs is a function that is used to get multiple users keyed by
// their id, used when expanding connection counterparts
func (u *User) GetUsersWithIDs(ids []uuid.UUID) (map[uuid.UUID]models.User, error) {
	users := make(map[uuid.UUID]models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var records []models.User
	err := u.Conn.DB.Where("id IN ?", ids).Find(&records).Error
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		users[*record.ID] = record
	}

	return users, nil
}

// IsNotFound reports wether the given error is a missing record error
func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}
