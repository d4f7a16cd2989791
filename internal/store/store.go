package store

import (
	"errors"

	"github.com/kunukumikhil-byte/being-connected1/internal/models"
)

var (
	ErrDuplicateApplicationNumber = errors.New("application number already exists")
	ErrInvalidCredentials         = errors.New("invalid credentials")
	ErrNotFound                   = errors.New("not found")
)

// ProfileFields are the editable profile columns. SaveProfile replaces all of
// them; there is no partial update.
type ProfileFields struct {
	About       string
	LinkedIn    string
	GitHub      string
	SkillsTeach string
	SkillsLearn string
}

type Store interface {
	// User operations
	CreateUser(name, applicationNumber, password string) (*models.User, error)
	GetUserByCredentials(applicationNumber, password string) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
	ListOtherUsers(selfID int) ([]models.User, error)

	// Profile operations
	GetProfile(userID int) (*models.Profile, error)
	SaveProfile(userID int, fields ProfileFields) (*models.Profile, error)

	// Message operations
	SaveMessage(senderID, receiverID int, body string) (*models.Message, error)
	MessagesBetween(a, b int) ([]models.Message, error)
}
