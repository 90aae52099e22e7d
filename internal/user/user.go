package user

import (
	"errors"
	"time"

	userDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/user"
)

// User is an API account. Eid ties the account to an employee record.
type User struct {
	Eid          string
	Email        string
	PasswordHash string
	Urid         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserType struct {
	Urid     string
	UserType string
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user already exists")
)

// Repository defines data access for users and user types.
type Repository interface {
	AllUsers() ([]*User, error)
	UserByEid(eid string) (*User, error)
	UserByEmail(email string) (*User, error)
	CreateUser(u *User) error
	UpdateUser(u *User) error
	DeleteUser(eid string) error

	AllUserTypes() ([]*UserType, error)
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		Eid:          u.Eid,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Urid:         u.Urid,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDataModel(m *userDatamodel.User) *User {
	return &User{
		Eid:          m.Eid,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Urid:         m.Urid,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromDataModelSlice(ms []*userDatamodel.User) []*User {
	result := make([]*User, len(ms))
	for i, m := range ms {
		result[i] = FromDataModel(m)
	}
	return result
}
