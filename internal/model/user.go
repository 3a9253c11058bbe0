package model

import (
	"context"
	"errors"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UsersRepository interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int) (*User, error)
}

// User is seeded out of band and never mutated by the service.
type User struct {
	ID          int
	Name        string
	CompanyName string
}
