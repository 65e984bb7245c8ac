package users

import (
	"context"
)

// Repository persists users. Records are only ever appended.
type Repository interface {
	LoadAll(ctx context.Context) ([]User, error)
	Append(ctx context.Context, user User) error
}
