package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error
	// Delete removes the user row; role-specific rows cascade in the store.
	Delete(ctx context.Context, id string) error
}
