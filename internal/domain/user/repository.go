package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	// SearchByEmail matches a case-insensitive substring of the email.
	SearchByEmail(ctx context.Context, fragment string, limit int) ([]User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}
