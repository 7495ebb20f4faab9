package student

import "context"

type Repository interface {
	Create(ctx context.Context, s *Student) error
	Get(ctx context.Context, userID string) (*Student, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	Update(ctx context.Context, s *Student) error
}
