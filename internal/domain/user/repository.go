package user

import "context"

type Repository interface {
	Save(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, profileID uint) error
	GetByID(ctx context.Context, profileID uint) (*Profile, error)
	GetByIDs(ctx context.Context, profileIDs []uint) ([]*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	ListByRole(ctx context.Context, role Role) ([]*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
}
