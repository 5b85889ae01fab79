package equipment

import "context"

type Repository interface {
	Save(ctx context.Context, e *Equipment) error
	Update(ctx context.Context, e *Equipment) error
	Delete(ctx context.Context, equipmentID uint) error
	GetByID(ctx context.Context, equipmentID uint) (*Equipment, error)
	ListByCompany(ctx context.Context, companyID uint) ([]*Equipment, error)
	// ListByCompanies lists equipment of the given companies; a nil slice
	// means no company restriction.
	ListByCompanies(ctx context.Context, companyIDs []uint) ([]*Equipment, error)
}
