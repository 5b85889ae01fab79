package company

import "context"

type Repository interface {
	Save(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
	Delete(ctx context.Context, companyID uint) error
	GetByID(ctx context.Context, companyID uint) (*Company, error)
	GetByIDs(ctx context.Context, companyIDs []uint) ([]*Company, error)
	// GetByCNPJ matches on the stripped 14-digit form. Returns nil without
	// error when no company carries that CNPJ.
	GetByCNPJ(ctx context.Context, cnpjDigits string) (*Company, error)
	List(ctx context.Context) ([]*Company, error)
}
