package company

import (
	"fmt"
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/biztime"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

// Company is a tenant: equipment and tickets are scoped to it. The CNPJ is
// stored in display form and compared on the stripped 14-digit form.
type Company struct {
	id          uint
	name        string
	cnpj        string
	fullAddress string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCompany(name, cnpj, fullAddress string) (*Company, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !utils.IsValidCNPJ(cnpj) {
		return nil, fmt.Errorf("cnpj must contain exactly 14 digits")
	}

	now := biztime.NowUTC()
	return &Company{
		name:        name,
		cnpj:        utils.FormatCNPJ(cnpj),
		fullAddress: fullAddress,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCompany(id uint, name, cnpj, fullAddress string, createdAt, updatedAt time.Time) (*Company, error) {
	if id == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Company{
		id:          id,
		name:        name,
		cnpj:        cnpj,
		fullAddress: fullAddress,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Company) ID() uint {
	return c.id
}

func (c *Company) Name() string {
	return c.name
}

func (c *Company) CNPJ() string {
	return c.cnpj
}

// CNPJDigits returns the stripped 14-digit form used for exact matching.
func (c *Company) CNPJDigits() string {
	return utils.StripDigits(c.cnpj)
}

func (c *Company) FullAddress() string {
	return c.fullAddress
}

func (c *Company) HasAddress() bool {
	return len(c.fullAddress) > 0
}

func (c *Company) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Company) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Company) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("company ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Company) Update(name, cnpj, fullAddress string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if !utils.IsValidCNPJ(cnpj) {
		return fmt.Errorf("cnpj must contain exactly 14 digits")
	}

	c.name = name
	c.cnpj = utils.FormatCNPJ(cnpj)
	c.fullAddress = fullAddress
	c.updatedAt = biztime.NowUTC()
	return nil
}
