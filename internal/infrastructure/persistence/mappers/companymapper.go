package mappers

import (
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/models"
)

// CompanyMapper handles the conversion between Company domain entities and persistence models.
type CompanyMapper interface {
	ToModel(c *company.Company) *models.CompanyModel
	ToDomain(model *models.CompanyModel) (*company.Company, error)
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToModel(c *company.Company) *models.CompanyModel {
	return &models.CompanyModel{
		ID:          c.ID(),
		Name:        c.Name(),
		CNPJ:        c.CNPJ(),
		CNPJDigits:  c.CNPJDigits(),
		FullAddress: c.FullAddress(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}
}

func (m *CompanyMapperImpl) ToDomain(model *models.CompanyModel) (*company.Company, error) {
	return company.ReconstructCompany(
		model.ID,
		model.Name,
		model.CNPJ,
		model.FullAddress,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
