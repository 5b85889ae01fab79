package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/lookup"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
)

func TestRegisterCompany_Manual(t *testing.T) {
	var saved *company.Company
	repo := &mockCompanyRepository{
		SaveFunc: func(ctx context.Context, c *company.Company) error {
			saved = c
			return c.SetID(1)
		},
	}
	uc := NewRegisterCompanyUseCase(repo, &mockCompanyClient{}, nopLogger())

	c, err := uc.Execute(context.Background(), RegisterCompanyCommand{
		CNPJ:        "11.222.333/0001-81",
		Name:        "Acme Ltda",
		FullAddress: "Av. Paulista, 1000 - São Paulo/SP",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, uint(1), c.ID())
	assert.Equal(t, "Acme Ltda", c.Name())
	assert.Equal(t, "11222333000181", c.CNPJDigits())
}

func TestRegisterCompany_FromRegistry(t *testing.T) {
	repo := &mockCompanyRepository{
		SaveFunc: func(ctx context.Context, c *company.Company) error { return c.SetID(2) },
	}
	client := &mockCompanyClient{
		FetchCompanyFunc: func(ctx context.Context, digits string) (*lookup.CompanyInfo, error) {
			assert.Equal(t, "11222333000181", digits)
			return &lookup.CompanyInfo{
				CNPJ:      digits,
				LegalName: "Acme Comercio de Equipamentos Ltda",
				TradeName: "Acme",
				Street:    "Avenida Paulista",
				Number:    "1000",
				City:      "São Paulo",
				State:     "SP",
				CEP:       "01310-100",
			}, nil
		},
	}
	uc := NewRegisterCompanyUseCase(repo, client, nopLogger())

	c, err := uc.Execute(context.Background(), RegisterCompanyCommand{
		CNPJ:         "11222333000181",
		FromRegistry: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", c.Name())
	assert.Contains(t, c.FullAddress(), "Avenida Paulista, 1000")
	assert.Contains(t, c.FullAddress(), "São Paulo/SP")
}

func TestRegisterCompany_InvalidCNPJ(t *testing.T) {
	uc := NewRegisterCompanyUseCase(&mockCompanyRepository{}, &mockCompanyClient{}, nopLogger())

	_, err := uc.Execute(context.Background(), RegisterCompanyCommand{CNPJ: "123", Name: "X"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestRegisterCompany_AlreadyExists(t *testing.T) {
	existing := testCompany(t, 3, "Acme Ltda")
	repo := &mockCompanyRepository{
		GetByCNPJFunc: func(ctx context.Context, digits string) (*company.Company, error) {
			return existing, nil
		},
	}
	uc := NewRegisterCompanyUseCase(repo, &mockCompanyClient{}, nopLogger())

	_, err := uc.Execute(context.Background(), RegisterCompanyCommand{
		CNPJ: "11222333000181",
		Name: "Acme Ltda",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Contains(t, err.Error(), MsgCompanyExists)
}

func TestRegisterCompany_RegistryNotFound(t *testing.T) {
	uc := NewRegisterCompanyUseCase(&mockCompanyRepository{}, &mockCompanyClient{}, nopLogger())

	_, err := uc.Execute(context.Background(), RegisterCompanyCommand{
		CNPJ:         "11222333000181",
		FromRegistry: true,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestRegisterCompany_RegistryDown(t *testing.T) {
	client := &mockCompanyClient{
		FetchCompanyFunc: func(ctx context.Context, digits string) (*lookup.CompanyInfo, error) {
			return nil, lookup.ErrUnavailable
		},
	}
	uc := NewRegisterCompanyUseCase(&mockCompanyRepository{}, client, nopLogger())

	_, err := uc.Execute(context.Background(), RegisterCompanyCommand{
		CNPJ:         "11222333000181",
		FromRegistry: true,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsTimeoutError(err))
	assert.Contains(t, err.Error(), MsgRegistryDown)
}
