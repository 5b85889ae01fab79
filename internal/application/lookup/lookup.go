// Package lookup defines the external registry clients used to enrich
// company and address data. Implementations live in infrastructure and wrap
// the public BrasilAPI and ViaCEP services.
package lookup

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the registry has no record for the queried
// document or postal code.
var ErrNotFound = errors.New("lookup: record not found")

// ErrUnavailable is returned when the registry is down or the circuit
// breaker is open.
var ErrUnavailable = errors.New("lookup: service unavailable")

// CompanyInfo is the registry record for a CNPJ.
type CompanyInfo struct {
	CNPJ         string
	LegalName    string
	TradeName    string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	CEP          string
}

// FullAddress joins the address parts into the single display line stored on
// the company record.
func (c CompanyInfo) FullAddress() string {
	parts := make([]string, 0, 6)
	appendPart := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}
	street := c.Street
	if street != "" && c.Number != "" {
		street += ", " + c.Number
	}
	appendPart(street)
	appendPart(c.Complement)
	appendPart(c.Neighborhood)
	if c.City != "" && c.State != "" {
		appendPart(c.City + "/" + c.State)
	} else {
		appendPart(c.City)
		appendPart(c.State)
	}
	appendPart(c.CEP)
	result := ""
	for i, p := range parts {
		if i > 0 {
			result += " - "
		}
		result += p
	}
	return result
}

// AddressInfo is the postal record for a CEP.
type AddressInfo struct {
	CEP          string
	Street       string
	Neighborhood string
	City         string
	State        string
}

// CompanyClient resolves a 14-digit CNPJ against the national registry.
type CompanyClient interface {
	FetchCompany(ctx context.Context, cnpjDigits string) (*CompanyInfo, error)
}

// AddressClient resolves an 8-digit CEP against the postal registry.
type AddressClient interface {
	FetchAddress(ctx context.Context, cep string) (*AddressInfo, error)
}
